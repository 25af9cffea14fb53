package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/domain/services"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/internal/foodgram/ports/repositories"
	svc "foodgram/internal/foodgram/ports/services"
	"foodgram/pkg/logger"
)

const (
	methodRegister    = "Register"
	methodSetPassword = "SetPassword"

	msgStartRegistration = "starting user registration"
	msgUserRegistered    = "user registered successfully"
	msgPasswordChanged   = "password changed"

	msgErrHashPassword = "failed to hash password"
	msgErrCreateUser   = "failed to create user"

	errCtxValidatingPassword = "validating password"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxGettingProfile     = "getting user profile"
	errCtxListingUsers       = "listing users"
	errCtxUpdatingPassword   = "updating password"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo repositories.UserRepository, passwordSvc svc.PasswordService) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
	}
}

// Register создает пользователя. Форматы полей проверяются на уровне HTTP.
func (u *UserUseCaseImpl) Register(ctx context.Context, input api.RegisterInput) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", input.Email))
	log.Debug(ctx, msgStartRegistration)

	if err := services.CheckPasswordStrength(input.Password); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	hash, err := u.passwordSvc.Hash(ctx, input.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	created, err := u.userRepo.Create(ctx, &entities.User{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hash,
	})
	if err != nil {
		log.Debug(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("user_id", created.ID))
	return created, nil
}

// GetProfile возвращает профиль пользователя с точки зрения viewerID.
func (u *UserUseCaseImpl) GetProfile(ctx context.Context, userID, viewerID int64) (*entities.UserProfile, error) {
	profile, err := u.userRepo.GetProfile(ctx, userID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGettingProfile, err)
	}
	return profile, nil
}

// List возвращает страницу пользователей.
func (u *UserUseCaseImpl) List(ctx context.Context, viewerID int64, page entities.PageRequest) (*entities.Page[entities.UserProfile], error) {
	items, total, err := u.userRepo.ListProfiles(ctx, viewerID, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}
	return &entities.Page[entities.UserProfile]{Items: items, Total: total}, nil
}

// SetPassword меняет пароль после проверки текущего.
func (u *UserUseCaseImpl) SetPassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	log := logger.Log(ctx).With(zap.String("method", methodSetPassword), zap.Int64("user_id", userID))

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxGettingProfile, err)
	}

	valid, err := u.passwordSvc.Verify(ctx, currentPassword, user.PasswordHash)
	if err != nil || !valid {
		return entities.ErrWrongPassword
	}

	if err := services.CheckPasswordStrength(newPassword); err != nil {
		return fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	hash, err := u.passwordSvc.Hash(ctx, newPassword)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	if err := u.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("%s: %w", errCtxUpdatingPassword, err)
	}

	log.Info(ctx, msgPasswordChanged)
	return nil
}
