// Package app содержит сценарии использования сервиса рецептов.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/domain/services"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/internal/foodgram/ports/cache"
	"foodgram/internal/foodgram/ports/repositories"
	svc "foodgram/internal/foodgram/ports/services"
	"foodgram/pkg/logger"
)

const (
	methodLogin        = "Login"
	methodLogout       = "Logout"
	methodAuthenticate = "Authenticate"

	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgUserLoggedOut       = "user logged out successfully"
	msgRevokedTokenAttempt = "attempt to use revoked token"

	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrGenerateToken     = "failed to generate token on login"
	msgErrRevokingToken     = "failed to revoke token"

	errCtxFindingUser       = "finding user"
	errCtxVerifyingPassword = "verifying password"
	errCtxGeneratingToken   = "generating token"
	errCtxValidatingToken   = "validating token"
	errCtxRevokingToken     = "revoking token"
	errCtxCheckingRevoked   = "checking token revocation"

	revokedTokenPrefix = "revoked:"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	revoked     cache.Cache
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
// revoked хранит идентификаторы отозванных токенов до истечения их срока.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	revoked cache.Cache,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		revoked:     revoked,
	}
}

// Login проверяет email и пароль и выдает токен доступа.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.AccessToken, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, services.ErrInvalidCredentials
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			return nil, services.ErrInvalidCredentials
		}
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return nil, services.ErrInvalidCredentials
	}

	token, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrTokenGenerationFailed, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("user_id", user.ID))
	return token, nil
}

// Logout отзывает токен до истечения его срока действия.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))

	claims, err := a.tokenSvc.ValidateAccessToken(ctx, token)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := a.revoked.Set(ctx, revokedTokenPrefix+claims.ID, []byte("1"), ttl); err != nil {
		log.Error(ctx, msgErrRevokingToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
	}

	log.Info(ctx, msgUserLoggedOut, zap.Int64("user_id", claims.UserID))
	return nil
}

// Authenticate проверяет подпись, срок и отзыв токена и возвращает id пользователя.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, token string) (int64, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	claims, err := a.tokenSvc.ValidateAccessToken(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	revoked, err := a.revoked.Exists(ctx, revokedTokenPrefix+claims.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", errCtxCheckingRevoked, err)
	}
	if revoked {
		log.Debug(ctx, msgRevokedTokenAttempt, zap.Int64("user_id", claims.UserID))
		return 0, services.ErrTokenRevoked
	}

	return claims.UserID, nil
}
