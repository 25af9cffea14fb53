package api

import (
	"context"

	"foodgram/internal/foodgram/domain/entities"
)

// RegisterInput - данные регистрации пользователя.
type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// UserUseCase определяет основной порт для пользовательских операций.
type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entities.User, error)

	GetProfile(ctx context.Context, userID, viewerID int64) (*entities.UserProfile, error)

	List(ctx context.Context, viewerID int64, page entities.PageRequest) (*entities.Page[entities.UserProfile], error)

	SetPassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

// SubscriptionUseCase управляет подписками на авторов.
type SubscriptionUseCase interface {
	Subscribe(ctx context.Context, userID, authorID int64, recipesLimit int) (*entities.Subscription, error)

	Unsubscribe(ctx context.Context, userID, authorID int64) error

	List(ctx context.Context, userID int64, page entities.PageRequest, recipesLimit int) (*entities.Page[entities.Subscription], error)
}
