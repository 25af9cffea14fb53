package repositories

import (
	"context"

	"foodgram/internal/foodgram/domain/entities"
)

// UserRepository определяет операции хранилища пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// GetProfile возвращает пользователя с признаком подписки зрителя viewerID.
	GetProfile(ctx context.Context, id, viewerID int64) (*entities.UserProfile, error)

	ListProfiles(ctx context.Context, viewerID int64, limit, offset int) ([]entities.UserProfile, int, error)
}
