package repositories

import (
	"context"

	"foodgram/internal/foodgram/domain/entities"
)

// SubscriptionRepository хранит подписки пользователей на авторов.
type SubscriptionRepository interface {
	Add(ctx context.Context, userID, authorID int64) error

	Remove(ctx context.Context, userID, authorID int64) error

	// ListAuthors возвращает авторов, на которых подписан userID.
	ListAuthors(ctx context.Context, userID int64, limit, offset int) ([]entities.UserProfile, int, error)
}
