package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/repositories"
	"foodgram/pkg/db/postgres"
	"foodgram/pkg/logger"
)

const (
	constraintSubscriptionsNoSelf = "subscriptions_no_self"
	constraintSubscriptionsUnique = "subscriptions_unique"
)

// SubscriptionRepository хранит подписки в таблице subscriptions.
type SubscriptionRepository struct {
	pool PgxPoolInterface
}

// NewSubscriptionRepository создает репозиторий подписок.
func NewSubscriptionRepository(pool PgxPoolInterface) repositories.SubscriptionRepository {
	return &SubscriptionRepository{pool: pool}
}

// Add подписывает userID на authorID.
func (r *SubscriptionRepository) Add(ctx context.Context, userID, authorID int64) error {
	query := `
        INSERT INTO subscriptions (user_id, author_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, author_id) DO NOTHING
    `

	tag, err := r.pool.Exec(ctx, query, userID, authorID)
	if err != nil {
		switch {
		case postgres.IsCheckViolation(err, constraintSubscriptionsNoSelf):
			return entities.ErrSelfSubscription
		case postgres.IsUniqueViolation(err, constraintSubscriptionsUnique):
			return entities.ErrAlreadyPresent
		case postgres.IsForeignKeyViolation(err, ""):
			return entities.ErrUserNotFound
		}
		logger.Log(ctx).Error(ctx, "error adding subscription",
			zap.Int64("user_id", userID), zap.Int64("author_id", authorID), zap.Error(err))
		return fmt.Errorf("error adding subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrAlreadyPresent
	}
	return nil
}

// Remove отменяет подписку.
func (r *SubscriptionRepository) Remove(ctx context.Context, userID, authorID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM subscriptions WHERE user_id = $1 AND author_id = $2`, userID, authorID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error removing subscription",
			zap.Int64("user_id", userID), zap.Int64("author_id", authorID), zap.Error(err))
		return fmt.Errorf("error removing subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNotPresent
	}
	return nil
}

// ListAuthors возвращает авторов в порядке оформления подписки.
func (r *SubscriptionRepository) ListAuthors(ctx context.Context, userID int64, limit, offset int) ([]entities.UserProfile, int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "subscription"), zap.String("method", "ListAuthors"))

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		log.Error(ctx, "error counting subscriptions", zap.Error(err))
		return nil, 0, fmt.Errorf("error counting subscriptions: %w", err)
	}

	query := `
        SELECT ` + userColumns + `,
            EXISTS (SELECT 1 FROM subscriptions x WHERE x.user_id = $1 AND x.author_id = u.id)
        FROM subscriptions s
        JOIN users u ON u.id = s.author_id
        WHERE s.user_id = $1
        ORDER BY s.id
        LIMIT $2 OFFSET $3
    `

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		log.Error(ctx, "error listing subscriptions", zap.Error(err))
		return nil, 0, fmt.Errorf("error listing subscriptions: %w", err)
	}

	authors, err := scanProfiles(rows)
	if err != nil {
		log.Error(ctx, "error scanning subscriptions", zap.Error(err))
		return nil, 0, fmt.Errorf("error scanning subscriptions: %w", err)
	}

	return authors, total, nil
}
