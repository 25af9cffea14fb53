package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/repositories"
	"foodgram/pkg/db/postgres"
	"foodgram/pkg/logger"
)

const (
	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
)

const userColumns = `u.id, u.email, u.username, u.first_name, u.last_name, u.password_hash, u.created_at`

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row, user *entities.User, extra ...any) error {
	dest := []any{
		&user.ID,
		&user.Email,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.CreatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// Create создает нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users AS u (email, username, first_name, last_name, password_hash)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns

	var created entities.User
	err := scanUser(r.pool.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
	), &created)
	if err != nil {
		switch {
		case postgres.IsUniqueViolation(err, constraintUsersEmail):
			return nil, entities.ErrEmailTaken
		case postgres.IsUniqueViolation(err, constraintUsersUsername):
			return nil, entities.ErrUsernameTaken
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &created, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`

	var user entities.User
	if err := scanUser(r.pool.QueryRow(ctx, query, id), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		logger.Log(ctx).Error(ctx, "error finding user by id", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1`

	var user entities.User
	if err := scanUser(r.pool.QueryRow(ctx, query, email), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		logger.Log(ctx).Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return &user, nil
}

// UpdatePassword заменяет хеш пароля пользователя.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error updating password", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}

// GetProfile возвращает пользователя и признак подписки на него зрителя.
func (r *UserRepository) GetProfile(ctx context.Context, id, viewerID int64) (*entities.UserProfile, error) {
	query := `
        SELECT ` + userColumns + `,
            EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = $2 AND s.author_id = u.id)
        FROM users u
        WHERE u.id = $1
    `

	var profile entities.UserProfile
	if err := scanUser(r.pool.QueryRow(ctx, query, id, viewerID), &profile.User, &profile.IsSubscribed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		logger.Log(ctx).Error(ctx, "error getting user profile", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error querying user profile: %w", err)
	}

	return &profile, nil
}

// ListProfiles возвращает страницу пользователей, упорядоченных по id.
func (r *UserRepository) ListProfiles(ctx context.Context, viewerID int64, limit, offset int) ([]entities.UserProfile, int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "ListProfiles"))

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		log.Error(ctx, "error counting users", zap.Error(err))
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	query := `
        SELECT ` + userColumns + `,
            EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = $1 AND s.author_id = u.id)
        FROM users u
        ORDER BY u.username
        LIMIT $2 OFFSET $3
    `

	rows, err := r.pool.Query(ctx, query, viewerID, limit, offset)
	if err != nil {
		log.Error(ctx, "error listing users", zap.Error(err))
		return nil, 0, fmt.Errorf("error listing users: %w", err)
	}

	profiles, err := scanProfiles(rows)
	if err != nil {
		log.Error(ctx, "error scanning users", zap.Error(err))
		return nil, 0, fmt.Errorf("error scanning users: %w", err)
	}

	return profiles, total, nil
}

func scanProfiles(rows pgx.Rows) ([]entities.UserProfile, error) {
	defer rows.Close()

	profiles := make([]entities.UserProfile, 0)
	for rows.Next() {
		var p entities.UserProfile
		if err := scanUser(rows, &p.User, &p.IsSubscribed); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
