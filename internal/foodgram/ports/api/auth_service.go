package api

import (
	"context"

	"foodgram/internal/foodgram/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*services.AccessToken, error)

	Logout(ctx context.Context, token string) error

	// Authenticate проверяет токен и возвращает id пользователя.
	Authenticate(ctx context.Context, token string) (int64, error)
}
