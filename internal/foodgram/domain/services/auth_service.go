package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials    = errors.New("unable to log in with provided credentials")
	ErrTokenRevoked          = errors.New("token has been revoked")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
	ErrNotAuthenticated      = errors.New("authentication credentials were not provided")
)

// AccessToken представляет выданный токен доступа.
type AccessToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}
