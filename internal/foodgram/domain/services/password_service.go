package services

import (
	"errors"
	"unicode"

	"foodgram/internal/foodgram/domain/entities"
)

// PasswordErrors содержит ошибки, связанные с паролями.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = errors.New("invalid password")
)

// MinPasswordLength - минимальная длина пароля.
const MinPasswordLength = 8

// CheckPasswordStrength проверяет длину пароля и наличие в нем буквы и цифры.
func CheckPasswordStrength(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return entities.ErrPasswordTooShort
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return entities.ErrPasswordTooWeak
	}
	return nil
}
