package entities

import "errors"

// Ошибки "не найдено".
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

// Ошибки пользователей.
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmailTaken       = errors.New("user with this email already exists")
	ErrUsernameTaken    = errors.New("user with this username already exists")
	ErrPasswordTooShort = errors.New("password must contain at least 8 characters")
	ErrPasswordTooWeak  = errors.New("password must contain at least one letter and one digit")
	ErrWrongPassword    = errors.New("current password is incorrect")
)

// Ошибки наборов членства (избранное, корзина, подписки).
var (
	ErrAlreadyPresent    = errors.New("already added")
	ErrNotPresent        = errors.New("not added")
	ErrSelfSubscription  = errors.New("it is not allowed to subscribe to yourself")
	ErrEmptyShoppingCart = errors.New("shopping cart is empty")
)

// Ошибки доступа и валидации.
var (
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrInvalidComposition = errors.New("invalid recipe composition")
	ErrInvalidImage       = errors.New("invalid recipe image")
)
