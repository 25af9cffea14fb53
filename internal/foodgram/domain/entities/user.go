// Package entities содержит доменные сущности сервиса рецептов.
package entities

import "time"

// User представляет зарегистрированного пользователя.
type User struct {
	ID           int64
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserProfile - пользователь с точки зрения конкретного зрителя.
type UserProfile struct {
	User
	IsSubscribed bool
}

// Subscription - автор, на которого подписан пользователь, с превью его рецептов.
type Subscription struct {
	Author       UserProfile
	Recipes      []RecipeShort
	RecipesCount int
}
