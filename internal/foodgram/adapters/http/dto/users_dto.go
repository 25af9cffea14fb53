// Package dto содержит объекты передачи данных HTTP API и функции их преобразования.
package dto

import "foodgram/internal/foodgram/domain/entities"

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150,username,notme"`
	FirstName string `json:"first_name" validate:"required,max=150,nodigits"`
	LastName  string `json:"last_name" validate:"required,max=150,nodigits"`
	Password  string `json:"password" validate:"required,max=150"`
}

// LoginRequest содержит данные для получения токена.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse содержит токен доступа.
type TokenResponse struct {
	AuthToken string `json:"auth_token"`
}

// SetPasswordRequest содержит данные для смены пароля.
type SetPasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
}

// UserResponse - пользователь без пароля, ответ на регистрацию.
type UserResponse struct {
	Email     string `json:"email"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProfileResponse - пользователь с признаком подписки текущего зрителя.
type ProfileResponse struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// SubscriptionResponse - автор с превью его рецептов.
type SubscriptionResponse struct {
	ProfileResponse
	Recipes      []RecipeShortResponse `json:"recipes"`
	RecipesCount int                   `json:"recipes_count"`
}

// ToUserResponse преобразует пользователя в ответ.
func ToUserResponse(u *entities.User) UserResponse {
	return UserResponse{
		Email:     u.Email,
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// ToProfileResponse преобразует профиль в ответ.
func ToProfileResponse(p *entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		Email:        p.Email,
		ID:           p.ID,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		IsSubscribed: p.IsSubscribed,
	}
}

// ToProfileResponses преобразует список профилей.
func ToProfileResponses(items []entities.UserProfile) []ProfileResponse {
	out := make([]ProfileResponse, len(items))
	for i := range items {
		out[i] = ToProfileResponse(&items[i])
	}
	return out
}

// ToSubscriptionResponse преобразует подписку. is_subscribed всегда true:
// в список подписок попадают только авторы, на которых подписан зритель.
func ToSubscriptionResponse(s *entities.Subscription) SubscriptionResponse {
	profile := ToProfileResponse(&s.Author)
	profile.IsSubscribed = true
	return SubscriptionResponse{
		ProfileResponse: profile,
		Recipes:         ToRecipeShortResponses(s.Recipes),
		RecipesCount:    s.RecipesCount,
	}
}

// ToSubscriptionResponses преобразует список подписок.
func ToSubscriptionResponses(items []entities.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, len(items))
	for i := range items {
		out[i] = ToSubscriptionResponse(&items[i])
	}
	return out
}
