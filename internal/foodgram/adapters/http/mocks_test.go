package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/domain/services"
	"foodgram/internal/foodgram/ports/api"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Login(ctx context.Context, email, password string) (*services.AccessToken, error) {
	args := m.Called(ctx, email, password)
	if v := args.Get(0); v != nil {
		return v.(*services.AccessToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuth) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuth) Authenticate(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Register(ctx context.Context, input api.RegisterInput) (*entities.User, error) {
	args := m.Called(ctx, input)
	if v := args.Get(0); v != nil {
		return v.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) GetProfile(ctx context.Context, userID, viewerID int64) (*entities.UserProfile, error) {
	args := m.Called(ctx, userID, viewerID)
	if v := args.Get(0); v != nil {
		return v.(*entities.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) List(ctx context.Context, viewerID int64, page entities.PageRequest) (*entities.Page[entities.UserProfile], error) {
	args := m.Called(ctx, viewerID, page)
	if v := args.Get(0); v != nil {
		return v.(*entities.Page[entities.UserProfile]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) SetPassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	return m.Called(ctx, userID, currentPassword, newPassword).Error(0)
}

type mockSubscriptions struct{ mock.Mock }

func (m *mockSubscriptions) Subscribe(ctx context.Context, userID, authorID int64, recipesLimit int) (*entities.Subscription, error) {
	args := m.Called(ctx, userID, authorID, recipesLimit)
	if v := args.Get(0); v != nil {
		return v.(*entities.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubscriptions) Unsubscribe(ctx context.Context, userID, authorID int64) error {
	return m.Called(ctx, userID, authorID).Error(0)
}

func (m *mockSubscriptions) List(ctx context.Context, userID int64, page entities.PageRequest, recipesLimit int) (*entities.Page[entities.Subscription], error) {
	args := m.Called(ctx, userID, page, recipesLimit)
	if v := args.Get(0); v != nil {
		return v.(*entities.Page[entities.Subscription]), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRecipes struct{ mock.Mock }

func (m *mockRecipes) Create(ctx context.Context, authorID int64, input api.RecipeInput) (*entities.RecipeDetails, error) {
	args := m.Called(ctx, authorID, input)
	if v := args.Get(0); v != nil {
		return v.(*entities.RecipeDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipes) Update(ctx context.Context, userID, recipeID int64, patch api.RecipePatch) (*entities.RecipeDetails, error) {
	args := m.Called(ctx, userID, recipeID, patch)
	if v := args.Get(0); v != nil {
		return v.(*entities.RecipeDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipes) Delete(ctx context.Context, userID, recipeID int64) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *mockRecipes) Get(ctx context.Context, recipeID, viewerID int64) (*entities.RecipeDetails, error) {
	args := m.Called(ctx, recipeID, viewerID)
	if v := args.Get(0); v != nil {
		return v.(*entities.RecipeDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipes) List(ctx context.Context, filter entities.RecipeFilter) (*entities.Page[entities.RecipeDetails], error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.(*entities.Page[entities.RecipeDetails]), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMemberships struct{ mock.Mock }

func (m *mockMemberships) Add(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) (*entities.RecipeShort, error) {
	args := m.Called(ctx, kind, userID, recipeID)
	if v := args.Get(0); v != nil {
		return v.(*entities.RecipeShort), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMemberships) Remove(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) error {
	return m.Called(ctx, kind, userID, recipeID).Error(0)
}

func (m *mockMemberships) Get(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) (*entities.RecipeShort, error) {
	args := m.Called(ctx, kind, userID, recipeID)
	if v := args.Get(0); v != nil {
		return v.(*entities.RecipeShort), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockShoppingList struct{ mock.Mock }

func (m *mockShoppingList) Download(ctx context.Context, userID int64) (string, string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.String(1), args.Error(2)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) ListTags(ctx context.Context) ([]entities.Tag, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entities.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalog) GetTag(ctx context.Context, id int64) (*entities.Tag, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalog) SearchIngredients(ctx context.Context, prefix string) ([]entities.Ingredient, error) {
	args := m.Called(ctx, prefix)
	if v := args.Get(0); v != nil {
		return v.([]entities.Ingredient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalog) GetIngredient(ctx context.Context, id int64) (*entities.Ingredient, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Ingredient), args.Error(1)
	}
	return nil, args.Error(1)
}
