package app_test

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/domain/services"
)

var errDatabase = errors.New("database error")

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if v := args.Get(0); v != nil {
		return v.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*entities.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockUserRepository) GetProfile(ctx context.Context, id, viewerID int64) (*entities.UserProfile, error) {
	args := m.Called(ctx, id, viewerID)
	if v := args.Get(0); v != nil {
		return v.(*entities.UserProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) ListProfiles(ctx context.Context, viewerID int64, limit, offset int) ([]entities.UserProfile, int, error) {
	args := m.Called(ctx, viewerID, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]entities.UserProfile), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

type mockSubscriptionRepository struct{ mock.Mock }

func (m *mockSubscriptionRepository) Add(ctx context.Context, userID, authorID int64) error {
	return m.Called(ctx, userID, authorID).Error(0)
}

func (m *mockSubscriptionRepository) Remove(ctx context.Context, userID, authorID int64) error {
	return m.Called(ctx, userID, authorID).Error(0)
}

func (m *mockSubscriptionRepository) ListAuthors(ctx context.Context, userID int64, limit, offset int) ([]entities.UserProfile, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if v := args.Get(0); v != nil {
		return v.([]entities.UserProfile), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

type mockRecipeRepository struct{ mock.Mock }

func (m *mockRecipeRepository) Create(ctx context.Context, recipe *entities.Recipe, comp *entities.Composition) (*entities.Recipe, error) {
	args := m.Called(ctx, recipe, comp)
	if v := args.Get(0); v != nil {
		return v.(*entities.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipeRepository) Update(ctx context.Context, recipe *entities.Recipe, comp *entities.Composition) (*entities.Recipe, error) {
	args := m.Called(ctx, recipe, comp)
	if v := args.Get(0); v != nil {
		return v.(*entities.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipeRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRecipeRepository) FindByID(ctx context.Context, id int64) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipeRepository) GetDetails(ctx context.Context, id, viewerID int64) (*entities.RecipeDetails, error) {
	args := m.Called(ctx, id, viewerID)
	if v := args.Get(0); v != nil {
		return v.(*entities.RecipeDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecipeRepository) List(ctx context.Context, filter entities.RecipeFilter) ([]entities.RecipeDetails, int, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]entities.RecipeDetails), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockRecipeRepository) ListShortByAuthors(ctx context.Context, authorIDs []int64, limit int) (map[int64][]entities.RecipeShort, map[int64]int, error) {
	args := m.Called(ctx, authorIDs, limit)
	if v := args.Get(0); v != nil {
		return v.(map[int64][]entities.RecipeShort), args.Get(1).(map[int64]int), args.Error(2)
	}
	return nil, nil, args.Error(2)
}

type mockMembershipRepository struct{ mock.Mock }

func (m *mockMembershipRepository) Add(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) error {
	return m.Called(ctx, kind, userID, recipeID).Error(0)
}

func (m *mockMembershipRepository) Remove(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) error {
	return m.Called(ctx, kind, userID, recipeID).Error(0)
}

func (m *mockMembershipRepository) Exists(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, kind, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockMembershipRepository) HasAny(ctx context.Context, kind entities.MembershipKind, userID int64) (bool, error) {
	args := m.Called(ctx, kind, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockMembershipRepository) CartIngredientRows(ctx context.Context, userID int64) ([]entities.CartIngredientRow, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]entities.CartIngredientRow), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTagRepository struct{ mock.Mock }

func (m *mockTagRepository) List(ctx context.Context) ([]entities.Tag, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entities.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepository) FindByID(ctx context.Context, id int64) (*entities.Tag, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.(map[int64]struct{}), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockIngredientRepository struct{ mock.Mock }

func (m *mockIngredientRepository) Search(ctx context.Context, prefix string) ([]entities.Ingredient, error) {
	args := m.Called(ctx, prefix)
	if v := args.Get(0); v != nil {
		return v.([]entities.Ingredient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIngredientRepository) FindByID(ctx context.Context, id int64) (*entities.Ingredient, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entities.Ingredient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIngredientRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.(map[int64]struct{}), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockIngredientRepository) Import(ctx context.Context, items []entities.Ingredient, clean bool) (int, error) {
	args := m.Called(ctx, items, clean)
	return args.Int(0), args.Error(1)
}

type mockPasswordService struct{ mock.Mock }

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, userID int64, username string) (*services.AccessToken, error) {
	args := m.Called(ctx, userID, username)
	if v := args.Get(0); v != nil {
		return v.(*services.AccessToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenService) ValidateAccessToken(ctx context.Context, token string) (*services.JWTClaims, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.(*services.JWTClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) DeletePrefix(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}

func (m *mockCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type mockValidator struct{ mock.Mock }

func (m *mockValidator) Validate(ctx context.Context, draft entities.RecipeDraft) (*entities.Composition, error) {
	args := m.Called(ctx, draft)
	if v := args.Get(0); v != nil {
		return v.(*entities.Composition), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockShoppingListBuilder struct{ mock.Mock }

func (m *mockShoppingListBuilder) Build(ctx context.Context, userID int64) ([]entities.ShoppingListItem, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]entities.ShoppingListItem), args.Error(1)
	}
	return nil, args.Error(1)
}
