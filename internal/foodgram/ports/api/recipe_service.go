package api

import (
	"context"

	"foodgram/internal/foodgram/domain/entities"
)

// RecipeInput - полные данные рецепта при создании.
type RecipeInput struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
	Ingredients []entities.IngredientAmount
	TagIDs      []int64
}

// RecipePatch - частичное обновление рецепта.
// Nil-поля сохраняют прежние значения, теги и ингредиенты заменяются целиком.
type RecipePatch struct {
	Name        *string
	Text        *string
	Image       *string
	CookingTime *int
	Ingredients []entities.IngredientAmount
	TagIDs      []int64
}

// RecipeUseCase определяет операции над рецептами.
type RecipeUseCase interface {
	Create(ctx context.Context, authorID int64, input RecipeInput) (*entities.RecipeDetails, error)

	Update(ctx context.Context, userID, recipeID int64, patch RecipePatch) (*entities.RecipeDetails, error)

	Delete(ctx context.Context, userID, recipeID int64) error

	Get(ctx context.Context, recipeID, viewerID int64) (*entities.RecipeDetails, error)

	List(ctx context.Context, filter entities.RecipeFilter) (*entities.Page[entities.RecipeDetails], error)
}

// MembershipUseCase управляет избранным и корзиной покупок.
type MembershipUseCase interface {
	Add(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) (*entities.RecipeShort, error)

	Remove(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) error

	// Get возвращает рецепт, если пара присутствует в наборе, иначе ErrNotPresent.
	Get(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) (*entities.RecipeShort, error)
}

// ShoppingListUseCase формирует файл списка покупок.
type ShoppingListUseCase interface {
	Download(ctx context.Context, userID int64) (filename string, content string, err error)
}
