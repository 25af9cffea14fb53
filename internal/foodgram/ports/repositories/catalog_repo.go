package repositories

import (
	"context"

	"foodgram/internal/foodgram/domain/entities"
)

// TagRepository предоставляет доступ к тегам.
type TagRepository interface {
	List(ctx context.Context) ([]entities.Tag, error)

	FindByID(ctx context.Context, id int64) (*entities.Tag, error)

	ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)
}

// IngredientRepository предоставляет доступ к справочнику ингредиентов.
type IngredientRepository interface {
	// Search ищет ингредиенты по префиксу названия без учета регистра.
	Search(ctx context.Context, prefix string) ([]entities.Ingredient, error)

	FindByID(ctx context.Context, id int64) (*entities.Ingredient, error)

	ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)

	// Import загружает ингредиенты одной транзакцией, при clean очищая справочник.
	Import(ctx context.Context, items []entities.Ingredient, clean bool) (int, error)
}
