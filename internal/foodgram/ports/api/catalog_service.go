package api

import (
	"context"
	"io"

	"foodgram/internal/foodgram/domain/entities"
)

// CatalogUseCase отдает справочники тегов и ингредиентов.
type CatalogUseCase interface {
	ListTags(ctx context.Context) ([]entities.Tag, error)

	GetTag(ctx context.Context, id int64) (*entities.Tag, error)

	SearchIngredients(ctx context.Context, prefix string) ([]entities.Ingredient, error)

	GetIngredient(ctx context.Context, id int64) (*entities.Ingredient, error)
}

// IngredientImportUseCase загружает справочник ингредиентов из CSV.
type IngredientImportUseCase interface {
	Import(ctx context.Context, r io.Reader, clean bool) (int, error)
}
