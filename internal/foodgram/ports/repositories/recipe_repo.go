package repositories

import (
	"context"

	"foodgram/internal/foodgram/domain/entities"
)

// RecipeRepository определяет операции хранилища рецептов.
type RecipeRepository interface {
	// Create сохраняет рецепт и его состав в одной транзакции.
	Create(ctx context.Context, recipe *entities.Recipe, comp *entities.Composition) (*entities.Recipe, error)

	// Update обновляет рецепт и полностью заменяет его теги и ингредиенты.
	Update(ctx context.Context, recipe *entities.Recipe, comp *entities.Composition) (*entities.Recipe, error)

	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*entities.Recipe, error)

	GetDetails(ctx context.Context, id, viewerID int64) (*entities.RecipeDetails, error)

	List(ctx context.Context, filter entities.RecipeFilter) ([]entities.RecipeDetails, int, error)

	// ListShortByAuthors возвращает не более limit последних рецептов каждого автора
	// (limit <= 0 снимает ограничение) и общее число рецептов автора.
	ListShortByAuthors(ctx context.Context, authorIDs []int64, limit int) (map[int64][]entities.RecipeShort, map[int64]int, error)
}
