package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/repositories"
	"foodgram/pkg/db/postgres"
	"foodgram/pkg/logger"
)

// MembershipRepository хранит избранное (favorites) и корзину (shopping_cart).
type MembershipRepository struct {
	pool PgxPoolInterface
}

// NewMembershipRepository создает репозиторий наборов рецептов.
func NewMembershipRepository(pool PgxPoolInterface) repositories.MembershipRepository {
	return &MembershipRepository{pool: pool}
}

func membershipTable(kind entities.MembershipKind) (string, error) {
	switch kind {
	case entities.KindFavorite:
		return "favorites", nil
	case entities.KindShoppingCart:
		return "shopping_cart", nil
	default:
		return "", fmt.Errorf("unknown membership kind %q", kind)
	}
}

// Add добавляет рецепт в набор. Повторное добавление возвращает ErrAlreadyPresent.
func (r *MembershipRepository) Add(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) error {
	table, err := membershipTable(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
        INSERT INTO %s (user_id, recipe_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, recipe_id) DO NOTHING
    `, table)

	tag, err := r.pool.Exec(ctx, query, userID, recipeID)
	if err != nil {
		switch {
		case postgres.IsUniqueViolation(err, ""):
			return entities.ErrAlreadyPresent
		case postgres.IsForeignKeyViolation(err, ""):
			return entities.ErrRecipeNotFound
		}
		logger.Log(ctx).Error(ctx, "error adding recipe to set",
			zap.String("kind", string(kind)), zap.Int64("user_id", userID),
			zap.Int64("recipe_id", recipeID), zap.Error(err))
		return fmt.Errorf("error adding to %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrAlreadyPresent
	}
	return nil
}

// Remove удаляет рецепт из набора. Отсутствующая пара возвращает ErrNotPresent.
func (r *MembershipRepository) Remove(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) error {
	table, err := membershipTable(kind)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND recipe_id = $2`, table), userID, recipeID)
	if err != nil {
		return fmt.Errorf("error removing from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrNotPresent
	}
	return nil
}

// Exists проверяет наличие пары в наборе.
func (r *MembershipRepository) Exists(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) (bool, error) {
	table, err := membershipTable(kind)
	if err != nil {
		return false, err
	}

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND recipe_id = $2)`, table)
	if err := r.pool.QueryRow(ctx, query, userID, recipeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking %s: %w", table, err)
	}
	return exists, nil
}

// HasAny проверяет, есть ли в наборе пользователя хотя бы один рецепт.
func (r *MembershipRepository) HasAny(ctx context.Context, kind entities.MembershipKind, userID int64) (bool, error) {
	table, err := membershipTable(kind)
	if err != nil {
		return false, err
	}

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1)`, table)
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking %s: %w", table, err)
	}
	return exists, nil
}

// CartIngredientRows возвращает ингредиенты всех рецептов корзины пользователя.
func (r *MembershipRepository) CartIngredientRows(ctx context.Context, userID int64) ([]entities.CartIngredientRow, error) {
	query := `
        SELECT c.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
        FROM shopping_cart c
        JOIN recipe_ingredients ri ON ri.recipe_id = c.recipe_id
        JOIN ingredients i ON i.id = ri.ingredient_id
        WHERE c.user_id = $1
    `

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error loading cart ingredients", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("error loading cart ingredients: %w", err)
	}
	defer rows.Close()

	result := make([]entities.CartIngredientRow, 0)
	for rows.Next() {
		var row entities.CartIngredientRow
		if err := rows.Scan(&row.RecipeID, &row.IngredientID, &row.Name, &row.MeasurementUnit, &row.Amount); err != nil {
			return nil, fmt.Errorf("error scanning cart ingredient: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart ingredients: %w", err)
	}

	return result, nil
}
