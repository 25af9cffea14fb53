package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/repositories"
	"foodgram/pkg/logger"
)

// TagRepository читает теги из таблицы tags.
type TagRepository struct {
	pool PgxPoolInterface
}

// NewTagRepository создает репозиторий тегов.
func NewTagRepository(pool PgxPoolInterface) repositories.TagRepository {
	return &TagRepository{pool: pool}
}

// List возвращает все теги, упорядоченные по имени.
func (r *TagRepository) List(ctx context.Context) ([]entities.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, color, slug FROM tags ORDER BY name`)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error listing tags", zap.Error(err))
		return nil, fmt.Errorf("error listing tags: %w", err)
	}
	defer rows.Close()

	tags := make([]entities.Tag, 0)
	for rows.Next() {
		var t entities.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Slug); err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return tags, nil
}

// FindByID находит тег по id.
func (r *TagRepository) FindByID(ctx context.Context, id int64) (*entities.Tag, error) {
	var t entities.Tag
	err := r.pool.QueryRow(ctx, `SELECT id, name, color, slug FROM tags WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Color, &t.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTagNotFound
		}
		return nil, fmt.Errorf("error querying tag: %w", err)
	}
	return &t, nil
}

// ExistingIDs возвращает id тегов из ids, которые есть в базе.
func (r *TagRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	if len(ids) == 0 {
		return map[int64]struct{}{}, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id FROM tags WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error querying tag ids: %w", err)
	}

	found, err := collectIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("error scanning tag ids: %w", err)
	}
	return found, nil
}

// IngredientRepository работает со справочником ингредиентов.
type IngredientRepository struct {
	pool PgxPoolInterface
}

// NewIngredientRepository создает репозиторий ингредиентов.
func NewIngredientRepository(pool PgxPoolInterface) repositories.IngredientRepository {
	return &IngredientRepository{pool: pool}
}

// Search ищет ингредиенты, чье название начинается с prefix.
func (r *IngredientRepository) Search(ctx context.Context, prefix string) ([]entities.Ingredient, error) {
	query := `
        SELECT id, name, measurement_unit
        FROM ingredients
        WHERE lower(name) LIKE lower($1) || '%'
        ORDER BY name, id
    `

	rows, err := r.pool.Query(ctx, query, escapeLike(prefix))
	if err != nil {
		logger.Log(ctx).Error(ctx, "error searching ingredients", zap.String("prefix", prefix), zap.Error(err))
		return nil, fmt.Errorf("error searching ingredients: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Ingredient, 0)
	for rows.Next() {
		var i entities.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.MeasurementUnit); err != nil {
			return nil, fmt.Errorf("error scanning ingredient: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ingredients: %w", err)
	}

	return items, nil
}

// FindByID находит ингредиент по id.
func (r *IngredientRepository) FindByID(ctx context.Context, id int64) (*entities.Ingredient, error) {
	var i entities.Ingredient
	err := r.pool.QueryRow(ctx, `SELECT id, name, measurement_unit FROM ingredients WHERE id = $1`, id).
		Scan(&i.ID, &i.Name, &i.MeasurementUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("error querying ingredient: %w", err)
	}
	return &i, nil
}

// ExistingIDs возвращает id ингредиентов из ids, которые есть в базе.
func (r *IngredientRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	if len(ids) == 0 {
		return map[int64]struct{}{}, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id FROM ingredients WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("error querying ingredient ids: %w", err)
	}

	found, err := collectIDs(rows)
	if err != nil {
		return nil, fmt.Errorf("error scanning ingredient ids: %w", err)
	}
	return found, nil
}

// Import вставляет ингредиенты одной транзакцией и возвращает число вставленных строк.
func (r *IngredientRepository) Import(ctx context.Context, items []entities.Ingredient, clean bool) (int, error) {
	names := make([]string, len(items))
	units := make([]string, len(items))
	for idx, item := range items {
		names[idx] = item.Name
		units[idx] = item.MeasurementUnit
	}

	var inserted int64
	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if clean {
			if _, err := tx.Exec(ctx, `DELETE FROM ingredients`); err != nil {
				return fmt.Errorf("error cleaning ingredients: %w", err)
			}
		}

		tag, err := tx.Exec(ctx, `
            INSERT INTO ingredients (name, measurement_unit)
            SELECT unnest($1::text[]), unnest($2::text[])
        `, names, units)
		if err != nil {
			return fmt.Errorf("error inserting ingredients: %w", err)
		}
		inserted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		logger.Log(ctx).Error(ctx, "error importing ingredients", zap.Error(err))
		return 0, err
	}

	return int(inserted), nil
}
