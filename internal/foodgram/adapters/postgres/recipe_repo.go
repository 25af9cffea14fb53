package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/repositories"
	"foodgram/pkg/db/postgres"
	"foodgram/pkg/logger"
)

const (
	constraintRecipeAuthor     = "recipes_author_id_fkey"
	constraintRecipeIngredient = "recipe_ingredients_ingredient_id_fkey"
	constraintRecipeTag        = "recipe_tags_tag_id_fkey"
)

// RecipeRepository реализует repositories.RecipeRepository.
type RecipeRepository struct {
	pool PgxPoolInterface
}

// NewRecipeRepository создает репозиторий рецептов.
func NewRecipeRepository(pool PgxPoolInterface) repositories.RecipeRepository {
	return &RecipeRepository{pool: pool}
}

// Create сохраняет рецепт вместе с тегами и ингредиентами.
func (r *RecipeRepository) Create(ctx context.Context, recipe *entities.Recipe, comp *entities.Composition) (*entities.Recipe, error) {
	created := *recipe

	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            INSERT INTO recipes (author_id, name, text, image, cooking_time)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id, pub_date
        `, recipe.AuthorID, recipe.Name, recipe.Text, recipe.Image, recipe.CookingTime).
			Scan(&created.ID, &created.PubDate)
		if err != nil {
			return fmt.Errorf("error inserting recipe: %w", err)
		}

		return insertComposition(ctx, tx, created.ID, comp)
	})
	if err != nil {
		if mapped := mapCompositionError(err); mapped != nil {
			return nil, mapped
		}
		logger.Log(ctx).Error(ctx, "error creating recipe", zap.Int64("author_id", recipe.AuthorID), zap.Error(err))
		return nil, fmt.Errorf("error creating recipe: %w", err)
	}

	return &created, nil
}

// Update обновляет поля рецепта и заменяет наборы тегов и ингредиентов.
func (r *RecipeRepository) Update(ctx context.Context, recipe *entities.Recipe, comp *entities.Composition) (*entities.Recipe, error) {
	updated := *recipe

	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
            UPDATE recipes
            SET name = $2, text = $3, image = $4, cooking_time = $5
            WHERE id = $1
            RETURNING author_id, pub_date
        `, recipe.ID, recipe.Name, recipe.Text, recipe.Image, recipe.CookingTime).
			Scan(&updated.AuthorID, &updated.PubDate)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrRecipeNotFound
			}
			return fmt.Errorf("error updating recipe: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipe.ID); err != nil {
			return fmt.Errorf("error clearing recipe tags: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
			return fmt.Errorf("error clearing recipe ingredients: %w", err)
		}

		return insertComposition(ctx, tx, recipe.ID, comp)
	})
	if err != nil {
		if errors.Is(err, entities.ErrRecipeNotFound) {
			return nil, entities.ErrRecipeNotFound
		}
		if mapped := mapCompositionError(err); mapped != nil {
			return nil, mapped
		}
		logger.Log(ctx).Error(ctx, "error updating recipe", zap.Int64("recipe_id", recipe.ID), zap.Error(err))
		return nil, fmt.Errorf("error updating recipe: %w", err)
	}

	return &updated, nil
}

func insertComposition(ctx context.Context, tx pgx.Tx, recipeID int64, comp *entities.Composition) error {
	if _, err := tx.Exec(ctx, `
        INSERT INTO recipe_tags (recipe_id, tag_id)
        SELECT $1, unnest($2::bigint[])
    `, recipeID, comp.TagIDs); err != nil {
		return fmt.Errorf("error inserting recipe tags: %w", err)
	}

	ingredientIDs := make([]int64, len(comp.Ingredients))
	amounts := make([]int32, len(comp.Ingredients))
	for i, item := range comp.Ingredients {
		if item.Amount < 1 || item.Amount > entities.MaxIngredientAmount {
			return fmt.Errorf("%w: amount %d of ingredient %d is out of range",
				entities.ErrInvalidComposition, item.Amount, item.IngredientID)
		}
		ingredientIDs[i] = item.IngredientID
		amounts[i] = int32(item.Amount)
	}

	if _, err := tx.Exec(ctx, `
        INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount)
        SELECT $1, unnest($2::bigint[]), unnest($3::int[])
    `, recipeID, ingredientIDs, amounts); err != nil {
		return fmt.Errorf("error inserting recipe ingredients: %w", err)
	}

	return nil
}

// mapCompositionError переводит нарушения внешних ключей в доменные ошибки.
// Каталог мог измениться между проверкой состава и записью.
func mapCompositionError(err error) error {
	switch {
	case postgres.IsForeignKeyViolation(err, constraintRecipeIngredient):
		return entities.ErrIngredientNotFound
	case postgres.IsForeignKeyViolation(err, constraintRecipeTag):
		return entities.ErrTagNotFound
	case postgres.IsForeignKeyViolation(err, constraintRecipeAuthor):
		return entities.ErrUserNotFound
	}
	return nil
}

// Delete удаляет рецепт, связи удаляются каскадно.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		logger.Log(ctx).Error(ctx, "error deleting recipe", zap.Int64("recipe_id", id), zap.Error(err))
		return fmt.Errorf("error deleting recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrRecipeNotFound
	}
	return nil
}

// FindByID находит строку рецепта без связей.
func (r *RecipeRepository) FindByID(ctx context.Context, id int64) (*entities.Recipe, error) {
	var rec entities.Recipe
	err := r.pool.QueryRow(ctx, `
        SELECT id, author_id, name, text, image, cooking_time, pub_date
        FROM recipes
        WHERE id = $1
    `, id).Scan(&rec.ID, &rec.AuthorID, &rec.Name, &rec.Text, &rec.Image, &rec.CookingTime, &rec.PubDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("error querying recipe: %w", err)
	}
	return &rec, nil
}

// detailsSelect выбирает рецепт, автора и флаги зрителя.
// Параметр зрителя подставляется в позицию viewerParam.
func detailsSelect(viewerParam int) string {
	v := fmt.Sprintf("$%d", viewerParam)
	return `
        SELECT r.id, r.author_id, r.name, r.text, r.image, r.cooking_time, r.pub_date,
            u.id, u.email, u.username, u.first_name, u.last_name, u.created_at,
            EXISTS (SELECT 1 FROM subscriptions s WHERE s.user_id = ` + v + ` AND s.author_id = r.author_id),
            EXISTS (SELECT 1 FROM favorites f WHERE f.user_id = ` + v + ` AND f.recipe_id = r.id),
            EXISTS (SELECT 1 FROM shopping_cart c WHERE c.user_id = ` + v + ` AND c.recipe_id = r.id)
        FROM recipes r
        JOIN users u ON u.id = r.author_id`
}

func scanDetails(row pgx.Row) (entities.RecipeDetails, error) {
	var d entities.RecipeDetails
	err := row.Scan(
		&d.ID, &d.AuthorID, &d.Name, &d.Text, &d.Image, &d.CookingTime, &d.PubDate,
		&d.Author.ID, &d.Author.Email, &d.Author.Username, &d.Author.FirstName, &d.Author.LastName, &d.Author.CreatedAt,
		&d.Author.IsSubscribed, &d.IsFavorited, &d.IsInShoppingCart,
	)
	return d, err
}

// GetDetails возвращает полное представление рецепта для зрителя.
func (r *RecipeRepository) GetDetails(ctx context.Context, id, viewerID int64) (*entities.RecipeDetails, error) {
	query := detailsSelect(2) + ` WHERE r.id = $1`

	details, err := scanDetails(r.pool.QueryRow(ctx, query, id, viewerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRecipeNotFound
		}
		logger.Log(ctx).Error(ctx, "error loading recipe", zap.Int64("recipe_id", id), zap.Error(err))
		return nil, fmt.Errorf("error loading recipe: %w", err)
	}

	list := []entities.RecipeDetails{details}
	if err := r.loadRelations(ctx, list); err != nil {
		return nil, err
	}

	return &list[0], nil
}

// recipeFilterSQL собирает условие WHERE и его аргументы.
func recipeFilterSQL(filter entities.RecipeFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.AuthorID != 0 {
		conds = append(conds, "r.author_id = "+next(filter.AuthorID))
	}
	if len(filter.TagSlugs) > 0 {
		conds = append(conds, `EXISTS (
            SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id
            WHERE rt.recipe_id = r.id AND t.slug = ANY(`+next(filter.TagSlugs)+`))`)
	}
	if filter.FavoritedBy != 0 {
		conds = append(conds,
			"EXISTS (SELECT 1 FROM favorites fv WHERE fv.recipe_id = r.id AND fv.user_id = "+next(filter.FavoritedBy)+")")
	}
	if filter.InCartOf != 0 {
		conds = append(conds,
			"EXISTS (SELECT 1 FROM shopping_cart sc WHERE sc.recipe_id = r.id AND sc.user_id = "+next(filter.InCartOf)+")")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List возвращает страницу рецептов, новые первыми.
func (r *RecipeRepository) List(ctx context.Context, filter entities.RecipeFilter) ([]entities.RecipeDetails, int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "recipe"), zap.String("method", "List"))

	where, args := recipeFilterSQL(filter)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM recipes r`+where, args...).Scan(&total); err != nil {
		log.Error(ctx, "error counting recipes", zap.Error(err))
		return nil, 0, fmt.Errorf("error counting recipes: %w", err)
	}

	n := len(args)
	query := detailsSelect(n+1) + where +
		fmt.Sprintf(" ORDER BY r.pub_date DESC, r.id DESC LIMIT $%d OFFSET $%d", n+2, n+3)
	args = append(args, filter.ViewerID, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error listing recipes", zap.Error(err))
		return nil, 0, fmt.Errorf("error listing recipes: %w", err)
	}

	list, err := func() ([]entities.RecipeDetails, error) {
		defer rows.Close()
		out := make([]entities.RecipeDetails, 0)
		for rows.Next() {
			d, err := scanDetails(rows)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
		return out, rows.Err()
	}()
	if err != nil {
		log.Error(ctx, "error scanning recipes", zap.Error(err))
		return nil, 0, fmt.Errorf("error scanning recipes: %w", err)
	}

	if err := r.loadRelations(ctx, list); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// loadRelations заполняет теги и ингредиенты для набора рецептов.
func (r *RecipeRepository) loadRelations(ctx context.Context, list []entities.RecipeDetails) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]int64, len(list))
	index := make(map[int64]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
		index[list[i].ID] = i
		list[i].Tags = make([]entities.Tag, 0)
		list[i].Ingredients = make([]entities.RecipeIngredient, 0)
	}

	tagRows, err := r.pool.Query(ctx, `
        SELECT rt.recipe_id, t.id, t.name, t.color, t.slug
        FROM recipe_tags rt
        JOIN tags t ON t.id = rt.tag_id
        WHERE rt.recipe_id = ANY($1)
        ORDER BY rt.id
    `, ids)
	if err != nil {
		return fmt.Errorf("error loading recipe tags: %w", err)
	}
	err = func() error {
		defer tagRows.Close()
		for tagRows.Next() {
			var (
				recipeID int64
				t        entities.Tag
			)
			if err := tagRows.Scan(&recipeID, &t.ID, &t.Name, &t.Color, &t.Slug); err != nil {
				return err
			}
			if i, ok := index[recipeID]; ok {
				list[i].Tags = append(list[i].Tags, t)
			}
		}
		return tagRows.Err()
	}()
	if err != nil {
		return fmt.Errorf("error scanning recipe tags: %w", err)
	}

	ingRows, err := r.pool.Query(ctx, `
        SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
        FROM recipe_ingredients ri
        JOIN ingredients i ON i.id = ri.ingredient_id
        WHERE ri.recipe_id = ANY($1)
        ORDER BY ri.id
    `, ids)
	if err != nil {
		return fmt.Errorf("error loading recipe ingredients: %w", err)
	}
	err = func() error {
		defer ingRows.Close()
		for ingRows.Next() {
			var (
				recipeID int64
				ri       entities.RecipeIngredient
			)
			if err := ingRows.Scan(&recipeID, &ri.ID, &ri.Name, &ri.MeasurementUnit, &ri.Amount); err != nil {
				return err
			}
			if i, ok := index[recipeID]; ok {
				list[i].Ingredients = append(list[i].Ingredients, ri)
			}
		}
		return ingRows.Err()
	}()
	if err != nil {
		return fmt.Errorf("error scanning recipe ingredients: %w", err)
	}

	return nil
}

// ListShortByAuthors возвращает превью рецептов авторов и их общее число.
// limit < 0 снимает ограничение на число превью.
func (r *RecipeRepository) ListShortByAuthors(ctx context.Context, authorIDs []int64, limit int) (map[int64][]entities.RecipeShort, map[int64]int, error) {
	recipes := make(map[int64][]entities.RecipeShort, len(authorIDs))
	counts := make(map[int64]int, len(authorIDs))
	if len(authorIDs) == 0 {
		return recipes, counts, nil
	}

	countRows, err := r.pool.Query(ctx, `
        SELECT author_id, COUNT(*)
        FROM recipes
        WHERE author_id = ANY($1)
        GROUP BY author_id
    `, authorIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("error counting author recipes: %w", err)
	}
	err = func() error {
		defer countRows.Close()
		for countRows.Next() {
			var (
				authorID int64
				count    int
			)
			if err := countRows.Scan(&authorID, &count); err != nil {
				return err
			}
			counts[authorID] = count
		}
		return countRows.Err()
	}()
	if err != nil {
		return nil, nil, fmt.Errorf("error scanning author recipe counts: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
        SELECT id, author_id, name, image, cooking_time
        FROM (
            SELECT r.id, r.author_id, r.name, r.image, r.cooking_time,
                ROW_NUMBER() OVER (PARTITION BY r.author_id ORDER BY r.pub_date DESC, r.id DESC) AS rn
            FROM recipes r
            WHERE r.author_id = ANY($1)
        ) ranked
        WHERE $2::bigint < 0 OR rn <= $2::bigint
        ORDER BY author_id, rn
    `, authorIDs, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading author recipes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			authorID int64
			s        entities.RecipeShort
		)
		if err := rows.Scan(&s.ID, &authorID, &s.Name, &s.Image, &s.CookingTime); err != nil {
			return nil, nil, fmt.Errorf("error scanning author recipe: %w", err)
		}
		recipes[authorID] = append(recipes[authorID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating author recipes: %w", err)
	}

	return recipes, counts, nil
}
