package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/domain/services"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/internal/foodgram/ports/repositories"
	"foodgram/pkg/logger"
)

const (
	methodCreateRecipe = "CreateRecipe"
	methodUpdateRecipe = "UpdateRecipe"
	methodDeleteRecipe = "DeleteRecipe"

	msgRecipeCreated  = "recipe created"
	msgRecipeUpdated  = "recipe updated"
	msgRecipeDeleted  = "recipe deleted"
	msgRecipeRejected = "recipe composition rejected"
	msgForeignRecipe  = "attempt to modify foreign recipe"

	errCtxValidatingImage       = "validating image"
	errCtxValidatingComposition = "validating composition"
	errCtxCreatingRecipe        = "creating recipe"
	errCtxUpdatingRecipe        = "updating recipe"
	errCtxDeletingRecipe        = "deleting recipe"
	errCtxLoadingRecipe         = "loading recipe"
	errCtxListingRecipes        = "listing recipes"
)

// CompositionValidator проверяет черновик рецепта.
type CompositionValidator interface {
	Validate(ctx context.Context, draft entities.RecipeDraft) (*entities.Composition, error)
}

// RecipeUseCaseImpl реализует api.RecipeUseCase.
type RecipeUseCaseImpl struct {
	recipes   repositories.RecipeRepository
	validator CompositionValidator
}

// NewRecipeUseCase создает сценарии работы с рецептами.
func NewRecipeUseCase(recipes repositories.RecipeRepository, validator CompositionValidator) api.RecipeUseCase {
	return &RecipeUseCaseImpl{recipes: recipes, validator: validator}
}

// Create проверяет и сохраняет новый рецепт автора.
func (r *RecipeUseCaseImpl) Create(ctx context.Context, authorID int64, input api.RecipeInput) (*entities.RecipeDetails, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateRecipe), zap.Int64("author_id", authorID))

	image, err := services.NormalizeImage(input.Image)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingImage, err)
	}

	comp, err := r.validator.Validate(ctx, entities.RecipeDraft{
		Name:        input.Name,
		Text:        input.Text,
		Ingredients: input.Ingredients,
		TagIDs:      input.TagIDs,
	})
	if err != nil {
		log.Debug(ctx, msgRecipeRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingComposition, err)
	}

	created, err := r.recipes.Create(ctx, &entities.Recipe{
		AuthorID:    authorID,
		Name:        input.Name,
		Text:        input.Text,
		Image:       image,
		CookingTime: input.CookingTime,
	}, comp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingRecipe, err)
	}

	log.Info(ctx, msgRecipeCreated, zap.Int64("recipe_id", created.ID))
	return r.Get(ctx, created.ID, authorID)
}

// Update частично обновляет рецепт автора. Теги и ингредиенты заменяются целиком.
func (r *RecipeUseCaseImpl) Update(ctx context.Context, userID, recipeID int64, patch api.RecipePatch) (*entities.RecipeDetails, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateRecipe), zap.Int64("recipe_id", recipeID))

	current, err := r.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingRecipe, err)
	}
	if current.AuthorID != userID {
		log.Warn(ctx, msgForeignRecipe, zap.Int64("user_id", userID))
		return nil, entities.ErrForbidden
	}

	merged := *current
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Text != nil {
		merged.Text = *patch.Text
	}
	if patch.CookingTime != nil {
		merged.CookingTime = *patch.CookingTime
	}
	if patch.Image != nil {
		image, err := services.NormalizeImage(*patch.Image)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxValidatingImage, err)
		}
		merged.Image = image
	}

	comp, err := r.validator.Validate(ctx, entities.RecipeDraft{
		Name:        merged.Name,
		Text:        merged.Text,
		Ingredients: patch.Ingredients,
		TagIDs:      patch.TagIDs,
	})
	if err != nil {
		log.Debug(ctx, msgRecipeRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingComposition, err)
	}

	if _, err := r.recipes.Update(ctx, &merged, comp); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingRecipe, err)
	}

	log.Info(ctx, msgRecipeUpdated)
	return r.Get(ctx, recipeID, userID)
}

// Delete удаляет рецепт автора.
func (r *RecipeUseCaseImpl) Delete(ctx context.Context, userID, recipeID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteRecipe), zap.Int64("recipe_id", recipeID))

	current, err := r.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxLoadingRecipe, err)
	}
	if current.AuthorID != userID {
		log.Warn(ctx, msgForeignRecipe, zap.Int64("user_id", userID))
		return entities.ErrForbidden
	}

	if err := r.recipes.Delete(ctx, recipeID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingRecipe, err)
	}

	log.Info(ctx, msgRecipeDeleted)
	return nil
}

// Get возвращает полное представление рецепта.
func (r *RecipeUseCaseImpl) Get(ctx context.Context, recipeID, viewerID int64) (*entities.RecipeDetails, error) {
	details, err := r.recipes.GetDetails(ctx, recipeID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingRecipe, err)
	}
	return details, nil
}

// List возвращает страницу рецептов. Фильтры по избранному и корзине
// применяются только для аутентифицированного зрителя.
func (r *RecipeUseCaseImpl) List(ctx context.Context, filter entities.RecipeFilter) (*entities.Page[entities.RecipeDetails], error) {
	if filter.ViewerID == 0 {
		filter.FavoritedBy = 0
		filter.InCartOf = 0
	}

	items, total, err := r.recipes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingRecipes, err)
	}
	return &entities.Page[entities.RecipeDetails]{Items: items, Total: total}, nil
}
