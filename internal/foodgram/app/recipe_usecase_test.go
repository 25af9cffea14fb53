package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodgram/internal/foodgram/app"
	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/domain/services"
	"foodgram/internal/foodgram/ports/api"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func recipeInput() api.RecipeInput {
	return api.RecipeInput{
		Name:        "Борщ",
		Text:        "Варить два часа",
		Image:       pngDataURI,
		CookingTime: 120,
		Ingredients: []entities.IngredientAmount{{IngredientID: 1, Amount: 300}},
		TagIDs:      []int64{2},
	}
}

func TestCreateRecipe(t *testing.T) {
	comp := &entities.Composition{
		Ingredients: []entities.IngredientAmount{{IngredientID: 1, Amount: 300}},
		TagIDs:      []int64{2},
	}

	t.Run("success - recipe stored with composition", func(t *testing.T) {
		recipes := new(mockRecipeRepository)
		validator := new(mockValidator)
		input := recipeInput()

		validator.On("Validate", mock.Anything, entities.RecipeDraft{
			Name: input.Name, Text: input.Text, Ingredients: input.Ingredients, TagIDs: input.TagIDs,
		}).Return(comp, nil).Once()
		recipes.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Recipe) bool {
			return r.AuthorID == 5 && r.Image == pngDataURI && r.CookingTime == 120
		}), comp).Return(&entities.Recipe{ID: 11}, nil).Once()
		recipes.On("GetDetails", mock.Anything, int64(11), int64(5)).
			Return(&entities.RecipeDetails{Recipe: entities.Recipe{ID: 11}}, nil).Once()

		details, err := app.NewRecipeUseCase(recipes, validator).Create(context.Background(), 5, input)

		require.NoError(t, err)
		assert.Equal(t, int64(11), details.ID)
		recipes.AssertExpectations(t)
		validator.AssertExpectations(t)
	})

	t.Run("error - not an image", func(t *testing.T) {
		input := recipeInput()
		input.Image = "data:image/png;base64,aGVsbG8gd29ybGQ="

		_, err := app.NewRecipeUseCase(new(mockRecipeRepository), new(mockValidator)).Create(context.Background(), 5, input)

		require.ErrorIs(t, err, entities.ErrInvalidImage)
	})

	t.Run("error - composition rejected", func(t *testing.T) {
		recipes := new(mockRecipeRepository)
		validator := new(mockValidator)
		rejection := &services.CompositionError{Rule: services.RuleNoTags, Reason: "no tags"}
		validator.On("Validate", mock.Anything, mock.Anything).Return(nil, rejection).Once()

		_, err := app.NewRecipeUseCase(recipes, validator).Create(context.Background(), 5, recipeInput())

		require.ErrorIs(t, err, entities.ErrInvalidComposition)
		recipes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateRecipe(t *testing.T) {
	current := &entities.Recipe{ID: 11, AuthorID: 5, Name: "Борщ", Text: "Старый текст", Image: pngDataURI, CookingTime: 60}
	newText := "Новый текст"
	ingredients := []entities.IngredientAmount{{IngredientID: 3, Amount: 1}}
	comp := &entities.Composition{Ingredients: ingredients, TagIDs: []int64{1}}

	t.Run("success - omitted fields kept", func(t *testing.T) {
		recipes := new(mockRecipeRepository)
		validator := new(mockValidator)

		recipes.On("FindByID", mock.Anything, int64(11)).Return(current, nil).Once()
		validator.On("Validate", mock.Anything, entities.RecipeDraft{
			Name: "Борщ", Text: newText, Ingredients: ingredients, TagIDs: []int64{1},
		}).Return(comp, nil).Once()
		recipes.On("Update", mock.Anything, mock.MatchedBy(func(r *entities.Recipe) bool {
			return r.ID == 11 && r.Name == "Борщ" && r.Text == newText && r.CookingTime == 60 && r.Image == pngDataURI
		}), comp).Return(current, nil).Once()
		recipes.On("GetDetails", mock.Anything, int64(11), int64(5)).
			Return(&entities.RecipeDetails{Recipe: *current}, nil).Once()

		_, err := app.NewRecipeUseCase(recipes, validator).Update(context.Background(), 5, 11, api.RecipePatch{
			Text:        &newText,
			Ingredients: ingredients,
			TagIDs:      []int64{1},
		})

		require.NoError(t, err)
		recipes.AssertExpectations(t)
		validator.AssertExpectations(t)
		assert.Equal(t, "Старый текст", current.Text)
	})

	t.Run("error - foreign recipe", func(t *testing.T) {
		recipes := new(mockRecipeRepository)
		recipes.On("FindByID", mock.Anything, int64(11)).Return(current, nil).Once()

		_, err := app.NewRecipeUseCase(recipes, new(mockValidator)).Update(context.Background(), 6, 11, api.RecipePatch{})

		require.ErrorIs(t, err, entities.ErrForbidden)
	})

	t.Run("error - missing recipe", func(t *testing.T) {
		recipes := new(mockRecipeRepository)
		recipes.On("FindByID", mock.Anything, int64(99)).Return(nil, entities.ErrRecipeNotFound).Once()

		_, err := app.NewRecipeUseCase(recipes, new(mockValidator)).Update(context.Background(), 5, 99, api.RecipePatch{})

		require.ErrorIs(t, err, entities.ErrRecipeNotFound)
	})
}

func TestDeleteRecipe(t *testing.T) {
	current := &entities.Recipe{ID: 11, AuthorID: 5}

	tests := []struct {
		name        string
		userID      int64
		expectedErr error
	}{
		{name: "success - author deletes", userID: 5},
		{name: "error - other user", userID: 6, expectedErr: entities.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes := new(mockRecipeRepository)
			recipes.On("FindByID", mock.Anything, int64(11)).Return(current, nil).Once()
			if tt.expectedErr == nil {
				recipes.On("Delete", mock.Anything, int64(11)).Return(nil).Once()
			}

			err := app.NewRecipeUseCase(recipes, new(mockValidator)).Delete(context.Background(), tt.userID, 11)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
			recipes.AssertExpectations(t)
		})
	}
}

func TestListRecipes(t *testing.T) {
	t.Run("anonymous viewer ignores personal filters", func(t *testing.T) {
		recipes := new(mockRecipeRepository)
		recipes.On("List", mock.Anything, entities.RecipeFilter{TagSlugs: []string{"lunch"}, Limit: 6}).
			Return([]entities.RecipeDetails{}, 0, nil).Once()

		page, err := app.NewRecipeUseCase(recipes, new(mockValidator)).List(context.Background(), entities.RecipeFilter{
			TagSlugs:    []string{"lunch"},
			FavoritedBy: 1,
			InCartOf:    1,
			Limit:       6,
		})

		require.NoError(t, err)
		assert.Zero(t, page.Total)
		recipes.AssertExpectations(t)
	})

	t.Run("authenticated viewer keeps filters", func(t *testing.T) {
		recipes := new(mockRecipeRepository)
		filter := entities.RecipeFilter{ViewerID: 1, FavoritedBy: 1, Limit: 6}
		recipes.On("List", mock.Anything, filter).
			Return([]entities.RecipeDetails{{Recipe: entities.Recipe{ID: 1}}}, 1, nil).Once()

		page, err := app.NewRecipeUseCase(recipes, new(mockValidator)).List(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
		recipes.AssertExpectations(t)
	})
}
