package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodgram/internal/foodgram/app"
	"foodgram/internal/foodgram/domain/entities"
)

func TestMembershipAdd(t *testing.T) {
	recipe := &entities.Recipe{ID: 4, Name: "Плов", Image: "img", CookingTime: 40}

	tests := []struct {
		name        string
		kind        entities.MembershipKind
		setupMocks  func(recipes *mockRecipeRepository, members *mockMembershipRepository)
		expectedErr error
	}{
		{
			name: "success - added to favorites",
			kind: entities.KindFavorite,
			setupMocks: func(recipes *mockRecipeRepository, members *mockMembershipRepository) {
				recipes.On("FindByID", mock.Anything, int64(4)).Return(recipe, nil).Once()
				members.On("Add", mock.Anything, entities.KindFavorite, int64(1), int64(4)).Return(nil).Once()
			},
		},
		{
			name: "error - already in cart",
			kind: entities.KindShoppingCart,
			setupMocks: func(recipes *mockRecipeRepository, members *mockMembershipRepository) {
				recipes.On("FindByID", mock.Anything, int64(4)).Return(recipe, nil).Once()
				members.On("Add", mock.Anything, entities.KindShoppingCart, int64(1), int64(4)).
					Return(entities.ErrAlreadyPresent).Once()
			},
			expectedErr: entities.ErrAlreadyPresent,
		},
		{
			name: "error - recipe missing",
			kind: entities.KindFavorite,
			setupMocks: func(recipes *mockRecipeRepository, _ *mockMembershipRepository) {
				recipes.On("FindByID", mock.Anything, int64(4)).Return(nil, entities.ErrRecipeNotFound).Once()
			},
			expectedErr: entities.ErrRecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes := new(mockRecipeRepository)
			members := new(mockMembershipRepository)
			tt.setupMocks(recipes, members)

			short, err := app.NewMembershipUseCase(recipes, members).Add(context.Background(), tt.kind, 1, 4)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, short)
			} else {
				require.NoError(t, err)
				assert.Equal(t, &entities.RecipeShort{ID: 4, Name: "Плов", Image: "img", CookingTime: 40}, short)
			}
			recipes.AssertExpectations(t)
			members.AssertExpectations(t)
		})
	}
}

func TestMembershipRemove(t *testing.T) {
	recipes := new(mockRecipeRepository)
	members := new(mockMembershipRepository)
	recipes.On("FindByID", mock.Anything, int64(4)).Return(&entities.Recipe{ID: 4}, nil).Once()
	members.On("Remove", mock.Anything, entities.KindFavorite, int64(1), int64(4)).Return(entities.ErrNotPresent).Once()

	err := app.NewMembershipUseCase(recipes, members).Remove(context.Background(), entities.KindFavorite, 1, 4)

	require.ErrorIs(t, err, entities.ErrNotPresent)
}

func TestMembershipGet(t *testing.T) {
	recipe := &entities.Recipe{ID: 4, Name: "Плов"}

	tests := []struct {
		name        string
		exists      bool
		expectedErr error
	}{
		{name: "success - recipe in cart", exists: true},
		{name: "error - recipe not in cart", expectedErr: entities.ErrNotPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes := new(mockRecipeRepository)
			members := new(mockMembershipRepository)
			recipes.On("FindByID", mock.Anything, int64(4)).Return(recipe, nil).Once()
			members.On("Exists", mock.Anything, entities.KindShoppingCart, int64(1), int64(4)).Return(tt.exists, nil).Once()

			short, err := app.NewMembershipUseCase(recipes, members).Get(context.Background(), entities.KindShoppingCart, 1, 4)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(4), short.ID)
			}
		})
	}
}
