package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/internal/foodgram/ports/repositories"
	"foodgram/pkg/logger"
)

const (
	errCtxAddingMembership   = "adding recipe to set"
	errCtxRemovingMembership = "removing recipe from set"
	errCtxCheckingMembership = "checking recipe set"
)

// MembershipUseCaseImpl реализует api.MembershipUseCase.
type MembershipUseCaseImpl struct {
	recipes     repositories.RecipeRepository
	memberships repositories.MembershipRepository
}

// NewMembershipUseCase создает сценарии избранного и корзины.
func NewMembershipUseCase(recipes repositories.RecipeRepository, memberships repositories.MembershipRepository) api.MembershipUseCase {
	return &MembershipUseCaseImpl{recipes: recipes, memberships: memberships}
}

// Add добавляет рецепт в набор и возвращает его краткое представление.
func (m *MembershipUseCaseImpl) Add(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) (*entities.RecipeShort, error) {
	recipe, err := m.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxAddingMembership, err)
	}

	if err := m.memberships.Add(ctx, kind, userID, recipeID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxAddingMembership, err)
	}

	logger.Log(ctx).Debug(ctx, "recipe added to set",
		zap.String("kind", string(kind)), zap.Int64("user_id", userID), zap.Int64("recipe_id", recipeID))

	short := recipe.Short()
	return &short, nil
}

// Remove удаляет рецепт из набора.
func (m *MembershipUseCaseImpl) Remove(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) error {
	if _, err := m.recipes.FindByID(ctx, recipeID); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingMembership, err)
	}

	if err := m.memberships.Remove(ctx, kind, userID, recipeID); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingMembership, err)
	}
	return nil
}

// Get возвращает рецепт, если он есть в наборе пользователя.
func (m *MembershipUseCaseImpl) Get(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) (*entities.RecipeShort, error) {
	recipe, err := m.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCheckingMembership, err)
	}

	exists, err := m.memberships.Exists(ctx, kind, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCheckingMembership, err)
	}
	if !exists {
		return nil, entities.ErrNotPresent
	}

	short := recipe.Short()
	return &short, nil
}
