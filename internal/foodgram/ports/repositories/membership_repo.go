package repositories

import (
	"context"

	"foodgram/internal/foodgram/domain/entities"
)

// MembershipRepository хранит избранное и корзину покупок.
type MembershipRepository interface {
	Add(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) error

	Remove(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) error

	Exists(ctx context.Context, kind entities.MembershipKind, userID, recipeID int64) (bool, error)

	HasAny(ctx context.Context, kind entities.MembershipKind, userID int64) (bool, error)

	CartIngredientRows(ctx context.Context, userID int64) ([]entities.CartIngredientRow, error)
}
