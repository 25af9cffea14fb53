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

const errCtxBuildingShoppingList = "building shopping list"

// ShoppingListBuilder собирает агрегированный список покупок.
type ShoppingListBuilder interface {
	Build(ctx context.Context, userID int64) ([]entities.ShoppingListItem, error)
}

// ShoppingListUseCaseImpl реализует api.ShoppingListUseCase.
type ShoppingListUseCaseImpl struct {
	users   repositories.UserRepository
	builder ShoppingListBuilder
}

// NewShoppingListUseCase создает сценарий выгрузки списка покупок.
func NewShoppingListUseCase(users repositories.UserRepository, builder ShoppingListBuilder) api.ShoppingListUseCase {
	return &ShoppingListUseCaseImpl{users: users, builder: builder}
}

// Download возвращает имя файла и текст списка покупок пользователя.
func (s *ShoppingListUseCaseImpl) Download(ctx context.Context, userID int64) (string, string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", errCtxBuildingShoppingList, err)
	}

	items, err := s.builder.Build(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", errCtxBuildingShoppingList, err)
	}

	logger.Log(ctx).Info(ctx, "shopping list generated",
		zap.Int64("user_id", userID), zap.Int("lines", len(items)))

	return services.ShoppingListFilename(user.Username), services.RenderShoppingList(items), nil
}
