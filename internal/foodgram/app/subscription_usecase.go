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
	errCtxSubscribing         = "subscribing"
	errCtxUnsubscribing       = "unsubscribing"
	errCtxListingSubscription = "listing subscriptions"
	errCtxLoadingPreviews     = "loading recipe previews"
)

// SubscriptionUseCaseImpl реализует api.SubscriptionUseCase.
type SubscriptionUseCaseImpl struct {
	users         repositories.UserRepository
	subscriptions repositories.SubscriptionRepository
	recipes       repositories.RecipeRepository
}

// NewSubscriptionUseCase создает сценарии подписок.
func NewSubscriptionUseCase(
	users repositories.UserRepository,
	subscriptions repositories.SubscriptionRepository,
	recipes repositories.RecipeRepository,
) api.SubscriptionUseCase {
	return &SubscriptionUseCaseImpl{users: users, subscriptions: subscriptions, recipes: recipes}
}

// Subscribe подписывает userID на authorID и возвращает представление подписки.
// recipesLimit < 0 означает отсутствие ограничения на число превью.
func (s *SubscriptionUseCaseImpl) Subscribe(ctx context.Context, userID, authorID int64, recipesLimit int) (*entities.Subscription, error) {
	if userID == authorID {
		return nil, entities.ErrSelfSubscription
	}

	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSubscribing, err)
	}

	if err := s.subscriptions.Add(ctx, userID, authorID); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSubscribing, err)
	}

	author, err := s.users.GetProfile(ctx, authorID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxSubscribing, err)
	}

	views, err := s.withRecipes(ctx, []entities.UserProfile{*author}, recipesLimit)
	if err != nil {
		return nil, err
	}

	logger.Log(ctx).Info(ctx, "subscribed to author",
		zap.Int64("user_id", userID), zap.Int64("author_id", authorID))
	return &views[0], nil
}

// Unsubscribe отменяет подписку.
func (s *SubscriptionUseCaseImpl) Unsubscribe(ctx context.Context, userID, authorID int64) error {
	if userID == authorID {
		return entities.ErrSelfSubscription
	}

	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		return fmt.Errorf("%s: %w", errCtxUnsubscribing, err)
	}

	if err := s.subscriptions.Remove(ctx, userID, authorID); err != nil {
		return fmt.Errorf("%s: %w", errCtxUnsubscribing, err)
	}
	return nil
}

// List возвращает страницу подписок пользователя.
func (s *SubscriptionUseCaseImpl) List(ctx context.Context, userID int64, page entities.PageRequest, recipesLimit int) (*entities.Page[entities.Subscription], error) {
	authors, total, err := s.subscriptions.ListAuthors(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingSubscription, err)
	}

	views, err := s.withRecipes(ctx, authors, recipesLimit)
	if err != nil {
		return nil, err
	}

	return &entities.Page[entities.Subscription]{Items: views, Total: total}, nil
}

func (s *SubscriptionUseCaseImpl) withRecipes(ctx context.Context, authors []entities.UserProfile, recipesLimit int) ([]entities.Subscription, error) {
	ids := make([]int64, len(authors))
	for i := range authors {
		ids[i] = authors[i].ID
	}

	previews, counts, err := s.recipes.ListShortByAuthors(ctx, ids, recipesLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingPreviews, err)
	}

	views := make([]entities.Subscription, len(authors))
	for i, author := range authors {
		recipes := previews[author.ID]
		if recipes == nil {
			recipes = []entities.RecipeShort{}
		}
		views[i] = entities.Subscription{
			Author:       author,
			Recipes:      recipes,
			RecipesCount: counts[author.ID],
		}
	}
	return views, nil
}
