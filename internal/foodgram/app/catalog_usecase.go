package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/internal/foodgram/ports/cache"
	"foodgram/internal/foodgram/ports/repositories"
	"foodgram/pkg/logger"
)

// Ключи кеша справочников.
const (
	CacheKeyTags             = "catalog:tags"
	CacheKeyIngredientPrefix = "catalog:ingredients:"
)

const (
	msgCacheReadFailed  = "catalog cache read failed, falling back to database"
	msgCacheWriteFailed = "catalog cache write failed"

	errCtxListingTags         = "listing tags"
	errCtxGettingTag          = "getting tag"
	errCtxSearchingIngredient = "searching ingredients"
	errCtxGettingIngredient   = "getting ingredient"
)

// CatalogUseCaseImpl отдает теги и ингредиенты, кешируя списки в Redis.
type CatalogUseCaseImpl struct {
	tags        repositories.TagRepository
	ingredients repositories.IngredientRepository
	cache       cache.Cache
	ttl         time.Duration
}

// NewCatalogUseCase создает сценарии справочников.
func NewCatalogUseCase(
	tags repositories.TagRepository,
	ingredients repositories.IngredientRepository,
	c cache.Cache,
	ttl time.Duration,
) api.CatalogUseCase {
	return &CatalogUseCaseImpl{tags: tags, ingredients: ingredients, cache: c, ttl: ttl}
}

// ListTags возвращает все теги.
func (c *CatalogUseCaseImpl) ListTags(ctx context.Context) ([]entities.Tag, error) {
	return cached(ctx, c, CacheKeyTags, func() ([]entities.Tag, error) {
		tags, err := c.tags.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxListingTags, err)
		}
		return tags, nil
	})
}

// GetTag возвращает тег по id.
func (c *CatalogUseCaseImpl) GetTag(ctx context.Context, id int64) (*entities.Tag, error) {
	tag, err := c.tags.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGettingTag, err)
	}
	return tag, nil
}

// SearchIngredients ищет ингредиенты по префиксу названия без учета регистра.
func (c *CatalogUseCaseImpl) SearchIngredients(ctx context.Context, prefix string) ([]entities.Ingredient, error) {
	key := CacheKeyIngredientPrefix + strings.ToLower(prefix)
	return cached(ctx, c, key, func() ([]entities.Ingredient, error) {
		items, err := c.ingredients.Search(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxSearchingIngredient, err)
		}
		return items, nil
	})
}

// GetIngredient возвращает ингредиент по id.
func (c *CatalogUseCaseImpl) GetIngredient(ctx context.Context, id int64) (*entities.Ingredient, error) {
	item, err := c.ingredients.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGettingIngredient, err)
	}
	return item, nil
}

// cached читает значение из кеша или загружает его и кладет в кеш.
// Ошибки кеша не прерывают запрос.
func cached[T any](ctx context.Context, c *CatalogUseCaseImpl, key string, load func() ([]T, error)) ([]T, error) {
	log := logger.Log(ctx).With(zap.String("key", key))

	if raw, err := c.cache.Get(ctx, key); err != nil {
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
	} else if raw != nil {
		var items []T
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		log.Warn(ctx, msgCacheReadFailed, zap.String("reason", "corrupted entry"))
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(items)
	if err == nil {
		err = c.cache.Set(ctx, key, raw, c.ttl)
	}
	if err != nil {
		log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
	}

	return items, nil
}
