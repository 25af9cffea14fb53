package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/api"
	"foodgram/internal/foodgram/ports/cache"
	"foodgram/internal/foodgram/ports/repositories"
	"foodgram/pkg/logger"
)

const (
	msgIngredientsImported = "ingredients imported"

	errCtxReadingCSV         = "reading ingredients csv"
	errCtxImportIngredients  = "importing ingredients"
	errCtxInvalidatingCache  = "invalidating ingredient cache"
	csvHeaderName            = "name"
	csvHeaderMeasurementUnit = "measurement_unit"
)

// ErrMalformedCSV возвращается для строк CSV с неверным числом колонок или пустыми полями.
var ErrMalformedCSV = errors.New("malformed ingredients csv")

// IngredientImportUseCaseImpl загружает справочник ингредиентов.
type IngredientImportUseCaseImpl struct {
	ingredients repositories.IngredientRepository
	cache       cache.Cache
}

// NewIngredientImportUseCase создает сценарий импорта ингредиентов.
func NewIngredientImportUseCase(ingredients repositories.IngredientRepository, c cache.Cache) api.IngredientImportUseCase {
	return &IngredientImportUseCaseImpl{ingredients: ingredients, cache: c}
}

// Import читает CSV "name,measurement_unit" (заголовок необязателен)
// и загружает строки одной транзакцией.
func (i *IngredientImportUseCaseImpl) Import(ctx context.Context, r io.Reader, clean bool) (int, error) {
	items, err := ParseIngredientsCSV(r)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", errCtxReadingCSV, err)
	}

	n, err := i.ingredients.Import(ctx, items, clean)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", errCtxImportIngredients, err)
	}

	if err := i.cache.DeletePrefix(ctx, CacheKeyIngredientPrefix); err != nil {
		return n, fmt.Errorf("%s: %w", errCtxInvalidatingCache, err)
	}

	logger.Log(ctx).Info(ctx, msgIngredientsImported, zap.Int("count", n), zap.Bool("clean", clean))
	return n, nil
}

// ParseIngredientsCSV разбирает CSV с двумя колонками.
func ParseIngredientsCSV(r io.Reader) ([]entities.Ingredient, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	items := make([]entities.Ingredient, 0)
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
		}

		name := strings.TrimSpace(record[0])
		unit := strings.TrimSpace(record[1])
		if line == 1 && strings.EqualFold(name, csvHeaderName) && strings.EqualFold(unit, csvHeaderMeasurementUnit) {
			continue
		}
		if name == "" || unit == "" {
			return nil, fmt.Errorf("%w: empty field on line %d", ErrMalformedCSV, line)
		}

		items = append(items, entities.Ingredient{Name: name, MeasurementUnit: unit})
	}

	return items, nil
}
