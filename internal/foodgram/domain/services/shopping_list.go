package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"foodgram/internal/foodgram/domain/entities"
)

// ShoppingListTitle - первая строка текстового списка покупок.
const ShoppingListTitle = "Shopping List"

// CartSource отдает строки корзина → рецепт → ингредиент для пользователя.
type CartSource interface {
	HasAny(ctx context.Context, kind entities.MembershipKind, userID int64) (bool, error)
	CartIngredientRows(ctx context.Context, userID int64) ([]entities.CartIngredientRow, error)
}

// ShoppingListAggregator собирает список покупок по корзине пользователя.
type ShoppingListAggregator struct {
	source CartSource
}

// NewShoppingListAggregator создает агрегатор списка покупок.
func NewShoppingListAggregator(source CartSource) *ShoppingListAggregator {
	return &ShoppingListAggregator{source: source}
}

// Build возвращает агрегированные строки списка покупок.
// Пустая корзина возвращает entities.ErrEmptyShoppingCart.
func (a *ShoppingListAggregator) Build(ctx context.Context, userID int64) ([]entities.ShoppingListItem, error) {
	hasAny, err := a.source.HasAny(ctx, entities.KindShoppingCart, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check shopping cart: %w", err)
	}
	if !hasAny {
		return nil, entities.ErrEmptyShoppingCart
	}

	rows, err := a.source.CartIngredientRows(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shopping cart rows: %w", err)
	}

	return AggregateShoppingList(rows), nil
}

type shoppingListKey struct {
	name string
	unit string
}

// AggregateShoppingList группирует строки по (название, единица), суммирует
// количества и сортирует по названию, затем по единице.
func AggregateShoppingList(rows []entities.CartIngredientRow) []entities.ShoppingListItem {
	totals := make(map[shoppingListKey]int, len(rows))
	for _, row := range rows {
		totals[shoppingListKey{name: row.Name, unit: row.MeasurementUnit}] += row.Amount
	}

	items := make([]entities.ShoppingListItem, 0, len(totals))
	for key, amount := range totals {
		items = append(items, entities.ShoppingListItem{
			Name:            key.name,
			MeasurementUnit: key.unit,
			Amount:          amount,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})

	return items
}

// RenderShoppingList форматирует список покупок как текстовый файл.
func RenderShoppingList(items []entities.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString(ShoppingListTitle)
	b.WriteString("\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s: %d %s\n", item.Name, item.Amount, item.MeasurementUnit)
	}
	return b.String()
}

// ShoppingListFilename возвращает имя файла списка покупок пользователя.
func ShoppingListFilename(username string) string {
	return username + "_shopping_list.txt"
}
