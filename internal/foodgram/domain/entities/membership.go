package entities

// MembershipKind - тип набора (пользователь, рецепт).
type MembershipKind string

// Поддерживаемые наборы.
const (
	KindFavorite     MembershipKind = "favorite"
	KindShoppingCart MembershipKind = "shopping_cart"
)

// Valid сообщает, известен ли тип набора.
func (k MembershipKind) Valid() bool {
	return k == KindFavorite || k == KindShoppingCart
}

// CartIngredientRow - строка соединения корзина → рецепт → ингредиент рецепта.
type CartIngredientRow struct {
	RecipeID        int64
	IngredientID    int64
	Name            string
	MeasurementUnit string
	Amount          int
}

// ShoppingListItem - суммарное количество ингредиента в списке покупок.
type ShoppingListItem struct {
	Name            string
	MeasurementUnit string
	Amount          int
}
