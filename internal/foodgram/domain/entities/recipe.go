package entities

import (
	"math"
	"time"
)

// Верхние границы числовых полей рецепта: столбцы integer в PostgreSQL.
const (
	MaxIngredientAmount = math.MaxInt32
	MaxCookingTime      = math.MaxInt32
)

// Recipe - строка таблицы рецептов.
type Recipe struct {
	ID          int64
	AuthorID    int64
	Name        string
	Text        string
	Image       string
	CookingTime int
	PubDate     time.Time
}

// RecipeShort - краткое представление рецепта для избранного, корзины и подписок.
type RecipeShort struct {
	ID          int64
	Name        string
	Image       string
	CookingTime int
}

// Short возвращает краткое представление рецепта.
func (r *Recipe) Short() RecipeShort {
	return RecipeShort{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

// IngredientAmount - пара (ингредиент, количество) во входящих данных рецепта.
type IngredientAmount struct {
	IngredientID int64
	Amount       int
}

// RecipeIngredient - ингредиент рецепта вместе с количеством.
type RecipeIngredient struct {
	Ingredient
	Amount int
}

// RecipeDraft - предлагаемый состав рецепта до валидации.
type RecipeDraft struct {
	Name        string
	Text        string
	Ingredients []IngredientAmount
	TagIDs      []int64
}

// Composition - принятый состав рецепта: набор тегов и ингредиентов с количеством.
type Composition struct {
	Ingredients []IngredientAmount
	TagIDs      []int64
}

// RecipeDetails - рецепт с автором, тегами, ингредиентами и флагами для зрителя.
type RecipeDetails struct {
	Recipe
	Author           UserProfile
	Tags             []Tag
	Ingredients      []RecipeIngredient
	IsFavorited      bool
	IsInShoppingCart bool
}

// RecipeFilter задает выборку списка рецептов.
// Нулевые значения идентификаторов означают отсутствие фильтра.
type RecipeFilter struct {
	ViewerID    int64
	AuthorID    int64
	TagSlugs    []string
	FavoritedBy int64
	InCartOf    int64
	Limit       int
	Offset      int
}
