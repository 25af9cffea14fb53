package dto

import (
	"foodgram/internal/foodgram/domain/entities"
	"foodgram/internal/foodgram/ports/api"
)

// IngredientAmountRequest - ингредиент рецепта во входящем запросе.
type IngredientAmountRequest struct {
	ID     int64 `json:"id" validate:"required"`
	Amount int   `json:"amount" validate:"lte=2147483647"`
}

// CreateRecipeRequest содержит данные нового рецепта.
// Состав (теги и ингредиенты) проверяется отдельно, здесь только обязательность.
type CreateRecipeRequest struct {
	Ingredients []IngredientAmountRequest `json:"ingredients" validate:"required,dive"`
	Tags        []int64                   `json:"tags" validate:"required"`
	Image       string                    `json:"image" validate:"required"`
	Name        string                    `json:"name" validate:"required,max=200"`
	Text        string                    `json:"text" validate:"required"`
	CookingTime int                       `json:"cooking_time" validate:"required,gte=1,lte=2147483647"`
}

// UpdateRecipeRequest содержит изменения рецепта. Не переданные поля не меняются,
// теги и ингредиенты обязательны и заменяют прежние целиком.
type UpdateRecipeRequest struct {
	Ingredients []IngredientAmountRequest `json:"ingredients" validate:"required,dive"`
	Tags        []int64                   `json:"tags" validate:"required"`
	Image       *string                   `json:"image" validate:"omitnil,min=1"`
	Name        *string                   `json:"name" validate:"omitnil,min=1,max=200"`
	Text        *string                   `json:"text" validate:"omitnil,min=1"`
	CookingTime *int                      `json:"cooking_time" validate:"omitnil,gte=1,lte=2147483647"`
}

// TagResponse - тег.
type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

// IngredientResponse - ингредиент справочника.
type IngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// RecipeIngredientResponse - ингредиент рецепта с количеством.
type RecipeIngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeResponse - полное представление рецепта.
type RecipeResponse struct {
	ID               int64                      `json:"id"`
	Tags             []TagResponse              `json:"tags"`
	Author           ProfileResponse            `json:"author"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int                        `json:"cooking_time"`
}

// RecipeShortResponse - краткое представление рецепта.
type RecipeShortResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// ToRecipeInput преобразует запрос создания во входные данные сценария.
func (r *CreateRecipeRequest) ToRecipeInput() api.RecipeInput {
	return api.RecipeInput{
		Name:        r.Name,
		Text:        r.Text,
		Image:       r.Image,
		CookingTime: r.CookingTime,
		Ingredients: toIngredientAmounts(r.Ingredients),
		TagIDs:      r.Tags,
	}
}

// ToRecipePatch преобразует запрос изменения во входные данные сценария.
func (r *UpdateRecipeRequest) ToRecipePatch() api.RecipePatch {
	return api.RecipePatch{
		Name:        r.Name,
		Text:        r.Text,
		Image:       r.Image,
		CookingTime: r.CookingTime,
		Ingredients: toIngredientAmounts(r.Ingredients),
		TagIDs:      r.Tags,
	}
}

func toIngredientAmounts(items []IngredientAmountRequest) []entities.IngredientAmount {
	out := make([]entities.IngredientAmount, len(items))
	for i, item := range items {
		out[i] = entities.IngredientAmount{IngredientID: item.ID, Amount: item.Amount}
	}
	return out
}

// ToTagResponse преобразует тег.
func ToTagResponse(t *entities.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

// ToTagResponses преобразует список тегов.
func ToTagResponses(items []entities.Tag) []TagResponse {
	out := make([]TagResponse, len(items))
	for i := range items {
		out[i] = ToTagResponse(&items[i])
	}
	return out
}

// ToIngredientResponse преобразует ингредиент.
func ToIngredientResponse(in *entities.Ingredient) IngredientResponse {
	return IngredientResponse{ID: in.ID, Name: in.Name, MeasurementUnit: in.MeasurementUnit}
}

// ToIngredientResponses преобразует список ингредиентов.
func ToIngredientResponses(items []entities.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, len(items))
	for i := range items {
		out[i] = ToIngredientResponse(&items[i])
	}
	return out
}

// ToRecipeResponse преобразует рецепт в полное представление.
func ToRecipeResponse(d *entities.RecipeDetails) RecipeResponse {
	ingredients := make([]RecipeIngredientResponse, len(d.Ingredients))
	for i, ri := range d.Ingredients {
		ingredients[i] = RecipeIngredientResponse{
			ID:              ri.ID,
			Name:            ri.Name,
			MeasurementUnit: ri.MeasurementUnit,
			Amount:          ri.Amount,
		}
	}

	return RecipeResponse{
		ID:               d.ID,
		Tags:             ToTagResponses(d.Tags),
		Author:           ToProfileResponse(&d.Author),
		Ingredients:      ingredients,
		IsFavorited:      d.IsFavorited,
		IsInShoppingCart: d.IsInShoppingCart,
		Name:             d.Name,
		Image:            d.Image,
		Text:             d.Text,
		CookingTime:      d.CookingTime,
	}
}

// ToRecipeResponses преобразует список рецептов.
func ToRecipeResponses(items []entities.RecipeDetails) []RecipeResponse {
	out := make([]RecipeResponse, len(items))
	for i := range items {
		out[i] = ToRecipeResponse(&items[i])
	}
	return out
}

// ToRecipeShortResponse преобразует краткое представление рецепта.
func ToRecipeShortResponse(r *entities.RecipeShort) RecipeShortResponse {
	return RecipeShortResponse{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

// ToRecipeShortResponses преобразует список кратких представлений.
func ToRecipeShortResponses(items []entities.RecipeShort) []RecipeShortResponse {
	out := make([]RecipeShortResponse, len(items))
	for i := range items {
		out[i] = ToRecipeShortResponse(&items[i])
	}
	return out
}
