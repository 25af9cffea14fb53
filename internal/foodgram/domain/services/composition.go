package services

import (
	"context"
	"fmt"

	"foodgram/internal/foodgram/domain/entities"
)

// CompositionRule идентифицирует правило проверки состава рецепта.
type CompositionRule string

// Правила проверяются в порядке объявления, первая ошибка прерывает проверку.
const (
	RuleNameEqualsText      CompositionRule = "name_equals_text"
	RuleNoTags              CompositionRule = "no_tags"
	RuleDuplicateTag        CompositionRule = "duplicate_tag"
	RuleUnknownTag          CompositionRule = "unknown_tag"
	RuleNoIngredients       CompositionRule = "no_ingredients"
	RuleNonPositiveAmount   CompositionRule = "non_positive_amount"
	RuleAmountTooLarge      CompositionRule = "amount_too_large"
	RuleUnknownIngredient   CompositionRule = "unknown_ingredient"
	RuleDuplicateIngredient CompositionRule = "duplicate_ingredient"
)

// CompositionError описывает нарушенное правило состава рецепта.
type CompositionError struct {
	Rule   CompositionRule
	Field  string
	Reason string
}

func (e *CompositionError) Error() string {
	return e.Reason
}

// Unwrap позволяет сопоставлять ошибку через errors.Is.
// Неизвестный ингредиент считается ошибкой "не найдено".
func (e *CompositionError) Unwrap() error {
	if e.Rule == RuleUnknownIngredient {
		return entities.ErrIngredientNotFound
	}
	return entities.ErrInvalidComposition
}

// IngredientLookup возвращает подмножество переданных id, существующих в каталоге.
type IngredientLookup interface {
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)
}

// TagLookup возвращает подмножество переданных id тегов, существующих в каталоге.
type TagLookup interface {
	ExistingIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error)
}

// CompositionValidator проверяет предлагаемый состав рецепта перед сохранением.
type CompositionValidator struct {
	ingredients IngredientLookup
	tags        TagLookup
}

// NewCompositionValidator создает валидатор состава рецепта.
func NewCompositionValidator(ingredients IngredientLookup, tags TagLookup) *CompositionValidator {
	return &CompositionValidator{ingredients: ingredients, tags: tags}
}

// Validate загружает известные id тегов и ингредиентов и проверяет черновик.
func (v *CompositionValidator) Validate(ctx context.Context, draft entities.RecipeDraft) (*entities.Composition, error) {
	knownTags, err := v.tags.ExistingIDs(ctx, draft.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	ingredientIDs := make([]int64, 0, len(draft.Ingredients))
	for _, item := range draft.Ingredients {
		ingredientIDs = append(ingredientIDs, item.IngredientID)
	}

	knownIngredients, err := v.ingredients.ExistingIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}

	return ValidateComposition(draft, knownIngredients, knownTags)
}

// ValidateComposition применяет правила состава к черновику рецепта.
// knownIngredients и knownTags содержат id, существующие в каталоге.
func ValidateComposition(
	draft entities.RecipeDraft,
	knownIngredients map[int64]struct{},
	knownTags map[int64]struct{},
) (*entities.Composition, error) {
	if draft.Name == draft.Text {
		return nil, &CompositionError{
			Rule:   RuleNameEqualsText,
			Field:  "name",
			Reason: "The recipe name must not match its description.",
		}
	}

	if len(draft.TagIDs) == 0 {
		return nil, &CompositionError{
			Rule:   RuleNoTags,
			Field:  "tags",
			Reason: "At least one tag is required.",
		}
	}

	seenTags := make(map[int64]struct{}, len(draft.TagIDs))
	for _, id := range draft.TagIDs {
		if _, ok := seenTags[id]; ok {
			return nil, &CompositionError{
				Rule:   RuleDuplicateTag,
				Field:  "tags",
				Reason: "Tags must not repeat.",
			}
		}
		seenTags[id] = struct{}{}
	}

	for _, id := range draft.TagIDs {
		if _, ok := knownTags[id]; !ok {
			return nil, &CompositionError{
				Rule:   RuleUnknownTag,
				Field:  "tags",
				Reason: fmt.Sprintf("Tag with id=%d does not exist.", id),
			}
		}
	}

	if len(draft.Ingredients) == 0 {
		return nil, &CompositionError{
			Rule:   RuleNoIngredients,
			Field:  "ingredients",
			Reason: "At least one ingredient is required.",
		}
	}

	seenIngredients := make(map[int64]struct{}, len(draft.Ingredients))
	for _, item := range draft.Ingredients {
		if item.Amount <= 0 {
			return nil, &CompositionError{
				Rule:   RuleNonPositiveAmount,
				Field:  "ingredients",
				Reason: "Ingredient amount must be greater than zero.",
			}
		}
		if item.Amount > entities.MaxIngredientAmount {
			return nil, &CompositionError{
				Rule:   RuleAmountTooLarge,
				Field:  "ingredients",
				Reason: fmt.Sprintf("Ingredient amount must not exceed %d.", entities.MaxIngredientAmount),
			}
		}
		if _, ok := knownIngredients[item.IngredientID]; !ok {
			return nil, &CompositionError{
				Rule:   RuleUnknownIngredient,
				Field:  "ingredients",
				Reason: fmt.Sprintf("Ingredient with id=%d does not exist.", item.IngredientID),
			}
		}
		if _, ok := seenIngredients[item.IngredientID]; ok {
			return nil, &CompositionError{
				Rule:   RuleDuplicateIngredient,
				Field:  "ingredients",
				Reason: "Ingredients must not repeat.",
			}
		}
		seenIngredients[item.IngredientID] = struct{}{}
	}

	comp := &entities.Composition{
		Ingredients: make([]entities.IngredientAmount, len(draft.Ingredients)),
		TagIDs:      make([]int64, len(draft.TagIDs)),
	}
	copy(comp.Ingredients, draft.Ingredients)
	copy(comp.TagIDs, draft.TagIDs)

	return comp, nil
}
