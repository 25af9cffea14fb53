package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/internal/foodgram/domain/entities"
)

type staticLookup map[int64]struct{}

func (s staticLookup) ExistingIDs(_ context.Context, ids []int64) (map[int64]struct{}, error) {
	out := make(map[int64]struct{})
	for _, id := range ids {
		if _, ok := s[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

type failingLookup struct{}

func (failingLookup) ExistingIDs(context.Context, []int64) (map[int64]struct{}, error) {
	return nil, errors.New("db down")
}

func ids(values ...int64) map[int64]struct{} {
	out := make(map[int64]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func TestValidateComposition(t *testing.T) {
	knownIngredients := ids(1, 2, 3)
	knownTags := ids(10, 20)

	valid := entities.RecipeDraft{
		Name: "Борщ",
		Text: "Сварить",
		Ingredients: []entities.IngredientAmount{
			{IngredientID: 1, Amount: 100},
			{IngredientID: 2, Amount: 5},
		},
		TagIDs: []int64{10, 20},
	}

	tests := []struct {
		name     string
		mutate   func(d *entities.RecipeDraft)
		wantRule CompositionRule
	}{
		{
			name:   "accepted",
			mutate: func(*entities.RecipeDraft) {},
		},
		{
			name:     "name equals text",
			mutate:   func(d *entities.RecipeDraft) { d.Text = d.Name },
			wantRule: RuleNameEqualsText,
		},
		{
			name:     "no tags",
			mutate:   func(d *entities.RecipeDraft) { d.TagIDs = nil },
			wantRule: RuleNoTags,
		},
		{
			name:     "duplicate tag",
			mutate:   func(d *entities.RecipeDraft) { d.TagIDs = []int64{10, 10} },
			wantRule: RuleDuplicateTag,
		},
		{
			name:     "unknown tag",
			mutate:   func(d *entities.RecipeDraft) { d.TagIDs = []int64{10, 99} },
			wantRule: RuleUnknownTag,
		},
		{
			name:     "no ingredients",
			mutate:   func(d *entities.RecipeDraft) { d.Ingredients = nil },
			wantRule: RuleNoIngredients,
		},
		{
			name: "zero amount",
			mutate: func(d *entities.RecipeDraft) {
				d.Ingredients = []entities.IngredientAmount{{IngredientID: 1, Amount: 0}}
			},
			wantRule: RuleNonPositiveAmount,
		},
		{
			name: "amount above column range",
			mutate: func(d *entities.RecipeDraft) {
				d.Ingredients = []entities.IngredientAmount{{IngredientID: 1, Amount: 1<<32 + 5}}
			},
			wantRule: RuleAmountTooLarge,
		},
		{
			name: "amount just above int32",
			mutate: func(d *entities.RecipeDraft) {
				d.Ingredients = []entities.IngredientAmount{{IngredientID: 1, Amount: entities.MaxIngredientAmount + 1}}
			},
			wantRule: RuleAmountTooLarge,
		},
		{
			name: "maximum amount accepted",
			mutate: func(d *entities.RecipeDraft) {
				d.Ingredients = []entities.IngredientAmount{{IngredientID: 1, Amount: entities.MaxIngredientAmount}}
			},
		},
		{
			name: "unknown ingredient",
			mutate: func(d *entities.RecipeDraft) {
				d.Ingredients = []entities.IngredientAmount{{IngredientID: 42, Amount: 1}}
			},
			wantRule: RuleUnknownIngredient,
		},
		{
			name: "duplicate ingredient",
			mutate: func(d *entities.RecipeDraft) {
				d.Ingredients = []entities.IngredientAmount{
					{IngredientID: 1, Amount: 1},
					{IngredientID: 1, Amount: 2},
				}
			},
			wantRule: RuleDuplicateIngredient,
		},
		{
			name: "name equals text wins over empty tags",
			mutate: func(d *entities.RecipeDraft) {
				d.Text = d.Name
				d.TagIDs = nil
			},
			wantRule: RuleNameEqualsText,
		},
		{
			name: "duplicate tag wins over empty ingredients",
			mutate: func(d *entities.RecipeDraft) {
				d.TagIDs = []int64{20, 20}
				d.Ingredients = nil
			},
			wantRule: RuleDuplicateTag,
		},
		{
			name: "entries are checked in list order",
			mutate: func(d *entities.RecipeDraft) {
				d.Ingredients = []entities.IngredientAmount{
					{IngredientID: 99, Amount: 1},
					{IngredientID: 1, Amount: -1},
				}
			},
			wantRule: RuleUnknownIngredient,
		},
		{
			name: "amount is checked before existence within an entry",
			mutate: func(d *entities.RecipeDraft) {
				d.Ingredients = []entities.IngredientAmount{{IngredientID: 99, Amount: -1}}
			},
			wantRule: RuleNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			draft.Ingredients = append([]entities.IngredientAmount(nil), valid.Ingredients...)
			draft.TagIDs = append([]int64(nil), valid.TagIDs...)
			tt.mutate(&draft)

			comp, err := ValidateComposition(draft, knownIngredients, knownTags)

			if tt.wantRule == "" {
				require.NoError(t, err)
				assert.Equal(t, draft.Ingredients, comp.Ingredients)
				assert.Equal(t, draft.TagIDs, comp.TagIDs)
				return
			}

			require.Error(t, err)
			assert.Nil(t, comp)

			var compErr *CompositionError
			require.ErrorAs(t, err, &compErr)
			assert.Equal(t, tt.wantRule, compErr.Rule)
			assert.NotEmpty(t, compErr.Reason)
		})
	}
}

func TestCompositionErrorUnwrap(t *testing.T) {
	unknown := &CompositionError{Rule: RuleUnknownIngredient}
	assert.ErrorIs(t, unknown, entities.ErrIngredientNotFound)
	assert.NotErrorIs(t, unknown, entities.ErrInvalidComposition)

	dup := &CompositionError{Rule: RuleDuplicateTag}
	assert.ErrorIs(t, dup, entities.ErrInvalidComposition)
}

func TestCompositionValidator_Validate(t *testing.T) {
	draft := entities.RecipeDraft{
		Name:        "Омлет",
		Text:        "Взбить яйца",
		Ingredients: []entities.IngredientAmount{{IngredientID: 1, Amount: 3}},
		TagIDs:      []int64{1},
	}

	t.Run("uses lookups", func(t *testing.T) {
		v := NewCompositionValidator(staticLookup(ids(1)), staticLookup(ids(1)))
		comp, err := v.Validate(context.Background(), draft)
		require.NoError(t, err)
		assert.Len(t, comp.Ingredients, 1)
	})

	t.Run("unknown ingredient from lookup", func(t *testing.T) {
		v := NewCompositionValidator(staticLookup(ids()), staticLookup(ids(1)))
		_, err := v.Validate(context.Background(), draft)
		assert.ErrorIs(t, err, entities.ErrIngredientNotFound)
	})

	t.Run("lookup failure", func(t *testing.T) {
		v := NewCompositionValidator(failingLookup{}, staticLookup(ids(1)))
		_, err := v.Validate(context.Background(), draft)
		require.Error(t, err)
		var compErr *CompositionError
		assert.False(t, errors.As(err, &compErr))
	})
}
