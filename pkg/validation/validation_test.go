package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/pkg/validation"
)

type signUp struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150,username,notme"`
	FirstName string `json:"first_name" validate:"required,max=150,nodigits"`
	Amounts   []int  `json:"amounts" validate:"omitempty,dive,gte=1"`
}

func TestValidate(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name       string
		in         signUp
		wantFields []string
	}{
		{
			name: "valid",
			in:   signUp{Email: "chef@example.com", Username: "chef.1", FirstName: "Anna"},
		},
		{
			name:       "missing fields use json names",
			in:         signUp{},
			wantFields: []string{"email", "username", "first_name"},
		},
		{
			name:       "username me is forbidden",
			in:         signUp{Email: "chef@example.com", Username: "me", FirstName: "Anna"},
			wantFields: []string{"username"},
		},
		{
			name:       "username with spaces",
			in:         signUp{Email: "chef@example.com", Username: "big chef", FirstName: "Anna"},
			wantFields: []string{"username"},
		},
		{
			name:       "digits in name",
			in:         signUp{Email: "chef@example.com", Username: "chef", FirstName: "Anna2"},
			wantFields: []string{"first_name"},
		},
		{
			name:       "nested slice element",
			in:         signUp{Email: "chef@example.com", Username: "chef", FirstName: "Anna", Amounts: []int{1, 0}},
			wantFields: []string{"amounts[1]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var vErr *validation.Error
			require.ErrorAs(t, err, &vErr)
			for _, field := range tt.wantFields {
				assert.Contains(t, vErr.Fields, field)
			}
			assert.Len(t, vErr.Fields, len(tt.wantFields))
		})
	}
}
