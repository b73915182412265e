package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `json:"email" validate:"required,emailshape"`
	Password string `json:"password" validate:"required,min=6"`
}

type nested struct {
	Timeout int `mapstructure:"timeout" validate:"min=1"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    interface{}
		wantTags []FieldError
	}{
		{
			name:  "valid",
			input: credentials{Email: "user@example.com", Password: "secret1"},
		},
		{
			name:  "bad email shape",
			input: credentials{Email: "user@example", Password: "secret1"},
			wantTags: []FieldError{
				{Field: "email", Tag: "emailshape"},
			},
		},
		{
			name:  "short password",
			input: credentials{Email: "user@example.com", Password: "abc"},
			wantTags: []FieldError{
				{Field: "password", Tag: "min", Param: "6"},
			},
		},
		{
			name:  "everything missing",
			input: credentials{},
			wantTags: []FieldError{
				{Field: "email", Tag: "required"},
				{Field: "password", Tag: "required"},
			},
		},
		{
			name:  "field without json tag keeps its go name",
			input: nested{},
			wantTags: []FieldError{
				{Field: "Timeout", Tag: "min", Param: "1"},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.input)
			if tt.wantTags == nil {
				require.NoError(t, err)
				return
			}

			var errs Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, Errors(tt.wantTags), errs)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateStruct_EmailShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"user@example", false},
		{"@example.com", false},
		{"user example@example.com", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(credentials{Email: tt.email, Password: "secret1"})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var errs Errors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, 1)
			assert.Equal(t, FieldError{Field: "email", Tag: "emailshape"}, errs[0])
		})
	}
}

func TestValidateStruct_NotBlank(t *testing.T) {
	t.Parallel()

	type card struct {
		Word string `json:"word" validate:"required,notblank"`
	}

	require.NoError(t, ValidateStruct(card{Word: "ephemeral"}))

	var errs Errors
	require.ErrorAs(t, ValidateStruct(card{Word: " \t "}), &errs)
	assert.Equal(t, Errors{{Field: "word", Tag: "notblank"}}, errs)
}
