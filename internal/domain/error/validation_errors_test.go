package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Message(t *testing.T) {
	tests := []struct {
		name     string
		build    func(*ValidationError)
		expected string
	}{
		{
			name:     "no messages",
			build:    func(*ValidationError) {},
			expected: "The given data was invalid.",
		},
		{
			name: "single message",
			build: func(v *ValidationError) {
				v.Add("name", "The name field is required.")
			},
			expected: "The name field is required.",
		},
		{
			name: "two messages",
			build: func(v *ValidationError) {
				v.Add("amount", "The amount field is required.")
				v.Add("date", "The date field is required.")
			},
			expected: "The amount field is required. (and 1 more error)",
		},
		{
			name: "three messages across fields",
			build: func(v *ValidationError) {
				v.Add("amount", "The amount field must be a number.")
				v.Add("amount", "The amount field must be at least 0.")
				v.Add("date", "The date field is required.")
			},
			expected: "The amount field must be a number. (and 2 more errors)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidationError()
			tt.build(v)
			assert.Equal(t, tt.expected, v.Error())
		})
	}
}

func TestValidationError_OrNil(t *testing.T) {
	v := NewValidationError()
	assert.NoError(t, v.OrNil())

	var nilErr *ValidationError
	assert.NoError(t, nilErr.OrNil())

	v.Add("email", "The email has already been taken.")
	err := v.OrNil()
	require.Error(t, err)

	var target *ValidationError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.True(t, target.Has("email"))
	assert.False(t, target.Has("name"))
}

func TestValidationError_Merge(t *testing.T) {
	a := NewValidationError()
	a.Add("name", "first")

	b := NewValidationError()
	b.Add("name", "second")
	b.Add("color", "third")

	a.Merge(b)
	a.Merge(nil)

	assert.Equal(t, []string{"first", "second"}, a.Fields["name"])
	assert.Equal(t, []string{"third"}, a.Fields["color"])
	assert.Equal(t, "first (and 2 more errors)", a.Error())
}

func TestDomainErrors_Unwrap(t *testing.T) {
	catErr := NewCategoryError(ErrCodeCategoryNotFound, "category not found", ErrCategoryNotFound)
	assert.ErrorIs(t, catErr, ErrCategoryNotFound)
	assert.Equal(t, "category not found: category not found", catErr.Error())

	expErr := NewExpenseError(ErrCodeInvalidCategory, "Invalid category", nil)
	assert.Equal(t, "Invalid category", expErr.Error())
	assert.Nil(t, errors.Unwrap(expErr))

	authErr := NewAuthError(ErrCodeRevokedToken, "Unauthenticated.", ErrRevokedToken)
	var target *AuthError
	require.ErrorAs(t, fmt.Errorf("resolve: %w", authErr), &target)
	assert.Equal(t, ErrCodeRevokedToken, target.Code)
}
