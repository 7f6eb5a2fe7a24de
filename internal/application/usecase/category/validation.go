// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 255
	// MaxCategoryIconLength is the maximum allowed length for category icons.
	MaxCategoryIconLength = 50
	// MaxCategoryColorLength is the maximum allowed length for category colors.
	MaxCategoryColorLength = 7
)

func validateName(v *domainerror.ValidationError, name *string) {
	if name == nil || strings.TrimSpace(*name) == "" {
		v.Add("name", "The name field is required.")
		return
	}
	validateLength(v, "name", *name, MaxCategoryNameLength)
}

func validateLength(v *domainerror.ValidationError, field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		v.Add(field, fmt.Sprintf("The %s field must not be greater than %d characters.", field, limit))
	}
}

// nullableString treats an empty string as null.
func nullableString(field valueobject.Optional[string]) valueobject.Optional[string] {
	if s, ok := field.Get(); ok && s == "" {
		return valueobject.Null[string]()
	}
	return field
}

func validateNullable(v *domainerror.ValidationError, field string, value valueobject.Optional[string], limit int) {
	if s, ok := value.Get(); ok {
		validateLength(v, field, s, limit)
	}
}

// findOwnedCategory loads a category and verifies it belongs to userID.
func findOwnedCategory(
	ctx context.Context,
	repo adapter.CategoryRepository,
	categoryID, userID uuid.UUID,
) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"Category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if !category.IsOwnedBy(userID) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"Unauthorized",
			domainerror.ErrNotAuthorizedToAccessCategory,
		)
	}

	return category, nil
}
