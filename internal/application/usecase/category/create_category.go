// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// CreateCategoryInput represents the input for category creation.
// A nil field means the key was absent or null.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Name   *string
	Icon   *string
	Color  *string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	icon := nullableString(valueobject.FromPtr(input.Icon))
	color := nullableString(valueobject.FromPtr(input.Color))

	v := domainerror.NewValidationError()
	validateName(v, input.Name)
	validateNullable(v, "icon", icon, MaxCategoryIconLength)
	validateNullable(v, "color", color, MaxCategoryColorLength)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	category := entity.NewCategory(input.UserID, *input.Name, icon.Ptr(), color.Ptr(), uc.clock.Now())

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
