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

// UpdateCategoryInput represents a partial category update.
// Absent fields are left unchanged; icon and color may be cleared with null.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
	Name       valueobject.Optional[string]
	Icon       valueobject.Optional[string]
	Color      valueobject.Optional[string]
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := findOwnedCategory(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	icon := nullableString(input.Icon)
	color := nullableString(input.Color)

	v := domainerror.NewValidationError()
	if input.Name.IsPresent() {
		validateName(v, input.Name.Ptr())
	}
	validateNullable(v, "icon", icon, MaxCategoryIconLength)
	validateNullable(v, "color", color, MaxCategoryColorLength)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if name, ok := input.Name.Get(); ok {
		category.Name = name
	}
	if icon.IsPresent() {
		category.Icon = icon.Ptr()
	}
	if color.IsPresent() {
		category.Color = color.Ptr()
	}
	category.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
