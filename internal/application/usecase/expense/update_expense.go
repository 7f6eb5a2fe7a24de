// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// UpdateExpenseInput represents a partial expense update.
// Absent fields are left unchanged; description and category_id may be cleared with null.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Amount      valueobject.Optional[decimal.Decimal]
	Description valueobject.Optional[string]
	Date        valueobject.Optional[time.Time]
	CategoryID  valueobject.Optional[uuid.UUID]
	// TypeErrors holds fields the request could not be decoded into.
	TypeErrors *domainerror.ValidationError
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.ExpenseWithCategory
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	found, err := findOwnedExpense(ctx, uc.expenseRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}
	expense := found.Expense
	category := found.Category

	v := domainerror.NewValidationError()

	if input.CategoryID.IsPresent() {
		category, err = checkCategory(ctx, uc.categoryRepo, v, input.CategoryID.Ptr(), input.UserID)
		if err != nil {
			return nil, err
		}
	}
	if input.TypeErrors.HasErrors() {
		v.Merge(input.TypeErrors)
		return nil, v
	}

	description := input.Description
	if description.IsPresent() {
		description = valueobject.FromPtr(nullIfEmpty(description.Ptr()))
	}

	if input.Amount.IsPresent() {
		validateAmount(v, input.Amount.Ptr())
	}
	validateDescription(v, description.Ptr())
	if input.Date.IsPresent() {
		validateDate(v, input.Date.Ptr())
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if amount, ok := input.Amount.Get(); ok {
		expense.Amount = amount.Round(entity.AmountScale)
	}
	if description.IsPresent() {
		expense.Description = description.Ptr()
	}
	if date, ok := input.Date.Get(); ok {
		expense.Date = entity.DateOnly(date)
	}
	if input.CategoryID.IsPresent() {
		expense.CategoryID = input.CategoryID.Ptr()
	}
	expense.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, mapWriteError(err, "update")
	}

	return &UpdateExpenseOutput{
		Expense: &entity.ExpenseWithCategory{
			Expense:  expense,
			Category: category,
		},
	}, nil
}
