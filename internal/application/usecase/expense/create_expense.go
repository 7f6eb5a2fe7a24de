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
)

// CreateExpenseInput represents the input for expense creation.
// A nil field means the key was absent or null.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
	CategoryID  *uuid.UUID
	// TypeErrors holds fields the request could not be decoded into.
	TypeErrors *domainerror.ValidationError
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.ExpenseWithCategory
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the expense creation.
// A category owned by someone else fails with Invalid category before any other field is looked at.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	v := domainerror.NewValidationError()

	category, err := checkCategory(ctx, uc.categoryRepo, v, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}
	if input.TypeErrors.HasErrors() {
		v.Merge(input.TypeErrors)
		return nil, v
	}

	description := nullIfEmpty(input.Description)
	validateAmount(v, input.Amount)
	validateDescription(v, description)
	validateDate(v, input.Date)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		*input.Amount,
		description,
		*input.Date,
		input.CategoryID,
		uc.clock.Now(),
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, mapWriteError(err, "create")
	}

	return &CreateExpenseOutput{
		Expense: &entity.ExpenseWithCategory{
			Expense:  expense,
			Category: category,
		},
	}, nil
}
