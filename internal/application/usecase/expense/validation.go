// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for expense descriptions.
	MaxDescriptionLength = 255
)

// MaxAmount is the largest value the amount column (decimal(10,2)) can store.
var MaxAmount = decimal.RequireFromString("99999999.99")

func validateAmount(v *domainerror.ValidationError, amount *decimal.Decimal) {
	if amount == nil {
		v.Add("amount", "The amount field is required.")
		return
	}
	if amount.IsNegative() {
		v.Add("amount", "The amount field must be at least 0.")
		return
	}
	if amount.Round(entity.AmountScale).GreaterThan(MaxAmount) {
		v.Add("amount", "The amount field must not be greater than "+MaxAmount.StringFixed(entity.AmountScale)+".")
	}
}

func validateDate(v *domainerror.ValidationError, date *time.Time) {
	if date == nil {
		v.Add("date", "The date field is required.")
	}
}

func validateDescription(v *domainerror.ValidationError, description *string) {
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		v.Add("description", fmt.Sprintf("The description field must not be greater than %d characters.", MaxDescriptionLength))
	}
}

// checkCategory verifies that categoryID references an existing category owned by userID.
// A missing row is reported on v; a foreign owner is returned as an error.
func checkCategory(
	ctx context.Context,
	repo adapter.CategoryRepository,
	v *domainerror.ValidationError,
	categoryID *uuid.UUID,
	userID uuid.UUID,
) (*entity.Category, error) {
	if categoryID == nil {
		return nil, nil
	}

	category, err := repo.FindByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			v.Add("category_id", "The selected category id is invalid.")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if !category.IsOwnedBy(userID) {
		return nil, invalidCategory(domainerror.ErrCategoryNotOwnedByUser)
	}

	return category, nil
}

// mapWriteError translates the repository's in-transaction category re-check.
func mapWriteError(err error, action string) error {
	switch {
	case errors.Is(err, domainerror.ErrCategoryNotOwnedByUser):
		return invalidCategory(err)
	case errors.Is(err, domainerror.ErrCategoryNotFound):
		v := domainerror.NewValidationError()
		v.Add("category_id", "The selected category id is invalid.")
		return v
	default:
		return fmt.Errorf("failed to %s expense: %w", action, err)
	}
}

func invalidCategory(err error) error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeInvalidCategory,
		"Invalid category",
		err,
	)
}

// findOwnedExpense loads an expense with its category and verifies it belongs to userID.
func findOwnedExpense(
	ctx context.Context,
	repo adapter.ExpenseRepository,
	expenseID, userID uuid.UUID,
) (*entity.ExpenseWithCategory, error) {
	found, err := repo.FindByIDWithCategory(ctx, expenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"Expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if !found.Expense.IsOwnedBy(userID) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"Unauthorized",
			domainerror.ErrNotAuthorizedToAccessExpense,
		)
	}

	return found, nil
}

func nullIfEmpty(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
