// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
//
// Create and Update re-check the referenced category inside the same store
// transaction as the write. They return domainerror.ErrCategoryNotFound when the
// category row is gone and domainerror.ErrCategoryNotOwnedByUser when it belongs
// to a different user than the expense.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByIDWithCategory retrieves an expense and its category, or domainerror.ErrExpenseNotFound.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error)

	// FindByUserWithCategory retrieves all expenses of userID with their categories,
	// newest date first and, within a date, newest created first.
	FindByUserWithCategory(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategory, error)

	// Update saves amount, description, date and category of an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete hard-deletes an expense.
	Delete(ctx context.Context, id uuid.UUID) error
}
