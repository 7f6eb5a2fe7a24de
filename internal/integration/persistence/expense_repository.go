// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create inserts the expense after re-checking its category in the same transaction.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOwnedCategory(tx, expense); err != nil {
			return err
		}
		return tx.Create(model.ExpenseFromEntity(expense)).Error
	})
}

// FindByIDWithCategory retrieves an expense with its category by ID.
func (r *expenseRepository) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntityWithCategory(), nil
}

// FindByUserWithCategory retrieves all expenses of a user, newest first.
func (r *expenseRepository) FindByUserWithCategory(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategory, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.ExpenseWithCategory, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntityWithCategory()
	}
	return expenses, nil
}

// Update saves the mutable fields after re-checking the category in the same transaction.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOwnedCategory(tx, expense); err != nil {
			return err
		}

		result := tx.Model(&model.ExpenseModel{}).
			Where("id = ?", expense.ID).
			Updates(map[string]any{
				"amount":      expense.Amount,
				"description": expense.Description,
				"date":        entity.DateOnly(expense.Date),
				"category_id": expense.CategoryID,
				"updated_at":  expense.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrExpenseNotFound
		}
		return nil
	})
}

// Delete hard-deletes an expense.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id).Error
}

// lockOwnedCategory reads the expense's category inside tx and checks its owner.
// On Postgres the row is held FOR SHARE until the transaction ends.
func lockOwnedCategory(tx *gorm.DB, expense *entity.Expense) error {
	if expense.CategoryID == nil {
		return nil
	}

	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "SHARE"})
	}

	var categoryModel model.CategoryModel
	result := query.Where("id = ?", *expense.CategoryID).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrCategoryNotFound
		}
		return result.Error
	}

	if categoryModel.UserID != expense.UserID {
		return domainerror.ErrCategoryNotOwnedByUser
	}
	return nil
}
