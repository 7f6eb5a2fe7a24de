// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID, or domainerror.ErrCategoryNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories owned by userID in insertion order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// Update saves name, icon and color of an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete hard-deletes a category. Expenses referencing it are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
