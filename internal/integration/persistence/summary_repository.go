// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// summaryRepository implements the adapter.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB) adapter.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// SumAmounts returns the sum of a user's expense amounts, optionally from since onwards.
func (r *summaryRepository) SumAmounts(ctx context.Context, userID uuid.UUID, since *time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("date >= ?", entity.DateOnly(*since))
	}

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return result.Total.Round(entity.AmountScale), nil
}

// TotalsByCategory returns per-category sums. Expenses without a category are excluded;
// a category_id whose row has been deleted still forms a group with no category attached.
func (r *summaryRepository) TotalsByCategory(ctx context.Context, userID uuid.UUID) ([]entity.CategoryTotal, error) {
	var results []struct {
		CategoryID    uuid.UUID       `gorm:"column:category_id"`
		CategoryOwner *uuid.UUID      `gorm:"column:category_owner"`
		CategoryName  *string         `gorm:"column:category_name"`
		CategoryIcon  *string         `gorm:"column:category_icon"`
		CategoryColor *string         `gorm:"column:category_color"`
		Total         decimal.Decimal `gorm:"column:total"`
	}

	query := `
		SELECT
			e.category_id,
			c.user_id as category_owner,
			c.name as category_name,
			c.icon as category_icon,
			c.color as category_color,
			SUM(e.amount) as total
		FROM expenses e
		LEFT JOIN categories c ON e.category_id = c.id
		WHERE e.user_id = ?
			AND e.category_id IS NOT NULL
		GROUP BY e.category_id, c.user_id, c.name, c.icon, c.color
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by category: %w", err)
	}

	totals := make([]entity.CategoryTotal, len(results))
	for i, res := range results {
		totals[i] = entity.CategoryTotal{
			CategoryID: res.CategoryID,
			Total:      res.Total.Round(entity.AmountScale),
		}
		if res.CategoryName != nil && res.CategoryOwner != nil {
			totals[i].Category = &entity.Category{
				ID:     res.CategoryID,
				UserID: *res.CategoryOwner,
				Name:   *res.CategoryName,
				Icon:   res.CategoryIcon,
				Color:  res.CategoryColor,
			}
		}
	}

	return totals, nil
}
