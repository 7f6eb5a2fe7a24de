// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SummaryRepository defines read-only aggregate queries over a user's expenses.
type SummaryRepository interface {
	// SumAmounts returns the sum of amounts of userID's expenses, zero when there are none.
	// When since is non-nil only expenses dated on or after it are counted.
	SumAmounts(ctx context.Context, userID uuid.UUID, since *time.Time) (decimal.Decimal, error)

	// TotalsByCategory returns one row per distinct non-null category_id among userID's expenses.
	TotalsByCategory(ctx context.Context, userID uuid.UUID) ([]entity.CategoryTotal, error)
}
