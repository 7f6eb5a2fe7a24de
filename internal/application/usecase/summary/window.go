package summary

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecentSince returns the first calendar day counted as recent.
func RecentSince(clock adapter.Clock) time.Time {
	return entity.DateOnly(clock.Now().UTC()).AddDate(0, 0, -entity.RecentWindowDays)
}
