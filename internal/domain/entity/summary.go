// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecentWindowDays is the length of the trailing window used for recent spend.
const RecentWindowDays = 30

// CategoryTotal is the spend of one category in a summary breakdown.
// Category is nil when the referenced category has been deleted.
type CategoryTotal struct {
	CategoryID uuid.UUID
	Category   *Category
	Total      decimal.Decimal
}

// ExpenseSummary aggregates a user's expenses.
type ExpenseSummary struct {
	TotalExpenses  decimal.Decimal
	RecentExpenses decimal.Decimal
	ByCategory     []CategoryTotal
}
