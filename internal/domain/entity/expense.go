// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits kept for expense amounts.
const AmountScale = 2

// Expense is a single spend record.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
	Amount      decimal.Decimal
	Description *string
	Date        time.Time // calendar date, midnight UTC
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense owned by userID.
// The amount is rounded to AmountScale and the date truncated to a calendar day.
func NewExpense(
	userID uuid.UUID,
	amount decimal.Decimal,
	description *string,
	date time.Time,
	categoryID *uuid.UUID,
	now time.Time,
) *Expense {
	now = now.UTC()
	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount.Round(AmountScale),
		Description: description,
		Date:        DateOnly(date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsOwnedBy reports whether the expense belongs to userID.
func (e *Expense) IsOwnedBy(userID uuid.UUID) bool {
	return e.UserID == userID
}

// ExpenseWithCategory pairs an expense with its category.
// Category is nil when the expense has no category or the category no longer exists.
type ExpenseWithCategory struct {
	Expense  *Expense
	Category *Category
}

// DateOnly returns t's calendar day at midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
