// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string            `json:"id"`
	Amount      string            `json:"amount"`
	Description *string           `json:"description"`
	Date        string            `json:"date"`
	CategoryID  *string           `json:"category_id"`
	Category    *CategoryResponse `json:"category"`
	UserID      string            `json:"user_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// FormatAmount renders a money value with exactly two fractional digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(entity.AmountScale)
}

// ToExpenseResponse converts an expense and its category to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.ExpenseWithCategory) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.Expense.ID.String(),
		Amount:      FormatAmount(e.Expense.Amount),
		Description: e.Expense.Description,
		Date:        e.Expense.Date.Format(time.DateOnly),
		UserID:      e.Expense.UserID.String(),
		CreatedAt:   e.Expense.CreatedAt,
		UpdatedAt:   e.Expense.UpdatedAt,
	}
	if e.Expense.CategoryID != nil {
		id := e.Expense.CategoryID.String()
		resp.CategoryID = &id
	}
	if e.Category != nil {
		cat := ToCategoryResponse(e.Category)
		resp.Category = &cat
	}
	return resp
}

// ToExpenseListResponse converts expenses to a JSON array, never null.
func ToExpenseListResponse(expenses []*entity.ExpenseWithCategory) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return out
}
