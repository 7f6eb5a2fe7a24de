// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SummaryCategoryResponse is the category attached to a breakdown row.
type SummaryCategoryResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// CategoryTotalResponse is one row of the per-category breakdown.
// Category is null when the category has been deleted.
type CategoryTotalResponse struct {
	Category *SummaryCategoryResponse `json:"category"`
	Total    string                   `json:"total"`
}

// SummaryResponse represents the response for GET /expenses-summary.
type SummaryResponse struct {
	TotalExpenses      string                  `json:"total_expenses"`
	RecentExpenses     string                  `json:"recent_expenses"`
	ExpensesByCategory []CategoryTotalResponse `json:"expenses_by_category"`
}

// ToSummaryResponse converts a domain summary to a SummaryResponse DTO.
func ToSummaryResponse(s *entity.ExpenseSummary) SummaryResponse {
	rows := make([]CategoryTotalResponse, len(s.ByCategory))
	for i, ct := range s.ByCategory {
		rows[i] = CategoryTotalResponse{Total: FormatAmount(ct.Total)}
		if ct.Category != nil {
			rows[i].Category = &SummaryCategoryResponse{
				ID:    ct.Category.ID.String(),
				Name:  ct.Category.Name,
				Icon:  ct.Category.Icon,
				Color: ct.Category.Color,
			}
		}
	}

	return SummaryResponse{
		TotalExpenses:      FormatAmount(s.TotalExpenses),
		RecentExpenses:     FormatAmount(s.RecentExpenses),
		ExpensesByCategory: rows,
	}
}
