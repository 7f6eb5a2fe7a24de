// Package summary contains the expense summary use case.
package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for computing a user's summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the output of the summary computation.
type GetSummaryOutput struct {
	Summary *entity.ExpenseSummary
}

// GetSummaryUseCase aggregates a user's expenses into total, recent and per-category spend.
type GetSummaryUseCase struct {
	summaryRepo adapter.SummaryRepository
	clock       adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(summaryRepo adapter.SummaryRepository, clock adapter.Clock) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		summaryRepo: summaryRepo,
		clock:       clock,
	}
}

// Execute computes the summary. The recent window starts RecentWindowDays before
// the current UTC calendar day and includes that boundary day.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	total, err := uc.summaryRepo.SumAmounts(ctx, input.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	since := RecentSince(uc.clock)
	recent, err := uc.summaryRepo.SumAmounts(ctx, input.UserID, &since)
	if err != nil {
		return nil, fmt.Errorf("failed to sum recent expenses: %w", err)
	}

	byCategory, err := uc.summaryRepo.TotalsByCategory(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses by category: %w", err)
	}
	if byCategory == nil {
		byCategory = []entity.CategoryTotal{}
	}

	return &GetSummaryOutput{
		Summary: &entity.ExpenseSummary{
			TotalExpenses:  total,
			RecentExpenses: recent,
			ByCategory:     byCategory,
		},
	}, nil
}
