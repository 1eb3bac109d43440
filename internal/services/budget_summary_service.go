package services

import (
	"errors"
	"fmt"

	"reunion-planner/internal/models"
	"reunion-planner/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetSummaryService struct {
	lineItemRepo repositories.LineItemRepositoryInterface
	reunionRepo  repositories.ReunionRepositoryInterface
	evaluator    AlertEvaluatorInterface
	threshold    decimal.Decimal
	logger       BudgetLoggerInterface
}

// NewBudgetSummaryService creates a new BudgetSummaryServiceInterface
// instance. The threshold is the slack granted before a reunion counts as
// over budget.
func NewBudgetSummaryService(
	lineItemRepo repositories.LineItemRepositoryInterface,
	reunionRepo repositories.ReunionRepositoryInterface,
	evaluator AlertEvaluatorInterface,
	threshold decimal.Decimal,
	logger BudgetLoggerInterface,
) BudgetSummaryServiceInterface {
	return &budgetSummaryService{
		lineItemRepo: lineItemRepo,
		reunionRepo:  reunionRepo,
		evaluator:    evaluator,
		threshold:    threshold,
		logger:       logger,
	}
}

// Summarize recomputes the budget view over all line items of a reunion.
// Per-category and grand totals keep estimated and actual apart, and
// TotalUnsynced sums actual amounts whose cost is not yet folded into the
// authoritative budget. All arithmetic is decimal; nothing rounds here.
func (s *budgetSummaryService) Summarize(reunionID uuid.UUID) (*models.BudgetSummary, error) {
	if _, err := s.reunionRepo.GetByID(reunionID); err != nil {
		if errors.Is(err, repositories.ErrReunionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify reunion: %w", err)
	}

	items, err := s.lineItemRepo.GetByReunionID(reunionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}

	summary := &models.BudgetSummary{
		ReunionID:      reunionID.String(),
		ByCategory:     make(map[string]models.CategoryTotals),
		TotalEstimated: decimal.Zero,
		TotalActual:    decimal.Zero,
		TotalUnsynced:  decimal.Zero,
		OverAmount:     decimal.Zero,
		ItemCount:      len(items),
	}

	for i := range items {
		item := &items[i]

		totals := summary.ByCategory[item.BudgetCategory]
		if totals.Count == 0 {
			totals.Estimated = decimal.Zero
			totals.Actual = decimal.Zero
		}
		totals.Estimated = totals.Estimated.Add(item.EstimatedAmount)
		totals.Actual = totals.Actual.Add(item.ActualAmount)
		totals.Count++
		summary.ByCategory[item.BudgetCategory] = totals

		summary.TotalEstimated = summary.TotalEstimated.Add(item.EstimatedAmount)
		summary.TotalActual = summary.TotalActual.Add(item.ActualAmount)
		if !item.Synced {
			summary.TotalUnsynced = summary.TotalUnsynced.Add(item.ActualAmount)
		}
	}

	alert := s.evaluator.Evaluate(summary.TotalEstimated, summary.TotalActual, s.threshold)
	summary.IsOverBudget = alert.IsOverBudget
	summary.OverAmount = alert.OverAmount

	s.logger.LogSummaryComputed(reunionID, summary.ItemCount, summary.TotalActual.String(), summary.IsOverBudget)

	return summary, nil
}

// CategoryReport returns the SQL-level per-category totals of a reunion
func (s *budgetSummaryService) CategoryReport(reunionID uuid.UUID) ([]models.CategorySummaryRow, error) {
	if _, err := s.reunionRepo.GetByID(reunionID); err != nil {
		if errors.Is(err, repositories.ErrReunionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify reunion: %w", err)
	}

	rows, err := s.lineItemRepo.GetCategorySummary(reunionID)
	if err != nil {
		return nil, fmt.Errorf("failed to build category report: %w", err)
	}

	return rows, nil
}
