package services

import (
	"reunion-planner/internal/models"

	"github.com/shopspring/decimal"
)

type alertEvaluator struct{}

// NewAlertEvaluator creates a new AlertEvaluatorInterface instance
func NewAlertEvaluator() AlertEvaluatorInterface {
	return &alertEvaluator{}
}

// Evaluate derives the over-budget condition from the aggregated totals. Pure
// function, no I/O. A reunion is over budget when actual spend exceeds the
// estimate by more than the configured threshold; the reported overrun is
// relative to the estimate itself, ignoring the threshold.
func (e *alertEvaluator) Evaluate(totalEstimated, totalActual, threshold decimal.Decimal) models.AlertResult {
	overAmount := totalActual.Sub(totalEstimated)
	if overAmount.IsNegative() {
		overAmount = decimal.Zero
	}

	return models.AlertResult{
		IsOverBudget: totalActual.GreaterThan(totalEstimated.Add(threshold)),
		OverAmount:   overAmount,
	}
}
