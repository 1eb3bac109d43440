package models

import "github.com/shopspring/decimal"

// CategoryTotals holds the per-category aggregates of a budget summary
type CategoryTotals struct {
	Estimated decimal.Decimal `json:"estimated"`
	Actual    decimal.Decimal `json:"actual"`
	Count     int             `json:"count"`
}

// BudgetSummary is the derived, read-only view over a reunion's line items.
// It is recomputed on every read and never persisted or mutated in place.
type BudgetSummary struct {
	ReunionID      string                    `json:"reunion_id"`
	ByCategory     map[string]CategoryTotals `json:"by_category"`
	TotalEstimated decimal.Decimal           `json:"total_estimated"`
	TotalActual    decimal.Decimal           `json:"total_actual"`
	TotalUnsynced  decimal.Decimal           `json:"total_unsynced"`
	IsOverBudget   bool                      `json:"is_over_budget"`
	OverAmount     decimal.Decimal           `json:"over_amount"`
	ItemCount      int                       `json:"item_count"`
}

// CategorySummaryRow is one row of the SQL-level category report
type CategorySummaryRow struct {
	BudgetCategory string          `json:"budget_category"`
	ItemCount      int64           `json:"item_count"`
	TotalEstimated decimal.Decimal `json:"total_estimated"`
	TotalActual    decimal.Decimal `json:"total_actual"`
}

// SyncOutcome reports the result of a sync batch: which items were marked
// synced, which were skipped because they changed mid-batch, and the actual
// total folded into the budget by this batch.
type SyncOutcome struct {
	SyncedCount     int             `json:"synced_count"`
	SyncedTotal     decimal.Decimal `json:"synced_total"`
	ScopeEmpty      bool            `json:"scope_empty"`
	ConflictItemIDs []string        `json:"conflict_item_ids,omitempty"`
}

// AlertResult is the output of the over-budget evaluation
type AlertResult struct {
	IsOverBudget bool            `json:"is_over_budget"`
	OverAmount   decimal.Decimal `json:"over_amount"`
}
