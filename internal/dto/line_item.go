package dto

import (
	"reunion-planner/internal/models"

	"github.com/shopspring/decimal"
)

// Line Item Request DTOs

// UpsertLineItemRequest represents the request payload for creating or
// updating the line item owned by a source record. Amounts travel as strings
// so the client never rounds them through a float.
type UpsertLineItemRequest struct {
	SourceModule    string `json:"source_module" validate:"required,source_module"`
	SourceKey       string `json:"source_key" validate:"required,source_key"`
	DomainCategory  string `json:"domain_category" validate:"max=100"`
	Label           string `json:"label" validate:"required,min=1,max=255"`
	EstimatedAmount string `json:"estimated_amount" validate:"required,money_amount"`
	ActualAmount    string `json:"actual_amount" validate:"omitempty,money_amount"`
}

// LineItemFilterParams contains filtering options for line item queries
type LineItemFilterParams struct {
	SourceModule   string `query:"sourceModule"`
	BudgetCategory string `query:"budgetCategory"`
	Synced         *bool  `query:"synced"`
	MinEstimated   string `query:"minEstimated"`
	MaxEstimated   string `query:"maxEstimated"`
	Label          string `query:"label"`
	Offset         int    `query:"offset"`
	Limit          int    `query:"limit"`
}

// SyncBatchRequest represents the request payload for a sync operation.
// An empty item list means "every unsynced item of the reunion".
type SyncBatchRequest struct {
	ItemIDs []string `json:"item_ids" validate:"omitempty,dive,uuid"`
}

// Line Item Response DTOs

// UpsertLineItemResponse represents the response after an upsert
type UpsertLineItemResponse struct {
	LineItem *models.LineItem `json:"line_item"`
	Created  bool             `json:"created"`
}

// LineItemListResponse represents a paginated list of line items
type LineItemListResponse struct {
	LineItems []models.LineItem `json:"line_items"`
	Total     int64             `json:"total"`
	Offset    int               `json:"offset"`
	Limit     int               `json:"limit"`
}

// RemoveLineItemResponse reports whether the removal found anything to delete
type RemoveLineItemResponse struct {
	Removed bool   `json:"removed"`
	Message string `json:"message"`
}

// BudgetSummaryResponse represents the derived budget view of a reunion
type BudgetSummaryResponse struct {
	Summary *models.BudgetSummary `json:"summary"`
}

// CategoryReportRow is one category line of the reporting endpoint
type CategoryReportRow struct {
	BudgetCategory string          `json:"budget_category"`
	DisplayName    string          `json:"display_name"`
	ItemCount      int64           `json:"item_count"`
	TotalEstimated decimal.Decimal `json:"total_estimated"`
	TotalActual    decimal.Decimal `json:"total_actual"`
}

// CategoryReportResponse represents the per-category report of a reunion
type CategoryReportResponse struct {
	ReunionID  string              `json:"reunion_id"`
	Categories []CategoryReportRow `json:"categories"`
}

// SyncBatchResponse represents the outcome of a sync operation
type SyncBatchResponse struct {
	SyncedCount     int             `json:"synced_count"`
	SyncedTotal     decimal.Decimal `json:"synced_total"`
	ScopeEmpty      bool            `json:"scope_empty"`
	ConflictItemIDs []string        `json:"conflict_item_ids,omitempty"`
	Message         string          `json:"message"`
}
