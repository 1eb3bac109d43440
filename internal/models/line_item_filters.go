package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemFilters defines the filter set for line item queries
type LineItemFilters struct {
	ReunionID      uuid.UUID
	SourceModule   string
	BudgetCategory string
	Synced         *bool
	MinEstimated   *decimal.Decimal
	MaxEstimated   *decimal.Decimal
	LabelContains  string
	Offset         int
	Limit          int
}
