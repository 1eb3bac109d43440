package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount          = errors.New("amount must be non-negative")
	ErrAmountTooLarge         = errors.New("amount exceeds sanity bound")
	ErrInvalidSourceModule    = errors.New("invalid source module")
	ErrInvalidBudgetCategory  = errors.New("invalid budget category")
	ErrOptimisticLockConflict = errors.New("optimistic lock conflict: version mismatch")
)

// MaxLineItemAmount is the default sanity bound for a single cost entry.
// Amounts above this are treated as input errors rather than real costs.
var MaxLineItemAmount = decimal.New(1_000_000, 0)

// LineItem is a single cost entry attributable to one source record (an event,
// meal, vendor, or manual budget entry). The pair (reunion, source module,
// source key) identifies at most one line item, which is what prevents
// duplicate creation when a source record is edited rather than recreated.
type LineItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReunionID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_line_items_source_key,unique,priority:1" json:"reunion_id"`
	SourceModule   string          `gorm:"type:varchar(20);not null;index:idx_line_items_source_key,unique,priority:2" json:"source_module"`
	SourceKey      string          `gorm:"type:varchar(100);not null;index:idx_line_items_source_key,unique,priority:3" json:"source_key"`
	DomainCategory string          `gorm:"type:varchar(100)" json:"domain_category"`
	BudgetCategory string          `gorm:"type:varchar(30);not null;index" json:"budget_category"`
	Label          string          `gorm:"type:varchar(255);not null" json:"label"`
	EstimatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"estimated_amount"`
	ActualAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"actual_amount"`
	Synced          bool            `gorm:"not null;default:false;index" json:"synced"`

	// Amounts recorded at the moment of the last successful sync. An edit only
	// invalidates the sync flag when the new amount differs from these.
	SyncedEstimatedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"synced_estimated_amount"`
	SyncedActualAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"synced_actual_amount"`

	Version   int       `gorm:"default:1" json:"version"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Reunion Reunion `gorm:"foreignKey:ReunionID" json:"-"`
}

// BeforeCreate hook for LineItem
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}

	now := time.Now()
	if li.CreatedAt.IsZero() {
		li.CreatedAt = now
	}
	if li.UpdatedAt.IsZero() {
		li.UpdatedAt = now
	}

	return li.Validate()
}

// BeforeUpdate hook for LineItem
func (li *LineItem) BeforeUpdate(tx *gorm.DB) error {
	li.UpdatedAt = time.Now()
	return li.Validate()
}

// Validate validates the line item fields
func (li *LineItem) Validate() error {
	if li.ReunionID == uuid.Nil {
		return errors.New("reunion ID is required")
	}

	if !IsValidSourceModule(li.SourceModule) {
		return ErrInvalidSourceModule
	}

	if li.SourceKey == "" {
		return errors.New("source key is required")
	}

	if li.Label == "" {
		return errors.New("line item label is required")
	}

	if !IsValidBudgetCategory(li.BudgetCategory) {
		return ErrInvalidBudgetCategory
	}

	if err := ValidateAmount(li.EstimatedAmount); err != nil {
		return err
	}
	if err := ValidateAmount(li.ActualAmount); err != nil {
		return err
	}

	return nil
}

// ValidateAmount checks a monetary value against the ledger's amount rules
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(MaxLineItemAmount) {
		return ErrAmountTooLarge
	}
	return nil
}

// MarkSynced flips the item to synced and snapshots the amounts the sync saw
func (li *LineItem) MarkSynced() {
	li.Synced = true
	li.SyncedEstimatedAmount = li.EstimatedAmount
	li.SyncedActualAmount = li.ActualAmount
}

// AmountsMatchLastSync reports whether the given amounts equal the amounts
// recorded at the last sync. Used to decide if an edit invalidates the flag.
func (li *LineItem) AmountsMatchLastSync(estimated, actual decimal.Decimal) bool {
	return li.SyncedEstimatedAmount.Equal(estimated) && li.SyncedActualAmount.Equal(actual)
}

// TableName returns the table name for LineItem
func (li *LineItem) TableName() string {
	return "line_items"
}

// IncrementVersion increments the version for optimistic locking
func (li *LineItem) IncrementVersion() {
	li.Version++
}

// HasVersionConflict checks for version conflicts
func (li *LineItem) HasVersionConflict(currentVersion int) bool {
	return li.Version != currentVersion
}
