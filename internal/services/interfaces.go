package services

import (
	"time"

	"reunion-planner/internal/dto"
	"reunion-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReunionServiceInterface defines reunion-related business operations
type ReunionServiceInterface interface {
	CreateReunion(ownerID uuid.UUID, req *dto.CreateReunionRequest) (*models.Reunion, error)
	GetReunion(reunionID, requestorID uuid.UUID) (*models.Reunion, error)
	ListReunions(ownerID uuid.UUID, offset, limit int) ([]models.Reunion, int64, error)
	UpdateReunion(reunionID, requestorID uuid.UUID, req *dto.UpdateReunionRequest) (*models.Reunion, error)
	DeleteReunion(reunionID, requestorID uuid.UUID) error
}

// LineItemServiceInterface defines the contract for the line item store.
// All mutations on one reunion's items are serialized relative to each other.
type LineItemServiceInterface interface {
	Upsert(reunionID uuid.UUID, req *dto.UpsertLineItemRequest) (item *models.LineItem, created bool, err error)
	Remove(reunionID uuid.UUID, sourceModule, sourceKey string) (removed bool, err error)
	GetByID(reunionID, itemID uuid.UUID) (*models.LineItem, error)
	ListByReunion(reunionID uuid.UUID) ([]models.LineItem, error)
	ListWithFilters(filters models.LineItemFilters) ([]models.LineItem, int64, error)
}

// CategoryMapperInterface maps a source module's domain category onto one of
// the fixed budget categories
type CategoryMapperInterface interface {
	// Map returns the budget category for a domain category. Total and
	// deterministic; unrecognized inputs fall back to MISCELLANEOUS.
	Map(sourceModule, domainCategory string) string

	// MapWithResult returns the budget category together with match details
	MapWithResult(sourceModule, domainCategory string) *models.MappingResult
}

// BudgetSummaryServiceInterface computes the derived budget view of a reunion
type BudgetSummaryServiceInterface interface {
	Summarize(reunionID uuid.UUID) (*models.BudgetSummary, error)
	CategoryReport(reunionID uuid.UUID) ([]models.CategorySummaryRow, error)
}

// SyncServiceInterface marks batches of line items as folded into the
// authoritative budget view
type SyncServiceInterface interface {
	// SyncBatch marks every currently-unsynced line item in scope as synced.
	// Scope is the whole reunion when itemIDs is empty, else the given subset.
	SyncBatch(reunionID uuid.UUID, itemIDs []uuid.UUID) (*models.SyncOutcome, error)
}

// AlertEvaluatorInterface derives the over-budget condition from a summary
type AlertEvaluatorInterface interface {
	Evaluate(totalEstimated, totalActual, threshold decimal.Decimal) models.AlertResult
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// BudgetLoggerInterface emits structured log events for ledger operations
type BudgetLoggerInterface interface {
	LogLineItemUpserted(reunionID, itemID uuid.UUID, sourceModule, sourceKey string, created bool)
	LogLineItemRemoved(reunionID uuid.UUID, sourceModule, sourceKey string, removed bool)
	LogSyncInvalidated(reunionID, itemID uuid.UUID)
	LogSyncStarted(reunionID uuid.UUID, scopeSize int)
	LogSyncCompleted(reunionID uuid.UUID, syncedCount, conflictCount int, syncedTotal string, durationMs int64)
	LogSyncScopeEmpty(reunionID uuid.UUID)
	LogSummaryComputed(reunionID uuid.UUID, itemCount int, totalActual string, overBudget bool)
	LogOptimisticLockConflict(reunionID, itemID uuid.UUID, expectedVersion int)
}

// LineItemGeneratorInterface generates realistic line item data for demos and
// load tests
type LineItemGeneratorInterface interface {
	GenerateLineItems(reunionID uuid.UUID, count int) []*models.LineItem
	GenerateProgramItems(reunionID uuid.UUID, count int) []*models.LineItem
	GenerateFoodItems(reunionID uuid.UUID, count int) []*models.LineItem
	GenerateVendorItems(reunionID uuid.UUID, count int) []*models.LineItem
	GenerateAmount(budgetCategory string) decimal.Decimal
}
