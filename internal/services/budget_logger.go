package services

import (
	"log/slog"

	"github.com/google/uuid"
)

type budgetLogger struct {
	logger *slog.Logger
}

// NewBudgetLogger creates a structured logger for ledger operations
func NewBudgetLogger() BudgetLoggerInterface {
	return &budgetLogger{
		logger: slog.Default().With("component", "budget_ledger"),
	}
}

func (l *budgetLogger) LogLineItemUpserted(reunionID, itemID uuid.UUID, sourceModule, sourceKey string, created bool) {
	l.logger.Info("line item upserted",
		"reunion_id", reunionID,
		"item_id", itemID,
		"source_module", sourceModule,
		"source_key", sourceKey,
		"created", created)
}

func (l *budgetLogger) LogLineItemRemoved(reunionID uuid.UUID, sourceModule, sourceKey string, removed bool) {
	l.logger.Info("line item removed",
		"reunion_id", reunionID,
		"source_module", sourceModule,
		"source_key", sourceKey,
		"removed", removed)
}

func (l *budgetLogger) LogSyncInvalidated(reunionID, itemID uuid.UUID) {
	l.logger.Info("sync flag invalidated by amount change",
		"reunion_id", reunionID,
		"item_id", itemID)
}

func (l *budgetLogger) LogSyncStarted(reunionID uuid.UUID, scopeSize int) {
	l.logger.Info("sync batch started",
		"reunion_id", reunionID,
		"scope_size", scopeSize)
}

func (l *budgetLogger) LogSyncCompleted(reunionID uuid.UUID, syncedCount, conflictCount int, syncedTotal string, durationMs int64) {
	l.logger.Info("sync batch completed",
		"reunion_id", reunionID,
		"synced_count", syncedCount,
		"conflict_count", conflictCount,
		"synced_total", syncedTotal,
		"duration_ms", durationMs)
}

func (l *budgetLogger) LogSyncScopeEmpty(reunionID uuid.UUID) {
	l.logger.Info("sync batch found nothing to sync",
		"reunion_id", reunionID)
}

func (l *budgetLogger) LogSummaryComputed(reunionID uuid.UUID, itemCount int, totalActual string, overBudget bool) {
	l.logger.Debug("budget summary computed",
		"reunion_id", reunionID,
		"item_count", itemCount,
		"total_actual", totalActual,
		"over_budget", overBudget)
}

func (l *budgetLogger) LogOptimisticLockConflict(reunionID, itemID uuid.UUID, expectedVersion int) {
	l.logger.Warn("optimistic lock conflict on line item",
		"reunion_id", reunionID,
		"item_id", itemID,
		"expected_version", expectedVersion)
}
