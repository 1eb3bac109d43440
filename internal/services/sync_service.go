package services

import (
	"errors"
	"fmt"
	"time"

	"reunion-planner/internal/models"
	"reunion-planner/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSyncBatchTooLarge = errors.New("sync batch exceeds the configured limit")
)

type syncService struct {
	lineItemRepo repositories.LineItemRepositoryInterface
	reunionRepo  repositories.ReunionRepositoryInterface
	locker       *ReunionLocker
	batchLimit   int
	logger       BudgetLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewSyncService creates a new SyncServiceInterface instance
func NewSyncService(
	lineItemRepo repositories.LineItemRepositoryInterface,
	reunionRepo repositories.ReunionRepositoryInterface,
	locker *ReunionLocker,
	batchLimit int,
	logger BudgetLoggerInterface,
	metrics MetricsRecorderInterface,
) SyncServiceInterface {
	return &syncService{
		lineItemRepo: lineItemRepo,
		reunionRepo:  reunionRepo,
		locker:       locker,
		batchLimit:   batchLimit,
		logger:       logger,
		metrics:      metrics,
	}
}

// SyncBatch marks every currently-unsynced line item in scope as synced and
// returns the actual total this batch folded into the budget. Running it a
// second time with no intervening edits is a no-op with a zero count, never a
// double count. Items that changed mid-batch are excluded and reported while
// the rest of the batch still commits; an empty scope is a successful no-op
// flagged on the outcome, not an error.
func (s *syncService) SyncBatch(reunionID uuid.UUID, itemIDs []uuid.UUID) (*models.SyncOutcome, error) {
	start := time.Now()

	s.locker.Lock(reunionID)
	defer s.locker.Unlock(reunionID)

	if _, err := s.reunionRepo.GetByID(reunionID); err != nil {
		if errors.Is(err, repositories.ErrReunionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify reunion: %w", err)
	}

	scope, err := s.resolveScope(reunionID, itemIDs)
	if err != nil {
		return nil, err
	}

	if len(scope) == 0 {
		s.logger.LogSyncScopeEmpty(reunionID)
		return &models.SyncOutcome{
			SyncedTotal: decimal.Zero,
			ScopeEmpty:  true,
		}, nil
	}

	if len(scope) > s.batchLimit {
		return nil, ErrSyncBatchTooLarge
	}

	s.logger.LogSyncStarted(reunionID, len(scope))

	syncedIDs, conflictIDs, err := s.lineItemRepo.MarkSyncedBatch(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to mark batch synced: %w", err)
	}

	outcome := s.buildOutcome(scope, syncedIDs, conflictIDs)

	s.logger.LogSyncCompleted(reunionID, outcome.SyncedCount, len(conflictIDs),
		outcome.SyncedTotal.String(), time.Since(start).Milliseconds())
	s.metrics.IncrementCounter("sync.batch", map[string]string{"result": "completed"})
	s.metrics.RecordProcessingTime("sync.batch", time.Since(start))
	s.metrics.RecordGauge("sync.batch.size", float64(outcome.SyncedCount), nil)

	return outcome, nil
}

// resolveScope loads the unsynced items the batch applies to. An explicit id
// list narrows the scope; ids that are unknown, foreign or already synced
// simply fall out of it.
func (s *syncService) resolveScope(reunionID uuid.UUID, itemIDs []uuid.UUID) ([]models.LineItem, error) {
	if len(itemIDs) == 0 {
		items, err := s.lineItemRepo.GetUnsyncedByReunionID(reunionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load unsynced line items: %w", err)
		}
		return items, nil
	}

	items, err := s.lineItemRepo.GetByIDs(reunionID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}

	unsynced := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		if !item.Synced {
			unsynced = append(unsynced, item)
		}
	}
	return unsynced, nil
}

func (s *syncService) buildOutcome(scope []models.LineItem, syncedIDs, conflictIDs []uuid.UUID) *models.SyncOutcome {
	byID := make(map[uuid.UUID]*models.LineItem, len(scope))
	for i := range scope {
		byID[scope[i].ID] = &scope[i]
	}

	total := decimal.Zero
	for _, id := range syncedIDs {
		if item, ok := byID[id]; ok {
			total = total.Add(item.ActualAmount)
		}
	}

	outcome := &models.SyncOutcome{
		SyncedCount: len(syncedIDs),
		SyncedTotal: total,
	}
	for _, id := range conflictIDs {
		outcome.ConflictItemIDs = append(outcome.ConflictItemIDs, id.String())
	}
	return outcome
}
