package services

import (
	"errors"
	"fmt"

	"reunion-planner/internal/dto"
	"reunion-planner/internal/models"
	"reunion-planner/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("requestor does not own this resource")
)

type lineItemService struct {
	lineItemRepo repositories.LineItemRepositoryInterface
	reunionRepo  repositories.ReunionRepositoryInterface
	mapper       CategoryMapperInterface
	locker       *ReunionLocker
	logger       BudgetLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewLineItemService creates a new LineItemServiceInterface instance. The
// locker is shared with the sync service so that edits and sync batches on
// the same reunion serialize against each other.
func NewLineItemService(
	lineItemRepo repositories.LineItemRepositoryInterface,
	reunionRepo repositories.ReunionRepositoryInterface,
	mapper CategoryMapperInterface,
	locker *ReunionLocker,
	logger BudgetLoggerInterface,
	metrics MetricsRecorderInterface,
) LineItemServiceInterface {
	return &lineItemService{
		lineItemRepo: lineItemRepo,
		reunionRepo:  reunionRepo,
		mapper:       mapper,
		locker:       locker,
		logger:       logger,
		metrics:      metrics,
	}
}

// Upsert creates the line item for (sourceModule, sourceKey) if none exists,
// otherwise updates the existing one's mutable fields in place. The item's
// identity and sync snapshot survive updates; the sync flag survives only
// when the new amounts equal the amounts recorded at the last sync.
func (s *lineItemService) Upsert(reunionID uuid.UUID, req *dto.UpsertLineItemRequest) (*models.LineItem, bool, error) {
	estimated, err := parseAmount(req.EstimatedAmount)
	if err != nil {
		return nil, false, err
	}

	actual := decimal.Zero
	if req.ActualAmount != "" {
		actual, err = parseAmount(req.ActualAmount)
		if err != nil {
			return nil, false, err
		}
	}

	s.locker.Lock(reunionID)
	defer s.locker.Unlock(reunionID)

	if _, err := s.reunionRepo.GetByID(reunionID); err != nil {
		if errors.Is(err, repositories.ErrReunionNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to verify reunion: %w", err)
	}

	budgetCategory := s.mapper.Map(req.SourceModule, req.DomainCategory)

	existing, err := s.lineItemRepo.GetBySourceKey(reunionID, req.SourceModule, req.SourceKey)
	if err != nil {
		if !errors.Is(err, repositories.ErrLineItemNotFound) {
			return nil, false, fmt.Errorf("failed to look up line item: %w", err)
		}
		return s.createItem(reunionID, req, budgetCategory, estimated, actual)
	}

	return s.updateItem(existing, req, budgetCategory, estimated, actual)
}

func (s *lineItemService) createItem(reunionID uuid.UUID, req *dto.UpsertLineItemRequest, budgetCategory string, estimated, actual decimal.Decimal) (*models.LineItem, bool, error) {
	item := &models.LineItem{
		ReunionID:       reunionID,
		SourceModule:    req.SourceModule,
		SourceKey:       req.SourceKey,
		DomainCategory:  req.DomainCategory,
		BudgetCategory:  budgetCategory,
		Label:           req.Label,
		EstimatedAmount: estimated,
		ActualAmount:    actual,
	}

	if err := s.lineItemRepo.Create(item); err != nil {
		return nil, false, fmt.Errorf("failed to create line item: %w", err)
	}

	s.logger.LogLineItemUpserted(reunionID, item.ID, item.SourceModule, item.SourceKey, true)
	s.metrics.IncrementCounter("line_item.upserted", map[string]string{
		"source_module": item.SourceModule,
		"result":        "created",
	})

	return item, true, nil
}

func (s *lineItemService) updateItem(item *models.LineItem, req *dto.UpsertLineItemRequest, budgetCategory string, estimated, actual decimal.Decimal) (*models.LineItem, bool, error) {
	wasSynced := item.Synced
	// An edit invalidates the sync flag only when the amounts actually moved
	// away from what the last sync recorded. Relabeling or recategorizing an
	// item never marks a current sync stale.
	stillSynced := wasSynced && item.AmountsMatchLastSync(estimated, actual)

	item.DomainCategory = req.DomainCategory
	item.BudgetCategory = budgetCategory
	item.Label = req.Label
	item.EstimatedAmount = estimated
	item.ActualAmount = actual
	item.Synced = stillSynced

	if err := s.lineItemRepo.UpdateWithOptimisticLock(item, item.Version); err != nil {
		if errors.Is(err, models.ErrOptimisticLockConflict) {
			s.logger.LogOptimisticLockConflict(item.ReunionID, item.ID, item.Version)
		}
		return nil, false, err
	}

	if wasSynced && !stillSynced {
		s.logger.LogSyncInvalidated(item.ReunionID, item.ID)
	}
	s.logger.LogLineItemUpserted(item.ReunionID, item.ID, item.SourceModule, item.SourceKey, false)
	s.metrics.IncrementCounter("line_item.upserted", map[string]string{
		"source_module": item.SourceModule,
		"result":        "updated",
	})

	return item, false, nil
}

// Remove deletes the line item owned by a source record. Removing an absent
// item is a successful no-op so that cascade deletions stay idempotent.
func (s *lineItemService) Remove(reunionID uuid.UUID, sourceModule, sourceKey string) (bool, error) {
	if !models.IsValidSourceModule(sourceModule) {
		return false, models.ErrInvalidSourceModule
	}

	s.locker.Lock(reunionID)
	defer s.locker.Unlock(reunionID)

	removed, err := s.lineItemRepo.DeleteBySourceKey(reunionID, sourceModule, sourceKey)
	if err != nil {
		return false, fmt.Errorf("failed to remove line item: %w", err)
	}

	s.logger.LogLineItemRemoved(reunionID, sourceModule, sourceKey, removed)
	if removed {
		s.metrics.IncrementCounter("line_item.removed", map[string]string{
			"source_module": sourceModule,
		})
	}

	return removed, nil
}

// GetByID retrieves a single line item, scoped to its reunion
func (s *lineItemService) GetByID(reunionID, itemID uuid.UUID) (*models.LineItem, error) {
	item, err := s.lineItemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrLineItemNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if item.ReunionID != reunionID {
		return nil, ErrNotFound
	}

	return item, nil
}

// ListByReunion returns all line items of a reunion
func (s *lineItemService) ListByReunion(reunionID uuid.UUID) ([]models.LineItem, error) {
	return s.lineItemRepo.GetByReunionID(reunionID)
}

// ListWithFilters returns line items matching the given filters
func (s *lineItemService) ListWithFilters(filters models.LineItemFilters) ([]models.LineItem, int64, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 50
	}
	return s.lineItemRepo.GetWithFilters(filters)
}

// parseAmount parses a monetary string and checks it against the ledger's
// amount rules
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, models.ErrInvalidAmount
	}
	if err := models.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}
