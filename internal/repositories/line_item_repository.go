package repositories

import (
	"errors"
	"fmt"
	"time"

	"reunion-planner/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLineItemNotFound = errors.New("line item not found")
)

// lineItemRepository implements LineItemRepositoryInterface
type lineItemRepository struct {
	db *gorm.DB
}

// NewLineItemRepository creates a new line item repository
func NewLineItemRepository(db *gorm.DB) LineItemRepositoryInterface {
	return &lineItemRepository{
		db: db,
	}
}

// Create creates a new line item
func (r *lineItemRepository) Create(item *models.LineItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create line item: %w", err)
	}
	return nil
}

// GetByID retrieves a line item by ID
func (r *lineItemRepository) GetByID(id uuid.UUID) (*models.LineItem, error) {
	item := &models.LineItem{ID: id}
	if err := r.db.First(item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLineItemNotFound
		}
		return nil, fmt.Errorf("failed to get line item: %w", err)
	}
	return item, nil
}

// GetBySourceKey retrieves the line item owned by a source record. At most one
// item exists per (reunion, source module, source key).
func (r *lineItemRepository) GetBySourceKey(reunionID uuid.UUID, sourceModule, sourceKey string) (*models.LineItem, error) {
	var item models.LineItem
	if err := r.db.Where("reunion_id = ? AND source_module = ? AND source_key = ?",
		reunionID, sourceModule, sourceKey).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLineItemNotFound
		}
		return nil, fmt.Errorf("failed to get line item by source key: %w", err)
	}
	return &item, nil
}

// GetByIDs retrieves line items by ID, restricted to one reunion. IDs that do
// not exist or belong to another reunion are silently absent from the result.
func (r *lineItemRepository) GetByIDs(reunionID uuid.UUID, ids []uuid.UUID) ([]models.LineItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var items []models.LineItem
	if err := r.db.Where("reunion_id = ? AND id IN ?", reunionID, ids).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get line items by ids: %w", err)
	}
	return items, nil
}

// GetByReunionID retrieves all line items for a reunion
func (r *lineItemRepository) GetByReunionID(reunionID uuid.UUID) ([]models.LineItem, error) {
	var items []models.LineItem
	if err := r.db.Where("reunion_id = ?", reunionID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get line items: %w", err)
	}
	return items, nil
}

// GetUnsyncedByReunionID retrieves all line items not yet folded into the
// reunion budget
func (r *lineItemRepository) GetUnsyncedByReunionID(reunionID uuid.UUID) ([]models.LineItem, error) {
	var items []models.LineItem
	if err := r.db.Where("reunion_id = ? AND synced = ?", reunionID, false).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get unsynced line items: %w", err)
	}
	return items, nil
}

// GetWithFilters retrieves line items with multiple filters
func (r *lineItemRepository) GetWithFilters(filters models.LineItemFilters) ([]models.LineItem, int64, error) {
	var items []models.LineItem
	var total int64

	query := r.db.Model(&models.LineItem{})

	if filters.ReunionID != uuid.Nil {
		query = query.Where("reunion_id = ?", filters.ReunionID)
	}
	if filters.SourceModule != "" {
		query = query.Where("source_module = ?", filters.SourceModule)
	}
	if filters.BudgetCategory != "" {
		query = query.Where("budget_category = ?", filters.BudgetCategory)
	}
	if filters.Synced != nil {
		query = query.Where("synced = ?", *filters.Synced)
	}
	if filters.MinEstimated != nil {
		query = query.Where("estimated_amount >= ?", *filters.MinEstimated)
	}
	if filters.MaxEstimated != nil {
		query = query.Where("estimated_amount <= ?", *filters.MaxEstimated)
	}
	if filters.LabelContains != "" {
		query = query.Where("label LIKE ?", "%"+filters.LabelContains+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered line items: %w", err)
	}

	if err := query.Offset(filters.Offset).Limit(filters.Limit).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered line items: %w", err)
	}

	return items, total, nil
}

// Update updates a line item
func (r *lineItemRepository) Update(item *models.LineItem) error {
	result := r.db.Save(item)
	if result.Error != nil {
		return fmt.Errorf("failed to update line item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLineItemNotFound
	}
	return nil
}

// UpdateWithOptimisticLock updates a line item only when the stored version
// still matches the expected one. The populated item is the statement dest so
// the BeforeUpdate hook validates the real field values; the map form keeps
// zero values like synced=false in the UPDATE.
func (r *lineItemRepository) UpdateWithOptimisticLock(item *models.LineItem, expectedVersion int) error {
	result := r.db.Model(item).
		Where("version = ?", expectedVersion).
		Updates(map[string]interface{}{
			"domain_category":         item.DomainCategory,
			"budget_category":         item.BudgetCategory,
			"label":                   item.Label,
			"estimated_amount":        item.EstimatedAmount,
			"actual_amount":           item.ActualAmount,
			"synced":                  item.Synced,
			"synced_estimated_amount": item.SyncedEstimatedAmount,
			"synced_actual_amount":    item.SyncedActualAmount,
			"version":                 expectedVersion + 1,
			"updated_at":              time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update line item with optimistic lock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrOptimisticLockConflict
	}

	item.Version = expectedVersion + 1
	return nil
}

// MarkSyncedBatch flips a set of line items to synced in one database
// transaction. Each item is guarded by its version; items that changed since
// they were read are skipped and reported as conflicts rather than failing
// the batch.
func (r *lineItemRepository) MarkSyncedBatch(items []models.LineItem) (syncedIDs []uuid.UUID, conflictIDs []uuid.UUID, err error) {
	if len(items) == 0 {
		return nil, nil, nil
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for i := range items {
			item := &items[i]

			result := tx.Model(item).
				Where("version = ?", item.Version).
				Updates(map[string]interface{}{
					"synced":                  true,
					"synced_estimated_amount": item.EstimatedAmount,
					"synced_actual_amount":    item.ActualAmount,
					"version":                 item.Version + 1,
					"updated_at":              now,
				})

			if result.Error != nil {
				return fmt.Errorf("failed to mark line item synced: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				conflictIDs = append(conflictIDs, item.ID)
				continue
			}
			syncedIDs = append(syncedIDs, item.ID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return syncedIDs, conflictIDs, nil
}

// Delete deletes a line item by ID
func (r *lineItemRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.LineItem{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete line item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLineItemNotFound
	}
	return nil
}

// DeleteBySourceKey deletes the line item owned by a source record. Returns
// whether a row was removed; a missing row is not an error so that removal
// stays idempotent.
func (r *lineItemRepository) DeleteBySourceKey(reunionID uuid.UUID, sourceModule, sourceKey string) (bool, error) {
	result := r.db.Where("reunion_id = ? AND source_module = ? AND source_key = ?",
		reunionID, sourceModule, sourceKey).
		Delete(&models.LineItem{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete line item by source key: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CountByReunionID counts the line items of a reunion
func (r *lineItemRepository) CountByReunionID(reunionID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.LineItem{}).
		Where("reunion_id = ?", reunionID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count line items: %w", err)
	}
	return count, nil
}

// GetCategorySummary retrieves line item totals grouped by budget category
func (r *lineItemRepository) GetCategorySummary(reunionID uuid.UUID) ([]models.CategorySummaryRow, error) {
	var rows []models.CategorySummaryRow

	query := `
		SELECT
			budget_category,
			COUNT(*) as item_count,
			COALESCE(SUM(estimated_amount), 0) as total_estimated,
			COALESCE(SUM(actual_amount), 0) as total_actual
		FROM line_items
		WHERE reunion_id = ?
		GROUP BY budget_category
		ORDER BY total_estimated DESC
	`

	if err := r.db.Raw(query, reunionID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return rows, nil
}
