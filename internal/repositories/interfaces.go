package repositories

import (
	"reunion-planner/internal/models"

	"github.com/google/uuid"
)

// LineItemRepositoryInterface defines the contract for line item repository operations
type LineItemRepositoryInterface interface {
	Create(item *models.LineItem) error
	GetByID(id uuid.UUID) (*models.LineItem, error)
	GetBySourceKey(reunionID uuid.UUID, sourceModule, sourceKey string) (*models.LineItem, error)
	GetByIDs(reunionID uuid.UUID, ids []uuid.UUID) ([]models.LineItem, error)
	GetByReunionID(reunionID uuid.UUID) ([]models.LineItem, error)
	GetUnsyncedByReunionID(reunionID uuid.UUID) ([]models.LineItem, error)
	GetWithFilters(filters models.LineItemFilters) ([]models.LineItem, int64, error)
	Update(item *models.LineItem) error
	UpdateWithOptimisticLock(item *models.LineItem, expectedVersion int) error
	MarkSyncedBatch(items []models.LineItem) (syncedIDs []uuid.UUID, conflictIDs []uuid.UUID, err error)
	Delete(id uuid.UUID) error
	DeleteBySourceKey(reunionID uuid.UUID, sourceModule, sourceKey string) (bool, error)
	CountByReunionID(reunionID uuid.UUID) (int64, error)
	GetCategorySummary(reunionID uuid.UUID) ([]models.CategorySummaryRow, error)
}

// ReunionRepositoryInterface defines the contract for reunion repository operations
type ReunionRepositoryInterface interface {
	Create(reunion *models.Reunion) error
	GetByID(id uuid.UUID) (*models.Reunion, error)
	GetByOwnerID(ownerID uuid.UUID, offset, limit int) ([]models.Reunion, int64, error)
	Update(reunion *models.Reunion) error
	Delete(id uuid.UUID) error
}
