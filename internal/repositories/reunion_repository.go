package repositories

import (
	"errors"
	"fmt"

	"reunion-planner/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReunionNotFound = errors.New("reunion not found")
)

// reunionRepository implements ReunionRepositoryInterface
type reunionRepository struct {
	db *gorm.DB
}

// NewReunionRepository creates a new reunion repository
func NewReunionRepository(db *gorm.DB) ReunionRepositoryInterface {
	return &reunionRepository{
		db: db,
	}
}

// Create creates a new reunion
func (r *reunionRepository) Create(reunion *models.Reunion) error {
	if err := r.db.Create(reunion).Error; err != nil {
		return fmt.Errorf("failed to create reunion: %w", err)
	}
	return nil
}

// GetByID retrieves a reunion by ID
func (r *reunionRepository) GetByID(id uuid.UUID) (*models.Reunion, error) {
	reunion := &models.Reunion{ID: id}
	if err := r.db.First(reunion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReunionNotFound
		}
		return nil, fmt.Errorf("failed to get reunion: %w", err)
	}
	return reunion, nil
}

// GetByOwnerID retrieves the reunions owned by a user with pagination
func (r *reunionRepository) GetByOwnerID(ownerID uuid.UUID, offset, limit int) ([]models.Reunion, int64, error) {
	var reunions []models.Reunion
	var total int64

	if err := r.db.Model(&models.Reunion{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reunions: %w", err)
	}

	if err := r.db.Where("owner_id = ?", ownerID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&reunions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get reunions: %w", err)
	}

	return reunions, total, nil
}

// Update updates a reunion
func (r *reunionRepository) Update(reunion *models.Reunion) error {
	result := r.db.Save(reunion)
	if result.Error != nil {
		return fmt.Errorf("failed to update reunion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReunionNotFound
	}
	return nil
}

// Delete deletes a reunion and its line items
func (r *reunionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reunion_id = ?", id).Delete(&models.LineItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete reunion line items: %w", err)
		}

		result := tx.Delete(&models.Reunion{ID: id})
		if result.Error != nil {
			return fmt.Errorf("failed to delete reunion: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrReunionNotFound
		}
		return nil
	})
}
