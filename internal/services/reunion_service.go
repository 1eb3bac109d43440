package services

import (
	"errors"
	"fmt"
	"log/slog"

	"reunion-planner/internal/dto"
	"reunion-planner/internal/models"
	"reunion-planner/internal/repositories"

	"github.com/google/uuid"
)

type reunionService struct {
	reunionRepo repositories.ReunionRepositoryInterface
}

// NewReunionService creates a new ReunionServiceInterface instance
func NewReunionService(reunionRepo repositories.ReunionRepositoryInterface) ReunionServiceInterface {
	return &reunionService{
		reunionRepo: reunionRepo,
	}
}

// CreateReunion creates a reunion owned by the requesting user
func (s *reunionService) CreateReunion(ownerID uuid.UUID, req *dto.CreateReunionRequest) (*models.Reunion, error) {
	reunion := &models.Reunion{
		OwnerID:     ownerID,
		Title:       req.Title,
		ReunionType: req.ReunionType,
		PlannedDate: req.PlannedDate,
	}

	if err := s.reunionRepo.Create(reunion); err != nil {
		return nil, fmt.Errorf("failed to create reunion: %w", err)
	}

	slog.Info("reunion created",
		"reunion_id", reunion.ID,
		"owner_id", ownerID,
		"reunion_type", reunion.ReunionType)

	return reunion, nil
}

// GetReunion retrieves a reunion, enforcing ownership
func (s *reunionService) GetReunion(reunionID, requestorID uuid.UUID) (*models.Reunion, error) {
	return s.getOwned(reunionID, requestorID)
}

// ListReunions returns the reunions owned by a user
func (s *reunionService) ListReunions(ownerID uuid.UUID, offset, limit int) ([]models.Reunion, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reunionRepo.GetByOwnerID(ownerID, offset, limit)
}

// UpdateReunion updates the mutable fields of a reunion
func (s *reunionService) UpdateReunion(reunionID, requestorID uuid.UUID, req *dto.UpdateReunionRequest) (*models.Reunion, error) {
	reunion, err := s.getOwned(reunionID, requestorID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		reunion.Title = req.Title
	}
	if req.ReunionType != "" {
		reunion.ReunionType = req.ReunionType
	}
	if req.PlannedDate != nil {
		reunion.PlannedDate = req.PlannedDate
	}

	if err := s.reunionRepo.Update(reunion); err != nil {
		return nil, fmt.Errorf("failed to update reunion: %w", err)
	}

	return reunion, nil
}

// DeleteReunion deletes a reunion and cascades to its line items
func (s *reunionService) DeleteReunion(reunionID, requestorID uuid.UUID) error {
	if _, err := s.getOwned(reunionID, requestorID); err != nil {
		return err
	}

	if err := s.reunionRepo.Delete(reunionID); err != nil {
		return fmt.Errorf("failed to delete reunion: %w", err)
	}

	slog.Info("reunion deleted",
		"reunion_id", reunionID,
		"owner_id", requestorID)

	return nil
}

func (s *reunionService) getOwned(reunionID, requestorID uuid.UUID) (*models.Reunion, error) {
	reunion, err := s.reunionRepo.GetByID(reunionID)
	if err != nil {
		if errors.Is(err, repositories.ErrReunionNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reunion: %w", err)
	}

	if reunion.OwnerID != requestorID {
		slog.Warn("unauthorized reunion access attempt",
			"reunion_id", reunionID,
			"owner_id", reunion.OwnerID,
			"requestor_id", requestorID)
		return nil, ErrUnauthorized
	}

	return reunion, nil
}
