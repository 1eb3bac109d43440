package dto

import (
	"time"

	"reunion-planner/internal/models"
)

// Reunion Request DTOs

// CreateReunionRequest represents the request payload for creating a reunion
type CreateReunionRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	ReunionType string     `json:"reunion_type" validate:"omitempty,reunion_type"`
	PlannedDate *time.Time `json:"planned_date,omitempty"`
}

// UpdateReunionRequest represents the request payload for updating a reunion
type UpdateReunionRequest struct {
	Title       string     `json:"title" validate:"omitempty,min=1,max=255"`
	ReunionType string     `json:"reunion_type" validate:"omitempty,reunion_type"`
	PlannedDate *time.Time `json:"planned_date,omitempty"`
}

// Reunion Response DTOs

// ReunionResponse represents a single reunion in API responses
type ReunionResponse struct {
	*models.Reunion
}

// CreateReunionResponse represents the response after creating a reunion
type CreateReunionResponse struct {
	Reunion *models.Reunion `json:"reunion"`
	Message string          `json:"message"`
}

// ReunionListResponse represents a paginated list of reunions
type ReunionListResponse struct {
	Reunions []models.Reunion `json:"reunions"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
