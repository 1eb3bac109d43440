package handlers

import (
	"net/http"

	"reunion-planner/internal/dto"
	"reunion-planner/internal/errors"
	"reunion-planner/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ReunionHandler handles reunion-related HTTP requests
type ReunionHandler struct {
	reunionService services.ReunionServiceInterface
}

// NewReunionHandler creates a new reunion handler
func NewReunionHandler(reunionService services.ReunionServiceInterface) *ReunionHandler {
	return &ReunionHandler{reunionService: reunionService}
}

// CreateReunion creates a reunion owned by the authenticated user
func (h *ReunionHandler) CreateReunion(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateReunionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	reunion, err := h.reunionService.CreateReunion(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateReunionResponse{
		Reunion: reunion,
		Message: "Reunion created successfully",
	})
}

// GetReunion retrieves a single reunion owned by the authenticated user
func (h *ReunionHandler) GetReunion(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reunionID, err := getReunionIDParam(c)
	if err != nil {
		return SendError(c, errors.ReunionInvalidID)
	}

	reunion, err := h.reunionService.GetReunion(reunionID, userID)
	if err != nil {
		return sendReunionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReunionResponse{Reunion: reunion})
}

// ListReunions returns the reunions owned by the authenticated user
func (h *ReunionHandler) ListReunions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)
	if offset < 0 {
		offset = 0
	}

	reunions, total, err := h.reunionService.ListReunions(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReunionListResponse{
		Reunions: reunions,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// UpdateReunion updates the mutable fields of a reunion
func (h *ReunionHandler) UpdateReunion(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reunionID, err := getReunionIDParam(c)
	if err != nil {
		return SendError(c, errors.ReunionInvalidID)
	}

	var req dto.UpdateReunionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	reunion, err := h.reunionService.UpdateReunion(reunionID, userID, &req)
	if err != nil {
		return sendReunionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReunionResponse{Reunion: reunion})
}

// DeleteReunion deletes a reunion and its line items
func (h *ReunionHandler) DeleteReunion(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reunionID, err := getReunionIDParam(c)
	if err != nil {
		return SendError(c, errors.ReunionInvalidID)
	}

	if err := h.reunionService.DeleteReunion(reunionID, userID); err != nil {
		return sendReunionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Reunion deleted successfully"})
}

// sendReunionError maps reunion service errors onto API error codes
func sendReunionError(c echo.Context, err error) error {
	switch err {
	case services.ErrNotFound:
		return SendError(c, errors.ReunionNotFound)
	case services.ErrUnauthorized:
		return SendError(c, errors.AuthNotReunionOwner)
	default:
		return SendSystemError(c, err)
	}
}
