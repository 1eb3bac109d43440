package handlers

import (
	"fmt"
	"net/http"

	"reunion-planner/internal/dto"
	"reunion-planner/internal/errors"
	"reunion-planner/internal/models"
	"reunion-planner/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// LineItemHandler handles line item HTTP requests. Ownership of the reunion is
// checked through the reunion service before any ledger operation runs.
type LineItemHandler struct {
	lineItemService services.LineItemServiceInterface
	reunionService  services.ReunionServiceInterface
}

// NewLineItemHandler creates a new line item handler
func NewLineItemHandler(
	lineItemService services.LineItemServiceInterface,
	reunionService services.ReunionServiceInterface,
) *LineItemHandler {
	return &LineItemHandler{
		lineItemService: lineItemService,
		reunionService:  reunionService,
	}
}

// resolveOwnedReunion parses the reunionId path parameter and verifies the
// authenticated user owns that reunion. On failure it writes the error
// response and returns ok=false.
func (h *LineItemHandler) resolveOwnedReunion(c echo.Context) (uuid.UUID, bool, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return uuid.Nil, false, SendError(c, errors.AuthMissingToken)
	}

	reunionID, err := getReunionIDParam(c)
	if err != nil {
		return uuid.Nil, false, SendError(c, errors.ReunionInvalidID)
	}

	if _, err := h.reunionService.GetReunion(reunionID, userID); err != nil {
		return uuid.Nil, false, sendReunionError(c, err)
	}

	return reunionID, true, nil
}

// UpsertLineItem creates or updates the line item owned by a source record
func (h *LineItemHandler) UpsertLineItem(c echo.Context) error {
	reunionID, ok, respErr := h.resolveOwnedReunion(c)
	if !ok {
		return respErr
	}

	var req dto.UpsertLineItemRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	item, created, err := h.lineItemService.Upsert(reunionID, &req)
	if err != nil {
		return sendLineItemError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return c.JSON(status, dto.UpsertLineItemResponse{
		LineItem: item,
		Created:  created,
	})
}

// RemoveLineItem deletes the line item owned by a source record. Removing an
// absent item succeeds with removed=false.
func (h *LineItemHandler) RemoveLineItem(c echo.Context) error {
	reunionID, ok, respErr := h.resolveOwnedReunion(c)
	if !ok {
		return respErr
	}

	sourceModule := c.Param("sourceModule")
	sourceKey := c.Param("sourceKey")

	removed, err := h.lineItemService.Remove(reunionID, sourceModule, sourceKey)
	if err != nil {
		return sendLineItemError(c, err)
	}

	message := "Line item removed"
	if !removed {
		message = "No line item to remove"
	}

	return c.JSON(http.StatusOK, dto.RemoveLineItemResponse{
		Removed: removed,
		Message: message,
	})
}

// ListLineItems returns the line items of a reunion, optionally filtered
func (h *LineItemHandler) ListLineItems(c echo.Context) error {
	reunionID, ok, respErr := h.resolveOwnedReunion(c)
	if !ok {
		return respErr
	}

	filters, err := parseLineItemFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	filters.ReunionID = reunionID

	items, total, err := h.lineItemService.ListWithFilters(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LineItemListResponse{
		LineItems: items,
		Total:     total,
		Offset:    filters.Offset,
		Limit:     filters.Limit,
	})
}

// parseLineItemFilters binds and validates line item filter parameters
func parseLineItemFilters(c echo.Context) (models.LineItemFilters, error) {
	var params dto.LineItemFilterParams
	if err := c.Bind(&params); err != nil {
		return models.LineItemFilters{}, errInvalidFilter("filter")
	}

	filters := models.LineItemFilters{
		Synced: params.Synced,
		Offset: params.Offset,
		Limit:  params.Limit,
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	if params.SourceModule != "" {
		if !models.IsValidSourceModule(params.SourceModule) {
			return filters, errInvalidFilter("sourceModule")
		}
		filters.SourceModule = params.SourceModule
	}

	if params.BudgetCategory != "" {
		if !models.IsValidBudgetCategory(params.BudgetCategory) {
			return filters, errInvalidFilter("budgetCategory")
		}
		filters.BudgetCategory = params.BudgetCategory
	}

	if params.MinEstimated != "" {
		min, err := decimal.NewFromString(params.MinEstimated)
		if err != nil {
			return filters, errInvalidFilter("minEstimated")
		}
		filters.MinEstimated = &min
	}

	if params.MaxEstimated != "" {
		max, err := decimal.NewFromString(params.MaxEstimated)
		if err != nil {
			return filters, errInvalidFilter("maxEstimated")
		}
		filters.MaxEstimated = &max
	}

	if params.Label != "" {
		filters.LabelContains = params.Label
	}

	return filters, nil
}

func errInvalidFilter(name string) error {
	return fmt.Errorf("invalid %s parameter", name)
}

// sendLineItemError maps line item service errors onto API error codes
func sendLineItemError(c echo.Context, err error) error {
	switch err {
	case models.ErrInvalidAmount:
		return SendError(c, errors.LineItemInvalidAmount)
	case models.ErrAmountTooLarge:
		return SendError(c, errors.LineItemAmountTooLarge)
	case models.ErrInvalidSourceModule:
		return SendError(c, errors.LineItemInvalidSource)
	case models.ErrOptimisticLockConflict:
		return SendError(c, errors.SyncConflict)
	case services.ErrNotFound:
		return SendError(c, errors.ReunionNotFound)
	default:
		return SendSystemError(c, err)
	}
}
