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
)

// BudgetHandler handles the derived budget view and sync endpoints
type BudgetHandler struct {
	summaryService services.BudgetSummaryServiceInterface
	syncService    services.SyncServiceInterface
	reunionService services.ReunionServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	summaryService services.BudgetSummaryServiceInterface,
	syncService services.SyncServiceInterface,
	reunionService services.ReunionServiceInterface,
) *BudgetHandler {
	return &BudgetHandler{
		summaryService: summaryService,
		syncService:    syncService,
		reunionService: reunionService,
	}
}

func (h *BudgetHandler) resolveOwnedReunion(c echo.Context) (uuid.UUID, bool, error) {
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

// GetBudgetSummary recomputes and returns the budget view of a reunion
func (h *BudgetHandler) GetBudgetSummary(c echo.Context) error {
	reunionID, ok, respErr := h.resolveOwnedReunion(c)
	if !ok {
		return respErr
	}

	summary, err := h.summaryService.Summarize(reunionID)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.ReunionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetSummaryResponse{Summary: summary})
}

// GetCategoryReport returns the per-category totals of a reunion
func (h *BudgetHandler) GetCategoryReport(c echo.Context) error {
	reunionID, ok, respErr := h.resolveOwnedReunion(c)
	if !ok {
		return respErr
	}

	rows, err := h.summaryService.CategoryReport(reunionID)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.ReunionNotFound)
		}
		return SendSystemError(c, err)
	}

	categories := make([]dto.CategoryReportRow, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, dto.CategoryReportRow{
			BudgetCategory: row.BudgetCategory,
			DisplayName:    models.CategoryDisplayName(row.BudgetCategory),
			ItemCount:      row.ItemCount,
			TotalEstimated: row.TotalEstimated,
			TotalActual:    row.TotalActual,
		})
	}

	return c.JSON(http.StatusOK, dto.CategoryReportResponse{
		ReunionID:  reunionID.String(),
		Categories: categories,
	})
}

// SyncBudget marks a batch of line items as folded into the budget view
func (h *BudgetHandler) SyncBudget(c echo.Context) error {
	reunionID, ok, respErr := h.resolveOwnedReunion(c)
	if !ok {
		return respErr
	}

	var req dto.SyncBatchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	itemIDs := make([]uuid.UUID, 0, len(req.ItemIDs))
	for _, idStr := range req.ItemIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat,
				errors.WithDetails(fmt.Sprintf("Invalid item ID: %s", idStr)))
		}
		itemIDs = append(itemIDs, id)
	}

	outcome, err := h.syncService.SyncBatch(reunionID, itemIDs)
	if err != nil {
		switch err {
		case services.ErrNotFound:
			return SendError(c, errors.ReunionNotFound)
		case services.ErrSyncBatchTooLarge:
			return SendError(c, errors.SyncBatchTooLarge)
		default:
			return SendSystemError(c, err)
		}
	}

	message := fmt.Sprintf("Synced %d line items", outcome.SyncedCount)
	if outcome.ScopeEmpty {
		message = "Nothing to sync"
	}

	return c.JSON(http.StatusOK, dto.SyncBatchResponse{
		SyncedCount:     outcome.SyncedCount,
		SyncedTotal:     outcome.SyncedTotal,
		ScopeEmpty:      outcome.ScopeEmpty,
		ConflictItemIDs: outcome.ConflictItemIDs,
		Message:         message,
	})
}
