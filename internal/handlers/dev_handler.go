package handlers

import (
	"net/http"
	"time"

	"reunion-planner/internal/repositories"
	"reunion-planner/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	lineItemRepo   repositories.LineItemRepositoryInterface
	reunionService services.ReunionServiceInterface
	generator      services.LineItemGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	lineItemRepo repositories.LineItemRepositoryInterface,
	reunionService services.ReunionServiceInterface,
) *DevHandler {
	return &DevHandler{
		lineItemRepo:   lineItemRepo,
		reunionService: reunionService,
		generator:      services.NewLineItemGenerator(uint64(time.Now().UnixNano()), services.NewCategoryMapper()),
	}
}

// GenerateSampleData fills a reunion with realistic line items across all
// source modules
//
// Method: POST /api/v1/dev/reunions/:reunionId/generate-sample-data
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of line items to generate (default: 30, max: 200)
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	reunionID, err := getReunionIDParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reunion ID")
	}

	if _, err := h.reunionService.GetReunion(reunionID, userID); err != nil {
		switch err {
		case services.ErrNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "reunion not found")
		case services.ErrUnauthorized:
			return echo.NewHTTPError(http.StatusForbidden, "access denied")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to retrieve reunion")
		}
	}

	count := getIntParam(c, "count", 30)
	if count < 1 {
		count = 1
	}
	if count > 200 {
		count = 200
	}

	items := h.generator.GenerateLineItems(reunionID, count)

	created := 0
	for _, item := range items {
		if err := h.lineItemRepo.Create(item); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":            "sample data generated successfully",
		"line_items_created": created,
		"reunion_id":         reunionID,
	})
}
