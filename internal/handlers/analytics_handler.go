package handlers

import (
	"net/http"

	"finance-assistant/internal/errors"
	"finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the analytics page
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetReport returns the backend analytics for a period
// @Summary Analytics report
// @Tags Analytics
// @Produce json
// @Param period query int false "Days" Enums(7, 30, 90, 365) default(30)
// @Success 200 {object} SuccessResponse{data=models.Analytics}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Unsupported period"
// @Router /analytics [get]
func (h *AnalyticsHandler) GetReport(c echo.Context) error {
	period, ok := getIntParam(c, "period", 0)
	if !ok {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("period must be a number"))
	}

	report, err := h.analyticsService.Report(c.Request().Context(), period)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: report})
}
