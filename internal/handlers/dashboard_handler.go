package handlers

import (
	"net/http"

	"finance-assistant/internal/errors"
	"finance-assistant/internal/models"
	"finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the home page summary
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	currencySymbol   string
}

// NewDashboardHandler creates a new dashboard handler; currencySymbol prefixes the display balance
func NewDashboardHandler(dashboardService services.DashboardServiceInterface, currencySymbol string) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		currencySymbol:   currencySymbol,
	}
}

// dashboardMeta carries display-ready values next to the raw summary
type dashboardMeta struct {
	CurrencySymbol string `json:"currency_symbol"`
	DisplayBalance string `json:"display_balance"`
}

// dashboardErrorResponse carries the error state summary next to the coded error
type dashboardErrorResponse struct {
	Error errors.ErrorDetail       `json:"error"`
	Data  *models.DashboardSummary `json:"data"`
}

var dashboardErrorCodes = map[string]errors.ErrorCode{
	models.DashboardSourceTransactions: errors.DashboardTransactionsUnavailable,
	models.DashboardSourceGoals:        errors.DashboardGoalsUnavailable,
}

// GetSummary returns the dashboard summary
// @Summary Dashboard summary
// @Description Total balance, transactions this month, active goals and category count.
// @Description The summary is never partial: when transactions or goals cannot be loaded the
// @Description response is 502 with the failed source; a categories failure only zeroes category_count.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.DashboardSummary,meta=dashboardMeta} "Summary computed"
// @Failure 502 {object} dashboardErrorResponse "DASHBOARD_001 / DASHBOARD_002 - Required data unavailable"
// @Router /dashboard [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary := h.dashboardService.GetSummary(c.Request().Context())

	if !summary.IsError() {
		return c.JSON(http.StatusOK, SuccessResponse{
			Data: summary,
			Meta: dashboardMeta{
				CurrencySymbol: h.currencySymbol,
				DisplayBalance: h.currencySymbol + summary.DisplayBalance(),
			},
		})
	}

	code, ok := dashboardErrorCodes[summary.Error.Source]
	if !ok {
		code = errors.SystemServiceUnavailable
	}

	errorResponse := errors.NewErrorResponse(code, getTraceID(c),
		errors.WithDetails(summary.Error.Message),
		errors.WithRetry(),
	)
	return c.JSON(errorResponse.GetHTTPStatus(), dashboardErrorResponse{
		Error: errorResponse.Error,
		Data:  summary,
	})
}
