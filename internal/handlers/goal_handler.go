package handlers

import (
	"net/http"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/errors"
	"finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// GoalHandler handles savings goal requests
type GoalHandler struct {
	formService services.FormServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(formService services.FormServiceInterface) *GoalHandler {
	return &GoalHandler{formService: formService}
}

// ListGoals returns the goals with progress, days remaining and priority label
// @Summary List goals
// @Tags Goals
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.GoalWithProgress}
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	goals, err := h.formService.ListGoals(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: goals})
}

// CreateGoal submits a new savings goal
// @Summary Create goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body dto.GoalRequest true "Goal"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields"
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req dto.GoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	goal, err := h.formService.CreateGoal(c.Request().Context(), &req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.MutationResponse{Message: "Goal created", Data: goal})
}

// UpdateGoal replaces an existing goal
// @Summary Update goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param request body dto.GoalRequest true "Goal"
// @Success 200 {object} dto.MutationResponse
// @Router /goals/{id} [patch]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendInvalidID(c, err)
	}

	var req dto.GoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	goal, err := h.formService.UpdateGoal(c.Request().Context(), id, &req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MutationResponse{Message: "Goal updated", Data: goal})
}

// DeleteGoal removes a goal
// @Summary Delete goal
// @Tags Goals
// @Param id path int true "Goal ID"
// @Success 200 {object} dto.MutationResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendInvalidID(c, err)
	}

	if err := h.formService.DeleteGoal(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MutationResponse{Message: "Goal deleted"})
}
