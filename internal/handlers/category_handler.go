package handlers

import (
	"net/http"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/errors"
	"finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the categories page
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetStats returns category statistics for a period
// @Summary Category statistics
// @Tags Categories
// @Produce json
// @Param period query int false "Days" Enums(7, 30, 90, 365) default(30)
// @Param filter query string false "Category type" Enums(all, income, expense) default(all)
// @Success 200 {object} SuccessResponse{data=models.CategoryStatsView}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Unsupported period or filter"
// @Router /categories/stats [get]
func (h *CategoryHandler) GetStats(c echo.Context) error {
	var query dto.CategoryStatsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("period must be a number"))
	}

	view, err := h.categoryService.Stats(c.Request().Context(), query.Period, query.Filter)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}

// SeedCategories creates the backend's default categories for the user
// @Summary Seed default categories
// @Tags Categories
// @Produce json
// @Success 201 {object} dto.MutationResponse
// @Router /categories/seed [post]
func (h *CategoryHandler) SeedCategories(c echo.Context) error {
	msg, err := h.categoryService.Seed(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.MutationResponse{Message: msg})
}

// CreateCategory creates a custom category
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	msg, err := h.categoryService.Create(c.Request().Context(), &req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.MutationResponse{Message: msg})
}

// DeleteCategory removes a category
// @Summary Delete category
// @Tags Categories
// @Param id path int true "Category ID"
// @Success 200 {object} dto.MutationResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendInvalidID(c, err)
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MutationResponse{Message: "Category deleted"})
}
