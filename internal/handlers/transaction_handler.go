package handlers

import (
	"net/http"

	"finance-assistant/internal/dto"
	"finance-assistant/internal/errors"
	"finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	formService services.FormServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(formService services.FormServiceInterface) *TransactionHandler {
	return &TransactionHandler{formService: formService}
}

// ListTransactions returns the user's transactions as the backend lists them
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Transaction}
// @Failure 502 {object} errors.ErrorResponse "BACKEND_001 - Backend unreachable or BACKEND_003 - Malformed response"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.formService.ListTransactions(c.Request().Context())
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: transactions})
}

// CreateTransaction submits a new transaction
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields"
// @Failure 422 {object} errors.ErrorResponse "BACKEND_002 - Rejected by backend"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	tx, err := h.formService.CreateTransaction(c.Request().Context(), &req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.MutationResponse{Message: "Transaction created", Data: tx})
}

// UpdateTransaction replaces an existing transaction
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body dto.TransactionRequest true "Transaction"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid fields or VALIDATION_006 - Invalid ID"
// @Failure 404 {object} errors.ErrorResponse "BACKEND_004 - Transaction not found"
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendInvalidID(c, err)
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	tx, err := h.formService.UpdateTransaction(c.Request().Context(), id, &req)
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MutationResponse{Message: "Transaction updated", Data: tx})
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Tags Transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} errors.ErrorResponse "BACKEND_004 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendInvalidID(c, err)
	}

	if err := h.formService.DeleteTransaction(c.Request().Context(), id); err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MutationResponse{Message: "Transaction deleted"})
}
