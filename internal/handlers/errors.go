package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Insufficient funds"`
	Code  string `json:"code" example:"INSUFFICIENT_FUNDS"`
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string // empty means the error text itself is safe to return
}

// errorMappings is checked in order; specific errors precede their categories.
var errorMappings = []errorMapping{
	{apperrors.ErrAccountNumberExhausted, http.StatusBadRequest, "ACCOUNT_NUMBER_EXHAUSTED", "Failed to create account number after 10 attempts"},
	{apperrors.ErrInsufficientFunds, http.StatusConflict, "INSUFFICIENT_FUNDS", "Insufficient funds"},
	{apperrors.ErrSameAccount, http.StatusUnprocessableEntity, "SAME_ACCOUNT", "Source and destination accounts must differ"},
	{apperrors.ErrInvalidAmount, http.StatusUnprocessableEntity, "INVALID_AMOUNT", "Amount must have at most 2 decimal places"},
	{apperrors.ErrBusinessRule, http.StatusUnprocessableEntity, "BUSINESS_RULE_VIOLATION", ""},
	{apperrors.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR", ""},
	{apperrors.ErrAccountNotFound, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found"},
	{apperrors.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND", "Customer not found"},
	{apperrors.ErrTransactionNotFound, http.StatusNotFound, "TRANSACTION_NOT_FOUND", "Transaction not found"},
	{apperrors.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Resource not found"},
	{apperrors.ErrDuplicate, http.StatusBadRequest, "DUPLICATE_RESOURCE", ""},
	{apperrors.ErrUnavailable, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Service temporarily unavailable, please retry"},
	{apperrors.ErrConflictRetryable, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Service temporarily unavailable, please retry"},
}

// respondError maps err onto a status code and a stable error code. Storage
// error text is never sent to the client.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		message := m.message
		if message == "" {
			message = err.Error()
		}
		if m.status >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error", err.Error()), slog.String("code", m.code))
			c.Header("Retry-After", "1")
		} else {
			logger.Warn("Request rejected", slog.String("error", err.Error()), slog.String("code", m.code))
		}
		c.JSON(m.status, ErrorResponse{Error: message, Code: m.code})
		return
	}

	logger.Error("Unhandled error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Code: "INTERNAL_ERROR"})
}

// parseIDParam reads a positive integer path parameter, responding 400 otherwise.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name, Code: "VALIDATION_ERROR"})
		return 0, false
	}
	return id, true
}

// parsePageQuery reads the optional ?page= query parameter. Absent means the first page.
func parsePageQuery(c *gin.Context) (int, bool) {
	raw := c.Query("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid page number", Code: "VALIDATION_ERROR"})
		return 0, false
	}
	return page, true
}
