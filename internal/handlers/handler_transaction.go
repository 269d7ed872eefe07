package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransactionHandler(ts portssvc.TransferSvcFacade) *transactionHandler {
	return &transactionHandler{transferService: ts}
}

// registerTransactionRoutes registers routes related to transfers and ledger entries.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransferSvcFacade) {
	h := newTransactionHandler(ts)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransfer)
		transactions.GET("/:transactionID", h.getTransaction)
	}
}

// createTransfer godoc
// @Summary Transfer money
// @Description Moves an amount from one account to another. Debit, credit and ledger entry are applied together or not at all.
// @Description Each successful call creates a new transaction; requests are not deduplicated.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Malformed request or non-positive amount"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Insufficient funds"
// @Failure 422 {object} ErrorResponse "Same account or more than 2 decimal places"
// @Failure 503 {object} ErrorResponse "Temporarily unavailable, nothing was applied"
// @Router /transactions [post]
func (h *transactionHandler) createTransfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, dto.ValidationError(err))
		return
	}

	txn, err := h.transferService.Transfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transactionID path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	transactionID, ok := parseIDParam(c, "transactionID")
	if !ok {
		return
	}

	txn, err := h.transferService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
