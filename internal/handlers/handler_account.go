package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/gin-gonic/gin"
)

type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.TransactionReaderSvc
}

func newAccountHandler(as portssvc.AccountSvcFacade, ts portssvc.TransactionReaderSvc) *accountHandler {
	return &accountHandler{accountService: as, transactionService: ts}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, ts portssvc.TransactionReaderSvc) {
	h := newAccountHandler(as, ts)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/transactions", h.listAccountTransactions)
	}
}

// createAccount godoc
// @Summary Open an account
// @Description Opens an account for an existing customer with a generated account number.
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse "Invalid input or no free account number"
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Failure 503 {object} ErrorResponse
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, dto.ValidationError(err))
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account
// @Description Returns the account with its current balance.
// @Tags accounts
// @Produce json
// @Param accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccountTransactions godoc
// @Summary List an account's transactions
// @Description Returns one page of ledger entries where the account is source or destination, newest first.
// @Tags accounts
// @Produce json
// @Param accountID path int true "Account ID"
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{accountID}/transactions [get]
func (h *accountHandler) listAccountTransactions(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}
	page, ok := parsePageQuery(c)
	if !ok {
		return
	}

	txns, pageInfo, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), accountID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, pageInfo))
}
