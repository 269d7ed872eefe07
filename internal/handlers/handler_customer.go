package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/gin-gonic/gin"
)

type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	accountService  portssvc.AccountReaderSvc
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade, as portssvc.AccountReaderSvc) *customerHandler {
	return &customerHandler{customerService: cs, accountService: as}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, cs portssvc.CustomerSvcFacade, as portssvc.AccountReaderSvc) {
	h := newCustomerHandler(cs, as)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customerID", h.getCustomer)
		customers.GET("/:customerID/accounts", h.listCustomerAccounts)
		customers.GET("/:customerID/accounts/:accountID", h.getCustomerAccount)
	}
}

// createCustomer godoc
// @Summary Register a customer
// @Description Creates a customer. Emails are unique, compared case-insensitively.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure 503 {object} ErrorResponse
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, dto.ValidationError(err))
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Description Returns one page of customers ordered by name.
// @Tags customers
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 400 {object} ErrorResponse "Invalid page number"
// @Failure 503 {object} ErrorResponse
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	page, ok := parsePageQuery(c)
	if !ok {
		return
	}

	customers, pageInfo, err := h.customerService.ListCustomers(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomersResponse(customers, pageInfo))
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{customerID} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerID")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// listCustomerAccounts godoc
// @Summary List a customer's accounts
// @Description Accounts are ordered by type, descending.
// @Tags customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{customerID}/accounts [get]
func (h *customerHandler) listCustomerAccounts(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerID")
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccountsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getCustomerAccount godoc
// @Summary Get one of a customer's accounts
// @Description Returns 404 when the account does not exist or belongs to another customer.
// @Tags customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{customerID}/accounts/{accountID} [get]
func (h *customerHandler) getCustomerAccount(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerID")
	if !ok {
		return
	}
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}

	account, err := h.accountService.GetCustomerAccount(c.Request.Context(), customerID, accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
