package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/ecomhub/finance_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade) {
	h := newAccountHandler(as)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/no_page", h.listAllAccounts)
		accounts.GET("/type/:type", h.listAccountsByType)
		accounts.GET("/parent/:id", h.listChildAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.POST("", h.createAccount)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deleteAccount)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce  json
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Search by code or name"
// @Param   account_type query string false "Account type"
// @Success 200 {object} domain.Page[domain.Account]
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var params dto.ListAccountsParams
	if !bindQuery(c, &params, "ListAccounts") {
		return
	}
	page, err := h.accountService.ListAccounts(c.Request.Context(), p, params.ToDomain())
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, page)
}

// listAllAccounts godoc
// @Summary List every account without pagination
// @Tags accounts
// @Produce  json
// @Success 200 {array} domain.Account
// @Security BearerAuth
// @Router /accounts/no_page [get]
func (h *accountHandler) listAllAccounts(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	accounts, err := h.accountService.ListAllAccounts(c.Request.Context(), p)
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, nonNil(accounts))
}

// listAccountsByType godoc
// @Summary List accounts of one type
// @Tags accounts
// @Produce  json
// @Param   type path string true "asset, liability, equity, revenue, expense, contra_asset or contra_liability"
// @Success 200 {array} domain.Account
// @Failure 400 {object} map[string]string "Invalid account type"
// @Security BearerAuth
// @Router /accounts/type/{type} [get]
func (h *accountHandler) listAccountsByType(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	accounts, err := h.accountService.ListAccountsByType(c.Request.Context(), p, domain.AccountType(c.Param("type")))
	if err != nil {
		respondWithError(c, err, "Failed to list accounts by type")
		return
	}
	c.JSON(http.StatusOK, nonNil(accounts))
}

// listChildAccounts godoc
// @Summary List the direct children of an account
// @Tags accounts
// @Produce  json
// @Param   id path int true "Parent account ID"
// @Success 200 {array} domain.Account
// @Security BearerAuth
// @Router /accounts/parent/{id} [get]
func (h *accountHandler) listChildAccounts(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	parentID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	accounts, err := h.accountService.ListChildAccounts(c.Request.Context(), p, parentID)
	if err != nil {
		respondWithError(c, err, "Failed to list child accounts")
		return
	}
	c.JSON(http.StatusOK, nonNil(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} domain.Account
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	serveByID(c, h.accountService.GetAccount, "Failed to retrieve account")
}

// createAccount godoc
// @Summary Create an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.AccountRequest true "Account details"
// @Success 201 {object} domain.Account
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Account code already exists"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var req dto.AccountRequest
	if !bindJSON(c, &req, "CreateAccount") {
		return
	}
	account, err := h.accountService.CreateAccount(c.Request.Context(), p, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to create account")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account created successfully", slog.Int64("account_id", account.ID))
	c.JSON(http.StatusCreated, account)
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path int true "Account ID"
// @Param   account body dto.AccountRequest true "Account details"
// @Success 200 {object} domain.Account
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.AccountRequest
	if !bindJSON(c, &req, "UpdateAccount") {
		return
	}
	account, err := h.accountService.UpdateAccount(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// deleteAccount godoc
// @Summary Delete an account
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	deleteByID(c, h.accountService.DeleteAccount, "Account deleted successfully", "Failed to delete account")
}

// expenseCategoryHandler handles HTTP requests related to expense categories.
type expenseCategoryHandler struct {
	categoryService portssvc.ExpenseCategorySvcFacade
}

// RegisterExpenseCategoryRoutes registers routes related to expense categories.
func RegisterExpenseCategoryRoutes(rg *gin.RouterGroup, cs portssvc.ExpenseCategorySvcFacade) {
	h := &expenseCategoryHandler{categoryService: cs}

	categories := rg.Group("/expense-categories")
	{
		categories.GET("", h.listExpenseCategories)
		categories.GET("/no_page", h.listAllExpenseCategories)
		categories.GET("/:id", h.getExpenseCategory)
		categories.POST("", h.createExpenseCategory)
		categories.PUT("/:id", h.updateExpenseCategory)
		categories.DELETE("/:id", h.deleteExpenseCategory)
	}
}

// listExpenseCategories godoc
// @Summary List expense categories
// @Tags expense-categories
// @Produce  json
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Search by name"
// @Success 200 {object} domain.Page[domain.ExpenseCategory]
// @Security BearerAuth
// @Router /expense-categories [get]
func (h *expenseCategoryHandler) listExpenseCategories(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if !bindQuery(c, &params, "ListExpenseCategories") {
		return
	}
	page, err := h.categoryService.ListExpenseCategories(c.Request.Context(), p, params.ToDomain())
	if err != nil {
		respondWithError(c, err, "Failed to list expense categories")
		return
	}
	c.JSON(http.StatusOK, page)
}

// listAllExpenseCategories godoc
// @Summary List every expense category without pagination
// @Tags expense-categories
// @Produce  json
// @Success 200 {array} domain.ExpenseCategory
// @Security BearerAuth
// @Router /expense-categories/no_page [get]
func (h *expenseCategoryHandler) listAllExpenseCategories(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	categories, err := h.categoryService.ListAllExpenseCategories(c.Request.Context(), p)
	if err != nil {
		respondWithError(c, err, "Failed to list expense categories")
		return
	}
	c.JSON(http.StatusOK, nonNil(categories))
}

// getExpenseCategory godoc
// @Summary Get an expense category
// @Tags expense-categories
// @Produce  json
// @Param   id path int true "Category ID"
// @Success 200 {object} domain.ExpenseCategory
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /expense-categories/{id} [get]
func (h *expenseCategoryHandler) getExpenseCategory(c *gin.Context) {
	serveByID(c, h.categoryService.GetExpenseCategory, "Failed to retrieve expense category")
}

// createExpenseCategory godoc
// @Summary Create an expense category
// @Tags expense-categories
// @Accept  json
// @Produce  json
// @Param   category body dto.ExpenseCategoryRequest true "Category details"
// @Success 201 {object} domain.ExpenseCategory
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /expense-categories [post]
func (h *expenseCategoryHandler) createExpenseCategory(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var req dto.ExpenseCategoryRequest
	if !bindJSON(c, &req, "CreateExpenseCategory") {
		return
	}
	category, err := h.categoryService.CreateExpenseCategory(c.Request.Context(), p, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to create expense category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// updateExpenseCategory godoc
// @Summary Update an expense category
// @Tags expense-categories
// @Accept  json
// @Produce  json
// @Param   id path int true "Category ID"
// @Param   category body dto.ExpenseCategoryRequest true "Category details"
// @Success 200 {object} domain.ExpenseCategory
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /expense-categories/{id} [put]
func (h *expenseCategoryHandler) updateExpenseCategory(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.ExpenseCategoryRequest
	if !bindJSON(c, &req, "UpdateExpenseCategory") {
		return
	}
	category, err := h.categoryService.UpdateExpenseCategory(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to update expense category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// deleteExpenseCategory godoc
// @Summary Delete an expense category
// @Tags expense-categories
// @Produce  json
// @Param   id path int true "Category ID"
// @Success 200 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /expense-categories/{id} [delete]
func (h *expenseCategoryHandler) deleteExpenseCategory(c *gin.Context) {
	deleteByID(c, h.categoryService.DeleteExpenseCategory, "Expense category deleted successfully", "Failed to delete expense category")
}

// nonNil keeps empty lists serialized as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
