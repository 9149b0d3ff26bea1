package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/ecomhub/finance_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to operational expenses.
type expenseHandler struct {
	expenseService portssvc.OperationalExpenseSvcFacade
}

// RegisterExpenseRoutes registers routes related to operational expenses.
func RegisterExpenseRoutes(rg *gin.RouterGroup, es portssvc.OperationalExpenseSvcFacade) {
	h := &expenseHandler{expenseService: es}

	expenses := rg.Group("/operational-expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.POST("", h.createExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
		expenses.POST("/:id/approve", h.approveExpense)
		expenses.POST("/:id/reject", h.rejectExpense)
		expenses.POST("/:id/pay", h.payExpense)
	}
}

// listExpenses godoc
// @Summary List operational expenses
// @Tags operational-expenses
// @Produce  json
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Search text"
// @Param   status query string false "pending, approved, rejected or paid"
// @Param   category_id query int false "Expense category"
// @Success 200 {object} domain.Page[domain.OperationalExpense]
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /operational-expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var params dto.ListExpensesParams
	if !bindQuery(c, &params, "ListExpenses") {
		return
	}
	page, err := h.expenseService.ListExpenses(c.Request.Context(), p, params.ToDomain())
	if err != nil {
		respondWithError(c, err, "Failed to list operational expenses")
		return
	}
	c.JSON(http.StatusOK, page)
}

// getExpense godoc
// @Summary Get an operational expense
// @Tags operational-expenses
// @Produce  json
// @Param   id path int true "Expense ID"
// @Success 200 {object} domain.OperationalExpense
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /operational-expenses/{id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	serveByID(c, h.expenseService.GetExpense, "Failed to retrieve operational expense")
}

// createExpense godoc
// @Summary Record an operational expense
// @Tags operational-expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.OperationalExpenseRequest true "Expense details"
// @Success 201 {object} domain.OperationalExpense
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /operational-expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var req dto.OperationalExpenseRequest
	if !bindJSON(c, &req, "CreateExpense") {
		return
	}
	expense, err := h.expenseService.CreateExpense(c.Request.Context(), p, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to create operational expense")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Operational expense recorded",
		slog.Int64("expense_id", expense.ID),
		slog.String("amount", expense.Amount.String()))
	c.JSON(http.StatusCreated, expense)
}

// updateExpense godoc
// @Summary Update a pending operational expense
// @Description Only the creator or an admin may edit, and only while the expense is pending.
// @Tags operational-expenses
// @Accept  json
// @Produce  json
// @Param   id path int true "Expense ID"
// @Param   expense body dto.OperationalExpenseRequest true "Expense details"
// @Success 200 {object} domain.OperationalExpense
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Not the creator"
// @Failure 409 {object} map[string]string "Expense is not pending"
// @Security BearerAuth
// @Router /operational-expenses/{id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.OperationalExpenseRequest
	if !bindJSON(c, &req, "UpdateExpense") {
		return
	}
	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to update operational expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// deleteExpense godoc
// @Summary Delete a pending operational expense
// @Tags operational-expenses
// @Produce  json
// @Param   id path int true "Expense ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} map[string]string "Not the creator"
// @Failure 409 {object} map[string]string "Expense is not pending"
// @Security BearerAuth
// @Router /operational-expenses/{id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	deleteByID(c, h.expenseService.DeleteExpense, "Operational expense deleted successfully", "Failed to delete operational expense")
}

// approveExpense godoc
// @Summary Approve a pending expense
// @Tags operational-expenses
// @Produce  json
// @Param   id path int true "Expense ID"
// @Success 200 {object} domain.OperationalExpense
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Expense is not pending"
// @Security BearerAuth
// @Router /operational-expenses/{id}/approve [post]
func (h *expenseHandler) approveExpense(c *gin.Context) {
	serveByID(c, h.expenseService.ApproveExpense, "Failed to approve operational expense")
}

// rejectExpense godoc
// @Summary Reject a pending expense
// @Tags operational-expenses
// @Produce  json
// @Param   id path int true "Expense ID"
// @Success 200 {object} domain.OperationalExpense
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Expense is not pending"
// @Security BearerAuth
// @Router /operational-expenses/{id}/reject [post]
func (h *expenseHandler) rejectExpense(c *gin.Context) {
	serveByID(c, h.expenseService.RejectExpense, "Failed to reject operational expense")
}

// payExpense godoc
// @Summary Mark an approved expense as paid
// @Tags operational-expenses
// @Produce  json
// @Param   id path int true "Expense ID"
// @Success 200 {object} domain.OperationalExpense
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Expense is not approved"
// @Security BearerAuth
// @Router /operational-expenses/{id}/pay [post]
func (h *expenseHandler) payExpense(c *gin.Context) {
	serveByID(c, h.expenseService.PayExpense, "Failed to pay operational expense")
}
