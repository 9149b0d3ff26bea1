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

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/current-balance", h.getCurrentBalance)
		reportingGroup.GET("/transactions", h.listTransactions)
		reportingGroup.GET("/ad-expenses", h.getAdExpenses)
	}
}

// getCurrentBalance godoc
// @Summary Current balance of the neobank account
// @Description Debit and credit totals plus the transactions they were computed from
// @Tags reports
// @Produce json
// @Param account_id query int false "Account ID"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.CurrentBalance
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/current-balance [get]
func (h *reportingHandler) getCurrentBalance(c *gin.Context) {
	p, filter, ok := reportFilter(c, "GetCurrentBalance")
	if !ok {
		return
	}
	balance, err := h.reportingService.GetCurrentBalance(c.Request.Context(), p, filter)
	if err != nil {
		respondWithError(c, err, "Failed to generate current balance")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Current balance generated",
		slog.String("current_balance", balance.CurrentBalance.String()),
		slog.Int("transaction_count", len(balance.Transactions)))
	c.JSON(http.StatusOK, balance)
}

// listTransactions godoc
// @Summary Finance transactions of the neobank account
// @Tags reports
// @Produce json
// @Param account_id query int false "Account ID"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} domain.FinanceTransaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/transactions [get]
func (h *reportingHandler) listTransactions(c *gin.Context) {
	p, filter, ok := reportFilter(c, "ListFinanceTransactions")
	if !ok {
		return
	}
	txns, err := h.reportingService.ListFinanceTransactions(c.Request.Context(), p, filter)
	if err != nil {
		respondWithError(c, err, "Failed to list finance transactions")
		return
	}
	c.JSON(http.StatusOK, nonNil(txns))
}

// getAdExpenses godoc
// @Summary Advertising expenses for a date range
// @Tags reports
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.AdExpenses
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/ad-expenses [get]
func (h *reportingHandler) getAdExpenses(c *gin.Context) {
	p, filter, ok := reportFilter(c, "GetAdExpenses")
	if !ok {
		return
	}
	expenses, err := h.reportingService.GetAdExpenses(c.Request.Context(), p, filter)
	if err != nil {
		respondWithError(c, err, "Failed to generate ad expenses report")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func reportFilter(c *gin.Context, op string) (domain.Principal, domain.DateRange, bool) {
	p, ok := principalFrom(c)
	if !ok {
		return p, domain.DateRange{}, false
	}
	var params dto.ReportParams
	if !bindQuery(c, &params, op) {
		return p, domain.DateRange{}, false
	}
	return p, params.ToDomain(), true
}
