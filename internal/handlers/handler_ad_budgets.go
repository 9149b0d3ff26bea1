package handlers

import (
	"net/http"

	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type adBudgetHandler struct {
	budgetService portssvc.AdBudgetSvcFacade
}

// RegisterAdBudgetRoutes registers routes related to ad budgets.
func RegisterAdBudgetRoutes(rg *gin.RouterGroup, bs portssvc.AdBudgetSvcFacade) {
	h := &adBudgetHandler{budgetService: bs}

	budgets := rg.Group("/ad-budgets")
	{
		budgets.GET("", h.listAdBudgets)
		budgets.GET("/month/:month", h.listAdBudgetsByMonth)
		budgets.GET("/:id", h.getAdBudget)
		budgets.POST("", h.createAdBudget)
		budgets.PUT("/:id", h.updateAdBudget)
		budgets.PATCH("/:id/spent", h.updateAdBudgetSpent)
		budgets.DELETE("/:id", h.deleteAdBudget)
	}
}

// listAdBudgets godoc
// @Summary List ad budgets
// @Tags ad-budgets
// @Produce  json
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   platform query string false "Ad platform"
// @Param   month_year query string false "Month (YYYY-MM)"
// @Success 200 {object} domain.Page[domain.AdBudget]
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /ad-budgets [get]
func (h *adBudgetHandler) listAdBudgets(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var params dto.ListAdBudgetsParams
	if !bindQuery(c, &params, "ListAdBudgets") {
		return
	}
	page, err := h.budgetService.ListAdBudgets(c.Request.Context(), p, params.ToDomain())
	if err != nil {
		respondWithError(c, err, "Failed to list ad budgets")
		return
	}
	c.JSON(http.StatusOK, page)
}

// listAdBudgetsByMonth godoc
// @Summary List the ad budgets of one month
// @Tags ad-budgets
// @Produce  json
// @Param   month path string true "Month (YYYY-MM)"
// @Success 200 {array} domain.AdBudget
// @Security BearerAuth
// @Router /ad-budgets/month/{month} [get]
func (h *adBudgetHandler) listAdBudgetsByMonth(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	budgets, err := h.budgetService.ListAdBudgetsByMonth(c.Request.Context(), p, c.Param("month"))
	if err != nil {
		respondWithError(c, err, "Failed to list ad budgets by month")
		return
	}
	c.JSON(http.StatusOK, nonNil(budgets))
}

// getAdBudget godoc
// @Summary Get an ad budget
// @Tags ad-budgets
// @Produce  json
// @Param   id path int true "Ad budget ID"
// @Success 200 {object} domain.AdBudget
// @Failure 404 {object} map[string]string "Ad budget not found"
// @Security BearerAuth
// @Router /ad-budgets/{id} [get]
func (h *adBudgetHandler) getAdBudget(c *gin.Context) {
	serveByID(c, h.budgetService.GetAdBudget, "Failed to retrieve ad budget")
}

// createAdBudget godoc
// @Summary Create an ad budget
// @Tags ad-budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.AdBudgetRequest true "Ad budget details"
// @Success 201 {object} domain.AdBudget
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /ad-budgets [post]
func (h *adBudgetHandler) createAdBudget(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var req dto.AdBudgetRequest
	if !bindJSON(c, &req, "CreateAdBudget") {
		return
	}
	budget, err := h.budgetService.CreateAdBudget(c.Request.Context(), p, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to create ad budget")
		return
	}
	c.JSON(http.StatusCreated, budget)
}

// updateAdBudget godoc
// @Summary Update an ad budget
// @Tags ad-budgets
// @Accept  json
// @Produce  json
// @Param   id path int true "Ad budget ID"
// @Param   budget body dto.AdBudgetRequest true "Ad budget details"
// @Success 200 {object} domain.AdBudget
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /ad-budgets/{id} [put]
func (h *adBudgetHandler) updateAdBudget(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.AdBudgetRequest
	if !bindJSON(c, &req, "UpdateAdBudget") {
		return
	}
	budget, err := h.budgetService.UpdateAdBudget(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to update ad budget")
		return
	}
	c.JSON(http.StatusOK, budget)
}

// updateAdBudgetSpent godoc
// @Summary Record the amount spent against an ad budget
// @Tags ad-budgets
// @Accept  json
// @Produce  json
// @Param   id path int true "Ad budget ID"
// @Param   spent body dto.UpdateSpentRequest true "Spent amount"
// @Success 200 {object} domain.AdBudget
// @Failure 400 {object} map[string]string "Spent amount exceeds the budget"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /ad-budgets/{id}/spent [patch]
func (h *adBudgetHandler) updateAdBudgetSpent(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSpentRequest
	if !bindJSON(c, &req, "UpdateAdBudgetSpent") {
		return
	}
	budget, err := h.budgetService.UpdateAdBudgetSpent(c.Request.Context(), p, id, req.SpentAmount)
	if err != nil {
		respondWithError(c, err, "Failed to update ad budget spend")
		return
	}
	c.JSON(http.StatusOK, budget)
}

// deleteAdBudget godoc
// @Summary Delete an ad budget
// @Tags ad-budgets
// @Produce  json
// @Param   id path int true "Ad budget ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /ad-budgets/{id} [delete]
func (h *adBudgetHandler) deleteAdBudget(c *gin.Context) {
	deleteByID(c, h.budgetService.DeleteAdBudget, "Ad budget deleted successfully", "Failed to delete ad budget")
}
