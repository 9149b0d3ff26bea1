package handlers

import (
	"net/http"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type investorHandler struct {
	investorService portssvc.CapitalInvestorSvcFacade
}

// RegisterInvestorRoutes registers routes related to capital investors.
func RegisterInvestorRoutes(rg *gin.RouterGroup, is portssvc.CapitalInvestorSvcFacade) {
	h := &investorHandler{investorService: is}

	investors := rg.Group("/capital-investors")
	{
		investors.GET("", h.listInvestors)
		investors.GET("/no_page", h.listAllInvestors)
		investors.GET("/total", h.getTotalInvestment)
		investors.GET("/:id", h.getInvestor)
		investors.POST("", h.createInvestor)
		investors.PUT("/:id", h.updateInvestor)
		investors.PATCH("/:id/return-paid", h.updateReturnPaid)
		investors.PATCH("/:id/status", h.updateStatus)
		investors.DELETE("/:id", h.deleteInvestor)
	}
}

// listInvestors godoc
// @Summary List capital investors
// @Tags capital-investors
// @Produce  json
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Search by name"
// @Success 200 {object} domain.Page[domain.CapitalInvestor]
// @Security BearerAuth
// @Router /capital-investors [get]
func (h *investorHandler) listInvestors(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if !bindQuery(c, &params, "ListInvestors") {
		return
	}
	page, err := h.investorService.ListInvestors(c.Request.Context(), p, params.ToDomain())
	if err != nil {
		respondWithError(c, err, "Failed to list capital investors")
		return
	}
	c.JSON(http.StatusOK, page)
}

// listAllInvestors godoc
// @Summary List every capital investor without pagination
// @Tags capital-investors
// @Produce  json
// @Success 200 {array} domain.CapitalInvestor
// @Security BearerAuth
// @Router /capital-investors/no_page [get]
func (h *investorHandler) listAllInvestors(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	investors, err := h.investorService.ListAllInvestors(c.Request.Context(), p)
	if err != nil {
		respondWithError(c, err, "Failed to list capital investors")
		return
	}
	c.JSON(http.StatusOK, nonNil(investors))
}

// getTotalInvestment godoc
// @Summary Total invested, repaid and remaining
// @Tags capital-investors
// @Produce  json
// @Success 200 {object} domain.TotalInvestment
// @Security BearerAuth
// @Router /capital-investors/total [get]
func (h *investorHandler) getTotalInvestment(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	total, err := h.investorService.GetTotalInvestment(c.Request.Context(), p)
	if err != nil {
		respondWithError(c, err, "Failed to get total investment")
		return
	}
	c.JSON(http.StatusOK, total)
}

// getInvestor godoc
// @Summary Get a capital investor
// @Tags capital-investors
// @Produce  json
// @Param   id path int true "Investor ID"
// @Success 200 {object} domain.CapitalInvestor
// @Failure 404 {object} map[string]string "Investor not found"
// @Security BearerAuth
// @Router /capital-investors/{id} [get]
func (h *investorHandler) getInvestor(c *gin.Context) {
	serveByID(c, h.investorService.GetInvestor, "Failed to retrieve capital investor")
}

// createInvestor godoc
// @Summary Record a capital investment
// @Tags capital-investors
// @Accept  json
// @Produce  json
// @Param   investor body dto.CapitalInvestorRequest true "Investment details"
// @Success 201 {object} domain.CapitalInvestor
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /capital-investors [post]
func (h *investorHandler) createInvestor(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var req dto.CapitalInvestorRequest
	if !bindJSON(c, &req, "CreateInvestor") {
		return
	}
	investor, err := h.investorService.CreateInvestor(c.Request.Context(), p, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to create capital investor")
		return
	}
	c.JSON(http.StatusCreated, investor)
}

// updateInvestor godoc
// @Summary Update a capital investment
// @Tags capital-investors
// @Accept  json
// @Produce  json
// @Param   id path int true "Investor ID"
// @Param   investor body dto.CapitalInvestorRequest true "Investment details"
// @Success 200 {object} domain.CapitalInvestor
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /capital-investors/{id} [put]
func (h *investorHandler) updateInvestor(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.CapitalInvestorRequest
	if !bindJSON(c, &req, "UpdateInvestor") {
		return
	}
	investor, err := h.investorService.UpdateInvestor(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to update capital investor")
		return
	}
	c.JSON(http.StatusOK, investor)
}

// updateReturnPaid godoc
// @Summary Record the amount returned to an investor
// @Tags capital-investors
// @Accept  json
// @Produce  json
// @Param   id path int true "Investor ID"
// @Param   returnPaid body dto.UpdateReturnPaidRequest true "Return paid"
// @Success 200 {object} domain.CapitalInvestor
// @Failure 400 {object} map[string]string "Negative amount"
// @Security BearerAuth
// @Router /capital-investors/{id}/return-paid [patch]
func (h *investorHandler) updateReturnPaid(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateReturnPaidRequest
	if !bindJSON(c, &req, "UpdateInvestorReturnPaid") {
		return
	}
	investor, err := h.investorService.UpdateInvestorReturnPaid(c.Request.Context(), p, id, req.ReturnPaid)
	if err != nil {
		respondWithError(c, err, "Failed to update investor return")
		return
	}
	c.JSON(http.StatusOK, investor)
}

// updateStatus godoc
// @Summary Change the repayment status of an investment
// @Tags capital-investors
// @Accept  json
// @Produce  json
// @Param   id path int true "Investor ID"
// @Param   status body dto.UpdateInvestorStatusRequest true "New status"
// @Success 200 {object} domain.CapitalInvestor
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /capital-investors/{id}/status [patch]
func (h *investorHandler) updateStatus(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInvestorStatusRequest
	if !bindJSON(c, &req, "UpdateInvestorStatus") {
		return
	}
	investor, err := h.investorService.UpdateInvestorStatus(c.Request.Context(), p, id, domain.InvestorStatus(req.Status))
	if err != nil {
		respondWithError(c, err, "Failed to update investor status")
		return
	}
	c.JSON(http.StatusOK, investor)
}

// deleteInvestor godoc
// @Summary Delete a capital investor
// @Tags capital-investors
// @Produce  json
// @Param   id path int true "Investor ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Security BearerAuth
// @Router /capital-investors/{id} [delete]
func (h *investorHandler) deleteInvestor(c *gin.Context) {
	deleteByID(c, h.investorService.DeleteInvestor, "Capital investor deleted successfully", "Failed to delete capital investor")
}
