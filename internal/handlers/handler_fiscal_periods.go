package handlers

import (
	"net/http"

	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type fiscalPeriodHandler struct {
	periodService portssvc.FiscalPeriodSvcFacade
}

// RegisterFiscalPeriodRoutes registers routes related to fiscal periods.
func RegisterFiscalPeriodRoutes(rg *gin.RouterGroup, ps portssvc.FiscalPeriodSvcFacade) {
	h := &fiscalPeriodHandler{periodService: ps}

	periods := rg.Group("/fiscal-periods")
	{
		periods.GET("", h.listFiscalPeriods)
		periods.GET("/no_page", h.listAllFiscalPeriods)
		periods.GET("/:id", h.getFiscalPeriod)
		periods.POST("", h.createFiscalPeriod)
		periods.PUT("/:id", h.updateFiscalPeriod)
		periods.DELETE("/:id", h.deleteFiscalPeriod)
		periods.POST("/:id/close", h.closeFiscalPeriod)
		periods.POST("/:id/reopen", h.reopenFiscalPeriod)
	}
}

// listFiscalPeriods godoc
// @Summary List fiscal periods
// @Tags fiscal-periods
// @Produce  json
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Search by name"
// @Success 200 {object} domain.Page[domain.FiscalPeriod]
// @Security BearerAuth
// @Router /fiscal-periods [get]
func (h *fiscalPeriodHandler) listFiscalPeriods(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if !bindQuery(c, &params, "ListFiscalPeriods") {
		return
	}
	page, err := h.periodService.ListFiscalPeriods(c.Request.Context(), p, params.ToDomain())
	if err != nil {
		respondWithError(c, err, "Failed to list fiscal periods")
		return
	}
	c.JSON(http.StatusOK, page)
}

// listAllFiscalPeriods godoc
// @Summary List every fiscal period without pagination
// @Tags fiscal-periods
// @Produce  json
// @Success 200 {array} domain.FiscalPeriod
// @Security BearerAuth
// @Router /fiscal-periods/no_page [get]
func (h *fiscalPeriodHandler) listAllFiscalPeriods(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	periods, err := h.periodService.ListAllFiscalPeriods(c.Request.Context(), p)
	if err != nil {
		respondWithError(c, err, "Failed to list fiscal periods")
		return
	}
	c.JSON(http.StatusOK, nonNil(periods))
}

// getFiscalPeriod godoc
// @Summary Get a fiscal period
// @Tags fiscal-periods
// @Produce  json
// @Param   id path int true "Fiscal period ID"
// @Success 200 {object} domain.FiscalPeriod
// @Failure 404 {object} map[string]string "Fiscal period not found"
// @Security BearerAuth
// @Router /fiscal-periods/{id} [get]
func (h *fiscalPeriodHandler) getFiscalPeriod(c *gin.Context) {
	serveByID(c, h.periodService.GetFiscalPeriod, "Failed to retrieve fiscal period")
}

// createFiscalPeriod godoc
// @Summary Create a fiscal period
// @Tags fiscal-periods
// @Accept  json
// @Produce  json
// @Param   period body dto.FiscalPeriodRequest true "Fiscal period details"
// @Success 201 {object} domain.FiscalPeriod
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /fiscal-periods [post]
func (h *fiscalPeriodHandler) createFiscalPeriod(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var req dto.FiscalPeriodRequest
	if !bindJSON(c, &req, "CreateFiscalPeriod") {
		return
	}
	period, err := h.periodService.CreateFiscalPeriod(c.Request.Context(), p, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to create fiscal period")
		return
	}
	c.JSON(http.StatusCreated, period)
}

// updateFiscalPeriod godoc
// @Summary Update an open fiscal period
// @Tags fiscal-periods
// @Accept  json
// @Produce  json
// @Param   id path int true "Fiscal period ID"
// @Param   period body dto.FiscalPeriodRequest true "Fiscal period details"
// @Success 200 {object} domain.FiscalPeriod
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Fiscal period is closed"
// @Security BearerAuth
// @Router /fiscal-periods/{id} [put]
func (h *fiscalPeriodHandler) updateFiscalPeriod(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.FiscalPeriodRequest
	if !bindJSON(c, &req, "UpdateFiscalPeriod") {
		return
	}
	period, err := h.periodService.UpdateFiscalPeriod(c.Request.Context(), p, id, req.ToInput())
	if err != nil {
		respondWithError(c, err, "Failed to update fiscal period")
		return
	}
	c.JSON(http.StatusOK, period)
}

// deleteFiscalPeriod godoc
// @Summary Delete an open fiscal period
// @Tags fiscal-periods
// @Produce  json
// @Param   id path int true "Fiscal period ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Fiscal period is closed"
// @Security BearerAuth
// @Router /fiscal-periods/{id} [delete]
func (h *fiscalPeriodHandler) deleteFiscalPeriod(c *gin.Context) {
	deleteByID(c, h.periodService.DeleteFiscalPeriod, "Fiscal period deleted successfully", "Failed to delete fiscal period")
}

// closeFiscalPeriod godoc
// @Summary Close a fiscal period
// @Tags fiscal-periods
// @Produce  json
// @Param   id path int true "Fiscal period ID"
// @Success 200 {object} domain.FiscalPeriod
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Fiscal period is already closed"
// @Security BearerAuth
// @Router /fiscal-periods/{id}/close [post]
func (h *fiscalPeriodHandler) closeFiscalPeriod(c *gin.Context) {
	serveByID(c, h.periodService.CloseFiscalPeriod, "Failed to close fiscal period")
}

// reopenFiscalPeriod godoc
// @Summary Reopen a closed fiscal period
// @Tags fiscal-periods
// @Produce  json
// @Param   id path int true "Fiscal period ID"
// @Success 200 {object} domain.FiscalPeriod
// @Failure 403 {object} map[string]string "Superadmin role required"
// @Failure 409 {object} map[string]string "Fiscal period is already open"
// @Security BearerAuth
// @Router /fiscal-periods/{id}/reopen [post]
func (h *fiscalPeriodHandler) reopenFiscalPeriod(c *gin.Context) {
	serveByID(c, h.periodService.ReopenFiscalPeriod, "Failed to reopen fiscal period")
}
