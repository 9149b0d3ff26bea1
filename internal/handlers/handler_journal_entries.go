package handlers

import (
	"net/http"

	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests for stored journal entries.
type journalEntryHandler struct {
	entryService portssvc.JournalEntrySvcFacade
}

func newJournalEntryHandler(es portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{entryService: es}
}

// RegisterJournalEntryRoutes registers routes related to journal entries.
func RegisterJournalEntryRoutes(rg *gin.RouterGroup, es portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(es)

	entries := rg.Group("/journal-entries")
	{
		entries.GET("", h.listJournalEntries)
		entries.GET("/:id", h.getJournalEntry)
		entries.DELETE("/:id", h.deleteJournalEntry)
		entries.POST("/:id/approve", h.approveJournalEntry)
		entries.POST("/:id/reject", h.rejectJournalEntry)
		entries.POST("/:id/post", h.postJournalEntry)
	}
}

// listJournalEntries godoc
// @Summary List journal entries
// @Tags journal-entries
// @Produce  json
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   search query string false "Search text"
// @Param   status query string false "draft, approved, posted or rejected"
// @Param   fiscal_period_id query int false "Fiscal period"
// @Success 200 {object} domain.Page[domain.JournalEntry]
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalEntryHandler) listJournalEntries(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var params dto.ListJournalEntriesParams
	if !bindQuery(c, &params, "ListJournalEntries") {
		return
	}
	page, err := h.entryService.ListJournalEntries(c.Request.Context(), p, params.ToDomain())
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, page)
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal-entries
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalEntryHandler) getJournalEntry(c *gin.Context) {
	serveByID(c, h.entryService.GetJournalEntry, "Failed to retrieve journal entry")
}

// deleteJournalEntry godoc
// @Summary Delete a draft journal entry
// @Tags journal-entries
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /journal-entries/{id} [delete]
func (h *journalEntryHandler) deleteJournalEntry(c *gin.Context) {
	deleteByID(c, h.entryService.DeleteJournalEntry, "Journal entry deleted successfully", "Failed to delete journal entry")
}

// approveJournalEntry godoc
// @Summary Approve a draft journal entry
// @Tags journal-entries
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /journal-entries/{id}/approve [post]
func (h *journalEntryHandler) approveJournalEntry(c *gin.Context) {
	serveByID(c, h.entryService.ApproveJournalEntry, "Failed to approve journal entry")
}

// rejectJournalEntry godoc
// @Summary Reject a draft journal entry
// @Tags journal-entries
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /journal-entries/{id}/reject [post]
func (h *journalEntryHandler) rejectJournalEntry(c *gin.Context) {
	serveByID(c, h.entryService.RejectJournalEntry, "Failed to reject journal entry")
}

// postJournalEntry godoc
// @Summary Post an approved journal entry to the ledger
// @Tags journal-entries
// @Produce  json
// @Param   id path int true "Journal entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 403 {object} map[string]string "Admin role required"
// @Failure 409 {object} map[string]string "Entry is not approved"
// @Security BearerAuth
// @Router /journal-entries/{id}/post [post]
func (h *journalEntryHandler) postJournalEntry(c *gin.Context) {
	serveByID(c, h.entryService.PostJournalEntry, "Failed to post journal entry")
}
