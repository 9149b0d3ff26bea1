package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	portssvc "github.com/ecomhub/finance_backoffice/internal/core/ports/services"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/ecomhub/finance_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalDraftHandler serves the journal entry composer.
type journalDraftHandler struct {
	composer portssvc.JournalComposerSvcFacade
}

func newJournalDraftHandler(composer portssvc.JournalComposerSvcFacade) *journalDraftHandler {
	return &journalDraftHandler{composer: composer}
}

// RegisterJournalDraftRoutes registers the composer routes on rg.
func RegisterJournalDraftRoutes(rg *gin.RouterGroup, composer portssvc.JournalComposerSvcFacade) {
	h := newJournalDraftHandler(composer)

	drafts := rg.Group("/journal-drafts")
	{
		drafts.POST("", h.createDraft)
		drafts.GET("/submissions", h.listSubmissions)
		drafts.GET("/:id", h.getDraft)
		drafts.DELETE("/:id", h.discardDraft)
		drafts.POST("/:id/lines", h.addLine)
		drafts.PATCH("/:id/lines/:index", h.updateLine)
		drafts.DELETE("/:id/lines/:index", h.removeLine)
		drafts.PATCH("/:id/header", h.updateHeader)
		drafts.POST("/:id/validate", h.validateDraft)
		drafts.POST("/:id/submit", h.submitDraft)
	}
}

// createDraft godoc
// @Summary Start a journal entry draft
// @Description Opens a composer session with two blank lines, or seeded from an existing draft-status entry
// @Tags journal-drafts
// @Accept  json
// @Produce  json
// @Param   draft body dto.CreateJournalDraftRequest false "Existing entry to edit"
// @Success 201 {object} dto.JournalDraftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Entry is no longer a draft"
// @Security BearerAuth
// @Router /journal-drafts [post]
func (h *journalDraftHandler) createDraft(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var req dto.CreateJournalDraftRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req, "CreateJournalDraft") {
		return
	}

	session, err := h.composer.CreateDraft(c.Request.Context(), p, req.EntryID)
	if err != nil {
		respondWithError(c, err, "Failed to create journal draft")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalDraftResponse(session))
}

// getDraft godoc
// @Summary Get a journal entry draft
// @Tags journal-drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 200 {object} dto.JournalDraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /journal-drafts/{id} [get]
func (h *journalDraftHandler) getDraft(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	session, err := h.composer.GetDraft(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalDraftResponse(session))
}

// discardDraft godoc
// @Summary Discard a journal entry draft
// @Tags journal-drafts
// @Param   id path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /journal-drafts/{id} [delete]
func (h *journalDraftHandler) discardDraft(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	if err := h.composer.DiscardDraft(c.Request.Context(), p, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to discard journal draft")
		return
	}
	c.Status(http.StatusNoContent)
}

// addLine godoc
// @Summary Append a blank line to a draft
// @Tags journal-drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 200 {object} dto.JournalDraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /journal-drafts/{id}/lines [post]
func (h *journalDraftHandler) addLine(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	session, err := h.composer.AddLine(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to add journal line")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalDraftResponse(session))
}

// updateLine godoc
// @Summary Edit one line of a draft
// @Description Applies account, description, debit and credit in that order. Entering a debit clears the credit and vice versa.
// @Tags journal-drafts
// @Accept  json
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   index path int true "Zero-based line index"
// @Param   line body dto.UpdateDraftLineRequest true "Fields to change"
// @Success 200 {object} dto.JournalDraftResponse
// @Failure 400 {object} map[string]string "Invalid input or line out of range"
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /journal-drafts/{id}/lines/{index} [patch]
func (h *journalDraftHandler) updateLine(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	var req dto.UpdateDraftLineRequest
	if !bindJSON(c, &req, "UpdateDraftLine") {
		return
	}

	session, err := h.composer.UpdateLine(c.Request.Context(), p, c.Param("id"), index, req)
	if err != nil {
		respondWithError(c, err, "Failed to update journal line")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalDraftResponse(session))
}

// removeLine godoc
// @Summary Remove one line of a draft
// @Description A draft always keeps at least two lines.
// @Tags journal-drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   index path int true "Zero-based line index"
// @Success 200 {object} dto.JournalDraftResponse
// @Failure 400 {object} map[string]string "Line out of range or too few lines"
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /journal-drafts/{id}/lines/{index} [delete]
func (h *journalDraftHandler) removeLine(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	index, ok := lineIndex(c)
	if !ok {
		return
	}
	session, err := h.composer.RemoveLine(c.Request.Context(), p, c.Param("id"), index)
	if err != nil {
		respondWithError(c, err, "Failed to remove journal line")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalDraftResponse(session))
}

// updateHeader godoc
// @Summary Replace the header of a draft
// @Tags journal-drafts
// @Accept  json
// @Produce  json
// @Param   id path string true "Draft ID"
// @Param   header body dto.UpdateDraftHeaderRequest true "Header fields"
// @Success 200 {object} dto.JournalDraftResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /journal-drafts/{id}/header [patch]
func (h *journalDraftHandler) updateHeader(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var req dto.UpdateDraftHeaderRequest
	if !bindJSON(c, &req, "UpdateDraftHeader") {
		return
	}
	session, err := h.composer.UpdateHeader(c.Request.Context(), p, c.Param("id"), req.ToDraftHeader())
	if err != nil {
		respondWithError(c, err, "Failed to update journal draft header")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalDraftResponse(session))
}

// validateDraft godoc
// @Summary Validate a draft
// @Description Returns the draft with is_valid and, when invalid, the first failure and its line.
// @Tags journal-drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 200 {object} dto.JournalDraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /journal-drafts/{id}/validate [post]
func (h *journalDraftHandler) validateDraft(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	session, vErr, err := h.composer.ValidateDraft(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to validate journal draft")
		return
	}
	if vErr != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Journal draft is invalid",
			slog.String("draft_id", session.ID),
			slog.String("reason", vErr.Message))
	}
	c.JSON(http.StatusOK, dto.ToJournalDraftResponse(session))
}

// submitDraft godoc
// @Summary Submit a draft to the Ledger API
// @Description Creates the entry, or updates it when the draft was opened from one. The draft is discarded only on success.
// @Tags journal-drafts
// @Produce  json
// @Param   id path string true "Draft ID"
// @Success 201 {object} dto.SubmitDraftResponse "Entry created"
// @Success 200 {object} dto.SubmitDraftResponse "Entry updated"
// @Failure 400 {object} map[string]string "Draft is invalid or rejected by the Ledger API"
// @Failure 404 {object} map[string]string "Draft not found"
// @Failure 502 {object} map[string]string "Ledger API unreachable"
// @Security BearerAuth
// @Router /journal-drafts/{id}/submit [post]
func (h *journalDraftHandler) submitDraft(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	draftID := c.Param("id")

	// Creation vs update is decided by the stored draft, so look it up first for the status code.
	session, err := h.composer.GetDraft(c.Request.Context(), p, draftID)
	if err != nil {
		respondWithError(c, err, "Failed to submit journal draft")
		return
	}
	updating := session.EntryID != nil

	entry, err := h.composer.SubmitDraft(c.Request.Context(), p, draftID)
	if err != nil {
		respondWithError(c, err, "Failed to submit journal draft")
		return
	}

	if updating {
		c.JSON(http.StatusOK, dto.SubmitDraftResponse{Entry: entry, Message: "Journal entry updated successfully"})
		return
	}
	c.JSON(http.StatusCreated, dto.SubmitDraftResponse{Entry: entry, Message: "Journal entry created successfully"})
}

// listSubmissions godoc
// @Summary List recent submission attempts
// @Description Returns the caller's submission audit records, newest first.
// @Tags journal-drafts
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSubmissionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /journal-drafts/submissions [get]
func (h *journalDraftHandler) listSubmissions(c *gin.Context) {
	p, ok := principalFrom(c)
	if !ok {
		return
	}
	var params dto.ListSubmissionsParams
	if !bindQuery(c, &params, "ListSubmissions") {
		return
	}

	records, next, err := h.composer.ListSubmissions(c.Request.Context(), p, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, err, "Failed to list submissions")
		return
	}
	if records == nil {
		records = []domain.SubmissionRecord{}
	}
	c.JSON(http.StatusOK, dto.ListSubmissionsResponse{Submissions: records, NextToken: next})
}

func lineIndex(c *gin.Context) (int, bool) {
	raw := c.Param("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line index: " + raw})
		return 0, false
	}
	return index, true
}
