package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := &journalHandler{journalService: journalService}

	journal := rg.Group("/journal-entries")
	{
		journal.POST("", h.postEntry)
		journal.GET("", h.listEntries)
		journal.GET("/:id/lines", h.entryLines)
	}
}

// postEntry godoc
// @Summary Post a manual journal entry
// @Description Validates and records a balanced journal entry; nothing is persisted on failure
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entry body dto.PostEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Unbalanced entry or validation error"
// @Failure 404 {object} map[string]string "Referenced account missing"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	var req dto.PostEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to post journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entry headers newest first, optionally bounded by a date range
// @Tags journal
// @Produce  json
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} dto.EntryResponse
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// entryLines godoc
// @Summary Get the lines of a journal entry
// @Tags journal
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {array} dto.EntryLineResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /journal-entries/{id}/lines [get]
func (h *journalHandler) entryLines(c *gin.Context) {
	lines, err := h.journalService.EntryLines(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve entry lines")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryLineResponses(lines))
}
