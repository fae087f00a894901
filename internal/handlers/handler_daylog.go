package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
)

// dayLogHandler handles HTTP requests for business day logs.
type dayLogHandler struct {
	dayLogService portssvc.DayLogSvcFacade
}

// registerDayLogRoutes registers the business day routes.
func registerDayLogRoutes(rg *gin.RouterGroup, dayLogService portssvc.DayLogSvcFacade) {
	h := &dayLogHandler{dayLogService: dayLogService}

	day := rg.Group("/day")
	{
		day.POST("/start", h.startDay)
		day.POST("/end", h.endDay)
		day.GET("/today", h.today)
		day.GET("/logs", h.listLogs)
	}
}

// startDay godoc
// @Summary Start the business day
// @Description Opens today's log; starting an already started day returns the existing log
// @Tags day
// @Produce  json
// @Success 200 {object} dto.DayLogResponse
// @Security BearerAuth
// @Router /day/start [post]
func (h *dayLogHandler) startDay(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	log, err := h.dayLogService.StartDay(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to start day")
		return
	}
	c.JSON(http.StatusOK, dto.ToDayLogResponse(log))
}

// endDay godoc
// @Summary End the business day
// @Tags day
// @Produce  json
// @Success 200 {object} dto.DayLogResponse
// @Failure 409 {object} map[string]string "Day was never started"
// @Security BearerAuth
// @Router /day/end [post]
func (h *dayLogHandler) endDay(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}

	log, err := h.dayLogService.EndDay(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to end day")
		return
	}
	c.JSON(http.StatusOK, dto.ToDayLogResponse(log))
}

// today godoc
// @Summary Get today's log
// @Tags day
// @Produce  json
// @Success 200 {object} dto.DayLogResponse
// @Failure 404 {object} map[string]string "No log for today"
// @Security BearerAuth
// @Router /day/today [get]
func (h *dayLogHandler) today(c *gin.Context) {
	log, err := h.dayLogService.Today(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve today's log")
		return
	}
	c.JSON(http.StatusOK, dto.ToDayLogResponse(log))
}

// listLogs godoc
// @Summary List day logs
// @Tags day
// @Produce  json
// @Success 200 {array} dto.DayLogResponse
// @Security BearerAuth
// @Router /day/logs [get]
func (h *dayLogHandler) listLogs(c *gin.Context) {
	logs, err := h.dayLogService.ListDayLogs(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list day logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToDayLogResponses(logs))
}
