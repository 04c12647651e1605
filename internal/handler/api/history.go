package api

import (
	"context"
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	history  queries.HistoryQueries
	archival commands.ArchivalCommands
}

func NewHistoryHandler(history queries.HistoryQueries, archival commands.ArchivalCommands) *HistoryHandler {
	return &HistoryHandler{history: history, archival: archival}
}

// @Summary Reservation history
// @Description Archived reservations, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size (1-200, default 20)"
// @Success 200 {object} resdto.HistoryPageResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	var q reqdto.HistoryPageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	page, err := h.history.List(c.Request.Context(), q.Page, q.Size)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryPage(page))
}

// @Summary History statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HistoryStatisticResponse
// @Router /admin/history/statistics [get]
func (h *HistoryHandler) Statistics(c *gin.Context) {
	stats, err := h.history.Statistics(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryStatistics(stats))
}

// @Summary Run archival now
// @Description Moves expired reservations into history; reports skipped when a run is already in progress
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ArchiveReportResponse
// @Router /admin/archival/run [post]
func (h *HistoryHandler) RunArchival(c *gin.Context) {
	// A dropped client must not abort a half-done batch
	report, err := h.archival.Run(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromArchiveReport(report))
}
