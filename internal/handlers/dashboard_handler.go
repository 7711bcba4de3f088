package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/or-harmony/internal/httpresp"
	"github.com/BruksfildServices01/or-harmony/internal/timezone"
	"github.com/BruksfildServices01/or-harmony/internal/usecase/board"
)

type DashboardHandler struct {
	board    *board.GetBoard
	absences *board.GetAbsenceReport
	tz       string
	log      *zap.Logger
}

func NewDashboardHandler(
	b *board.GetBoard,
	absences *board.GetAbsenceReport,
	tz string,
	log *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{board: b, absences: absences, tz: tz, log: log}
}

// Board defaults to today in the service timezone.
func (h *DashboardHandler) Board(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = timezone.Today(h.tz).String()
	}

	out, err := h.board.Execute(c.Request.Context(), date)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) Absences(c *gin.Context) {
	out, err := h.absences.Execute(c.Request.Context(), c.Query("year"), c.Query("month"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, out)
}
