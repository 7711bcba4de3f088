package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/httpresp"
	"github.com/BruksfildServices01/or-harmony/internal/models"
	"github.com/BruksfildServices01/or-harmony/internal/usecase/timeoff"
)

type TimeOffHandler struct {
	svc *timeoff.Service
	log *zap.Logger
}

func NewTimeOffHandler(svc *timeoff.Service, log *zap.Logger) *TimeOffHandler {
	return &TimeOffHandler{svc: svc, log: log}
}

// Status is ignored on create; every request starts pending.
type CreateTimeOffRequest struct {
	DoctorID         string `json:"doctor_id"`
	RequestStartDate string `json:"request_start_date"`
	RequestEndDate   string `json:"request_end_date"`
	Type             string `json:"type"`
	Reason           string `json:"reason"`
	Notes            string `json:"notes"`
}

type UpdateTimeOffStatusRequest struct {
	Status string `json:"status"`
}

func (h *TimeOffHandler) List(c *gin.Context) {
	doctorID, ok := uuidQuery(c, "doctor_id")
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), timeoff.ListInput{
		Status:   c.Query("status"),
		DoctorID: doctorID,
		From:     c.Query("from"),
		To:       c.Query("to"),
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *TimeOffHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	req, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, req)
}

func (h *TimeOffHandler) Create(c *gin.Context) {
	var req CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	doctorID, err := bodyUUID("doctor_id", req.DoctorID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), timeoff.CreateInput{
		DoctorID:  doctorID,
		StartDate: req.RequestStartDate,
		EndDate:   req.RequestEndDate,
		Type:      req.Type,
		Reason:    req.Reason,
		Notes:     req.Notes,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, created)
}

func (h *TimeOffHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateTimeOffStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, updated)
}

// Approved serves ?date= for requests covering a day and ?from=&to= for
// requests overlapping a period.
func (h *TimeOffHandler) Approved(c *gin.Context) {
	var (
		list []models.TimeOffRequest
		err  error
	)
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		list, err = h.svc.ApprovedFor(c.Request.Context(), date)
	} else {
		list, err = h.svc.ApprovedOverlapping(c.Request.Context(), c.Query("from"), c.Query("to"))
	}
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}
