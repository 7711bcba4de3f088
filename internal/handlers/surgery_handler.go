package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/httpresp"
	ucScheduling "github.com/BruksfildServices01/or-harmony/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type SurgeryHandler struct {
	facade *ucScheduling.Facade
	log    *zap.Logger
}

func NewSurgeryHandler(facade *ucScheduling.Facade, log *zap.Logger) *SurgeryHandler {
	return &SurgeryHandler{facade: facade, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleSurgeryRequest struct {
	RoomID      string `json:"room_id"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	SurgeryType string `json:"surgery_type"`
	Notes       string `json:"notes"`
}

type RescheduleSurgeryRequest struct {
	RoomID      *string `json:"room_id"`
	Date        *string `json:"date"`
	TimeSlot    *string `json:"time_slot"`
	SurgeryType *string `json:"surgery_type"`
	Notes       *string `json:"notes"`
}

type ConflictResponse struct {
	Conflict          bool   `json:"conflict"`
	ExistingSurgeryID string `json:"existing_surgery_id,omitempty"`
}

// ======================================================
// LIST / GET
// ======================================================

// List accepts week (start date), from/to and room_id.
func (h *SurgeryHandler) List(c *gin.Context) {
	roomID, ok := uuidQuery(c, "room_id")
	if !ok {
		return
	}

	surgeries, err := h.facade.ListSurgeries.Execute(c.Request.Context(), ucScheduling.ListSurgeriesInput{
		Week:   c.Query("week"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		RoomID: roomID,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, surgeries)
}

func (h *SurgeryHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	s, err := h.facade.GetSurgery.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}

// ======================================================
// CONFLICT CHECK
// ======================================================

func (h *SurgeryHandler) Conflict(c *gin.Context) {
	roomID, ok := uuidQuery(c, "room_id")
	if !ok {
		return
	}
	excludeID, ok := uuidQuery(c, "exclude_id")
	if !ok {
		return
	}

	conflict, err := h.facade.CheckConflict.Execute(c.Request.Context(), ucScheduling.CheckConflictInput{
		RoomID:    uuidOrNil(roomID),
		Date:      c.Query("date"),
		TimeSlot:  c.Query("time_slot"),
		ExcludeID: uuidOrNil(excludeID),
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	if conflict == nil {
		httpresp.OK(c, ConflictResponse{Conflict: false})
		return
	}
	httpresp.OK(c, ConflictResponse{
		Conflict:          true,
		ExistingSurgeryID: conflict.ExistingSurgeryID.String(),
	})
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *SurgeryHandler) Create(c *gin.Context) {
	var req ScheduleSurgeryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	roomID, err := bodyUUID("room_id", req.RoomID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	s, err := h.facade.ScheduleSurgery.Execute(c.Request.Context(), ucScheduling.ScheduleSurgeryInput{
		RoomID:      roomID,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		SurgeryType: req.SurgeryType,
		Notes:       req.Notes,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *SurgeryHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req RescheduleSurgeryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	roomID, err := bodyUUIDPtr("room_id", req.RoomID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	s, err := h.facade.RescheduleSurgery.Execute(c.Request.Context(), ucScheduling.RescheduleSurgeryInput{
		ID:          id,
		RoomID:      roomID,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		SurgeryType: req.SurgeryType,
		Notes:       req.Notes,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SurgeryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteSurgery.Execute(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}
