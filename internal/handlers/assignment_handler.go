package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/httpresp"
	ucScheduling "github.com/BruksfildServices01/or-harmony/internal/usecase/scheduling"
)

type AssignmentHandler struct {
	facade *ucScheduling.Facade
	log    *zap.Logger
}

func NewAssignmentHandler(facade *ucScheduling.Facade, log *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{facade: facade, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type AssignDoctorRequest struct {
	DoctorID           string `json:"doctor_id"`
	OperatingRoomID    string `json:"operating_room_id"`
	Date               string `json:"date"`
	ShiftType          string `json:"shift_type"`
	Role               string `json:"role"`
	Notes              string `json:"notes"`
	AllowDoubleBooking bool   `json:"allow_double_booking"`
}

type UpdateAssignmentRequest struct {
	DoctorID        *string `json:"doctor_id"`
	OperatingRoomID *string `json:"operating_room_id"`
	Date            *string `json:"date"`
	ShiftType       *string `json:"shift_type"`
	Role            *string `json:"role"`
	Notes           *string `json:"notes"`
}

// ======================================================
// ENDPOINTS
// ======================================================

// List accepts week, from/to, or date with an optional shift; doctor_id
// and room_id narrow any of them.
func (h *AssignmentHandler) List(c *gin.Context) {
	doctorID, ok := uuidQuery(c, "doctor_id")
	if !ok {
		return
	}
	roomID, ok := uuidQuery(c, "room_id")
	if !ok {
		return
	}

	list, err := h.facade.ListAssignments.Execute(c.Request.Context(), ucScheduling.ListAssignmentsInput{
		Week:     c.Query("week"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		Date:     c.Query("date"),
		Shift:    c.Query("shift"),
		DoctorID: doctorID,
		RoomID:   roomID,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AssignmentHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	a, err := h.facade.GetAssignment.Execute(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, a)
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	var req AssignDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	doctorID, err := bodyUUID("doctor_id", req.DoctorID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	roomID, err := bodyUUID("operating_room_id", req.OperatingRoomID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	a, err := h.facade.AssignDoctor.Execute(c.Request.Context(), ucScheduling.AssignDoctorInput{
		DoctorID:           doctorID,
		RoomID:             roomID,
		Date:               req.Date,
		ShiftType:          req.ShiftType,
		Role:               req.Role,
		Notes:              req.Notes,
		AllowDoubleBooking: req.AllowDoubleBooking,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, a)
}

func (h *AssignmentHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	doctorID, err := bodyUUIDPtr("doctor_id", req.DoctorID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	roomID, err := bodyUUIDPtr("operating_room_id", req.OperatingRoomID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	a, err := h.facade.UpdateAssignment.Execute(c.Request.Context(), ucScheduling.UpdateAssignmentInput{
		ID:        id,
		DoctorID:  doctorID,
		RoomID:    roomID,
		Date:      req.Date,
		ShiftType: req.ShiftType,
		Role:      req.Role,
		Notes:     req.Notes,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, a)
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteAssignment.Execute(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}

// AvailableDoctors serves GET /api/availability/doctors.
func (h *AssignmentHandler) AvailableDoctors(c *gin.Context) {
	exclude, ok := uuidQuery(c, "exclude_assignment_id")
	if !ok {
		return
	}

	doctors, err := h.facade.GetAvailableDoctors.Execute(c.Request.Context(), ucScheduling.GetAvailableDoctorsInput{
		Date:                c.Query("date"),
		Shift:               c.Query("shift"),
		ExcludeAssignmentID: uuidOrNil(exclude),
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, doctors)
}
