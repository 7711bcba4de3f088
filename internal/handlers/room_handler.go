package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/httpresp"
	"github.com/BruksfildServices01/or-harmony/internal/usecase/directory"
	ucScheduling "github.com/BruksfildServices01/or-harmony/internal/usecase/scheduling"
)

type RoomHandler struct {
	rooms *directory.Rooms
	slots *ucScheduling.AvailableSlots
	log   *zap.Logger
}

func NewRoomHandler(
	rooms *directory.Rooms,
	slots *ucScheduling.AvailableSlots,
	log *zap.Logger,
) *RoomHandler {
	return &RoomHandler{rooms: rooms, slots: slots, log: log}
}

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number"`
	Location   string `json:"location"`
	Specialty  string `json:"specialty"`
	Notes      string `json:"notes"`
	IsActive   *bool  `json:"is_active"`
}

type UpdateRoomRequest struct {
	RoomNumber *string `json:"room_number"`
	Location   *string `json:"location"`
	Specialty  *string `json:"specialty"`
	Notes      *string `json:"notes"`
	IsActive   *bool   `json:"is_active"`
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.rooms.List(c.Request.Context(), domain.RoomFilter{
		Active:    boolQuery(c, "active"),
		Specialty: c.Query("specialty"),
		Query:     c.Query("q"),
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, rooms)
}

func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.rooms.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *RoomHandler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	r, err := h.rooms.Create(c.Request.Context(), directory.RoomInput{
		RoomNumber: req.RoomNumber,
		Location:   req.Location,
		Specialty:  req.Specialty,
		Notes:      req.Notes,
		IsActive:   req.IsActive,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, r)
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	r, err := h.rooms.Update(c.Request.Context(), id, directory.RoomPatch{
		RoomNumber: req.RoomNumber,
		Location:   req.Location,
		Specialty:  req.Specialty,
		Notes:      req.Notes,
		IsActive:   req.IsActive,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *RoomHandler) Deactivate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.rooms.Deactivate(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.rooms.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *RoomHandler) AvailableSlots(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	free, err := h.slots.Execute(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{"room_id": id, "date": c.Query("date"), "available": free})
}
