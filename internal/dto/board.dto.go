package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

type ShiftCellDTO struct {
	Shift       string              `json:"shift"`
	Surgery     *models.Surgery     `json:"surgery"`
	Assignments []models.Assignment `json:"assignments"`
}

type RoomBoardDTO struct {
	Room   models.OperatingRoom `json:"room"`
	Shifts []ShiftCellDTO       `json:"shifts"`
}

// UnassignedRoomDTO is a room with a surgery in a shift that no doctor
// covers.
type UnassignedRoomDTO struct {
	RoomID     uuid.UUID `json:"room_id"`
	RoomNumber string    `json:"room_number"`
	Shift      string    `json:"shift"`
	SurgeryID  uuid.UUID `json:"surgery_id"`
}

type BoardDTO struct {
	Date             calendar.Date              `json:"date"`
	Rooms            []RoomBoardDTO             `json:"rooms"`
	AvailableDoctors map[string][]models.Doctor `json:"available_doctors"`
	UnassignedRooms  []UnassignedRoomDTO        `json:"unassigned_rooms"`
}
