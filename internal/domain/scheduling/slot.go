package scheduling

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

// Slot is the (room, date, shift) triple a surgery occupies.
type Slot struct {
	RoomID uuid.UUID     `json:"room_id"`
	Date   calendar.Date `json:"date"`
	Shift  Shift         `json:"time_slot"`
}

func SlotOf(s *models.Surgery) Slot {
	return Slot{RoomID: s.RoomID, Date: s.Date, Shift: Shift(s.TimeSlot)}
}

// Key identifies the slot for locking.
func (s Slot) Key() string {
	return "slot:" + s.RoomID.String() + ":" + s.Date.String() + ":" + string(s.Shift)
}

func (s Slot) Validate() error {
	if s.RoomID == uuid.Nil {
		return httperr.ErrRequired("room_id")
	}
	if s.Date.IsZero() {
		return httperr.ErrRequired("date")
	}
	if _, err := calendar.Parse(s.Date.String()); err != nil {
		return httperr.ErrValidation("invalid_date", "date")
	}
	if !s.Shift.Valid() {
		return httperr.ErrValidation("invalid_shift", "time_slot")
	}
	return nil
}
