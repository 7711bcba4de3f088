package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
)

// Surgery occupies one slot. idx_surgeries_slot is the store-level guarantee
// that a (room, date, time_slot) triple holds at most one row.
type Surgery struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	RoomID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_surgeries_slot,priority:1" json:"room_id"`
	Room   *OperatingRoom `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	Date     calendar.Date `gorm:"not null;uniqueIndex:idx_surgeries_slot,priority:2;index" json:"date"`
	TimeSlot string        `gorm:"size:10;not null;uniqueIndex:idx_surgeries_slot,priority:3" json:"time_slot"`

	SurgeryType string `gorm:"size:100;not null" json:"surgery_type"`
	Notes       string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_date" json:"created_date"`
	UpdatedAt time.Time `gorm:"column:updated_date" json:"updated_date"`
}

func (Surgery) TableName() string {
	return "surgeries"
}
