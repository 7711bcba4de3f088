package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
)

type Assignment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`

	OperatingRoomID uuid.UUID      `gorm:"type:uuid;not null;index" json:"operating_room_id"`
	OperatingRoom   *OperatingRoom `gorm:"foreignKey:OperatingRoomID" json:"operating_room,omitempty"`

	Date      calendar.Date `gorm:"not null;index:idx_assignments_date_shift,priority:1" json:"date"`
	ShiftType string        `gorm:"size:10;not null;index:idx_assignments_date_shift,priority:2" json:"shift_type"`
	Role      string        `gorm:"size:20;not null" json:"role"`
	Notes     string        `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_date" json:"created_date"`
	UpdatedAt time.Time `gorm:"column:updated_date" json:"updated_date"`
}

func (Assignment) TableName() string {
	return "assignments"
}
