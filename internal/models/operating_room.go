package models

import (
	"time"

	"github.com/google/uuid"
)

type OperatingRoom struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	RoomNumber string `gorm:"size:20;not null;uniqueIndex:idx_operating_rooms_room_number" json:"room_number"`
	Location   string `gorm:"size:100" json:"location,omitempty"`
	Specialty  string `gorm:"size:100" json:"specialty,omitempty"`
	Notes      string `gorm:"type:text" json:"notes,omitempty"`
	IsActive   bool   `gorm:"not null;index" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_date" json:"created_date"`
	UpdatedAt time.Time `gorm:"column:updated_date" json:"updated_date"`
}

func (OperatingRoom) TableName() string {
	return "operating_rooms"
}
