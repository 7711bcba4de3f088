package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
)

type TimeOffRequest struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`

	RequestStartDate calendar.Date `gorm:"not null;index" json:"request_start_date"`
	RequestEndDate   calendar.Date `gorm:"not null;index" json:"request_end_date"`

	Type   string `gorm:"size:20;not null" json:"type"`
	Reason string `gorm:"type:text" json:"reason"`
	Notes  string `gorm:"type:text" json:"notes,omitempty"`
	Status string `gorm:"size:20;not null;index" json:"status"`

	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_date" json:"created_date"`
	UpdatedAt time.Time `gorm:"column:updated_date" json:"updated_date"`
}

func (TimeOffRequest) TableName() string {
	return "time_off_requests"
}

func (r *TimeOffRequest) Period() calendar.Range {
	return calendar.Range{From: r.RequestStartDate, To: r.RequestEndDate}
}
