package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
)

type AbsenceDayDTO struct {
	Date    calendar.Date `json:"date"`
	Weekend bool          `json:"weekend"`
}

// AbsenceRowDTO maps each covered day to the time-off type.
type AbsenceRowDTO struct {
	DoctorID   uuid.UUID                `json:"doctor_id"`
	DoctorName string                   `json:"doctor_name"`
	Absences   map[calendar.Date]string `json:"absences"`
}

type AbsenceReportDTO struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Days    []AbsenceDayDTO `json:"days"`
	Doctors []AbsenceRowDTO `json:"doctors"`
}
