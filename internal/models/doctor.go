package models

import (
	"time"

	"github.com/google/uuid"
)

// Permissions are advisory flags; nothing in the service enforces them.
type Permissions struct {
	ManageTimeOff     bool `gorm:"column:manage_timeoff;not null" json:"manage_timeoff"`
	ManageShifts      bool `gorm:"column:manage_shifts;not null" json:"manage_shifts"`
	ManageAssignments bool `gorm:"column:manage_assignments;not null" json:"manage_assignments"`
	ViewReports       bool `gorm:"column:view_reports;not null" json:"view_reports"`
	ManageDoctors     bool `gorm:"column:manage_doctors;not null" json:"manage_doctors"`
}

type Doctor struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name             string `gorm:"size:100;not null;index" json:"name"`
	EmployeeID       string `gorm:"size:50;not null;uniqueIndex:idx_doctors_employee_id" json:"employee_id"`
	Specialty        string `gorm:"size:100" json:"specialty"`
	ContactEmail     string `gorm:"size:150;not null;uniqueIndex:idx_doctors_contact_email" json:"contact_email"`
	ContactTelephone string `gorm:"size:30;not null;uniqueIndex:idx_doctors_contact_telephone" json:"contact_telephone"`
	IsActive         bool   `gorm:"not null;index" json:"is_active"`

	Permissions Permissions `gorm:"embedded;embeddedPrefix:perm_" json:"permissions"`
	AvatarURL   string      `gorm:"size:255" json:"avatar_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_date" json:"created_date"`
	UpdatedAt time.Time `gorm:"column:updated_date" json:"updated_date"`
}

func (Doctor) TableName() string {
	return "doctors"
}
