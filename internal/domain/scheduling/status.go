package scheduling

import (
	"strings"

	"github.com/BruksfildServices01/or-harmony/internal/httperr"
)

// ===============================
// Assignment role
// ===============================

type Role string

const (
	RolePrimary   Role = "Primary"
	RoleSecondary Role = "Secondary"
)

func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", httperr.ErrRequired("role")
	case "primary":
		return RolePrimary, nil
	case "secondary":
		return RoleSecondary, nil
	}
	return "", httperr.ErrValidation("invalid_role", "role")
}

// ===============================
// Time-off
// ===============================

type TimeOffType string

const (
	TimeOffVacation   TimeOffType = "vacation"
	TimeOffSickLeave  TimeOffType = "sick_leave"
	TimeOffPersonal   TimeOffType = "personal"
	TimeOffConference TimeOffType = "conference"
	TimeOffOther      TimeOffType = "other"
)

func ParseTimeOffType(raw string) (TimeOffType, error) {
	t := TimeOffType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case "":
		return "", httperr.ErrRequired("type")
	case TimeOffVacation, TimeOffSickLeave, TimeOffPersonal, TimeOffConference, TimeOffOther:
		return t, nil
	}
	return "", httperr.ErrValidation("invalid_time_off_type", "type")
}

type TimeOffStatus string

const (
	StatusPending  TimeOffStatus = "pending"
	StatusApproved TimeOffStatus = "approved"
	StatusRejected TimeOffStatus = "rejected"
)

// ParseTimeOffStatus accepts any of the three statuses. Transitions between
// them are unconstrained.
func ParseTimeOffStatus(raw string) (TimeOffStatus, error) {
	s := TimeOffStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case "":
		return "", httperr.ErrRequired("status")
	case StatusPending, StatusApproved, StatusRejected:
		return s, nil
	}
	return "", httperr.ErrValidation("invalid_status", "status")
}

// InitialStatus is forced on every new request.
func InitialStatus() TimeOffStatus {
	return StatusPending
}

// IsProcessed reports whether an approver has decided on the request.
func (s TimeOffStatus) IsProcessed() bool {
	return s == StatusApproved || s == StatusRejected
}
