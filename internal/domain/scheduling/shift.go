package scheduling

import (
	"strings"

	"github.com/BruksfildServices01/or-harmony/internal/httperr"
)

// ===============================
// Shift
// ===============================

type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
)

// Shifts is the canonical enumeration, in display order.
var Shifts = []Shift{ShiftMorning, ShiftEvening}

// legacyShifts appear in old data declarations only and are never stored.
var legacyShifts = map[string]bool{
	"afternoon": true,
	"night":     true,
}

func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftEvening
}

func (s Shift) String() string { return string(s) }

func ParseShift(raw string) (Shift, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "", httperr.ErrRequired("shift")
	}
	if legacyShifts[v] {
		return "", httperr.ErrValidation("legacy_shift", "shift")
	}
	s := Shift(v)
	if !s.Valid() {
		return "", httperr.ErrValidation("invalid_shift", "shift")
	}
	return s, nil
}
