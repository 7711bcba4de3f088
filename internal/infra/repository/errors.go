package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/or-harmony/internal/httperr"
)

const slotConstraint = "idx_surgeries_slot"

// uniqueFields maps unique index names to the field reported to callers.
var uniqueFields = map[string]string{
	"idx_doctors_employee_id":         "employee_id",
	"idx_doctors_contact_email":       "contact_email",
	"idx_doctors_contact_telephone":   "contact_telephone",
	"idx_operating_rooms_room_number": "room_number",
}

// translate maps a gorm/pgx error onto the store's error contract.
// Slot violations are handled by the surgery writers, which know the slot.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(entity)
	}
	if constraint, ok := httperr.UniqueViolation(err); ok {
		if field, known := uniqueFields[constraint]; known {
			return httperr.ErrUniqueness(field)
		}
		return httperr.ErrUniqueness(strings.TrimPrefix(constraint, "idx_"))
	}
	return httperr.ErrStore("store_failure", err)
}

func isSlotViolation(err error) bool {
	constraint, ok := httperr.UniqueViolation(err)
	return ok && constraint == slotConstraint
}
