package httperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation  Kind = "validation_failure"
	KindUniqueness  Kind = "uniqueness_failure"
	KindSlot        Kind = "slot_occupied"
	KindUnavailable Kind = "doctor_unavailable"
	KindNotFound    Kind = "not_found"
	KindStore       Kind = "store_failure"
)

// BusinessError is the single failure type surfaced by use cases.
// Field names the offending input for validation and uniqueness failures;
// Ref carries the id of the occupying surgery for slot conflicts.
type BusinessError struct {
	Kind  Kind
	Code  string
	Field string
	Ref   string
	Err   error
}

func (e BusinessError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	case e.Field != "":
		return e.Code + " (" + e.Field + ")"
	case e.Ref != "":
		return e.Code + " (" + e.Ref + ")"
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may reasonably try again.
func (e BusinessError) Retryable() bool {
	return e.Kind == KindStore
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrValidation(code, field string) error {
	return BusinessError{Kind: KindValidation, Code: code, Field: field}
}

func ErrRequired(field string) error {
	return BusinessError{Kind: KindValidation, Code: "missing_" + field, Field: field}
}

func ErrUniqueness(field string) error {
	return BusinessError{Kind: KindUniqueness, Code: "duplicate_" + field, Field: field}
}

func ErrSlotOccupied(existingSurgeryID string) error {
	return BusinessError{Kind: KindSlot, Code: "slot_occupied", Ref: existingSurgeryID}
}

func ErrUnavailable(code string) error {
	return BusinessError{Kind: KindUnavailable, Code: code}
}

func ErrNotFound(entity string) error {
	return BusinessError{Kind: KindNotFound, Code: entity + "_not_found"}
}

func ErrStore(code string, err error) error {
	return BusinessError{Kind: KindStore, Code: code, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// KindOf classifies any error; untyped errors count as store failures.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindStore
}

// As extracts the BusinessError, if any.
func As(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
