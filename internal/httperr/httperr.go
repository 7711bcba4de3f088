package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code              string `json:"error_code"`
	Message           string `json:"message"`
	Kind              Kind   `json:"kind,omitempty"`
	Field             string `json:"field,omitempty"`
	ExistingSurgeryID string `json:"existing_surgery_id,omitempty"`
	Retryable         bool   `json:"retryable,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

// StatusFor maps a failure kind to its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUniqueness, KindSlot, KindUnavailable:
		return http.StatusConflict
	case KindStore:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

var messages = map[Kind]string{
	KindValidation:  "Invalid or missing field.",
	KindUniqueness:  "A record with this value already exists.",
	KindSlot:        "This time slot is already booked for this room.",
	KindUnavailable: "Doctor is not available for this shift.",
	KindNotFound:    "Record not found.",
	KindStore:       "Storage error, please try again.",
}

// FromError writes err with the status of its kind. Errors that are not a
// BusinessError are reported as store failures.
func FromError(c *gin.Context, err error) {
	be, ok := As(err)
	if !ok {
		be = BusinessError{Kind: KindStore, Code: "store_failure", Err: err}
	}

	c.JSON(StatusFor(be.Kind), HTTPError{
		Code:              be.Code,
		Message:           messages[be.Kind],
		Kind:              be.Kind,
		Field:             be.Field,
		ExistingSurgeryID: be.Ref,
		Retryable:         be.Retryable(),
	})
}
