package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindStore, KindOf(errors.New("boom")))
	assert.Equal(t, KindSlot, KindOf(ErrSlotOccupied("abc")))

	wrapped := fmt.Errorf("schedule: %w", ErrUniqueness("contact_email"))
	assert.True(t, IsKind(wrapped, KindUniqueness))
	assert.True(t, IsBusiness(wrapped, "duplicate_contact_email"))
}

func TestStoreErrorIsRetryable(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrStore("list_doctors_failed", cause)

	be, ok := As(err)
	require.True(t, ok)
	assert.True(t, be.Retryable())
	assert.ErrorIs(t, err, cause)

	be, _ = As(ErrSlotOccupied("x"))
	assert.False(t, be.Retryable())
}

func TestUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_surgeries_slot"}

	name, ok := UniqueViolation(fmt.Errorf("insert: %w", pgErr))
	assert.True(t, ok)
	assert.Equal(t, "idx_surgeries_slot", name)

	_, ok = UniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrRequired("name"), http.StatusBadRequest, "missing_name"},
		{ErrNotFound("surgery"), http.StatusNotFound, "surgery_not_found"},
		{ErrSlotOccupied("s-1"), http.StatusConflict, "slot_occupied"},
		{ErrUnavailable("doctor_on_time_off"), http.StatusConflict, "doctor_on_time_off"},
		{errors.New("raw"), http.StatusServiceUnavailable, "store_failure"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		FromError(c, tc.err)

		assert.Equal(t, tc.status, rec.Code)

		var body HTTPError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Code)
	}
}

func TestFromErrorCarriesSlotReference(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	FromError(c, ErrSlotOccupied("surgery-42"))

	var body HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "surgery-42", body.ExistingSurgeryID)
	assert.Equal(t, KindSlot, body.Kind)
}
