package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("date", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, monday, d)

	_, err = domain.ParseDate("date", "")
	assert.True(t, httperr.IsBusiness(err, "missing_date"))

	_, err = domain.ParseDate("date", "10/03/2025")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestParseRange(t *testing.T) {
	r, err := domain.ParseRange("2025-03-10", "2020-01-01", "2020-01-02")
	require.NoError(t, err)
	assert.Equal(t, &calendar.Range{From: monday, To: calendar.MustParse("2025-03-16")}, r)

	r, err = domain.ParseRange("", "2025-03-10", "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, &calendar.Range{From: monday, To: tuesday}, r)

	r, err = domain.ParseRange("", "", "")
	require.NoError(t, err)
	assert.Nil(t, r)

	_, err = domain.ParseRange("", "2025-03-11", "2025-03-10")
	assert.True(t, httperr.IsBusiness(err, "invalid_range"))

	_, err = domain.ParseRange("", "2025-03-11", "")
	assert.True(t, httperr.IsBusiness(err, "missing_to"))
}
