package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))

	loc := Location("Mars/Olympus")
	assert.NotNil(t, loc)

	utc := Location("UTC")
	assert.Equal(t, time.UTC.String(), utc.String())
}

func TestToday(t *testing.T) {
	d := Today("UTC")
	assert.Len(t, d.String(), 10)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), d.String())
}
