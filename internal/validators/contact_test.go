package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "dr.cohen@hospital.test", NormalizeEmail("  Dr.Cohen@Hospital.TEST "))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+972501234567", NormalizePhone(" +972 (50) 123-4567 "))
	assert.Equal(t, "0501234567", NormalizePhone("050-123-4567"))
	assert.Equal(t, "972", NormalizePhone("9+7+2"))
}

func TestNormalizeRoomNumber(t *testing.T) {
	assert.Equal(t, "OR-101", NormalizeRoomNumber(" or-101 "))
}
