package scheduling_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	"github.com/BruksfildServices01/or-harmony/internal/infra/memstore"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

var (
	monday  = calendar.MustParse("2025-03-10")
	tuesday = calendar.MustParse("2025-03-11")
)

func seedRoom(t *testing.T, s *memstore.Store, number string) *models.OperatingRoom {
	t.Helper()
	room := &models.OperatingRoom{ID: uuid.New(), RoomNumber: number, IsActive: true}
	require.NoError(t, s.CreateRoom(context.Background(), room))
	return room
}

func seedDoctor(t *testing.T, s *memstore.Store, name string, active bool) *models.Doctor {
	t.Helper()
	id := uuid.New()
	d := &models.Doctor{
		ID:               id,
		Name:             name,
		EmployeeID:       "E-" + id.String()[:8],
		ContactEmail:     id.String()[:8] + "@hospital.test",
		ContactTelephone: "+972-" + id.String()[:8],
		IsActive:         active,
	}
	require.NoError(t, s.CreateDoctor(context.Background(), d))
	return d
}
