package scheduling_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/infra/memstore"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

func names(doctors []models.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.Name)
	}
	return out
}

func TestAvailabilityResolver_Available(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	room := seedRoom(t, store, "OR-101")

	cohen := seedDoctor(t, store, "Dr. Cohen", true)
	levi := seedDoctor(t, store, "Dr. Levi", true)
	mizrahi := seedDoctor(t, store, "Dr. Mizrahi", true)
	seedDoctor(t, store, "Dr. Amir", false)
	peretz := seedDoctor(t, store, "Dr. Peretz", true)

	require.NoError(t, store.CreateTimeOff(ctx, &models.TimeOffRequest{
		ID:               uuid.New(),
		DoctorID:         levi.ID,
		RequestStartDate: calendar.MustParse("2025-03-09"),
		RequestEndDate:   calendar.MustParse("2025-03-12"),
		Type:             string(domain.TimeOffVacation),
		Status:           string(domain.StatusApproved),
	}))
	require.NoError(t, store.CreateTimeOff(ctx, &models.TimeOffRequest{
		ID:               uuid.New(),
		DoctorID:         peretz.ID,
		RequestStartDate: monday,
		RequestEndDate:   monday,
		Type:             string(domain.TimeOffPersonal),
		Status:           string(domain.StatusPending),
	}))

	held := &models.Assignment{
		ID:              uuid.New(),
		DoctorID:        mizrahi.ID,
		OperatingRoomID: room.ID,
		Date:            monday,
		ShiftType:       string(domain.ShiftMorning),
		Role:            string(domain.RolePrimary),
	}
	require.NoError(t, store.CreateAssignment(ctx, held))

	resolver := domain.NewAvailabilityResolver(store)

	t.Run("excludes inactive, approved time-off and assigned", func(t *testing.T) {
		got, err := resolver.Available(ctx, monday, domain.ShiftMorning, uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Dr. Cohen", "Dr. Peretz"}, names(got))
	})

	t.Run("assignment in the other shift does not exclude", func(t *testing.T) {
		got, err := resolver.Available(ctx, monday, domain.ShiftEvening, uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Dr. Cohen", "Dr. Mizrahi", "Dr. Peretz"}, names(got))
	})

	t.Run("editing assignment frees its own doctor", func(t *testing.T) {
		got, err := resolver.Available(ctx, monday, domain.ShiftMorning, held.ID)
		require.NoError(t, err)
		assert.Contains(t, names(got), "Dr. Mizrahi")
	})

	t.Run("reason for each doctor", func(t *testing.T) {
		cases := map[uuid.UUID]domain.Reason{
			cohen.ID:   domain.ReasonNone,
			levi.ID:    domain.ReasonTimeOff,
			mizrahi.ID: domain.ReasonAlreadyAssigned,
		}
		for id, want := range cases {
			got, err := resolver.ReasonFor(ctx, id, monday, domain.ShiftMorning, uuid.Nil)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("inactive wins", func(t *testing.T) {
		amir, err := store.ListDoctors(ctx, domain.DoctorFilter{Query: "amir"})
		require.NoError(t, err)
		require.Len(t, amir, 1)

		got, err := resolver.ReasonFor(ctx, amir[0].ID, monday, domain.ShiftMorning, uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, domain.ReasonInactive, got)
	})

	t.Run("invalid shift", func(t *testing.T) {
		_, err := resolver.Available(ctx, monday, "afternoon", uuid.Nil)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})
}

func TestExclusions_TimeOffTakesPrecedence(t *testing.T) {
	doctor := uuid.New()

	got := domain.Exclusions(
		monday,
		domain.ShiftMorning,
		[]models.TimeOffRequest{{
			DoctorID:         doctor,
			RequestStartDate: monday,
			RequestEndDate:   tuesday,
			Status:           string(domain.StatusApproved),
		}},
		[]models.Assignment{{
			ID:        uuid.New(),
			DoctorID:  doctor,
			Date:      monday,
			ShiftType: string(domain.ShiftMorning),
		}},
		uuid.Nil,
	)

	assert.Equal(t, map[uuid.UUID]domain.Reason{doctor: domain.ReasonTimeOff}, got)
}

func TestExclusions_IgnoresUnrelatedRows(t *testing.T) {
	got := domain.Exclusions(
		monday,
		domain.ShiftMorning,
		[]models.TimeOffRequest{{
			DoctorID:         uuid.New(),
			RequestStartDate: tuesday,
			RequestEndDate:   tuesday,
			Status:           string(domain.StatusApproved),
		}, {
			DoctorID:         uuid.New(),
			RequestStartDate: monday,
			RequestEndDate:   monday,
			Status:           string(domain.StatusRejected),
		}},
		[]models.Assignment{{
			ID:        uuid.New(),
			DoctorID:  uuid.New(),
			Date:      tuesday,
			ShiftType: string(domain.ShiftMorning),
		}},
		uuid.Nil,
	)

	assert.Empty(t, got)
}

type failingTimeOff struct {
	*memstore.Store
}

func (failingTimeOff) ListTimeOff(context.Context, domain.TimeOffFilter) ([]models.TimeOffRequest, error) {
	return nil, httperr.ErrStore("store_failure", errors.New("timeout"))
}

func TestAvailabilityResolver_AbortsOnPartialRead(t *testing.T) {
	store := memstore.New()
	seedDoctor(t, store, "Dr. Cohen", true)

	resolver := domain.NewAvailabilityResolver(failingTimeOff{store})
	got, err := resolver.Available(context.Background(), monday, domain.ShiftMorning, uuid.Nil)

	assert.Nil(t, got)
	assert.True(t, httperr.IsKind(err, httperr.KindStore))
}
