package scheduling

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/infra/memstore"
	"github.com/BruksfildServices01/or-harmony/internal/infra/slotlock"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

type fixture struct {
	store  *memstore.Store
	facade *Facade
	room   *models.OperatingRoom
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	room := &models.OperatingRoom{ID: uuid.New(), RoomNumber: "OR-101", IsActive: true}
	require.NoError(t, store.CreateRoom(context.Background(), room))

	dispatcher := events.NewDispatcher(zap.NewNop())
	t.Cleanup(dispatcher.Close)

	return &fixture{
		store:  store,
		facade: NewFacade(store, nil, dispatcher),
		room:   room,
	}
}

func (f *fixture) doctor(t *testing.T, name string, active bool) *models.Doctor {
	t.Helper()
	id := uuid.New()
	d := &models.Doctor{
		ID:               id,
		Name:             name,
		EmployeeID:       "E-" + id.String()[:8],
		ContactEmail:     id.String()[:8] + "@hospital.test",
		ContactTelephone: id.String()[:8],
		IsActive:         active,
	}
	require.NoError(t, f.store.CreateDoctor(context.Background(), d))
	return d
}

func ptr[T any](v T) *T { return &v }

// ======================================================
// Surgeries
// ======================================================

func TestScheduleSurgery_SecondIntoSameSlotFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.facade.ScheduleSurgery.Execute(ctx, ScheduleSurgeryInput{
		RoomID:      f.room.ID,
		Date:        "2025-03-10",
		TimeSlot:    "morning",
		SurgeryType: "Cardiac Surgery",
	})
	require.NoError(t, err)

	_, err = f.facade.ScheduleSurgery.Execute(ctx, ScheduleSurgeryInput{
		RoomID:      f.room.ID,
		Date:        "2025-03-10",
		TimeSlot:    "morning",
		SurgeryType: "General Surgery",
	})
	be, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindSlot, be.Kind)
	assert.Equal(t, first.ID.String(), be.Ref)

	all, err := f.facade.ListSurgeries.Execute(ctx, ListSurgeriesInput{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestScheduleSurgery_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]ScheduleSurgeryInput{
		"missing_room_id":      {Date: "2025-03-10", TimeSlot: "morning", SurgeryType: "x"},
		"missing_date":         {RoomID: f.room.ID, TimeSlot: "morning", SurgeryType: "x"},
		"invalid_date":         {RoomID: f.room.ID, Date: "2025-02-30", TimeSlot: "morning", SurgeryType: "x"},
		"legacy_shift":         {RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "afternoon", SurgeryType: "x"},
		"missing_surgery_type": {RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "evening", SurgeryType: "  "},
	}
	for code, in := range cases {
		_, err := f.facade.ScheduleSurgery.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, code), "%s: got %v", code, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation), code)
	}
}

func TestScheduleSurgery_UnknownRoom(t *testing.T) {
	f := newFixture(t)

	_, err := f.facade.ScheduleSurgery.Execute(context.Background(), ScheduleSurgeryInput{
		RoomID:      uuid.New(),
		Date:        "2025-03-10",
		TimeSlot:    "morning",
		SurgeryType: "Cardiac Surgery",
	})
	assert.True(t, httperr.IsBusiness(err, "operating_room_not_found"))
}

// blindStore never sees an occupant, so the write reaches the unique index.
type blindStore struct {
	*memstore.Store
}

func (blindStore) FindSurgeryInSlot(context.Context, domain.Slot) (*models.Surgery, error) {
	return nil, nil
}

func TestScheduleSurgery_StoreConstraintIsTheBackstop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.facade.ScheduleSurgery.Execute(ctx, ScheduleSurgeryInput{
		RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "morning", SurgeryType: "Cardiac Surgery",
	})
	require.NoError(t, err)

	racing := NewScheduleSurgery(blindStore{f.store}, slotlock.Noop{}, nil)
	_, err = racing.Execute(ctx, ScheduleSurgeryInput{
		RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "morning", SurgeryType: "General Surgery",
	})

	be, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, httperr.KindSlot, be.Kind)
	assert.Equal(t, first.ID.String(), be.Ref)
}

type busyLocker struct{}

func (busyLocker) Acquire(context.Context, string) (slotlock.Release, error) {
	return nil, slotlock.ErrBusy
}

func TestScheduleSurgery_LockContentionIsRetryable(t *testing.T) {
	f := newFixture(t)

	uc := NewScheduleSurgery(f.store, busyLocker{}, nil)
	_, err := uc.Execute(context.Background(), ScheduleSurgeryInput{
		RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "morning", SurgeryType: "Cardiac Surgery",
	})

	be, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "slot_busy", be.Code)
	assert.True(t, be.Retryable())
}

func TestRescheduleSurgery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	morning, err := f.facade.ScheduleSurgery.Execute(ctx, ScheduleSurgeryInput{
		RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "morning", SurgeryType: "Cardiac Surgery",
	})
	require.NoError(t, err)
	evening, err := f.facade.ScheduleSurgery.Execute(ctx, ScheduleSurgeryInput{
		RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "evening", SurgeryType: "Hip Replacement",
	})
	require.NoError(t, err)

	t.Run("own slot", func(t *testing.T) {
		got, err := f.facade.RescheduleSurgery.Execute(ctx, RescheduleSurgeryInput{
			ID:       morning.ID,
			Date:     ptr("2025-03-10"),
			TimeSlot: ptr("morning"),
			Notes:    ptr("bring the perfusionist"),
		})
		require.NoError(t, err)
		assert.Equal(t, "bring the perfusionist", got.Notes)
		assert.Equal(t, "Cardiac Surgery", got.SurgeryType)
	})

	t.Run("occupied slot", func(t *testing.T) {
		_, err := f.facade.RescheduleSurgery.Execute(ctx, RescheduleSurgeryInput{
			ID:       evening.ID,
			TimeSlot: ptr("morning"),
		})
		be, ok := httperr.As(err)
		require.True(t, ok)
		assert.Equal(t, httperr.KindSlot, be.Kind)
		assert.Equal(t, morning.ID.String(), be.Ref)
	})

	t.Run("free slot", func(t *testing.T) {
		got, err := f.facade.RescheduleSurgery.Execute(ctx, RescheduleSurgeryInput{
			ID:   evening.ID,
			Date: ptr("2025-03-11"),
		})
		require.NoError(t, err)
		assert.Equal(t, "2025-03-11", got.Date.String())
		assert.Equal(t, "evening", got.TimeSlot)
	})

	t.Run("missing surgery", func(t *testing.T) {
		_, err := f.facade.RescheduleSurgery.Execute(ctx, RescheduleSurgeryInput{ID: uuid.New()})
		assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	})
}

func TestCheckConflictAndAvailableSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.facade.ScheduleSurgery.Execute(ctx, ScheduleSurgeryInput{
		RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "morning", SurgeryType: "Cardiac Surgery",
	})
	require.NoError(t, err)

	c, err := f.facade.CheckConflict.Execute(ctx, CheckConflictInput{
		RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "morning",
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, s.ID, c.ExistingSurgeryID)

	c, err = f.facade.CheckConflict.Execute(ctx, CheckConflictInput{
		RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "morning", ExcludeID: s.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, c)

	free, err := f.facade.AvailableSlots.Execute(ctx, f.room.ID, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, []domain.Shift{domain.ShiftEvening}, free)

	free, err = f.facade.AvailableSlots.Execute(ctx, f.room.ID, "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, domain.Shifts, free)
}

func TestListSurgeriesByWeekAndRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := &models.OperatingRoom{ID: uuid.New(), RoomNumber: "OR-102", IsActive: true}
	require.NoError(t, f.store.CreateRoom(ctx, other))

	for _, in := range []ScheduleSurgeryInput{
		{RoomID: f.room.ID, Date: "2025-03-16", TimeSlot: "evening", SurgeryType: "a"},
		{RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "evening", SurgeryType: "b"},
		{RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "morning", SurgeryType: "c"},
		{RoomID: other.ID, Date: "2025-03-12", TimeSlot: "morning", SurgeryType: "d"},
		{RoomID: f.room.ID, Date: "2025-03-17", TimeSlot: "morning", SurgeryType: "e"},
	} {
		_, err := f.facade.ScheduleSurgery.Execute(ctx, in)
		require.NoError(t, err)
	}

	week, err := f.facade.ListSurgeries.Execute(ctx, ListSurgeriesInput{Week: "2025-03-10"})
	require.NoError(t, err)
	var types []string
	for _, s := range week {
		types = append(types, s.SurgeryType)
	}
	assert.Equal(t, []string{"c", "b", "d", "a"}, types)

	byRoom, err := f.facade.ListSurgeries.Execute(ctx, ListSurgeriesInput{RoomID: &other.ID})
	require.NoError(t, err)
	require.Len(t, byRoom, 1)
	require.NotNil(t, byRoom[0].Room)
	assert.Equal(t, "OR-102", byRoom[0].Room.RoomNumber)
}

// ======================================================
// Assignments
// ======================================================

func TestAssignDoctor_RevalidatesAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cohen := f.doctor(t, "Dr. Cohen", true)
	levi := f.doctor(t, "Dr. Levi", true)
	retired := f.doctor(t, "Dr. Amir", false)

	require.NoError(t, f.store.CreateTimeOff(ctx, &models.TimeOffRequest{
		ID:               uuid.New(),
		DoctorID:         levi.ID,
		RequestStartDate: "2025-03-08",
		RequestEndDate:   "2025-03-10",
		Type:             string(domain.TimeOffVacation),
		Status:           string(domain.StatusApproved),
	}))

	in := AssignDoctorInput{
		RoomID:    f.room.ID,
		Date:      "2025-03-10",
		ShiftType: "morning",
		Role:      "primary",
	}

	t.Run("first assignment", func(t *testing.T) {
		in := in
		in.DoctorID = cohen.ID
		a, err := f.facade.AssignDoctor.Execute(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, string(domain.RolePrimary), a.Role)
	})

	t.Run("double booking is rejected", func(t *testing.T) {
		in := in
		in.DoctorID = cohen.ID
		_, err := f.facade.AssignDoctor.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "doctor_already_assigned"))
		assert.True(t, httperr.IsKind(err, httperr.KindUnavailable))
	})

	t.Run("double booking override", func(t *testing.T) {
		in := in
		in.DoctorID = cohen.ID
		in.AllowDoubleBooking = true
		_, err := f.facade.AssignDoctor.Execute(ctx, in)
		require.NoError(t, err)
	})

	t.Run("approved time-off", func(t *testing.T) {
		in := in
		in.DoctorID = levi.ID
		in.AllowDoubleBooking = true
		_, err := f.facade.AssignDoctor.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "doctor_on_time_off"))
	})

	t.Run("inactive", func(t *testing.T) {
		in := in
		in.DoctorID = retired.ID
		_, err := f.facade.AssignDoctor.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "doctor_inactive"))
	})

	t.Run("unknown doctor", func(t *testing.T) {
		in := in
		in.DoctorID = uuid.New()
		_, err := f.facade.AssignDoctor.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "doctor_not_found"))
	})

	t.Run("invalid role", func(t *testing.T) {
		in := in
		in.DoctorID = cohen.ID
		in.Role = "observer"
		_, err := f.facade.AssignDoctor.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "invalid_role"))
	})
}

func TestGetAvailableDoctors_ScenarioTimeOff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.doctor(t, "Dr. Cohen", true)
	levi := f.doctor(t, "Dr. Levi", true)
	require.NoError(t, f.store.CreateTimeOff(ctx, &models.TimeOffRequest{
		ID:               uuid.New(),
		DoctorID:         levi.ID,
		RequestStartDate: "2025-03-10",
		RequestEndDate:   "2025-03-10",
		Type:             string(domain.TimeOffConference),
		Status:           string(domain.StatusApproved),
	}))

	got, err := f.facade.GetAvailableDoctors.Execute(ctx, GetAvailableDoctorsInput{
		Date: "2025-03-10", Shift: "morning",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Cohen", got[0].Name)

	_, err = f.facade.GetAvailableDoctors.Execute(ctx, GetAvailableDoctorsInput{Date: "2025-03-10", Shift: "night"})
	assert.True(t, httperr.IsBusiness(err, "legacy_shift"))
}

func TestUpdateAssignment_DoesNotRecheck(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cohen := f.doctor(t, "Dr. Cohen", true)
	levi := f.doctor(t, "Dr. Levi", true)

	a1, err := f.facade.AssignDoctor.Execute(ctx, AssignDoctorInput{
		DoctorID: cohen.ID, RoomID: f.room.ID, Date: "2025-03-10", ShiftType: "morning", Role: "Primary",
	})
	require.NoError(t, err)
	a2, err := f.facade.AssignDoctor.Execute(ctx, AssignDoctorInput{
		DoctorID: levi.ID, RoomID: f.room.ID, Date: "2025-03-10", ShiftType: "morning", Role: "Secondary",
	})
	require.NoError(t, err)

	got, err := f.facade.UpdateAssignment.Execute(ctx, UpdateAssignmentInput{
		ID:       a2.ID,
		DoctorID: &cohen.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, cohen.ID, got.DoctorID)
	assert.Equal(t, string(domain.RoleSecondary), got.Role)

	list, err := f.facade.ListAssignments.Execute(ctx, ListAssignmentsInput{Date: "2025-03-10", Shift: "morning"})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = f.facade.UpdateAssignment.Execute(ctx, UpdateAssignmentInput{ID: a1.ID, ShiftType: ptr("night")})
	assert.True(t, httperr.IsBusiness(err, "legacy_shift"))
}

func TestDeletesLeaveDependentsInPlace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cohen := f.doctor(t, "Dr. Cohen", true)
	s, err := f.facade.ScheduleSurgery.Execute(ctx, ScheduleSurgeryInput{
		RoomID: f.room.ID, Date: "2025-03-10", TimeSlot: "morning", SurgeryType: "Cardiac Surgery",
	})
	require.NoError(t, err)
	a, err := f.facade.AssignDoctor.Execute(ctx, AssignDoctorInput{
		DoctorID: cohen.ID, RoomID: f.room.ID, Date: "2025-03-10", ShiftType: "morning", Role: "Primary",
	})
	require.NoError(t, err)

	require.NoError(t, f.facade.DeleteSurgery.Execute(ctx, s.ID))
	_, err = f.facade.GetAssignment.Execute(ctx, a.ID)
	require.NoError(t, err)

	assert.True(t, httperr.IsKind(f.facade.DeleteSurgery.Execute(ctx, s.ID), httperr.KindNotFound))

	require.NoError(t, f.facade.DeleteAssignment.Execute(ctx, a.ID))
	_, err = f.facade.GetAssignment.Execute(ctx, a.ID)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
