package scheduling

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

type AvailabilityReader interface {
	GetDoctor(ctx context.Context, id uuid.UUID) (*models.Doctor, error)
	ListDoctors(ctx context.Context, f DoctorFilter) ([]models.Doctor, error)
	ListTimeOff(ctx context.Context, f TimeOffFilter) ([]models.TimeOffRequest, error)
	ListAssignments(ctx context.Context, f AssignmentFilter) ([]models.Assignment, error)
}

// Reason explains why a doctor is left out of a candidate set.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonInactive        Reason = "doctor_inactive"
	ReasonTimeOff         Reason = "doctor_on_time_off"
	ReasonAlreadyAssigned Reason = "doctor_already_assigned"
)

type AvailabilityResolver struct {
	store AvailabilityReader
}

func NewAvailabilityResolver(store AvailabilityReader) *AvailabilityResolver {
	return &AvailabilityResolver{store: store}
}

// Available returns the active doctors free for (date, shift), sorted by
// name. The assignment identified by editing does not count against its
// own doctor.
func (r *AvailabilityResolver) Available(
	ctx context.Context,
	date calendar.Date,
	shift Shift,
	editing uuid.UUID,
) ([]models.Doctor, error) {

	active, excluded, err := r.evaluate(ctx, date, shift, editing)
	if err != nil {
		return nil, err
	}

	out := make([]models.Doctor, 0, len(active))
	for _, d := range active {
		if _, ok := excluded[d.ID]; !ok {
			out = append(out, d)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})

	return out, nil
}

// ReasonFor runs the same resolution for a single doctor. Inactive wins
// over time-off, which wins over an existing assignment.
func (r *AvailabilityResolver) ReasonFor(
	ctx context.Context,
	doctorID uuid.UUID,
	date calendar.Date,
	shift Shift,
	editing uuid.UUID,
) (Reason, error) {

	doctor, err := r.store.GetDoctor(ctx, doctorID)
	if err != nil {
		return ReasonNone, err
	}
	if !doctor.IsActive {
		return ReasonInactive, nil
	}

	_, excluded, err := r.evaluate(ctx, date, shift, editing)
	if err != nil {
		return ReasonNone, err
	}

	return excluded[doctorID], nil
}

func (r *AvailabilityResolver) evaluate(
	ctx context.Context,
	date calendar.Date,
	shift Shift,
	editing uuid.UUID,
) ([]models.Doctor, map[uuid.UUID]Reason, error) {

	if date.IsZero() {
		return nil, nil, httperr.ErrRequired("date")
	}
	if !shift.Valid() {
		return nil, nil, httperr.ErrValidation("invalid_shift", "shift")
	}

	active := true
	doctors, err := r.store.ListDoctors(ctx, DoctorFilter{Active: &active})
	if err != nil {
		return nil, nil, err
	}

	day := calendar.Range{From: date, To: date}
	timeOff, err := r.store.ListTimeOff(ctx, TimeOffFilter{
		Status:      StatusApproved,
		Overlapping: &day,
	})
	if err != nil {
		return nil, nil, err
	}

	assignments, err := r.store.ListAssignments(ctx, AssignmentFilter{
		Date:  date,
		Shift: shift,
	})
	if err != nil {
		return nil, nil, err
	}

	return doctors, Exclusions(date, shift, timeOff, assignments, editing), nil
}

// Exclusions is the set-subtraction step: every doctor on approved time-off
// covering date, then every doctor holding an assignment for (date, shift)
// other than editing. Rows that do not match are ignored, so callers may
// pass broader result sets.
func Exclusions(
	date calendar.Date,
	shift Shift,
	timeOff []models.TimeOffRequest,
	assignments []models.Assignment,
	editing uuid.UUID,
) map[uuid.UUID]Reason {

	out := make(map[uuid.UUID]Reason)

	for _, a := range assignments {
		if editing != uuid.Nil && a.ID == editing {
			continue
		}
		if a.Date != date || Shift(a.ShiftType) != shift {
			continue
		}
		out[a.DoctorID] = ReasonAlreadyAssigned
	}

	for i := range timeOff {
		t := &timeOff[i]
		if TimeOffStatus(t.Status) != StatusApproved {
			continue
		}
		if !t.Period().Contains(date) {
			continue
		}
		out[t.DoctorID] = ReasonTimeOff
	}

	return out
}
