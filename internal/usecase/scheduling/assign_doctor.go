package scheduling

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AssignDoctorInput struct {
	DoctorID  uuid.UUID
	RoomID    uuid.UUID
	Date      string
	ShiftType string
	Role      string
	Notes     string

	// AllowDoubleBooking is the manual override: it lets a doctor who
	// already holds an assignment for the shift take another one. It never
	// overrides inactivity or approved time-off.
	AllowDoubleBooking bool
}

// ======================================================
// USE CASE
// ======================================================

type AssignDoctor struct {
	repo     domain.Repository
	resolver *domain.AvailabilityResolver
	events   *events.Dispatcher
}

func NewAssignDoctor(repo domain.Repository, events *events.Dispatcher) *AssignDoctor {
	return &AssignDoctor{
		repo:     repo,
		resolver: domain.NewAvailabilityResolver(repo),
		events:   events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AssignDoctor) Execute(
	ctx context.Context,
	in AssignDoctorInput,
) (*models.Assignment, error) {

	// --------------------------------------------------
	// 1. Presence and enums
	// --------------------------------------------------
	if in.DoctorID == uuid.Nil {
		return nil, httperr.ErrRequired("doctor_id")
	}
	if in.RoomID == uuid.Nil {
		return nil, httperr.ErrRequired("operating_room_id")
	}
	date, err := domain.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	shift, err := domain.ParseShift(in.ShiftType)
	if err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Room must exist
	// --------------------------------------------------
	if _, err := uc.repo.GetRoom(ctx, in.RoomID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Availability at commit time
	// --------------------------------------------------
	reason, err := uc.resolver.ReasonFor(ctx, in.DoctorID, date, shift, uuid.Nil)
	if err != nil {
		return nil, err
	}
	switch reason {
	case domain.ReasonNone:
	case domain.ReasonAlreadyAssigned:
		if !in.AllowDoubleBooking {
			return nil, httperr.ErrUnavailable(string(reason))
		}
	default:
		return nil, httperr.ErrUnavailable(string(reason))
	}

	// --------------------------------------------------
	// 4. Persist
	// --------------------------------------------------
	a := &models.Assignment{
		ID:              uuid.New(),
		DoctorID:        in.DoctorID,
		OperatingRoomID: in.RoomID,
		Date:            date,
		ShiftType:       string(shift),
		Role:            string(role),
		Notes:           strings.TrimSpace(in.Notes),
	}
	if err := uc.repo.CreateAssignment(ctx, a); err != nil {
		return nil, err
	}

	meta := map[string]any{"date": date.String(), "shift": string(shift)}
	if reason == domain.ReasonAlreadyAssigned {
		meta["double_booked"] = true
	}
	uc.events.Dispatch(events.Event{
		Action:   "doctor_assigned",
		Entity:   "assignment",
		EntityID: a.ID,
		Metadata: meta,
	})

	return a, nil
}
