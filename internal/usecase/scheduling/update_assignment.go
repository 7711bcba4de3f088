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

type UpdateAssignmentInput struct {
	ID        uuid.UUID
	DoctorID  *uuid.UUID
	RoomID    *uuid.UUID
	Date      *string
	ShiftType *string
	Role      *string
	Notes     *string
}

// UpdateAssignment persists edits directly. Availability is not
// re-evaluated; callers consult GetAvailableDoctors with the assignment id
// beforehand.
type UpdateAssignment struct {
	repo   domain.Repository
	events *events.Dispatcher
}

func NewUpdateAssignment(repo domain.Repository, events *events.Dispatcher) *UpdateAssignment {
	return &UpdateAssignment{repo: repo, events: events}
}

func (uc *UpdateAssignment) Execute(
	ctx context.Context,
	in UpdateAssignmentInput,
) (*models.Assignment, error) {

	current, err := uc.repo.GetAssignment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	a := *current
	a.Doctor, a.OperatingRoom = nil, nil

	if in.DoctorID != nil {
		if *in.DoctorID == uuid.Nil {
			return nil, httperr.ErrRequired("doctor_id")
		}
		a.DoctorID = *in.DoctorID
	}
	if in.RoomID != nil {
		if *in.RoomID == uuid.Nil {
			return nil, httperr.ErrRequired("operating_room_id")
		}
		a.OperatingRoomID = *in.RoomID
	}
	if in.Date != nil {
		d, err := domain.ParseDate("date", *in.Date)
		if err != nil {
			return nil, err
		}
		a.Date = d
	}
	if in.ShiftType != nil {
		s, err := domain.ParseShift(*in.ShiftType)
		if err != nil {
			return nil, err
		}
		a.ShiftType = string(s)
	}
	if in.Role != nil {
		r, err := domain.ParseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		a.Role = string(r)
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := uc.repo.UpdateAssignment(ctx, &a); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:   "assignment_updated",
		Entity:   "assignment",
		EntityID: a.ID,
	})

	return &a, nil
}

type DeleteAssignment struct {
	repo   domain.Repository
	events *events.Dispatcher
}

func NewDeleteAssignment(repo domain.Repository, events *events.Dispatcher) *DeleteAssignment {
	return &DeleteAssignment{repo: repo, events: events}
}

func (uc *DeleteAssignment) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.DeleteAssignment(ctx, id); err != nil {
		return err
	}

	uc.events.Dispatch(events.Event{
		Action:   "assignment_deleted",
		Entity:   "assignment",
		EntityID: id,
	})
	return nil
}
