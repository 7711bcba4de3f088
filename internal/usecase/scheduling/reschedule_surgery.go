package scheduling

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/infra/slotlock"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

// RescheduleSurgeryInput carries a partial update; nil fields keep their
// current value.
type RescheduleSurgeryInput struct {
	ID          uuid.UUID
	RoomID      *uuid.UUID
	Date        *string
	TimeSlot    *string
	SurgeryType *string
	Notes       *string
}

type RescheduleSurgery struct {
	repo    domain.Repository
	checker *domain.ConflictChecker
	locker  slotlock.Locker
	events  *events.Dispatcher
}

func NewRescheduleSurgery(
	repo domain.Repository,
	locker slotlock.Locker,
	events *events.Dispatcher,
) *RescheduleSurgery {
	return &RescheduleSurgery{
		repo:    repo,
		checker: domain.NewConflictChecker(repo),
		locker:  locker,
		events:  events,
	}
}

func (uc *RescheduleSurgery) Execute(
	ctx context.Context,
	in RescheduleSurgeryInput,
) (*models.Surgery, error) {

	current, err := uc.repo.GetSurgery(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Merge
	// --------------------------------------------------
	merged := *current
	merged.Room = nil

	if in.RoomID != nil {
		if *in.RoomID == uuid.Nil {
			return nil, httperr.ErrRequired("room_id")
		}
		merged.RoomID = *in.RoomID
	}
	if in.Date != nil {
		d, err := domain.ParseDate("date", *in.Date)
		if err != nil {
			return nil, err
		}
		merged.Date = d
	}
	if in.TimeSlot != nil {
		s, err := domain.ParseShift(*in.TimeSlot)
		if err != nil {
			return nil, err
		}
		merged.TimeSlot = string(s)
	}
	if in.SurgeryType != nil {
		t := strings.TrimSpace(*in.SurgeryType)
		if t == "" {
			return nil, httperr.ErrRequired("surgery_type")
		}
		merged.SurgeryType = t
	}
	if in.Notes != nil {
		merged.Notes = strings.TrimSpace(*in.Notes)
	}

	// --------------------------------------------------
	// Re-check the merged slot, excluding the surgery itself
	// --------------------------------------------------
	slot := domain.SlotOf(&merged)

	release, err := lockSlot(ctx, uc.locker, slot)
	if err != nil {
		return nil, err
	}
	defer release()

	conflict, err := uc.checker.Check(ctx, slot, merged.ID)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, httperr.ErrSlotOccupied(conflict.ExistingSurgeryID.String())
	}

	if err := uc.repo.UpdateSurgery(ctx, &merged); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:   "surgery_rescheduled",
		Entity:   "surgery",
		EntityID: merged.ID,
		Metadata: map[string]any{
			"from": domain.SlotOf(current).Key(),
			"to":   slot.Key(),
		},
	})

	return &merged, nil
}
