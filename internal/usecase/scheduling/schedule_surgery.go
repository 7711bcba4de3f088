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

// ======================================================
// INPUT
// ======================================================

type ScheduleSurgeryInput struct {
	RoomID      uuid.UUID
	Date        string
	TimeSlot    string
	SurgeryType string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleSurgery struct {
	repo    domain.Repository
	checker *domain.ConflictChecker
	locker  slotlock.Locker
	events  *events.Dispatcher
}

func NewScheduleSurgery(
	repo domain.Repository,
	locker slotlock.Locker,
	events *events.Dispatcher,
) *ScheduleSurgery {
	return &ScheduleSurgery{
		repo:    repo,
		checker: domain.NewConflictChecker(repo),
		locker:  locker,
		events:  events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ScheduleSurgery) Execute(
	ctx context.Context,
	in ScheduleSurgeryInput,
) (*models.Surgery, error) {

	// --------------------------------------------------
	// 1. Presence and enums
	// --------------------------------------------------
	if in.RoomID == uuid.Nil {
		return nil, httperr.ErrRequired("room_id")
	}
	date, err := domain.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	shift, err := domain.ParseShift(in.TimeSlot)
	if err != nil {
		return nil, err
	}
	surgeryType := strings.TrimSpace(in.SurgeryType)
	if surgeryType == "" {
		return nil, httperr.ErrRequired("surgery_type")
	}

	slot := domain.Slot{RoomID: in.RoomID, Date: date, Shift: shift}

	// --------------------------------------------------
	// 2. Check and write under the slot lock
	// --------------------------------------------------
	release, err := lockSlot(ctx, uc.locker, slot)
	if err != nil {
		return nil, err
	}
	defer release()

	conflict, err := uc.checker.Check(ctx, slot, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, httperr.ErrSlotOccupied(conflict.ExistingSurgeryID.String())
	}

	s := &models.Surgery{
		ID:          uuid.New(),
		RoomID:      slot.RoomID,
		Date:        slot.Date,
		TimeSlot:    string(slot.Shift),
		SurgeryType: surgeryType,
		Notes:       strings.TrimSpace(in.Notes),
	}

	// a concurrent insert that slipped past the check surfaces here as
	// SlotOccupied from the unique index
	if err := uc.repo.CreateSurgery(ctx, s); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:   "surgery_scheduled",
		Entity:   "surgery",
		EntityID: s.ID,
		Metadata: map[string]any{"slot": slot.Key()},
	})

	return s, nil
}
