package scheduling

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
)

type CheckConflictInput struct {
	RoomID    uuid.UUID
	Date      string
	TimeSlot  string
	ExcludeID uuid.UUID
}

type CheckConflict struct {
	checker *domain.ConflictChecker
}

func NewCheckConflict(repo domain.SlotReader) *CheckConflict {
	return &CheckConflict{checker: domain.NewConflictChecker(repo)}
}

// Execute returns nil when the slot is free.
func (uc *CheckConflict) Execute(
	ctx context.Context,
	in CheckConflictInput,
) (*domain.Conflict, error) {

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

	return uc.checker.Check(ctx, domain.Slot{
		RoomID: in.RoomID,
		Date:   date,
		Shift:  shift,
	}, in.ExcludeID)
}
