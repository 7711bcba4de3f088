package scheduling

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/models"
)

type SlotReader interface {
	GetRoom(ctx context.Context, id uuid.UUID) (*models.OperatingRoom, error)
	FindSurgeryInSlot(ctx context.Context, slot Slot) (*models.Surgery, error)
}

// Conflict names the surgery already holding a slot.
type Conflict struct {
	Slot              Slot      `json:"slot"`
	ExistingSurgeryID uuid.UUID `json:"existing_surgery_id"`
}

type ConflictChecker struct {
	store SlotReader
}

func NewConflictChecker(store SlotReader) *ConflictChecker {
	return &ConflictChecker{store: store}
}

// Check returns nil when slot is free. A surgery whose id equals exclude
// never conflicts, so an edit does not collide with itself. Read failures
// are returned as errors, never as a conflict.
func (c *ConflictChecker) Check(
	ctx context.Context,
	slot Slot,
	exclude uuid.UUID,
) (*Conflict, error) {

	if err := slot.Validate(); err != nil {
		return nil, err
	}

	if _, err := c.store.GetRoom(ctx, slot.RoomID); err != nil {
		return nil, err
	}

	existing, err := c.store.FindSurgeryInSlot(ctx, slot)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if exclude != uuid.Nil && existing.ID == exclude {
		return nil, nil
	}

	return &Conflict{Slot: slot, ExistingSurgeryID: existing.ID}, nil
}
