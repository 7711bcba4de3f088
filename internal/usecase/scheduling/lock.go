package scheduling

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/infra/slotlock"
)

func lockSlot(
	ctx context.Context,
	locker slotlock.Locker,
	slot domain.Slot,
) (slotlock.Release, error) {

	if locker == nil {
		return func() {}, nil
	}

	release, err := locker.Acquire(ctx, slot.Key())
	switch {
	case errors.Is(err, slotlock.ErrBusy):
		return nil, httperr.ErrStore("slot_busy", err)
	case err != nil:
		return nil, httperr.ErrStore("slot_lock_failure", err)
	}
	return release, nil
}
