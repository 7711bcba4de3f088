package scheduling

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
)

// DeleteSurgery removes the row only. Assignments for the same room and
// shift are left as they are.
type DeleteSurgery struct {
	repo   domain.Repository
	events *events.Dispatcher
}

func NewDeleteSurgery(repo domain.Repository, events *events.Dispatcher) *DeleteSurgery {
	return &DeleteSurgery{repo: repo, events: events}
}

func (uc *DeleteSurgery) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.DeleteSurgery(ctx, id); err != nil {
		return err
	}

	uc.events.Dispatch(events.Event{
		Action:   "surgery_deleted",
		Entity:   "surgery",
		EntityID: id,
	})
	return nil
}
