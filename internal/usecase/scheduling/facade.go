package scheduling

import (
	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
	"github.com/BruksfildServices01/or-harmony/internal/infra/slotlock"
)

// Facade is the single entry point for every surgery and assignment
// mutation. Each field is one operation.
type Facade struct {
	ScheduleSurgery   *ScheduleSurgery
	RescheduleSurgery *RescheduleSurgery
	DeleteSurgery     *DeleteSurgery
	CheckConflict     *CheckConflict
	AvailableSlots    *AvailableSlots
	ListSurgeries     *ListSurgeries
	GetSurgery        *GetSurgery

	AssignDoctor        *AssignDoctor
	UpdateAssignment    *UpdateAssignment
	DeleteAssignment    *DeleteAssignment
	ListAssignments     *ListAssignments
	GetAssignment       *GetAssignment
	GetAvailableDoctors *GetAvailableDoctors
}

func NewFacade(
	repo domain.Repository,
	locker slotlock.Locker,
	dispatcher *events.Dispatcher,
) *Facade {
	if locker == nil {
		locker = slotlock.Noop{}
	}

	return &Facade{
		ScheduleSurgery:   NewScheduleSurgery(repo, locker, dispatcher),
		RescheduleSurgery: NewRescheduleSurgery(repo, locker, dispatcher),
		DeleteSurgery:     NewDeleteSurgery(repo, dispatcher),
		CheckConflict:     NewCheckConflict(repo),
		AvailableSlots:    NewAvailableSlots(repo),
		ListSurgeries:     NewListSurgeries(repo),
		GetSurgery:        NewGetSurgery(repo),

		AssignDoctor:        NewAssignDoctor(repo, dispatcher),
		UpdateAssignment:    NewUpdateAssignment(repo, dispatcher),
		DeleteAssignment:    NewDeleteAssignment(repo, dispatcher),
		ListAssignments:     NewListAssignments(repo),
		GetAssignment:       NewGetAssignment(repo),
		GetAvailableDoctors: NewGetAvailableDoctors(repo),
	}
}
