package scheduling

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
)

type AvailableSlots struct {
	repo domain.Repository
}

func NewAvailableSlots(repo domain.Repository) *AvailableSlots {
	return &AvailableSlots{repo: repo}
}

// Execute lists the canonical shifts of date not yet booked in the room,
// in display order.
func (uc *AvailableSlots) Execute(
	ctx context.Context,
	roomID uuid.UUID,
	rawDate string,
) ([]domain.Shift, error) {

	date, err := domain.ParseDate("date", rawDate)
	if err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}

	day := calendar.Range{From: date, To: date}
	surgeries, err := uc.repo.ListSurgeries(ctx, domain.SurgeryFilter{
		Range:  &day,
		RoomID: &roomID,
	})
	if err != nil {
		return nil, err
	}

	booked := make(map[domain.Shift]bool, len(surgeries))
	for _, s := range surgeries {
		booked[domain.Shift(s.TimeSlot)] = true
	}

	free := make([]domain.Shift, 0, len(domain.Shifts))
	for _, s := range domain.Shifts {
		if !booked[s] {
			free = append(free, s)
		}
	}
	return free, nil
}
