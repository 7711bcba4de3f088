package directory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/models"
	"github.com/BruksfildServices01/or-harmony/internal/validators"
)

type RoomInput struct {
	RoomNumber string
	Location   string
	Specialty  string
	Notes      string
	IsActive   *bool
}

type RoomPatch struct {
	RoomNumber *string
	Location   *string
	Specialty  *string
	Notes      *string
	IsActive   *bool
}

type Rooms struct {
	repo   domain.RoomRepository
	events *events.Dispatcher
}

func NewRooms(repo domain.RoomRepository, events *events.Dispatcher) *Rooms {
	return &Rooms{repo: repo, events: events}
}

// List searches active rooms only when a query is given and no active
// filter is set.
func (s *Rooms) List(ctx context.Context, f domain.RoomFilter) ([]models.OperatingRoom, error) {
	if strings.TrimSpace(f.Query) != "" && f.Active == nil {
		active := true
		f.Active = &active
	}
	return s.repo.ListRooms(ctx, f)
}

func (s *Rooms) Get(ctx context.Context, id uuid.UUID) (*models.OperatingRoom, error) {
	return s.repo.GetRoom(ctx, id)
}

func normalizeRoom(r *models.OperatingRoom) {
	r.RoomNumber = validators.NormalizeRoomNumber(r.RoomNumber)
	r.Location = strings.TrimSpace(r.Location)
	r.Specialty = strings.TrimSpace(r.Specialty)
	r.Notes = strings.TrimSpace(r.Notes)
}

func (s *Rooms) checkUnique(ctx context.Context, r *models.OperatingRoom) error {
	if r.RoomNumber == "" {
		return httperr.ErrRequired("room_number")
	}
	existing, err := s.repo.FindRoomByNumber(ctx, r.RoomNumber)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != r.ID {
		return httperr.ErrUniqueness("room_number")
	}
	return nil
}

func (s *Rooms) Create(ctx context.Context, in RoomInput) (*models.OperatingRoom, error) {
	r := &models.OperatingRoom{
		ID:         uuid.New(),
		RoomNumber: in.RoomNumber,
		Location:   in.Location,
		Specialty:  in.Specialty,
		Notes:      in.Notes,
		IsActive:   in.IsActive == nil || *in.IsActive,
	}

	normalizeRoom(r)
	if err := s.checkUnique(ctx, r); err != nil {
		return nil, err
	}
	if err := s.repo.CreateRoom(ctx, r); err != nil {
		return nil, err
	}

	s.events.Dispatch(events.Event{Action: "room_created", Entity: "operating_room", EntityID: r.ID})
	return r, nil
}

func (s *Rooms) Update(ctx context.Context, id uuid.UUID, p RoomPatch) (*models.OperatingRoom, error) {
	r, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.RoomNumber != nil {
		r.RoomNumber = *p.RoomNumber
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Specialty != nil {
		r.Specialty = *p.Specialty
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}

	normalizeRoom(r)
	if err := s.checkUnique(ctx, r); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateRoom(ctx, r); err != nil {
		return nil, err
	}

	s.events.Dispatch(events.Event{Action: "room_updated", Entity: "operating_room", EntityID: r.ID})
	return r, nil
}

func (s *Rooms) Deactivate(ctx context.Context, id uuid.UUID) (*models.OperatingRoom, error) {
	inactive := false
	return s.Update(ctx, id, RoomPatch{IsActive: &inactive})
}

// Delete leaves surgeries and assignments in the room untouched.
func (s *Rooms) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteRoom(ctx, id); err != nil {
		return err
	}
	s.events.Dispatch(events.Event{Action: "room_deleted", Entity: "operating_room", EntityID: id})
	return nil
}
