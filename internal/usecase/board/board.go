package board

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/dto"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

type GetBoard struct {
	repo     domain.Repository
	resolver *domain.AvailabilityResolver
}

func NewGetBoard(repo domain.Repository) *GetBoard {
	return &GetBoard{repo: repo, resolver: domain.NewAvailabilityResolver(repo)}
}

// Execute builds the day board for every active room. Assignments whose
// room no longer exists are skipped.
func (uc *GetBoard) Execute(ctx context.Context, rawDate string) (*dto.BoardDTO, error) {
	date, err := domain.ParseDate("date", rawDate)
	if err != nil {
		return nil, err
	}

	active := true
	rooms, err := uc.repo.ListRooms(ctx, domain.RoomFilter{Active: &active})
	if err != nil {
		return nil, err
	}

	day := calendar.Range{From: date, To: date}
	surgeries, err := uc.repo.ListSurgeries(ctx, domain.SurgeryFilter{Range: &day})
	if err != nil {
		return nil, err
	}

	assignments, err := uc.repo.ListAssignments(ctx, domain.AssignmentFilter{Date: date})
	if err != nil {
		return nil, err
	}

	type cellKey struct {
		room  uuid.UUID
		shift domain.Shift
	}
	surgeryAt := make(map[cellKey]*models.Surgery, len(surgeries))
	for i := range surgeries {
		s := &surgeries[i]
		surgeryAt[cellKey{s.RoomID, domain.Shift(s.TimeSlot)}] = s
	}
	assignedAt := make(map[cellKey][]models.Assignment)
	for _, a := range assignments {
		k := cellKey{a.OperatingRoomID, domain.Shift(a.ShiftType)}
		assignedAt[k] = append(assignedAt[k], a)
	}

	out := &dto.BoardDTO{
		Date:             date,
		Rooms:            make([]dto.RoomBoardDTO, 0, len(rooms)),
		AvailableDoctors: make(map[string][]models.Doctor, len(domain.Shifts)),
		UnassignedRooms:  []dto.UnassignedRoomDTO{},
	}

	for _, room := range rooms {
		rb := dto.RoomBoardDTO{Room: room}
		for _, shift := range domain.Shifts {
			k := cellKey{room.ID, shift}
			cell := dto.ShiftCellDTO{
				Shift:       string(shift),
				Surgery:     surgeryAt[k],
				Assignments: assignedAt[k],
			}
			if cell.Assignments == nil {
				cell.Assignments = []models.Assignment{}
			}
			rb.Shifts = append(rb.Shifts, cell)

			if cell.Surgery != nil && len(cell.Assignments) == 0 {
				out.UnassignedRooms = append(out.UnassignedRooms, dto.UnassignedRoomDTO{
					RoomID:     room.ID,
					RoomNumber: room.RoomNumber,
					Shift:      string(shift),
					SurgeryID:  cell.Surgery.ID,
				})
			}
		}
		out.Rooms = append(out.Rooms, rb)
	}

	for _, shift := range domain.Shifts {
		doctors, err := uc.resolver.Available(ctx, date, shift, uuid.Nil)
		if err != nil {
			return nil, err
		}
		out.AvailableDoctors[string(shift)] = doctors
	}

	return out, nil
}
