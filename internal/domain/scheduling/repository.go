package scheduling

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

// Implementations return httperr.ErrNotFound from Get* when the row is
// missing, httperr.ErrUniqueness or httperr.ErrSlotOccupied when a unique
// index rejects a write, and httperr.ErrStore for every other failure.

// -------- Filters --------

type DoctorFilter struct {
	Active    *bool
	Specialty string
	Query     string
}

type RoomFilter struct {
	Active    *bool
	Specialty string
	Query     string
}

type SurgeryFilter struct {
	Range  *calendar.Range
	RoomID *uuid.UUID
}

type AssignmentFilter struct {
	Range    *calendar.Range
	Date     calendar.Date
	Shift    Shift
	DoctorID *uuid.UUID
	RoomID   *uuid.UUID
}

type TimeOffFilter struct {
	Status      TimeOffStatus
	DoctorID    *uuid.UUID
	Overlapping *calendar.Range
}

// -------- Repositories --------

type DoctorRepository interface {
	ListDoctors(ctx context.Context, f DoctorFilter) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*models.Doctor, error)

	// FindDoctorDuplicate returns the name of the first unique field of d
	// already held by another doctor, or "".
	FindDoctorDuplicate(ctx context.Context, d *models.Doctor) (string, error)

	CreateDoctor(ctx context.Context, d *models.Doctor) error
	UpdateDoctor(ctx context.Context, d *models.Doctor) error
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	ListRooms(ctx context.Context, f RoomFilter) ([]models.OperatingRoom, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*models.OperatingRoom, error)

	// FindRoomByNumber returns nil, nil when no room holds number.
	FindRoomByNumber(ctx context.Context, number string) (*models.OperatingRoom, error)

	CreateRoom(ctx context.Context, r *models.OperatingRoom) error
	UpdateRoom(ctx context.Context, r *models.OperatingRoom) error
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type SurgeryRepository interface {
	ListSurgeries(ctx context.Context, f SurgeryFilter) ([]models.Surgery, error)
	GetSurgery(ctx context.Context, id uuid.UUID) (*models.Surgery, error)

	// FindSurgeryInSlot returns nil, nil when the slot is free.
	FindSurgeryInSlot(ctx context.Context, slot Slot) (*models.Surgery, error)

	CreateSurgery(ctx context.Context, s *models.Surgery) error
	UpdateSurgery(ctx context.Context, s *models.Surgery) error
	DeleteSurgery(ctx context.Context, id uuid.UUID) error
}

type AssignmentRepository interface {
	ListAssignments(ctx context.Context, f AssignmentFilter) ([]models.Assignment, error)
	GetAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	CreateAssignment(ctx context.Context, a *models.Assignment) error
	UpdateAssignment(ctx context.Context, a *models.Assignment) error
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

type TimeOffRepository interface {
	ListTimeOff(ctx context.Context, f TimeOffFilter) ([]models.TimeOffRequest, error)
	GetTimeOff(ctx context.Context, id uuid.UUID) (*models.TimeOffRequest, error)
	CreateTimeOff(ctx context.Context, r *models.TimeOffRequest) error
	UpdateTimeOff(ctx context.Context, r *models.TimeOffRequest) error
}

// Repository is the whole Entity Store.
type Repository interface {
	DoctorRepository
	RoomRepository
	SurgeryRepository
	AssignmentRepository
	TimeOffRepository
}
