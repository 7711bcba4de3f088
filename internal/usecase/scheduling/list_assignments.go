package scheduling

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

type ListAssignmentsInput struct {
	Week  string
	From  string
	To    string
	Date  string
	Shift string

	DoctorID *uuid.UUID
	RoomID   *uuid.UUID
}

type ListAssignments struct {
	repo domain.Repository
}

func NewListAssignments(repo domain.Repository) *ListAssignments {
	return &ListAssignments{repo: repo}
}

func (uc *ListAssignments) Execute(
	ctx context.Context,
	in ListAssignmentsInput,
) ([]models.Assignment, error) {

	f := domain.AssignmentFilter{
		DoctorID: in.DoctorID,
		RoomID:   in.RoomID,
	}

	if strings.TrimSpace(in.Date) != "" {
		d, err := domain.ParseDate("date", in.Date)
		if err != nil {
			return nil, err
		}
		f.Date = d
	} else {
		period, err := domain.ParseRange(in.Week, in.From, in.To)
		if err != nil {
			return nil, err
		}
		f.Range = period
	}

	if strings.TrimSpace(in.Shift) != "" {
		s, err := domain.ParseShift(in.Shift)
		if err != nil {
			return nil, err
		}
		f.Shift = s
	}

	return uc.repo.ListAssignments(ctx, f)
}

type GetAssignment struct {
	repo domain.Repository
}

func NewGetAssignment(repo domain.Repository) *GetAssignment {
	return &GetAssignment{repo: repo}
}

func (uc *GetAssignment) Execute(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	return uc.repo.GetAssignment(ctx, id)
}

type GetAvailableDoctorsInput struct {
	Date                string
	Shift               string
	ExcludeAssignmentID uuid.UUID
}

type GetAvailableDoctors struct {
	resolver *domain.AvailabilityResolver
}

func NewGetAvailableDoctors(repo domain.AvailabilityReader) *GetAvailableDoctors {
	return &GetAvailableDoctors{resolver: domain.NewAvailabilityResolver(repo)}
}

func (uc *GetAvailableDoctors) Execute(
	ctx context.Context,
	in GetAvailableDoctorsInput,
) ([]models.Doctor, error) {

	date, err := domain.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	shift, err := domain.ParseShift(in.Shift)
	if err != nil {
		return nil, err
	}
	return uc.resolver.Available(ctx, date, shift, in.ExcludeAssignmentID)
}
