package timeoff

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/or-harmony/internal/calendar"
	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

// Store is the slice of the Entity Store the workflow needs.
type Store interface {
	domain.TimeOffRepository
	GetDoctor(ctx context.Context, id uuid.UUID) (*models.Doctor, error)
}

// ======================================================
// INPUTS
// ======================================================

type CreateInput struct {
	DoctorID  uuid.UUID
	StartDate string
	EndDate   string
	Type      string
	Reason    string
	Notes     string
}

type ListInput struct {
	Status   string
	DoctorID *uuid.UUID
	From     string
	To       string
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	repo   Store
	events *events.Dispatcher
	now    func() time.Time
}

func NewService(repo Store, events *events.Dispatcher) *Service {
	return &Service{repo: repo, events: events, now: time.Now}
}

// Create files a new request. Whatever the caller sends, the request
// starts pending.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.TimeOffRequest, error) {
	if in.DoctorID == uuid.Nil {
		return nil, httperr.ErrRequired("doctor_id")
	}
	start, err := domain.ParseDate("request_start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseDate("request_end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, httperr.ErrValidation("invalid_range", "request_end_date")
	}
	kind, err := domain.ParseTimeOffType(in.Type)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetDoctor(ctx, in.DoctorID); err != nil {
		return nil, err
	}

	req := &models.TimeOffRequest{
		ID:               uuid.New(),
		DoctorID:         in.DoctorID,
		RequestStartDate: start,
		RequestEndDate:   end,
		Type:             string(kind),
		Reason:           strings.TrimSpace(in.Reason),
		Notes:            strings.TrimSpace(in.Notes),
		Status:           string(domain.InitialStatus()),
		RequestedAt:      s.now().UTC(),
	}
	if err := s.repo.CreateTimeOff(ctx, req); err != nil {
		return nil, err
	}

	s.events.Dispatch(events.Event{Action: "time_off_requested", Entity: "time_off_request", EntityID: req.ID})
	return req, nil
}

func (s *Service) List(ctx context.Context, in ListInput) ([]models.TimeOffRequest, error) {
	f := domain.TimeOffFilter{DoctorID: in.DoctorID}

	if strings.TrimSpace(in.Status) != "" {
		st, err := domain.ParseTimeOffStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = st
	}

	period, err := domain.ParseRange("", in.From, in.To)
	if err != nil {
		return nil, err
	}
	f.Overlapping = period

	return s.repo.ListTimeOff(ctx, f)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.TimeOffRequest, error) {
	return s.repo.GetTimeOff(ctx, id)
}

// UpdateStatus moves a request to any status. processed_at follows the
// status: stamped on approve or reject, cleared on a return to pending.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, raw string) (*models.TimeOffRequest, error) {
	status, err := domain.ParseTimeOffStatus(raw)
	if err != nil {
		return nil, err
	}

	req, err := s.repo.GetTimeOff(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := req.Status
	req.Status = string(status)
	if status.IsProcessed() {
		at := s.now().UTC()
		req.ProcessedAt = &at
	} else {
		req.ProcessedAt = nil
	}

	if err := s.repo.UpdateTimeOff(ctx, req); err != nil {
		return nil, err
	}

	s.events.Dispatch(events.Event{
		Action:   "time_off_status_changed",
		Entity:   "time_off_request",
		EntityID: req.ID,
		Metadata: map[string]any{"from": previous, "to": req.Status},
	})
	return req, nil
}

// ApprovedFor lists approved requests whose inclusive range covers date.
func (s *Service) ApprovedFor(ctx context.Context, rawDate string) ([]models.TimeOffRequest, error) {
	date, err := domain.ParseDate("date", rawDate)
	if err != nil {
		return nil, err
	}
	return s.approved(ctx, calendar.Range{From: date, To: date})
}

// ApprovedOverlapping lists approved requests intersecting [from, to].
func (s *Service) ApprovedOverlapping(ctx context.Context, from, to string) ([]models.TimeOffRequest, error) {
	period, err := domain.ParseRange("", from, to)
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, httperr.ErrRequired("from")
	}
	return s.approved(ctx, *period)
}

func (s *Service) approved(ctx context.Context, period calendar.Range) ([]models.TimeOffRequest, error) {
	return s.repo.ListTimeOff(ctx, domain.TimeOffFilter{
		Status:      domain.StatusApproved,
		Overlapping: &period,
	})
}
