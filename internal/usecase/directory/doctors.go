package directory

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/events"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/models"
	"github.com/BruksfildServices01/or-harmony/internal/validators"
)

type DoctorInput struct {
	Name             string
	EmployeeID       string
	Specialty        string
	ContactEmail     string
	ContactTelephone string

	// IsActive defaults to true on create.
	IsActive    *bool
	Permissions models.Permissions
}

// DoctorPatch is a partial update; nil fields are left untouched.
type DoctorPatch struct {
	Name             *string
	EmployeeID       *string
	Specialty        *string
	ContactEmail     *string
	ContactTelephone *string
	IsActive         *bool
	Permissions      *models.Permissions
}

type Doctors struct {
	repo    domain.DoctorRepository
	avatars *AvatarUploader
	events  *events.Dispatcher
}

// NewDoctors wires the doctor directory. avatars may be nil, in which case
// UploadAvatar fails with avatar_storage_disabled.
func NewDoctors(
	repo domain.DoctorRepository,
	avatars *AvatarUploader,
	events *events.Dispatcher,
) *Doctors {
	return &Doctors{repo: repo, avatars: avatars, events: events}
}

// List searches active doctors only when a query is given and no active
// filter is set.
func (s *Doctors) List(ctx context.Context, f domain.DoctorFilter) ([]models.Doctor, error) {
	if strings.TrimSpace(f.Query) != "" && f.Active == nil {
		active := true
		f.Active = &active
	}
	return s.repo.ListDoctors(ctx, f)
}

func (s *Doctors) Get(ctx context.Context, id uuid.UUID) (*models.Doctor, error) {
	return s.repo.GetDoctor(ctx, id)
}

func normalizeDoctor(d *models.Doctor) {
	d.Name = strings.TrimSpace(d.Name)
	d.EmployeeID = strings.TrimSpace(d.EmployeeID)
	d.Specialty = strings.TrimSpace(d.Specialty)
	d.ContactEmail = validators.NormalizeEmail(d.ContactEmail)
	d.ContactTelephone = validators.NormalizePhone(d.ContactTelephone)
}

func validateDoctor(d *models.Doctor) error {
	switch {
	case d.Name == "":
		return httperr.ErrRequired("name")
	case d.EmployeeID == "":
		return httperr.ErrRequired("employee_id")
	case d.ContactEmail == "":
		return httperr.ErrRequired("contact_email")
	case d.ContactTelephone == "":
		return httperr.ErrRequired("contact_telephone")
	}
	return nil
}

// checkUnique runs the application-level pre-check. The unique indexes
// still reject whatever slips past it.
func (s *Doctors) checkUnique(ctx context.Context, d *models.Doctor) error {
	field, err := s.repo.FindDoctorDuplicate(ctx, d)
	if err != nil {
		return err
	}
	if field != "" {
		return httperr.ErrUniqueness(field)
	}
	return nil
}

func (s *Doctors) Create(ctx context.Context, in DoctorInput) (*models.Doctor, error) {
	d := &models.Doctor{
		ID:               uuid.New(),
		Name:             in.Name,
		EmployeeID:       in.EmployeeID,
		Specialty:        in.Specialty,
		ContactEmail:     in.ContactEmail,
		ContactTelephone: in.ContactTelephone,
		IsActive:         in.IsActive == nil || *in.IsActive,
		Permissions:      in.Permissions,
	}

	normalizeDoctor(d)
	if err := validateDoctor(d); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, d); err != nil {
		return nil, err
	}
	if err := s.repo.CreateDoctor(ctx, d); err != nil {
		return nil, err
	}

	s.events.Dispatch(events.Event{Action: "doctor_created", Entity: "doctor", EntityID: d.ID})
	return d, nil
}

func (s *Doctors) Update(ctx context.Context, id uuid.UUID, p DoctorPatch) (*models.Doctor, error) {
	d, err := s.repo.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.EmployeeID != nil {
		d.EmployeeID = *p.EmployeeID
	}
	if p.Specialty != nil {
		d.Specialty = *p.Specialty
	}
	if p.ContactEmail != nil {
		d.ContactEmail = *p.ContactEmail
	}
	if p.ContactTelephone != nil {
		d.ContactTelephone = *p.ContactTelephone
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
	if p.Permissions != nil {
		d.Permissions = *p.Permissions
	}

	normalizeDoctor(d)
	if err := validateDoctor(d); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, d); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateDoctor(ctx, d); err != nil {
		return nil, err
	}

	s.events.Dispatch(events.Event{Action: "doctor_updated", Entity: "doctor", EntityID: d.ID})
	return d, nil
}

// Deactivate is the soft delete: the doctor stays in the directory but
// drops out of every candidate set.
func (s *Doctors) Deactivate(ctx context.Context, id uuid.UUID) (*models.Doctor, error) {
	inactive := false
	return s.Update(ctx, id, DoctorPatch{IsActive: &inactive})
}

// Delete removes the doctor row only; assignments and time-off requests
// referencing it are kept.
func (s *Doctors) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteDoctor(ctx, id); err != nil {
		return err
	}
	s.events.Dispatch(events.Event{Action: "doctor_deleted", Entity: "doctor", EntityID: id})
	return nil
}

func (s *Doctors) UploadAvatar(ctx context.Context, id uuid.UUID, image io.Reader) (*models.Doctor, error) {
	if s.avatars == nil {
		return nil, httperr.ErrBusiness("avatar_storage_disabled")
	}

	d, err := s.repo.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.Upload(ctx, id, image)
	if err != nil {
		return nil, err
	}

	d.AvatarURL = url
	if err := s.repo.UpdateDoctor(ctx, d); err != nil {
		return nil, err
	}

	s.events.Dispatch(events.Event{Action: "doctor_avatar_uploaded", Entity: "doctor", EntityID: id})
	return d, nil
}
