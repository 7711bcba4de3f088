// Package memstore is an in-memory Entity Store. It enforces the same unique
// indexes as the PostgreSQL schema and backs STORE_DRIVER=memory and tests.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

type Store struct {
	mu sync.RWMutex

	doctors     map[uuid.UUID]models.Doctor
	rooms       map[uuid.UUID]models.OperatingRoom
	surgeries   map[uuid.UUID]models.Surgery
	assignments map[uuid.UUID]models.Assignment
	timeOff     map[uuid.UUID]models.TimeOffRequest

	now func() time.Time
}

func New() *Store {
	return &Store{
		doctors:     make(map[uuid.UUID]models.Doctor),
		rooms:       make(map[uuid.UUID]models.OperatingRoom),
		surgeries:   make(map[uuid.UUID]models.Surgery),
		assignments: make(map[uuid.UUID]models.Assignment),
		timeOff:     make(map[uuid.UUID]models.TimeOffRequest),
		now:         time.Now,
	}
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func shiftRank(s string) int {
	for i, v := range domain.Shifts {
		if string(v) == s {
			return i
		}
	}
	return len(domain.Shifts)
}

func (s *Store) touch(created *time.Time, updated *time.Time) {
	now := s.now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

// --------------------------------------------------
// Doctors
// --------------------------------------------------

func (s *Store) ListDoctors(_ context.Context, f domain.DoctorFilter) ([]models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		if f.Active != nil && d.IsActive != *f.Active {
			continue
		}
		if f.Specialty != "" && !strings.EqualFold(d.Specialty, f.Specialty) {
			continue
		}
		if query != "" && !contains(d.Name, query) && !contains(d.EmployeeID, query) && !contains(d.Specialty, query) {
			continue
		}
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) GetDoctor(_ context.Context, id uuid.UUID) (*models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.doctors[id]
	if !ok {
		return nil, httperr.ErrNotFound("doctor")
	}
	return &d, nil
}

func (s *Store) FindDoctorDuplicate(_ context.Context, d *models.Doctor) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctorDuplicate(d), nil
}

// doctorDuplicate reports the first clashing field in the order
// employee_id, contact_email, contact_telephone.
func (s *Store) doctorDuplicate(d *models.Doctor) string {
	checks := []struct {
		field string
		same  func(o models.Doctor) bool
	}{
		{"employee_id", func(o models.Doctor) bool { return o.EmployeeID == d.EmployeeID }},
		{"contact_email", func(o models.Doctor) bool { return o.ContactEmail == d.ContactEmail }},
		{"contact_telephone", func(o models.Doctor) bool { return o.ContactTelephone == d.ContactTelephone }},
	}
	for _, c := range checks {
		for _, other := range s.doctors {
			if other.ID != d.ID && c.same(other) {
				return c.field
			}
		}
	}
	return ""
}

func (s *Store) CreateDoctor(_ context.Context, d *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if field := s.doctorDuplicate(d); field != "" {
		return httperr.ErrUniqueness(field)
	}
	s.touch(&d.CreatedAt, &d.UpdatedAt)
	s.doctors[d.ID] = *d
	return nil
}

func (s *Store) UpdateDoctor(_ context.Context, d *models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doctors[d.ID]; !ok {
		return httperr.ErrNotFound("doctor")
	}
	if field := s.doctorDuplicate(d); field != "" {
		return httperr.ErrUniqueness(field)
	}
	s.touch(&d.CreatedAt, &d.UpdatedAt)
	s.doctors[d.ID] = *d
	return nil
}

func (s *Store) DeleteDoctor(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doctors[id]; !ok {
		return httperr.ErrNotFound("doctor")
	}
	delete(s.doctors, id)
	return nil
}

// --------------------------------------------------
// Operating rooms
// --------------------------------------------------

func (s *Store) ListRooms(_ context.Context, f domain.RoomFilter) ([]models.OperatingRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.OperatingRoom, 0, len(s.rooms))
	for _, r := range s.rooms {
		if f.Active != nil && r.IsActive != *f.Active {
			continue
		}
		if f.Specialty != "" && !strings.EqualFold(r.Specialty, f.Specialty) {
			continue
		}
		if query != "" && !contains(r.RoomNumber, query) && !contains(r.Location, query) && !contains(r.Specialty, query) {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

func (s *Store) GetRoom(_ context.Context, id uuid.UUID) (*models.OperatingRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, httperr.ErrNotFound("operating_room")
	}
	return &r, nil
}

func (s *Store) FindRoomByNumber(_ context.Context, number string) (*models.OperatingRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rooms {
		if r.RoomNumber == number {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Store) roomNumberTaken(r *models.OperatingRoom) bool {
	for _, other := range s.rooms {
		if other.ID != r.ID && other.RoomNumber == r.RoomNumber {
			return true
		}
	}
	return false
}

func (s *Store) CreateRoom(_ context.Context, r *models.OperatingRoom) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if s.roomNumberTaken(r) {
		return httperr.ErrUniqueness("room_number")
	}
	s.touch(&r.CreatedAt, &r.UpdatedAt)
	s.rooms[r.ID] = *r
	return nil
}

func (s *Store) UpdateRoom(_ context.Context, r *models.OperatingRoom) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[r.ID]; !ok {
		return httperr.ErrNotFound("operating_room")
	}
	if s.roomNumberTaken(r) {
		return httperr.ErrUniqueness("room_number")
	}
	s.touch(&r.CreatedAt, &r.UpdatedAt)
	s.rooms[r.ID] = *r
	return nil
}

func (s *Store) DeleteRoom(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return httperr.ErrNotFound("operating_room")
	}
	delete(s.rooms, id)
	return nil
}

// --------------------------------------------------
// Surgeries
// --------------------------------------------------

func (s *Store) withRoom(sg models.Surgery) models.Surgery {
	if r, ok := s.rooms[sg.RoomID]; ok {
		sg.Room = &r
	} else {
		sg.Room = nil
	}
	return sg
}

func (s *Store) ListSurgeries(_ context.Context, f domain.SurgeryFilter) ([]models.Surgery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Surgery, 0)
	for _, sg := range s.surgeries {
		if f.Range != nil && !f.Range.Contains(sg.Date) {
			continue
		}
		if f.RoomID != nil && sg.RoomID != *f.RoomID {
			continue
		}
		out = append(out, s.withRoom(sg))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return shiftRank(out[i].TimeSlot) < shiftRank(out[j].TimeSlot)
	})
	return out, nil
}

func (s *Store) GetSurgery(_ context.Context, id uuid.UUID) (*models.Surgery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sg, ok := s.surgeries[id]
	if !ok {
		return nil, httperr.ErrNotFound("surgery")
	}
	sg = s.withRoom(sg)
	return &sg, nil
}

func (s *Store) FindSurgeryInSlot(_ context.Context, slot domain.Slot) (*models.Surgery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sg := s.occupant(slot, uuid.Nil); sg != nil {
		found := s.withRoom(*sg)
		return &found, nil
	}
	return nil, nil
}

func (s *Store) occupant(slot domain.Slot, except uuid.UUID) *models.Surgery {
	for _, sg := range s.surgeries {
		if sg.ID == except {
			continue
		}
		if sg.RoomID == slot.RoomID && sg.Date == slot.Date && sg.TimeSlot == string(slot.Shift) {
			return &sg
		}
	}
	return nil
}

func (s *Store) CreateSurgery(_ context.Context, sg *models.Surgery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sg.ID == uuid.Nil {
		sg.ID = uuid.New()
	}
	if existing := s.occupant(domain.SlotOf(sg), sg.ID); existing != nil {
		return httperr.ErrSlotOccupied(existing.ID.String())
	}
	s.touch(&sg.CreatedAt, &sg.UpdatedAt)

	stored := *sg
	stored.Room = nil
	s.surgeries[sg.ID] = stored
	return nil
}

func (s *Store) UpdateSurgery(_ context.Context, sg *models.Surgery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.surgeries[sg.ID]; !ok {
		return httperr.ErrNotFound("surgery")
	}
	if existing := s.occupant(domain.SlotOf(sg), sg.ID); existing != nil {
		return httperr.ErrSlotOccupied(existing.ID.String())
	}
	s.touch(&sg.CreatedAt, &sg.UpdatedAt)

	stored := *sg
	stored.Room = nil
	s.surgeries[sg.ID] = stored
	return nil
}

func (s *Store) DeleteSurgery(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.surgeries[id]; !ok {
		return httperr.ErrNotFound("surgery")
	}
	delete(s.surgeries, id)
	return nil
}

// --------------------------------------------------
// Assignments
// --------------------------------------------------

func (s *Store) withRefs(a models.Assignment) models.Assignment {
	a.Doctor, a.OperatingRoom = nil, nil
	if d, ok := s.doctors[a.DoctorID]; ok {
		a.Doctor = &d
	}
	if r, ok := s.rooms[a.OperatingRoomID]; ok {
		a.OperatingRoom = &r
	}
	return a
}

func (s *Store) ListAssignments(_ context.Context, f domain.AssignmentFilter) ([]models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Assignment, 0)
	for _, a := range s.assignments {
		if f.Range != nil && !f.Range.Contains(a.Date) {
			continue
		}
		if !f.Date.IsZero() && a.Date != f.Date {
			continue
		}
		if f.Shift != "" && a.ShiftType != string(f.Shift) {
			continue
		}
		if f.DoctorID != nil && a.DoctorID != *f.DoctorID {
			continue
		}
		if f.RoomID != nil && a.OperatingRoomID != *f.RoomID {
			continue
		}
		out = append(out, s.withRefs(a))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return shiftRank(out[i].ShiftType) < shiftRank(out[j].ShiftType)
	})
	return out, nil
}

func (s *Store) GetAssignment(_ context.Context, id uuid.UUID) (*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assignments[id]
	if !ok {
		return nil, httperr.ErrNotFound("assignment")
	}
	a = s.withRefs(a)
	return &a, nil
}

func (s *Store) CreateAssignment(_ context.Context, a *models.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.touch(&a.CreatedAt, &a.UpdatedAt)

	stored := *a
	stored.Doctor, stored.OperatingRoom = nil, nil
	s.assignments[a.ID] = stored
	return nil
}

func (s *Store) UpdateAssignment(_ context.Context, a *models.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[a.ID]; !ok {
		return httperr.ErrNotFound("assignment")
	}
	s.touch(&a.CreatedAt, &a.UpdatedAt)

	stored := *a
	stored.Doctor, stored.OperatingRoom = nil, nil
	s.assignments[a.ID] = stored
	return nil
}

func (s *Store) DeleteAssignment(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[id]; !ok {
		return httperr.ErrNotFound("assignment")
	}
	delete(s.assignments, id)
	return nil
}

// --------------------------------------------------
// Time-off
// --------------------------------------------------

func (s *Store) withDoctor(r models.TimeOffRequest) models.TimeOffRequest {
	r.Doctor = nil
	if d, ok := s.doctors[r.DoctorID]; ok {
		r.Doctor = &d
	}
	return r
}

func (s *Store) ListTimeOff(_ context.Context, f domain.TimeOffFilter) ([]models.TimeOffRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TimeOffRequest, 0)
	for _, r := range s.timeOff {
		if f.Status != "" && r.Status != string(f.Status) {
			continue
		}
		if f.DoctorID != nil && r.DoctorID != *f.DoctorID {
			continue
		}
		if f.Overlapping != nil && !r.Period().Overlaps(*f.Overlapping) {
			continue
		}
		out = append(out, s.withDoctor(r))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].RequestStartDate > out[j].RequestStartDate
	})
	return out, nil
}

func (s *Store) GetTimeOff(_ context.Context, id uuid.UUID) (*models.TimeOffRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.timeOff[id]
	if !ok {
		return nil, httperr.ErrNotFound("time_off_request")
	}
	r = s.withDoctor(r)
	return &r, nil
}

func (s *Store) CreateTimeOff(_ context.Context, r *models.TimeOffRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.touch(&r.CreatedAt, &r.UpdatedAt)

	stored := *r
	stored.Doctor = nil
	s.timeOff[r.ID] = stored
	return nil
}

func (s *Store) UpdateTimeOff(_ context.Context, r *models.TimeOffRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timeOff[r.ID]; !ok {
		return httperr.ErrNotFound("time_off_request")
	}
	s.touch(&r.CreatedAt, &r.UpdatedAt)

	stored := *r
	stored.Doctor = nil
	s.timeOff[r.ID] = stored
	return nil
}

// Compile-time check
var _ domain.Repository = (*Store)(nil)
