package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// Shifts sort in display order, not alphabetically.
const (
	surgeryShiftOrder    = "CASE time_slot WHEN 'morning' THEN 0 WHEN 'evening' THEN 1 ELSE 2 END"
	assignmentShiftOrder = "CASE shift_type WHEN 'morning' THEN 0 WHEN 'evening' THEN 1 ELSE 2 END"
)

func like(q string) string {
	return "%" + strings.TrimSpace(q) + "%"
}

func (r *SchedulingGormRepository) deleteByID(
	ctx context.Context,
	model any,
	id uuid.UUID,
	entity string,
) error {

	res := r.db.WithContext(ctx).Delete(model, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, entity)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(entity)
	}
	return nil
}

// --------------------------------------------------
// Doctors
// --------------------------------------------------

func (r *SchedulingGormRepository) ListDoctors(
	ctx context.Context,
	f domain.DoctorFilter,
) ([]models.Doctor, error) {

	q := r.db.WithContext(ctx).Model(&models.Doctor{})
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}
	if f.Specialty != "" {
		q = q.Where("specialty ILIKE ?", f.Specialty)
	}
	if strings.TrimSpace(f.Query) != "" {
		p := like(f.Query)
		q = q.Where("name ILIKE ? OR employee_id ILIKE ? OR specialty ILIKE ?", p, p, p)
	}

	var doctors []models.Doctor
	if err := q.Order("name ASC").Find(&doctors).Error; err != nil {
		return nil, translate(err, "doctor")
	}
	return doctors, nil
}

func (r *SchedulingGormRepository) GetDoctor(
	ctx context.Context,
	id uuid.UUID,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return nil, translate(err, "doctor")
	}
	return &d, nil
}

func (r *SchedulingGormRepository) FindDoctorDuplicate(
	ctx context.Context,
	d *models.Doctor,
) (string, error) {

	var others []models.Doctor
	if err := r.db.WithContext(ctx).
		Select("id", "employee_id", "contact_email", "contact_telephone").
		Where("id <> ?", d.ID).
		Where(
			"employee_id = ? OR contact_email = ? OR contact_telephone = ?",
			d.EmployeeID, d.ContactEmail, d.ContactTelephone,
		).
		Find(&others).Error; err != nil {
		return "", translate(err, "doctor")
	}

	for _, field := range []string{"employee_id", "contact_email", "contact_telephone"} {
		for _, o := range others {
			switch {
			case field == "employee_id" && o.EmployeeID == d.EmployeeID,
				field == "contact_email" && o.ContactEmail == d.ContactEmail,
				field == "contact_telephone" && o.ContactTelephone == d.ContactTelephone:
				return field, nil
			}
		}
	}
	return "", nil
}

func (r *SchedulingGormRepository) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	return translate(r.db.WithContext(ctx).Create(d).Error, "doctor")
}

func (r *SchedulingGormRepository) UpdateDoctor(ctx context.Context, d *models.Doctor) error {
	res := r.db.WithContext(ctx).Model(d).Select("*").Omit("id", "created_date").Updates(d)
	if res.Error != nil {
		return translate(res.Error, "doctor")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("doctor")
	}
	return nil
}

func (r *SchedulingGormRepository) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.Doctor{}, id, "doctor")
}

// --------------------------------------------------
// Operating rooms
// --------------------------------------------------

func (r *SchedulingGormRepository) ListRooms(
	ctx context.Context,
	f domain.RoomFilter,
) ([]models.OperatingRoom, error) {

	q := r.db.WithContext(ctx).Model(&models.OperatingRoom{})
	if f.Active != nil {
		q = q.Where("is_active = ?", *f.Active)
	}
	if f.Specialty != "" {
		q = q.Where("specialty ILIKE ?", f.Specialty)
	}
	if strings.TrimSpace(f.Query) != "" {
		p := like(f.Query)
		q = q.Where("room_number ILIKE ? OR location ILIKE ? OR specialty ILIKE ?", p, p, p)
	}

	var rooms []models.OperatingRoom
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, translate(err, "operating_room")
	}
	return rooms, nil
}

func (r *SchedulingGormRepository) GetRoom(
	ctx context.Context,
	id uuid.UUID,
) (*models.OperatingRoom, error) {

	var room models.OperatingRoom
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, translate(err, "operating_room")
	}
	return &room, nil
}

func (r *SchedulingGormRepository) FindRoomByNumber(
	ctx context.Context,
	number string,
) (*models.OperatingRoom, error) {

	var rooms []models.OperatingRoom
	if err := r.db.WithContext(ctx).
		Where("room_number = ?", number).
		Limit(1).
		Find(&rooms).Error; err != nil {
		return nil, translate(err, "operating_room")
	}
	if len(rooms) == 0 {
		return nil, nil
	}
	return &rooms[0], nil
}

func (r *SchedulingGormRepository) CreateRoom(ctx context.Context, room *models.OperatingRoom) error {
	return translate(r.db.WithContext(ctx).Create(room).Error, "operating_room")
}

func (r *SchedulingGormRepository) UpdateRoom(ctx context.Context, room *models.OperatingRoom) error {
	res := r.db.WithContext(ctx).Model(room).Select("*").Omit("id", "created_date").Updates(room)
	if res.Error != nil {
		return translate(res.Error, "operating_room")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("operating_room")
	}
	return nil
}

func (r *SchedulingGormRepository) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.OperatingRoom{}, id, "operating_room")
}

// --------------------------------------------------
// Surgeries
// --------------------------------------------------

func (r *SchedulingGormRepository) ListSurgeries(
	ctx context.Context,
	f domain.SurgeryFilter,
) ([]models.Surgery, error) {

	q := r.db.WithContext(ctx).Preload("Room")
	if f.Range != nil {
		q = q.Where("date >= ? AND date <= ?", f.Range.From, f.Range.To)
	}
	if f.RoomID != nil {
		q = q.Where("room_id = ?", *f.RoomID)
	}

	var surgeries []models.Surgery
	if err := q.
		Order("date ASC").
		Order(surgeryShiftOrder).
		Find(&surgeries).Error; err != nil {
		return nil, translate(err, "surgery")
	}
	return surgeries, nil
}

func (r *SchedulingGormRepository) GetSurgery(
	ctx context.Context,
	id uuid.UUID,
) (*models.Surgery, error) {

	var s models.Surgery
	if err := r.db.WithContext(ctx).
		Preload("Room").
		First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err, "surgery")
	}
	return &s, nil
}

func (r *SchedulingGormRepository) FindSurgeryInSlot(
	ctx context.Context,
	slot domain.Slot,
) (*models.Surgery, error) {

	var found []models.Surgery
	if err := r.db.WithContext(ctx).
		Where(
			"room_id = ? AND date = ? AND time_slot = ?",
			slot.RoomID, slot.Date, string(slot.Shift),
		).
		Limit(1).
		Find(&found).Error; err != nil {
		return nil, translate(err, "surgery")
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

type occupantFinder interface {
	FindSurgeryInSlot(ctx context.Context, slot domain.Slot) (*models.Surgery, error)
}

// slotError turns a violation of idx_surgeries_slot into SlotOccupied with
// the occupant's id. The id is left empty when the occupant cannot be read.
func slotError(ctx context.Context, finder occupantFinder, s *models.Surgery, err error) error {
	if !isSlotViolation(err) {
		return translate(err, "surgery")
	}
	existing, lookupErr := finder.FindSurgeryInSlot(ctx, domain.SlotOf(s))
	if lookupErr != nil || existing == nil {
		return httperr.ErrSlotOccupied("")
	}
	return httperr.ErrSlotOccupied(existing.ID.String())
}

func (r *SchedulingGormRepository) CreateSurgery(ctx context.Context, s *models.Surgery) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error; err != nil {
		return slotError(ctx, r, s, err)
	}
	return nil
}

func (r *SchedulingGormRepository) UpdateSurgery(ctx context.Context, s *models.Surgery) error {
	res := r.db.WithContext(ctx).
		Model(s).
		Omit(clause.Associations).
		Select("room_id", "date", "time_slot", "surgery_type", "notes", "updated_date").
		Updates(s)
	if res.Error != nil {
		return slotError(ctx, r, s, res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("surgery")
	}
	return nil
}

func (r *SchedulingGormRepository) DeleteSurgery(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.Surgery{}, id, "surgery")
}

// --------------------------------------------------
// Assignments
// --------------------------------------------------

func (r *SchedulingGormRepository) ListAssignments(
	ctx context.Context,
	f domain.AssignmentFilter,
) ([]models.Assignment, error) {

	q := r.db.WithContext(ctx).Preload("Doctor").Preload("OperatingRoom")
	if f.Range != nil {
		q = q.Where("date >= ? AND date <= ?", f.Range.From, f.Range.To)
	}
	if !f.Date.IsZero() {
		q = q.Where("date = ?", f.Date)
	}
	if f.Shift != "" {
		q = q.Where("shift_type = ?", string(f.Shift))
	}
	if f.DoctorID != nil {
		q = q.Where("doctor_id = ?", *f.DoctorID)
	}
	if f.RoomID != nil {
		q = q.Where("operating_room_id = ?", *f.RoomID)
	}

	var assignments []models.Assignment
	if err := q.
		Order("date ASC").
		Order(assignmentShiftOrder).
		Find(&assignments).Error; err != nil {
		return nil, translate(err, "assignment")
	}
	return assignments, nil
}

func (r *SchedulingGormRepository) GetAssignment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Assignment, error) {

	var a models.Assignment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("OperatingRoom").
		First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err, "assignment")
	}
	return &a, nil
}

func (r *SchedulingGormRepository) CreateAssignment(ctx context.Context, a *models.Assignment) error {
	return translate(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error,
		"assignment",
	)
}

func (r *SchedulingGormRepository) UpdateAssignment(ctx context.Context, a *models.Assignment) error {
	res := r.db.WithContext(ctx).
		Model(a).
		Omit(clause.Associations).
		Select("doctor_id", "operating_room_id", "date", "shift_type", "role", "notes", "updated_date").
		Updates(a)
	if res.Error != nil {
		return translate(res.Error, "assignment")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("assignment")
	}
	return nil
}

func (r *SchedulingGormRepository) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.Assignment{}, id, "assignment")
}

// --------------------------------------------------
// Time-off
// --------------------------------------------------

func (r *SchedulingGormRepository) ListTimeOff(
	ctx context.Context,
	f domain.TimeOffFilter,
) ([]models.TimeOffRequest, error) {

	q := r.db.WithContext(ctx).Preload("Doctor")
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.DoctorID != nil {
		q = q.Where("doctor_id = ?", *f.DoctorID)
	}
	if f.Overlapping != nil {
		q = q.Where(
			"request_start_date <= ? AND request_end_date >= ?",
			f.Overlapping.To, f.Overlapping.From,
		)
	}

	var requests []models.TimeOffRequest
	if err := q.Order("request_start_date DESC").Find(&requests).Error; err != nil {
		return nil, translate(err, "time_off_request")
	}
	return requests, nil
}

func (r *SchedulingGormRepository) GetTimeOff(
	ctx context.Context,
	id uuid.UUID,
) (*models.TimeOffRequest, error) {

	var req models.TimeOffRequest
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		First(&req, "id = ?", id).Error; err != nil {
		return nil, translate(err, "time_off_request")
	}
	return &req, nil
}

func (r *SchedulingGormRepository) CreateTimeOff(ctx context.Context, req *models.TimeOffRequest) error {
	return translate(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error,
		"time_off_request",
	)
}

func (r *SchedulingGormRepository) UpdateTimeOff(ctx context.Context, req *models.TimeOffRequest) error {
	res := r.db.WithContext(ctx).
		Model(req).
		Omit(clause.Associations).
		Select(
			"doctor_id", "request_start_date", "request_end_date", "type",
			"reason", "notes", "status", "processed_at", "updated_date",
		).
		Updates(req)
	if res.Error != nil {
		return translate(res.Error, "time_off_request")
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("time_off_request")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
