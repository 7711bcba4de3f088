package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/or-harmony/internal/domain/scheduling"
	"github.com/BruksfildServices01/or-harmony/internal/httperr"
	"github.com/BruksfildServices01/or-harmony/internal/httpresp"
	"github.com/BruksfildServices01/or-harmony/internal/models"
	"github.com/BruksfildServices01/or-harmony/internal/usecase/directory"
)

type DoctorHandler struct {
	doctors *directory.Doctors
	log     *zap.Logger
}

func NewDoctorHandler(doctors *directory.Doctors, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{doctors: doctors, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDoctorRequest struct {
	Name             string             `json:"name"`
	EmployeeID       string             `json:"employee_id"`
	Specialty        string             `json:"specialty"`
	ContactEmail     string             `json:"contact_email"`
	ContactTelephone string             `json:"contact_telephone"`
	IsActive         *bool              `json:"is_active"`
	Permissions      models.Permissions `json:"permissions"`
}

type UpdateDoctorRequest struct {
	Name             *string             `json:"name"`
	EmployeeID       *string             `json:"employee_id"`
	Specialty        *string             `json:"specialty"`
	ContactEmail     *string             `json:"contact_email"`
	ContactTelephone *string             `json:"contact_telephone"`
	IsActive         *bool               `json:"is_active"`
	Permissions      *models.Permissions `json:"permissions"`
}

// ======================================================
// ENDPOINTS
// ======================================================

// List accepts active, specialty and q.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctors.List(c.Request.Context(), domain.DoctorFilter{
		Active:    boolQuery(c, "active"),
		Specialty: c.Query("specialty"),
		Query:     c.Query("q"),
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	d, err := h.doctors.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	d, err := h.doctors.Create(c.Request.Context(), directory.DoctorInput{
		Name:             req.Name,
		EmployeeID:       req.EmployeeID,
		Specialty:        req.Specialty,
		ContactEmail:     req.ContactEmail,
		ContactTelephone: req.ContactTelephone,
		IsActive:         req.IsActive,
		Permissions:      req.Permissions,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, d)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	d, err := h.doctors.Update(c.Request.Context(), id, directory.DoctorPatch{
		Name:             req.Name,
		EmployeeID:       req.EmployeeID,
		Specialty:        req.Specialty,
		ContactEmail:     req.ContactEmail,
		ContactTelephone: req.ContactTelephone,
		IsActive:         req.IsActive,
		Permissions:      req.Permissions,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DoctorHandler) Deactivate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	d, err := h.doctors.Deactivate(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.doctors.Delete(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.NoContent(c)
}

// UploadAvatar expects a multipart form with the image in "file".
func (h *DoctorHandler) UploadAvatar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.FromError(c, httperr.ErrRequired("file"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		invalidBody(c)
		return
	}
	defer f.Close()

	d, err := h.doctors.UploadAvatar(c.Request.Context(), id, f)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, d)
}
