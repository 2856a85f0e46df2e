package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selamstaff/backend/internal/models"
	"github.com/selamstaff/backend/internal/services"
	"github.com/selamstaff/backend/internal/utils"
)

var candidateFileFields = []string{
	services.CandidateFilePassport,
	services.CandidateFilePhoto,
	services.CandidateFileMedical,
	services.CandidateFilePolice,
}

type CandidateHandler struct {
	svc       services.CandidateService
	maxUpload int64
}

func NewCandidateHandler(svc services.CandidateService, maxUpload int64) *CandidateHandler {
	return &CandidateHandler{svc: svc, maxUpload: maxUpload}
}

// Candidate intake binds permissively: required-field validation lives in the
// registration wizard, and the server accepts whatever subset arrives.
type RegisterCandidateRequest struct {
	FirstName   string `form:"firstName"`
	LastName    string `form:"lastName"`
	Gender      string `form:"gender"`
	DateOfBirth string `form:"dateOfBirth"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
	Region      string `form:"region"`
	City        string `form:"city"`

	PassportNumber string `form:"passportNumber"`
	PassportIssued string `form:"passportIssued"`
	PassportExpiry string `form:"passportExpiry"`

	PreferredCountry string `form:"preferredCountry"`
	PreferredJob     string `form:"preferredJob"`
	ExpectedSalary   string `form:"expectedSalary"`
	Experience       string `form:"experience"`

	SkillCooking   bool `form:"skillCooking"`
	SkillCleaning  bool `form:"skillCleaning"`
	SkillChildcare bool `form:"skillChildcare"`
	SkillElderCare bool `form:"skillElderCare"`
	SkillDriving   bool `form:"skillDriving"`
	SkillGardening bool `form:"skillGardening"`
}

func (r *RegisterCandidateRequest) toInput() services.RegisterCandidateInput {
	return services.RegisterCandidateInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Gender:      r.Gender,
		DateOfBirth: r.DateOfBirth,
		Phone:       r.Phone,
		Email:       r.Email,
		Region:      r.Region,
		City:        r.City,

		PassportNumber: r.PassportNumber,
		PassportIssued: r.PassportIssued,
		PassportExpiry: r.PassportExpiry,

		PreferredCountry: r.PreferredCountry,
		PreferredJob:     r.PreferredJob,
		ExpectedSalary:   r.ExpectedSalary,
		Experience:       r.Experience,

		SkillCooking:   r.SkillCooking,
		SkillCleaning:  r.SkillCleaning,
		SkillChildcare: r.SkillChildcare,
		SkillElderCare: r.SkillElderCare,
		SkillDriving:   r.SkillDriving,
		SkillGardening: r.SkillGardening,
	}
}

func (h *CandidateHandler) Register(c *gin.Context) {
	var req RegisterCandidateRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CandidateHandler.Register", "invalid form data", err))
		return
	}

	files, closeAll, err := collectFiles(c, candidateFileFields, h.maxUpload)
	if err != nil {
		writeError(c, err)
		return
	}
	defer closeAll()

	row, err := h.svc.Register(c.Request.Context(), req.toInput(), files)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"candidateId": row.ID})
}

func (h *CandidateHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	row, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CandidateHandler) Approve(c *gin.Context) {
	row, err := h.svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CandidateHandler) Reject(c *gin.Context) {
	row, err := h.svc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

type UpdateCandidateRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Region      *string `json:"region,omitempty"`
	City        *string `json:"city,omitempty"`

	PassportNumber *string `json:"passportNumber,omitempty"`
	PassportIssued *string `json:"passportIssued,omitempty"`
	PassportExpiry *string `json:"passportExpiry,omitempty"`

	PreferredCountry *string `json:"preferredCountry,omitempty"`
	PreferredJob     *string `json:"preferredJob,omitempty"`
	ExpectedSalary   *string `json:"expectedSalary,omitempty"`
	Experience       *string `json:"experience,omitempty"`

	SkillCooking   *bool `json:"skillCooking,omitempty"`
	SkillCleaning  *bool `json:"skillCleaning,omitempty"`
	SkillChildcare *bool `json:"skillChildcare,omitempty"`
	SkillElderCare *bool `json:"skillElderCare,omitempty"`
	SkillDriving   *bool `json:"skillDriving,omitempty"`
	SkillGardening *bool `json:"skillGardening,omitempty"`

	Status *models.Status `json:"status,omitempty"`
}

// Update merges any subset of fields onto the stored row and saves the whole
// row back. Setting status here is observably the same as approve/reject.
func (h *CandidateHandler) Update(c *gin.Context) {
	const op = "CandidateHandler.Update"

	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid status value", nil))
		return
	}

	existing, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	applyString(&existing.FirstName, req.FirstName)
	applyString(&existing.LastName, req.LastName)
	applyString(&existing.Gender, req.Gender)
	applyString(&existing.DateOfBirth, req.DateOfBirth)
	applyString(&existing.Phone, req.Phone)
	applyString(&existing.Email, req.Email)
	applyString(&existing.Region, req.Region)
	applyString(&existing.City, req.City)
	applyString(&existing.PassportNumber, req.PassportNumber)
	applyString(&existing.PassportIssued, req.PassportIssued)
	applyString(&existing.PassportExpiry, req.PassportExpiry)
	applyString(&existing.PreferredCountry, req.PreferredCountry)
	applyString(&existing.PreferredJob, req.PreferredJob)
	applyString(&existing.ExpectedSalary, req.ExpectedSalary)
	applyString(&existing.Experience, req.Experience)
	applyBool(&existing.SkillCooking, req.SkillCooking)
	applyBool(&existing.SkillCleaning, req.SkillCleaning)
	applyBool(&existing.SkillChildcare, req.SkillChildcare)
	applyBool(&existing.SkillElderCare, req.SkillElderCare)
	applyBool(&existing.SkillDriving, req.SkillDriving)
	applyBool(&existing.SkillGardening, req.SkillGardening)
	if req.Status != nil {
		existing.Status = *req.Status
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := h.svc.Update(c.Request.Context(), existing); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	removed, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !removed {
		writeError(c, utils.E(utils.CodeNotFound, "CandidateHandler.Delete", "Candidate not found", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
