package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selamstaff/backend/internal/models"
	"github.com/selamstaff/backend/internal/services"
	"github.com/selamstaff/backend/internal/utils"
)

var agencyFileFields = []string{
	services.AgencyFileLicense,
	services.AgencyFileRegistrationCert,
	services.AgencyFileDirectorPhoto,
}

type AgencyHandler struct {
	svc       services.AgencyService
	maxUpload int64
}

func NewAgencyHandler(svc services.AgencyService, maxUpload int64) *AgencyHandler {
	return &AgencyHandler{svc: svc, maxUpload: maxUpload}
}

type RegisterAgencyRequest struct {
	AgencyName    string `form:"agencyName" binding:"required"`
	LicenseNumber string `form:"licenseNumber" binding:"required"`
	Email         string `form:"email" binding:"required,email"`
	Phone         string `form:"phone" binding:"required"`
	Region        string `form:"region"`
	City          string `form:"city"`
	Address       string `form:"address"`

	DirectorName  string `form:"directorName" binding:"required"`
	DirectorPhone string `form:"directorPhone"`
	DirectorEmail string `form:"directorEmail"`

	RecruiterCount  int      `form:"recruiterCount"`
	ServicesOffered []string `form:"servicesOffered"`
}

func (h *AgencyHandler) Register(c *gin.Context) {
	const op = "AgencyHandler.Register"

	var req RegisterAgencyRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid form data", err))
		return
	}

	files, closeAll, err := collectFiles(c, agencyFileFields, h.maxUpload)
	if err != nil {
		writeError(c, err)
		return
	}
	defer closeAll()

	in := services.RegisterAgencyInput{
		AgencyName:      req.AgencyName,
		LicenseNumber:   req.LicenseNumber,
		Email:           req.Email,
		Phone:           req.Phone,
		Region:          req.Region,
		City:            req.City,
		Address:         req.Address,
		DirectorName:    req.DirectorName,
		DirectorPhone:   req.DirectorPhone,
		DirectorEmail:   req.DirectorEmail,
		RecruiterCount:  req.RecruiterCount,
		ServicesOffered: req.ServicesOffered,
	}

	row, err := h.svc.Register(c.Request.Context(), in, files)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"agencyId": row.ID})
}

func (h *AgencyHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AgencyHandler) Get(c *gin.Context) {
	row, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *AgencyHandler) Approve(c *gin.Context) {
	row, err := h.svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *AgencyHandler) Reject(c *gin.Context) {
	row, err := h.svc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *AgencyHandler) Verify(c *gin.Context) {
	row, err := h.svc.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

type UpdateAgencyRequest struct {
	AgencyName    *string `json:"agencyName,omitempty"`
	LicenseNumber *string `json:"licenseNumber,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Region        *string `json:"region,omitempty"`
	City          *string `json:"city,omitempty"`
	Address       *string `json:"address,omitempty"`

	DirectorName  *string `json:"directorName,omitempty"`
	DirectorPhone *string `json:"directorPhone,omitempty"`
	DirectorEmail *string `json:"directorEmail,omitempty"`

	RecruiterCount  *int      `json:"recruiterCount,omitempty"`
	ServicesOffered *[]string `json:"servicesOffered,omitempty"`

	Status *models.Status `json:"status,omitempty"`
}

func (h *AgencyHandler) Update(c *gin.Context) {
	const op = "AgencyHandler.Update"

	var req UpdateAgencyRequest
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

	if req.AgencyName != nil {
		existing.AgencyName = *req.AgencyName
	}
	if req.LicenseNumber != nil {
		existing.LicenseNumber = *req.LicenseNumber
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.Region != nil {
		existing.Region = *req.Region
	}
	if req.City != nil {
		existing.City = *req.City
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.DirectorName != nil {
		existing.DirectorName = *req.DirectorName
	}
	if req.DirectorPhone != nil {
		existing.DirectorPhone = *req.DirectorPhone
	}
	if req.DirectorEmail != nil {
		existing.DirectorEmail = *req.DirectorEmail
	}
	if req.RecruiterCount != nil {
		existing.RecruiterCount = *req.RecruiterCount
	}
	if req.ServicesOffered != nil {
		existing.ServicesOffered = *req.ServicesOffered
	}
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

func (h *AgencyHandler) Delete(c *gin.Context) {
	removed, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !removed {
		writeError(c, utils.E(utils.CodeNotFound, "AgencyHandler.Delete", "Agency not found", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
