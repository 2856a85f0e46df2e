package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/selamstaff/backend/internal/models"
	"github.com/selamstaff/backend/internal/services"
	"github.com/selamstaff/backend/internal/utils"
	"gorm.io/datatypes"
)

var employerFileFields = []string{
	services.EmployerFileLicense,
	services.EmployerFileRegistrationCert,
	services.EmployerFileContactPhoto,
}

type EmployerHandler struct {
	svc       services.EmployerService
	maxUpload int64
}

func NewEmployerHandler(svc services.EmployerService, maxUpload int64) *EmployerHandler {
	return &EmployerHandler{svc: svc, maxUpload: maxUpload}
}

type RegisterEmployerRequest struct {
	CompanyName  string `form:"companyName" binding:"required"`
	CompanyEmail string `form:"companyEmail" binding:"required,email"`
	CompanyPhone string `form:"companyPhone" binding:"required"`
	Country      string `form:"country" binding:"required"`
	City         string `form:"city"`
	Address      string `form:"address"`

	ContactName  string `form:"contactName" binding:"required"`
	ContactTitle string `form:"contactTitle"`
	ContactPhone string `form:"contactPhone" binding:"required"`
	ContactEmail string `form:"contactEmail"`

	Sector        string `form:"sector" binding:"required"`
	EmployeeCount int    `form:"employeeCount"`
	HiringHistory string `form:"hiringHistory"` // optional JSON blob from the wizard
}

func (h *EmployerHandler) Register(c *gin.Context) {
	const op = "EmployerHandler.Register"

	var req RegisterEmployerRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid form data", err))
		return
	}
	if req.HiringHistory != "" && !json.Valid([]byte(req.HiringHistory)) {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "hiringHistory must be valid JSON", nil))
		return
	}

	files, closeAll, err := collectFiles(c, employerFileFields, h.maxUpload)
	if err != nil {
		writeError(c, err)
		return
	}
	defer closeAll()

	in := services.RegisterEmployerInput{
		CompanyName:   req.CompanyName,
		CompanyEmail:  req.CompanyEmail,
		CompanyPhone:  req.CompanyPhone,
		Country:       req.Country,
		City:          req.City,
		Address:       req.Address,
		ContactName:   req.ContactName,
		ContactTitle:  req.ContactTitle,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		Sector:        req.Sector,
		EmployeeCount: req.EmployeeCount,
	}
	if req.HiringHistory != "" {
		in.HiringHistory = json.RawMessage(req.HiringHistory)
	}

	row, err := h.svc.Register(c.Request.Context(), in, files)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"employerId": row.ID})
}

func (h *EmployerHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *EmployerHandler) Get(c *gin.Context) {
	row, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *EmployerHandler) Approve(c *gin.Context) {
	row, err := h.svc.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *EmployerHandler) Reject(c *gin.Context) {
	row, err := h.svc.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *EmployerHandler) Verify(c *gin.Context) {
	row, err := h.svc.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

type UpdateEmployerRequest struct {
	CompanyName  *string `json:"companyName,omitempty"`
	CompanyEmail *string `json:"companyEmail,omitempty"`
	CompanyPhone *string `json:"companyPhone,omitempty"`
	Country      *string `json:"country,omitempty"`
	City         *string `json:"city,omitempty"`
	Address      *string `json:"address,omitempty"`

	ContactName  *string `json:"contactName,omitempty"`
	ContactTitle *string `json:"contactTitle,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`

	Sector        *string          `json:"sector,omitempty"`
	EmployeeCount *int             `json:"employeeCount,omitempty"`
	HiringHistory *json.RawMessage `json:"hiringHistory,omitempty"`

	Status *models.Status `json:"status,omitempty"`
}

func (h *EmployerHandler) Update(c *gin.Context) {
	const op = "EmployerHandler.Update"

	var req UpdateEmployerRequest
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

	if req.CompanyName != nil {
		existing.CompanyName = *req.CompanyName
	}
	if req.CompanyEmail != nil {
		existing.CompanyEmail = *req.CompanyEmail
	}
	if req.CompanyPhone != nil {
		existing.CompanyPhone = *req.CompanyPhone
	}
	if req.Country != nil {
		existing.Country = *req.Country
	}
	if req.City != nil {
		existing.City = *req.City
	}
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.ContactName != nil {
		existing.ContactName = *req.ContactName
	}
	if req.ContactTitle != nil {
		existing.ContactTitle = *req.ContactTitle
	}
	if req.ContactPhone != nil {
		existing.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		existing.ContactEmail = *req.ContactEmail
	}
	if req.Sector != nil {
		existing.Sector = *req.Sector
	}
	if req.EmployeeCount != nil {
		existing.EmployeeCount = *req.EmployeeCount
	}
	if req.HiringHistory != nil {
		existing.HiringHistory = datatypes.JSON(*req.HiringHistory)
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

func (h *EmployerHandler) Delete(c *gin.Context) {
	removed, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !removed {
		writeError(c, utils.E(utils.CodeNotFound, "EmployerHandler.Delete", "Employer not found", nil))
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
