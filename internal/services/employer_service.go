package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/selamstaff/backend/internal/models"
	pgrepo "github.com/selamstaff/backend/internal/repositories/postgres"
	"github.com/selamstaff/backend/internal/storage"
	"github.com/selamstaff/backend/internal/utils"
	"gorm.io/datatypes"
)

const (
	EmployerFileLicense          = "license"
	EmployerFileRegistrationCert = "registrationCert"
	EmployerFileContactPhoto     = "contactPhoto"
)

type RegisterEmployerInput struct {
	CompanyName  string
	CompanyEmail string
	CompanyPhone string
	Country      string
	City         string
	Address      string

	ContactName  string
	ContactTitle string
	ContactPhone string
	ContactEmail string

	Sector        string
	EmployeeCount int
	HiringHistory json.RawMessage
}

type EmployerService interface {
	Lifecycle[models.Employer]
	Register(ctx context.Context, in RegisterEmployerInput, files []FileUpload) (*models.Employer, error)
	Verify(ctx context.Context, id string) (*models.Employer, error)
}

type employerService struct {
	lifecycle[models.Employer]
	store storage.Saver
}

func NewEmployerService(repo pgrepo.RecordRepository[models.Employer], store storage.Saver) EmployerService {
	return &employerService{
		lifecycle: newLifecycle(repo, "Employer"),
		store:     store,
	}
}

func (s *employerService) Register(ctx context.Context, in RegisterEmployerInput, files []FileUpload) (*models.Employer, error) {
	const op = "EmployerService.Register"

	now := time.Now().UTC()
	row := &models.Employer{
		ID:           uuid.NewString(),
		CompanyName:  in.CompanyName,
		CompanyEmail: in.CompanyEmail,
		CompanyPhone: in.CompanyPhone,
		Country:      in.Country,
		City:         in.City,
		Address:      in.Address,

		ContactName:  in.ContactName,
		ContactTitle: in.ContactTitle,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,

		Sector:        in.Sector,
		EmployeeCount: in.EmployeeCount,

		Status:    models.StatusPending,
		Verified:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(in.HiringHistory) > 0 {
		row.HiringHistory = datatypes.JSON(in.HiringHistory)
	}

	for _, f := range files {
		rel, err := s.store.Save(ctx, "employers", uuid.NewString()+f.Ext, f.Reader)
		if err != nil {
			return nil, utils.E(utils.CodeUnavailable, op, "failed to store uploaded file", err)
		}
		switch f.Field {
		case EmployerFileLicense:
			row.LicensePath = &rel
		case EmployerFileRegistrationCert:
			row.RegistrationCertPath = &rel
		case EmployerFileContactPhoto:
			row.ContactPhotoPath = &rel
		}
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist employer", err)
	}
	return row, nil
}

func (s *employerService) Verify(ctx context.Context, id string) (*models.Employer, error) {
	return s.setVerified(ctx, id)
}
