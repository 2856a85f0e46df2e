package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/selamstaff/backend/internal/models"
	pgrepo "github.com/selamstaff/backend/internal/repositories/postgres"
	"github.com/selamstaff/backend/internal/storage"
	"github.com/selamstaff/backend/internal/utils"
)

const (
	AgencyFileLicense          = "license"
	AgencyFileRegistrationCert = "registrationCert"
	AgencyFileDirectorPhoto    = "directorPhoto"
)

type RegisterAgencyInput struct {
	AgencyName    string
	LicenseNumber string
	Email         string
	Phone         string
	Region        string
	City          string
	Address       string

	DirectorName  string
	DirectorPhone string
	DirectorEmail string

	RecruiterCount  int
	ServicesOffered []string
}

type AgencyService interface {
	Lifecycle[models.Agency]
	Register(ctx context.Context, in RegisterAgencyInput, files []FileUpload) (*models.Agency, error)
	Verify(ctx context.Context, id string) (*models.Agency, error)
}

type agencyService struct {
	lifecycle[models.Agency]
	store storage.Saver
}

func NewAgencyService(repo pgrepo.RecordRepository[models.Agency], store storage.Saver) AgencyService {
	return &agencyService{
		lifecycle: newLifecycle(repo, "Agency"),
		store:     store,
	}
}

func (s *agencyService) Register(ctx context.Context, in RegisterAgencyInput, files []FileUpload) (*models.Agency, error) {
	const op = "AgencyService.Register"

	now := time.Now().UTC()
	row := &models.Agency{
		ID:            uuid.NewString(),
		AgencyName:    in.AgencyName,
		LicenseNumber: in.LicenseNumber,
		Email:         in.Email,
		Phone:         in.Phone,
		Region:        in.Region,
		City:          in.City,
		Address:       in.Address,

		DirectorName:  in.DirectorName,
		DirectorPhone: in.DirectorPhone,
		DirectorEmail: in.DirectorEmail,

		RecruiterCount:  in.RecruiterCount,
		ServicesOffered: in.ServicesOffered,

		Status:    models.StatusPending,
		Verified:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, f := range files {
		rel, err := s.store.Save(ctx, "agencies", uuid.NewString()+f.Ext, f.Reader)
		if err != nil {
			return nil, utils.E(utils.CodeUnavailable, op, "failed to store uploaded file", err)
		}
		switch f.Field {
		case AgencyFileLicense:
			row.LicensePath = &rel
		case AgencyFileRegistrationCert:
			row.RegistrationCertPath = &rel
		case AgencyFileDirectorPhoto:
			row.DirectorPhotoPath = &rel
		}
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist agency", err)
	}
	return row, nil
}

func (s *agencyService) Verify(ctx context.Context, id string) (*models.Agency, error) {
	return s.setVerified(ctx, id)
}
