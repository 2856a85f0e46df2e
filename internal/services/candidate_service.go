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

// Candidate file part names accepted by registration.
const (
	CandidateFilePassport = "passport"
	CandidateFilePhoto    = "photo"
	CandidateFileMedical  = "medical"
	CandidateFilePolice   = "police"
)

type RegisterCandidateInput struct {
	FirstName   string
	LastName    string
	Gender      string
	DateOfBirth string
	Phone       string
	Email       string
	Region      string
	City        string

	PassportNumber string
	PassportIssued string
	PassportExpiry string

	PreferredCountry string
	PreferredJob     string
	ExpectedSalary   string
	Experience       string

	SkillCooking   bool
	SkillCleaning  bool
	SkillChildcare bool
	SkillElderCare bool
	SkillDriving   bool
	SkillGardening bool
}

type CandidateService interface {
	Lifecycle[models.Candidate]
	Register(ctx context.Context, in RegisterCandidateInput, files []FileUpload) (*models.Candidate, error)
}

type candidateService struct {
	lifecycle[models.Candidate]
	store storage.Saver
}

func NewCandidateService(repo pgrepo.RecordRepository[models.Candidate], store storage.Saver) CandidateService {
	return &candidateService{
		lifecycle: newLifecycle(repo, "Candidate"),
		store:     store,
	}
}

// Register stores each uploaded file first, then inserts the row referencing
// the stored paths. The two writes are not linked: a failure after a file is
// written leaves an orphan on disk, which is accepted.
func (s *candidateService) Register(ctx context.Context, in RegisterCandidateInput, files []FileUpload) (*models.Candidate, error) {
	const op = "CandidateService.Register"

	now := time.Now().UTC()
	row := &models.Candidate{
		ID:          uuid.NewString(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Gender:      in.Gender,
		DateOfBirth: in.DateOfBirth,
		Phone:       in.Phone,
		Email:       in.Email,
		Region:      in.Region,
		City:        in.City,

		PassportNumber: in.PassportNumber,
		PassportIssued: in.PassportIssued,
		PassportExpiry: in.PassportExpiry,

		PreferredCountry: in.PreferredCountry,
		PreferredJob:     in.PreferredJob,
		ExpectedSalary:   in.ExpectedSalary,
		Experience:       in.Experience,

		SkillCooking:   in.SkillCooking,
		SkillCleaning:  in.SkillCleaning,
		SkillChildcare: in.SkillChildcare,
		SkillElderCare: in.SkillElderCare,
		SkillDriving:   in.SkillDriving,
		SkillGardening: in.SkillGardening,

		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, f := range files {
		rel, err := s.store.Save(ctx, "candidates", uuid.NewString()+f.Ext, f.Reader)
		if err != nil {
			return nil, utils.E(utils.CodeUnavailable, op, "failed to store uploaded file", err)
		}
		switch f.Field {
		case CandidateFilePassport:
			row.PassportPath = &rel
		case CandidateFilePhoto:
			row.PhotoPath = &rel
		case CandidateFileMedical:
			row.MedicalPath = &rel
		case CandidateFilePolice:
			row.PolicePath = &rel
		}
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist candidate", err)
	}
	return row, nil
}
