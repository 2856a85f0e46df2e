package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/selamstaff/backend/internal/models"
	pgrepo "github.com/selamstaff/backend/internal/repositories/postgres"
	"github.com/selamstaff/backend/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Candidate{}, &models.Employer{}, &models.Agency{}))
	return db
}

type testEnv struct {
	db         *gorm.DB
	uploadRoot string

	candidateRepo pgrepo.RecordRepository[models.Candidate]
	employerRepo  pgrepo.RecordRepository[models.Employer]
	agencyRepo    pgrepo.RecordRepository[models.Agency]

	candidates CandidateService
	employers  EmployerService
	agencies   AgencyService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	root := t.TempDir()
	store := storage.NewDiskStore(root)

	env := &testEnv{
		db:            db,
		uploadRoot:    root,
		candidateRepo: pgrepo.NewRecordRepo[models.Candidate](db),
		employerRepo:  pgrepo.NewRecordRepo[models.Employer](db),
		agencyRepo:    pgrepo.NewRecordRepo[models.Agency](db),
	}
	env.candidates = NewCandidateService(env.candidateRepo, store)
	env.employers = NewEmployerService(env.employerRepo, store)
	env.agencies = NewAgencyService(env.agencyRepo, store)
	return env
}
