package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/selamstaff/backend/internal/models"
	"github.com/selamstaff/backend/internal/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps the in-memory database alive across queries
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Candidate{}, &models.Employer{}, &models.Agency{}))
	return db
}

func newCandidate(firstName string, createdAt time.Time) *models.Candidate {
	return &models.Candidate{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  "Tester",
		Status:    models.StatusPending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestRecordRepo_InsertAndGet(t *testing.T) {
	repo := NewRecordRepo[models.Candidate](newTestDB(t))
	ctx := context.Background()

	row := newCandidate("Abel", time.Now().UTC())
	require.NoError(t, repo.Insert(ctx, row))

	got, err := repo.Get(ctx, row.ID)
	require.NoError(t, err)
	require.Equal(t, row.ID, got.ID)
	require.Equal(t, models.StatusPending, got.Status)
}

func TestRecordRepo_GetMissing(t *testing.T) {
	repo := NewRecordRepo[models.Candidate](newTestDB(t))

	_, err := repo.Get(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRecordRepo_ListOrdersByCreationDesc(t *testing.T) {
	repo := NewRecordRepo[models.Candidate](newTestDB(t))
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	oldest := newCandidate("first", base)
	middle := newCandidate("second", base.Add(10*time.Minute))
	newest := newCandidate("third", base.Add(20*time.Minute))

	// insert out of order on purpose
	require.NoError(t, repo.Insert(ctx, middle))
	require.NoError(t, repo.Insert(ctx, newest))
	require.NoError(t, repo.Insert(ctx, oldest))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, newest.ID, rows[0].ID)
	require.Equal(t, middle.ID, rows[1].ID)
	require.Equal(t, oldest.ID, rows[2].ID)
}

func TestRecordRepo_UpdateFields(t *testing.T) {
	repo := NewRecordRepo[models.Candidate](newTestDB(t))
	ctx := context.Background()

	row := newCandidate("Abel", time.Now().UTC())
	require.NoError(t, repo.Insert(ctx, row))

	err := repo.UpdateFields(ctx, row.ID, map[string]any{"status": models.StatusApproved})
	require.NoError(t, err)

	got, err := repo.Get(ctx, row.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, got.Status)

	err = repo.UpdateFields(ctx, uuid.NewString(), map[string]any{"status": models.StatusApproved})
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRecordRepo_DeleteReportsRemoval(t *testing.T) {
	repo := NewRecordRepo[models.Candidate](newTestDB(t))
	ctx := context.Background()

	row := newCandidate("Abel", time.Now().UTC())
	require.NoError(t, repo.Insert(ctx, row))

	removed, err := repo.Delete(ctx, row.ID)
	require.NoError(t, err)
	require.True(t, removed)

	// second delete finds nothing
	removed, err = repo.Delete(ctx, row.ID)
	require.NoError(t, err)
	require.False(t, removed)

	_, err = repo.Get(ctx, row.ID)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRecordRepo_CountByStatus(t *testing.T) {
	repo := NewRecordRepo[models.Candidate](newTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Insert(ctx, newCandidate("pending", now)))
	}
	approved := newCandidate("approved", now)
	approved.Status = models.StatusApproved
	require.NoError(t, repo.Insert(ctx, approved))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), counts[models.StatusPending])
	require.Equal(t, int64(1), counts[models.StatusApproved])
	require.Zero(t, counts[models.StatusRejected])
}
