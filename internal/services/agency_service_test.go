package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/selamstaff/backend/internal/models"
	"github.com/selamstaff/backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgencyApprove_MissingID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.agencies.Approve(context.Background(), uuid.NewString())
	require.Error(t, err)

	var ae *utils.AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, utils.CodeNotFound, ae.Code)
	assert.Equal(t, "Agency not found", ae.Message)
}

func TestAgencyVerify_IndependentOfStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	row, err := env.agencies.Register(ctx, RegisterAgencyInput{
		AgencyName:      "Selam Overseas",
		LicenseNumber:   "ETH-2024-0042",
		Email:           "info@selamoverseas.example",
		Phone:           "+251115550000",
		DirectorName:    "Mekdes Alemu",
		ServicesOffered: []string{"placement", "training"},
	}, nil)
	require.NoError(t, err)
	assert.False(t, row.Verified)

	verified, err := env.agencies.Verify(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	// verify does not touch the approval status
	assert.Equal(t, models.StatusPending, verified.Status)
}

func TestAgencyDelete_LeavesFilesOnDisk(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	row, err := env.agencies.Register(ctx, RegisterAgencyInput{
		AgencyName:    "Addis Talent",
		LicenseNumber: "ETH-2024-0043",
	}, []FileUpload{
		{Field: AgencyFileLicense, Ext: ".pdf", Reader: strings.NewReader("license scan")},
	})
	require.NoError(t, err)
	require.NotNil(t, row.LicensePath)

	onDisk := filepath.Join(env.uploadRoot, strings.TrimPrefix(*row.LicensePath, "uploads/"))

	removed, err := env.agencies.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	rows, err := env.agencies.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// hard delete never cascades to uploaded files
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "license scan", string(data))
}
