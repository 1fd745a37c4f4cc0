package service

import (
	"testing"
	"time"

	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/apperr"
	"jobhunter/internal/pipeline"
	"jobhunter/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplication_CreateDefaultsToSaved(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)

	app, err := NewApplicationService().Create(userID, request.CreateApplication{JobID: job.ID})
	require.NoError(t, err)

	assert.Equal(t, pipeline.Saved, app.Status)
	assert.Nil(t, app.AppliedAt)
}

func TestApplication_CreateAppliedStamps(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)

	app, err := NewApplicationService().Create(userID, request.CreateApplication{
		JobID:  job.ID,
		Status: pkg.ToPtr("applied"),
		Notes:  pkg.ToPtr("Referred by Ana"),
	})
	require.NoError(t, err)

	assert.Equal(t, pipeline.Applied, app.Status)
	assert.NotNil(t, app.AppliedAt)
	require.NotNil(t, app.Notes)
	assert.Equal(t, "Referred by Ana", *app.Notes)
}

func TestApplication_CreateRejectsInvalidStatus(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)

	_, err := NewApplicationService().Create(userID, request.CreateApplication{JobID: job.ID, Status: pkg.ToPtr("ghosted")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestApplication_OnePerJob(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)

	service := NewApplicationService()
	_, err := service.Create(userID, request.CreateApplication{JobID: job.ID})
	require.NoError(t, err)

	_, err = service.Create(userID, request.CreateApplication{JobID: job.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestApplication_CreateForForeignJob(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t)
	other := createTestUser(t)
	job := createTestJob(t, owner)

	_, err := NewApplicationService().Create(other, request.CreateApplication{JobID: job.ID})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "job not found")
}

func TestApplication_StatusChangesKeepFirstAppliedAt(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)

	service := NewApplicationService()
	first := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return first }

	app, err := service.Create(userID, request.CreateApplication{JobID: job.ID})
	require.NoError(t, err)

	app, err = service.Update(userID, app.ID, request.UpdateApplication{Status: pkg.ToPtr("applied")})
	require.NoError(t, err)
	require.NotNil(t, app.AppliedAt)
	assert.True(t, first.Equal(*app.AppliedAt))

	service.now = func() time.Time { return first.Add(72 * time.Hour) }
	app, err = service.Update(userID, app.ID, request.UpdateApplication{Status: pkg.ToPtr("offer")})
	require.NoError(t, err)
	assert.Equal(t, pipeline.Offer, app.Status)
	assert.True(t, first.Equal(*app.AppliedAt), "applied at must not move")

	// terminal statuses are not locked and the stamp is never cleared
	app, err = service.Update(userID, app.ID, request.UpdateApplication{Status: pkg.ToPtr("rejected")})
	require.NoError(t, err)
	app, err = service.Update(userID, app.ID, request.UpdateApplication{Status: pkg.ToPtr("saved")})
	require.NoError(t, err)
	assert.Equal(t, pipeline.Saved, app.Status)
	require.NotNil(t, app.AppliedAt)
	assert.True(t, first.Equal(*app.AppliedAt))
}

func TestApplication_UpdateNotesOnly(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)

	service := NewApplicationService()
	app, err := service.Create(userID, request.CreateApplication{JobID: job.ID})
	require.NoError(t, err)

	app, err = service.Update(userID, app.ID, request.UpdateApplication{
		Notes:    pkg.ToPtr("Follow up Friday"),
		NextStep: pkg.ToPtr("Send portfolio"),
	})
	require.NoError(t, err)

	assert.Equal(t, pipeline.Saved, app.Status)
	assert.Nil(t, app.AppliedAt)
	require.NotNil(t, app.NextStep)
	assert.Equal(t, "Send portfolio", *app.NextStep)
	require.NotNil(t, app.Job)
	assert.Equal(t, job.ID, app.Job.ID)
}

func TestApplication_CrossUserAccess(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t)
	other := createTestUser(t)
	job := createTestJob(t, owner)

	service := NewApplicationService()
	app, err := service.Create(owner, request.CreateApplication{JobID: job.ID})
	require.NoError(t, err)

	_, err = service.Get(other, app.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = service.Update(other, app.ID, request.UpdateApplication{Status: pkg.ToPtr("applied")})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = service.Delete(other, app.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, service.Delete(owner, app.ID))
}
