package service

import (
	"context"
	"testing"
	"time"

	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/internal/apperr"
	"jobhunter/internal/pipeline"
	"jobhunter/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestApplication(t *testing.T, userID, status string) models.Application {
	t.Helper()
	job := createTestJob(t, userID)
	app, err := NewApplicationService().Create(userID, request.CreateApplication{JobID: job.ID, Status: pkg.ToPtr(status)})
	require.NoError(t, err)
	return app
}

func TestInterview_CreateAdvancesApplication(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	app := createTestApplication(t, userID, "saved")

	interview, err := NewInterviewService().Create(context.Background(), userID, request.CreateInterview{
		ApplicationID: app.ID,
		ScheduledAt:   time.Now().Add(48 * time.Hour),
		Interviewers:  []string{"Dana", "Lee"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultInterviewType, interview.Type)
	assert.Equal(t, models.InterviewScheduled, interview.Status)
	assert.Equal(t, []string{"Dana", "Lee"}, []string(interview.Interviewers))
	require.NotNil(t, interview.Application)
	assert.Equal(t, pipeline.Interviewing, interview.Application.Status)

	stored, err := NewApplicationService().Get(userID, app.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.Interviewing, stored.Status)
	assert.NotNil(t, stored.AppliedAt, "skipping applied still stamps")
	assert.Len(t, stored.Interviews, 1)
}

func TestInterview_CreateLeavesLaterStatusesAlone(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	app := createTestApplication(t, userID, "offer")

	_, err := NewInterviewService().Create(context.Background(), userID, request.CreateInterview{
		ApplicationID: app.ID,
		ScheduledAt:   time.Now().Add(time.Hour),
		Type:          "onsite",
	})
	require.NoError(t, err)

	stored, err := NewApplicationService().Get(userID, app.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.Offer, stored.Status)
}

func TestInterview_CreateForForeignApplication(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t)
	other := createTestUser(t)
	app := createTestApplication(t, owner, "applied")

	_, err := NewInterviewService().Create(context.Background(), other, request.CreateInterview{
		ApplicationID: app.ID,
		ScheduledAt:   time.Now(),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	stored, err := NewApplicationService().Get(owner, app.ID)
	require.NoError(t, err)
	assert.Equal(t, pipeline.Applied, stored.Status)
	assert.Empty(t, stored.Interviews)
}

func TestInterview_ListFilters(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	app := createTestApplication(t, userID, "applied")

	service := NewInterviewService()
	now := time.Now().UTC()
	service.now = func() time.Time { return now }

	past, err := service.Create(context.Background(), userID, request.CreateInterview{ApplicationID: app.ID, ScheduledAt: now.Add(-24 * time.Hour)})
	require.NoError(t, err)
	soon, err := service.Create(context.Background(), userID, request.CreateInterview{ApplicationID: app.ID, ScheduledAt: now.Add(24 * time.Hour)})
	require.NoError(t, err)
	later, err := service.Create(context.Background(), userID, request.CreateInterview{ApplicationID: app.ID, ScheduledAt: now.Add(72 * time.Hour)})
	require.NoError(t, err)

	_, err = service.Update(userID, later.ID, request.UpdateInterview{Status: pkg.ToPtr("cancelled")})
	require.NoError(t, err)

	all, err := service.List(userID, "all", false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, past.ID, all[0].ID)
	assert.Equal(t, later.ID, all[2].ID)

	upcoming, err := service.List(userID, "", true)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, soon.ID, upcoming[0].ID)

	cancelled, err := service.List(userID, "cancelled", false)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, later.ID, cancelled[0].ID)

	_, err = service.List(userID, "postponed", false)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	foreign, err := service.List(createTestUser(t), "all", false)
	require.NoError(t, err)
	assert.Empty(t, foreign)
}

func TestInterview_UpdateAndDelete(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	app := createTestApplication(t, userID, "applied")

	service := NewInterviewService()
	interview, err := service.Create(context.Background(), userID, request.CreateInterview{ApplicationID: app.ID, ScheduledAt: time.Now()})
	require.NoError(t, err)

	updated, err := service.Update(userID, interview.ID, request.UpdateInterview{
		Status:    pkg.ToPtr("completed"),
		PostNotes: pkg.ToPtr("Went well"),
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	require.NotNil(t, updated.PostNotes)
	assert.Equal(t, "Went well", *updated.PostNotes)

	err = service.Delete(createTestUser(t), interview.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, service.Delete(userID, interview.ID))
	_, err = service.Get(userID, interview.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
