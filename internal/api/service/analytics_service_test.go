package service

import (
	"testing"
	"time"

	"jobhunter/internal/api/handler/request"
	"jobhunter/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_Report(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)

	jobs := NewJobService()
	apps := NewApplicationService()

	acme := createTestJob(t, userID)
	globex, err := jobs.Create(userID, pkg.RawPosting{JobID: "g1", JobTitle: "SRE", EmployerName: "Globex"})
	require.NoError(t, err)
	createTestJob(t, userID)

	_, err = apps.Create(userID, request.CreateApplication{JobID: acme.ID, Status: pkg.ToPtr("interviewing")})
	require.NoError(t, err)
	_, err = apps.Create(userID, request.CreateApplication{JobID: globex.ID, Status: pkg.ToPtr("applied")})
	require.NoError(t, err)

	service := NewAnalyticsService()
	report, err := service.Report(userID, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalApplications)
	assert.Equal(t, 2, report.Summary.Applied)
	assert.Equal(t, 1, report.Summary.Interviewing)
	assert.Equal(t, 50.0, report.Summary.ResponseRate)
	assert.Equal(t, 1, report.Funnel.Applied)
	assert.Equal(t, 1, report.Funnel.Interviewing)

	require.Len(t, report.ActivityTrend, 7)
	today := report.ActivityTrend[6]
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), today.Date)
	assert.Equal(t, 2, today.Applications)
	assert.Equal(t, 3, today.Jobs)

	require.Len(t, report.SourceBreakdown, 2)
	assert.Equal(t, "manual", report.SourceBreakdown[0].Source)
	assert.Equal(t, "jsearch", report.SourceBreakdown[1].Source)

	assert.Equal(t, 2, report.WeeklyComparison.ThisWeek)
	assert.Equal(t, 100, report.WeeklyComparison.ChangePercent)
}

func TestAnalytics_ReportNormalizesWindow(t *testing.T) {
	setupTestDB(t)

	report, err := NewAnalyticsService().Report(createTestUser(t), 0)
	require.NoError(t, err)
	assert.Len(t, report.ActivityTrend, 30)
	assert.Empty(t, report.TopCompanies)
}
