package service

import (
	"context"
	"testing"

	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/apperr"
	"jobhunter/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_CreateFromAggregatorShape(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)

	minSalary, maxSalary := 120000.0, 150000.0
	job, err := NewJobService().Create(userID, pkg.RawPosting{
		JobID:             "abc123",
		JobTitle:          "Platform Engineer",
		EmployerName:      "Globex",
		JobCity:           "Austin",
		JobState:          "TX",
		JobDescription:    "Own the platform.",
		JobEmploymentType: "FULLTIME",
		JobMinSalary:      &minSalary,
		JobMaxSalary:      &maxSalary,
		JobSalaryCurrency: "USD",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "jsearch", job.Source)
	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Equal(t, "Globex", job.Company)
	require.NotNil(t, job.Location)
	assert.Equal(t, "Austin, TX", *job.Location)
	require.NotNil(t, job.ExternalID)
	assert.Equal(t, "abc123", *job.ExternalID)
	require.NotNil(t, job.Salary)
	assert.Equal(t, "USD120,000 - USD150,000", *job.Salary)
}

func TestJob_CreateManualDefaults(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)

	job, err := NewJobService().Create(userID, pkg.RawPosting{Description: "No title given"})
	require.NoError(t, err)

	assert.Equal(t, "manual", job.Source)
	assert.Equal(t, "Untitled", job.Title)
	assert.Equal(t, "Unknown", job.Company)
}

func TestJob_OwnershipIsEnforced(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t)
	other := createTestUser(t)
	job := createTestJob(t, owner)

	service := NewJobService()

	_, err := service.Get(other, job.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = service.Update(other, job.ID, request.UpdateJob{Title: pkg.ToPtr("Hijacked")})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = service.Delete(other, job.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	jobs, err := service.List(other)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	stored, err := service.Get(owner, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", stored.Title)
}

func TestJob_UpdateAndDelete(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)

	service := NewJobService()

	updated, err := service.Update(userID, job.ID, request.UpdateJob{
		Title:    pkg.ToPtr("Staff Engineer"),
		Location: pkg.ToPtr("Remote"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.Equal(t, "Acme", updated.Company)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Remote", *updated.Location)

	require.NoError(t, service.Delete(userID, job.ID))

	_, err = service.Get(userID, job.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestJob_DeleteCascadesToApplication(t *testing.T) {
	setupTestDB(t)
	userID := createTestUser(t)
	job := createTestJob(t, userID)

	app, err := NewApplicationService().Create(userID, request.CreateApplication{JobID: job.ID})
	require.NoError(t, err)

	require.NoError(t, NewJobService().Delete(userID, job.ID))

	_, err = NewApplicationService().Get(userID, app.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestJob_SearchNormalizesPostings(t *testing.T) {
	setupTestDB(t)

	searcher := &fakeSearcher{result: pkg.SearchResult{
		Status: "OK",
		Data: []pkg.RawPosting{
			{JobID: "j1", JobTitle: "Go Developer", EmployerName: "Initech", JobCity: "Denver"},
			{JobID: "j2", EmployerName: "Hooli"},
		},
	}}
	service := NewJobService()
	service.search = searcher

	result, err := service.Search(context.Background(), request.SearchJobs{Query: "golang", Page: 2, Remote: true})
	require.NoError(t, err)

	assert.Equal(t, "golang", searcher.params.Query)
	assert.Equal(t, 2, searcher.params.Page)
	assert.True(t, searcher.params.RemoteOnly)

	assert.Equal(t, "OK", result.Status)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Go Developer", result.Data[0].Title)
	assert.Equal(t, "jsearch", result.Data[0].Source)
	assert.Equal(t, "Untitled", result.Data[1].Title)
}

func TestJob_SearchFailure(t *testing.T) {
	setupTestDB(t)

	service := NewJobService()
	service.search = &fakeSearcher{err: apperr.External(nil, "JSearch API error: 429 - slow down")}

	_, err := service.Search(context.Background(), request.SearchJobs{Query: "go"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindExternalService, apperr.KindOf(err))
}

func TestJob_Parse(t *testing.T) {
	setupTestDB(t)

	llm := &fakeCompleter{reply: `{"title":"SRE","company":"Umbrella","requirements":["Linux","Go"],"niceToHave":[],"benefits":["Remote"]}`}
	service := NewJobService()
	service.llm = llm

	parsed, err := service.Parse(context.Background(), "We are hiring an SRE at Umbrella")
	require.NoError(t, err)

	require.NotNil(t, parsed.Title)
	assert.Equal(t, "SRE", *parsed.Title)
	assert.Nil(t, parsed.Location)
	assert.Equal(t, []string{"Linux", "Go"}, parsed.Requirements)
	assert.Contains(t, llm.user, "We are hiring an SRE at Umbrella")
}

func TestJob_ParseMalformedReply(t *testing.T) {
	setupTestDB(t)

	service := NewJobService()
	service.llm = &fakeCompleter{reply: "Sorry, I cannot help with that."}

	_, err := service.Parse(context.Background(), "text")
	require.Error(t, err)
	assert.Equal(t, apperr.KindMalformedResponse, apperr.KindOf(err))
}
