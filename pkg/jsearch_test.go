package pkg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobhunter/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearchClient(t *testing.T, handler http.HandlerFunc) *JSearchClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewJSearchClient("test-key", "jsearch.p.rapidapi.com", 0)
	client.baseURL = srv.URL
	return client
}

func TestJSearchClient_Search(t *testing.T) {
	client := newTestSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "jsearch.p.rapidapi.com", r.Header.Get("x-rapidapi-host"))

		q := r.URL.Query()
		assert.Equal(t, "golang developer", q.Get("query"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "1", q.Get("num_pages"))
		assert.Equal(t, "week", q.Get("date_posted"))
		assert.Equal(t, "true", q.Get("remote_jobs_only"))
		assert.Equal(t, "FULLTIME", q.Get("employment_types"))
		assert.Equal(t, "", q.Get("job_requirements"))
		assert.Equal(t, "25", q.Get("radius"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","data":[{"job_id":"j1","job_title":"Gopher","employer_name":"Acme"}]}`))
	})

	result, err := client.Search(context.Background(), SearchParams{
		Query:          "golang developer",
		Page:           2,
		DatePosted:     "week",
		RemoteOnly:     true,
		EmploymentType: "FULLTIME",
		Radius:         25,
	})
	require.NoError(t, err)
	assert.Equal(t, "OK", result.Status)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Gopher", NormalizePosting(result.Data[0]).Title)
}

func TestJSearchClient_DefaultsPage(t *testing.T) {
	client := newTestSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.False(t, r.URL.Query().Has("remote_jobs_only"))
		_, _ = w.Write([]byte(`{"status":"OK","data":[]}`))
	})

	_, err := client.Search(context.Background(), SearchParams{Query: "sre"})
	require.NoError(t, err)
}

func TestJSearchClient_ErrorStatus(t *testing.T) {
	client := newTestSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`quota exceeded`))
	})

	_, err := client.Search(context.Background(), SearchParams{Query: "sre"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindExternalService, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestJSearchClient_MalformedBody(t *testing.T) {
	client := newTestSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.Search(context.Background(), SearchParams{Query: "sre"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindMalformedResponse, apperr.KindOf(err))
}

func TestJSearchClient_MissingKey(t *testing.T) {
	client := NewJSearchClient("", "jsearch.p.rapidapi.com", time.Minute)

	_, err := client.Search(context.Background(), SearchParams{Query: "sre"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindExternalService, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "RAPIDAPI_KEY")
}
