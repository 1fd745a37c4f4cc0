package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"jobhunter"
	"jobhunter/internal/apperr"
)

type SearchParams struct {
	Query           string
	Page            int
	DatePosted      string
	RemoteOnly      bool
	EmploymentType  string
	JobRequirements string
	Radius          int
}

type SearchResult struct {
	Status string       `json:"status"`
	Data   []RawPosting `json:"data"`
}

// JobSearcher queries a job aggregator.
type JobSearcher interface {
	Search(ctx context.Context, params SearchParams) (SearchResult, error)
}

// JSearchClient talks to the JSearch API on RapidAPI. Results are cached in
// Redis when a connection is configured.
type JSearchClient struct {
	apiKey   string
	host     string
	baseURL  string
	cacheTTL time.Duration
	client   *http.Client
}

func NewJSearchClient(apiKey, host string, cacheTTL time.Duration) *JSearchClient {
	return &JSearchClient{
		apiKey:   apiKey,
		host:     host,
		baseURL:  "https://" + host,
		cacheTTL: cacheTTL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

var (
	defaultSearcher     JobSearcher
	defaultSearcherOnce sync.Once
)

// DefaultJobSearcher builds the aggregator client from the loaded config.
func DefaultJobSearcher() JobSearcher {
	defaultSearcherOnce.Do(func() {
		cfg := jobhunter.GetConfig()
		defaultSearcher = NewJSearchClient(
			cfg.JobSearchConfig.RapidAPIKey,
			cfg.JobSearchConfig.RapidAPIHost,
			time.Duration(cfg.RedisConfig.SearchCacheTTL)*time.Minute,
		)
	})
	return defaultSearcher
}

func (p SearchParams) values() url.Values {
	page := p.Page
	if page < 1 {
		page = 1
	}
	v := url.Values{}
	v.Set("query", p.Query)
	v.Set("page", strconv.Itoa(page))
	v.Set("num_pages", "1")
	if p.DatePosted != "" {
		v.Set("date_posted", p.DatePosted)
	}
	if p.RemoteOnly {
		v.Set("remote_jobs_only", "true")
	}
	if p.EmploymentType != "" {
		v.Set("employment_types", p.EmploymentType)
	}
	if p.JobRequirements != "" {
		v.Set("job_requirements", p.JobRequirements)
	}
	if p.Radius > 0 {
		v.Set("radius", strconv.Itoa(p.Radius))
	}
	return v
}

func (slf *JSearchClient) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	var result SearchResult
	if slf.apiKey == "" {
		return result, apperr.External(nil, "RAPIDAPI_KEY not configured. Add it to your .env file.")
	}

	query := params.values().Encode()
	cacheKey := "jsearch:" + query
	if slf.cacheTTL > 0 && RedisEnabled() {
		if err := RedisGet(ctx, cacheKey, &result); err == nil {
			return result, nil
		} else if !IsRedisNil(err) {
			jobhunter.Logger.Warn().Err(err).Msg("search cache read failed")
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/search?%s", slf.baseURL, query), nil)
	if err != nil {
		return result, apperr.External(err, "build search request")
	}
	req.Header.Set("x-rapidapi-key", slf.apiKey)
	req.Header.Set("x-rapidapi-host", slf.host)

	resp, err := slf.client.Do(req)
	if err != nil {
		return result, apperr.External(err, "job search request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, apperr.External(err, "read job search response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		jobhunter.Logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("JSearch API error")
		return result, apperr.External(nil, "JSearch API error: %d - %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, apperr.Malformed(err, "decode job search response")
	}

	if slf.cacheTTL > 0 && RedisEnabled() {
		if err := RedisSet(ctx, cacheKey, result, slf.cacheTTL); err != nil {
			jobhunter.Logger.Warn().Err(err).Msg("search cache write failed")
		}
	}
	return result, nil
}
