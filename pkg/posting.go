package pkg

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PostingShape int

const (
	ShapeManual PostingShape = iota
	ShapeAggregator
)

// RawPosting is a job posting as it arrives at the boundary: either the
// aggregator wire shape (job_title, employer_name, ...) or the shape used by
// manual entry and by the web client (title, company, ...). Both key sets can
// be present at once; the canonical keys win.
type RawPosting struct {
	// manual / canonical keys
	ExternalID   string          `json:"externalId,omitempty"`
	Source       string          `json:"source,omitempty"`
	Title        string          `json:"title,omitempty"`
	Company      string          `json:"company,omitempty"`
	Location     string          `json:"location,omitempty"`
	Description  string          `json:"description,omitempty"`
	Requirements json.RawMessage `json:"requirements,omitempty"`
	Salary       string          `json:"salary,omitempty"`
	JobType      string          `json:"jobType,omitempty"`
	ApplyURL     string          `json:"applyUrl,omitempty"`
	CompanyLogo  string          `json:"companyLogo,omitempty"`
	PostedAt     string          `json:"postedAt,omitempty"`

	// aggregator keys
	JobID             string   `json:"job_id,omitempty"`
	JobTitle          string   `json:"job_title,omitempty"`
	EmployerName      string   `json:"employer_name,omitempty"`
	EmployerLogo      string   `json:"employer_logo,omitempty"`
	JobDescription    string   `json:"job_description,omitempty"`
	JobApplyLink      string   `json:"job_apply_link,omitempty"`
	JobEmploymentType string   `json:"job_employment_type,omitempty"`
	JobCity           string   `json:"job_city,omitempty"`
	JobState          string   `json:"job_state,omitempty"`
	JobCountry        string   `json:"job_country,omitempty"`
	JobMinSalary      *float64 `json:"job_min_salary,omitempty"`
	JobMaxSalary      *float64 `json:"job_max_salary,omitempty"`
	JobSalaryCurrency string   `json:"job_salary_currency,omitempty"`
	JobSalaryPeriod   string   `json:"job_salary_period,omitempty"`
	JobPostedAtUTC    string   `json:"job_posted_at_datetime_utc,omitempty"`
	JobRequiredSkills []string `json:"job_required_skills,omitempty"`
}

func (r RawPosting) Shape() PostingShape {
	if r.JobID != "" || r.JobTitle != "" || r.EmployerName != "" {
		return ShapeAggregator
	}
	return ShapeManual
}

// Posting is the canonical job posting stored as a SavedJob.
type Posting struct {
	ExternalID   *string    `json:"externalId"`
	Source       string     `json:"source"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     *string    `json:"location"`
	Description  string     `json:"description"`
	Requirements *string    `json:"requirements"`
	Salary       *string    `json:"salary"`
	JobType      *string    `json:"jobType"`
	ApplyURL     *string    `json:"applyUrl"`
	CompanyLogo  *string    `json:"companyLogo"`
	PostedAt     *time.Time `json:"postedAt"`
}

var salaryPrinter = message.NewPrinter(language.English)

// NormalizePosting maps either posting shape to the canonical one.
func NormalizePosting(r RawPosting) Posting {
	p := Posting{
		ExternalID:   NilIfBlank(firstNonBlank(r.JobID, r.ExternalID)),
		Source:       r.Source,
		Title:        firstNonBlank(r.Title, r.JobTitle, "Untitled"),
		Company:      firstNonBlank(r.Company, r.EmployerName, "Unknown"),
		Location:     NilIfBlank(firstNonBlank(r.Location, joinNonBlank(", ", r.JobCity, r.JobState))),
		Description:  firstNonBlank(r.Description, r.JobDescription),
		Requirements: requirements(r),
		Salary:       NilIfBlank(firstNonBlank(r.Salary, salaryRange(r))),
		JobType:      NilIfBlank(firstNonBlank(r.JobType, r.JobEmploymentType)),
		ApplyURL:     NilIfBlank(firstNonBlank(r.ApplyURL, r.JobApplyLink)),
		CompanyLogo:  NilIfBlank(firstNonBlank(r.CompanyLogo, r.EmployerLogo)),
		PostedAt:     parsePostedAt(firstNonBlank(r.PostedAt, r.JobPostedAtUTC)),
	}
	if p.Source == "" {
		p.Source = "manual"
		if r.Shape() == ShapeAggregator {
			p.Source = "jsearch"
		}
	}
	return p
}

func requirements(r RawPosting) *string {
	if len(r.Requirements) > 0 && string(r.Requirements) != "null" {
		var text string
		if err := json.Unmarshal(r.Requirements, &text); err == nil {
			return NilIfBlank(text)
		}
		// lists and objects are stored as their JSON text
		return NilIfBlank(string(r.Requirements))
	}
	if len(r.JobRequiredSkills) > 0 {
		data, err := json.Marshal(r.JobRequiredSkills)
		if err == nil {
			return ToPtr(string(data))
		}
	}
	return nil
}

func salaryRange(r RawPosting) string {
	if r.JobMinSalary == nil || r.JobMaxSalary == nil || *r.JobMinSalary == 0 || *r.JobMaxSalary == 0 {
		return ""
	}
	currency := firstNonBlank(r.JobSalaryCurrency, "$")
	return currency + formatAmount(*r.JobMinSalary) + " - " + currency + formatAmount(*r.JobMaxSalary)
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return salaryPrinter.Sprintf("%d", int64(v))
	}
	return salaryPrinter.Sprintf("%.2f", v)
}

func parsePostedAt(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func joinNonBlank(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
