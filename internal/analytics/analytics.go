// Package analytics computes the dashboard report of a user's job search.
// Compute is a pure function over rows already loaded from the store.
package analytics

import (
	"math"
	"sort"
	"strconv"
	"time"

	"jobhunter/internal/pipeline"
)

const (
	DefaultDays = 30
	MaxDays     = 365

	topCompaniesLimit = 10
	dateLayout        = "2006-01-02"
)

// ApplicationRow is an application joined with the fields of its job that the
// report groups by.
type ApplicationRow struct {
	Status    pipeline.Status
	CreatedAt time.Time
	Source    string
	JobType   string
	Company   string
}

type Input struct {
	// Applications must be ordered by CreatedAt ascending; breakdown order
	// follows first appearance.
	Applications []ApplicationRow
	// SavedJobs holds the creation time of every saved job.
	SavedJobs []time.Time
	Days      int
	Now       time.Time
}

type Summary struct {
	TotalApplications int     `json:"totalApplications"`
	Applied           int     `json:"applied"`
	Interviewing      int     `json:"interviewing"`
	Offers            int     `json:"offers"`
	Accepted          int     `json:"accepted"`
	Rejected          int     `json:"rejected"`
	ResponseRate      float64 `json:"responseRate"`
	InterviewRate     float64 `json:"interviewRate"`
	OfferRate         float64 `json:"offerRate"`
	AcceptRate        float64 `json:"acceptRate"`
}

// Funnel holds exclusive per-status counts.
type Funnel struct {
	Saved        int `json:"saved"`
	Applied      int `json:"applied"`
	Interviewing int `json:"interviewing"`
	Offer        int `json:"offer"`
	Accepted     int `json:"accepted"`
	Rejected     int `json:"rejected"`
}

type DayActivity struct {
	Date         string `json:"date"`
	Applications int    `json:"applications"`
	Jobs         int    `json:"jobs"`
}

type SourceStats struct {
	Source       string `json:"source"`
	Total        int    `json:"total"`
	Applied      int    `json:"applied"`
	Interviewing int    `json:"interviewing"`
}

type JobTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

type WeeklyComparison struct {
	ThisWeek      int `json:"thisWeek"`
	LastWeek      int `json:"lastWeek"`
	ChangePercent int `json:"changePercent"`
}

type Report struct {
	Summary          Summary          `json:"summary"`
	Funnel           Funnel           `json:"funnel"`
	ActivityTrend    []DayActivity    `json:"activityTrend"`
	SourceBreakdown  []SourceStats    `json:"sourceBreakdown"`
	JobTypeBreakdown []JobTypeCount   `json:"jobTypeBreakdown"`
	TopCompanies     []CompanyCount   `json:"topCompanies"`
	WeeklyComparison WeeklyComparison `json:"weeklyComparison"`
}

// NormalizeDays maps a requested window to the one actually used.
func NormalizeDays(days int) int {
	if days < 1 {
		return DefaultDays
	}
	if days > MaxDays {
		return MaxDays
	}
	return days
}

// ParseDays reads the "days" query value; anything unparsable falls back to
// the default window.
func ParseDays(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultDays
	}
	return NormalizeDays(days)
}

func Compute(in Input) Report {
	days := NormalizeDays(in.Days)
	now := in.Now.UTC()

	report := Report{
		ActivityTrend:    activityTrend(in, days, now),
		SourceBreakdown:  []SourceStats{},
		JobTypeBreakdown: []JobTypeCount{},
		TopCompanies:     []CompanyCount{},
	}

	sources := map[string]int{}
	jobTypes := map[string]int{}
	companies := map[string]int{}

	for _, app := range in.Applications {
		switch app.Status {
		case pipeline.Saved:
			report.Funnel.Saved++
		case pipeline.Applied:
			report.Funnel.Applied++
		case pipeline.Interviewing:
			report.Funnel.Interviewing++
		case pipeline.Offer:
			report.Funnel.Offer++
		case pipeline.Accepted:
			report.Funnel.Accepted++
		case pipeline.Rejected:
			report.Funnel.Rejected++
		}

		source := app.Source
		if source == "" {
			source = "unknown"
		}
		idx, ok := sources[source]
		if !ok {
			idx = len(report.SourceBreakdown)
			sources[source] = idx
			report.SourceBreakdown = append(report.SourceBreakdown, SourceStats{Source: source})
		}
		report.SourceBreakdown[idx].Total++
		if hasApplied(app.Status) {
			report.SourceBreakdown[idx].Applied++
		}
		if reachedInterview(app.Status) {
			report.SourceBreakdown[idx].Interviewing++
		}

		jobType := app.JobType
		if jobType == "" {
			jobType = "unspecified"
		}
		idx, ok = jobTypes[jobType]
		if !ok {
			idx = len(report.JobTypeBreakdown)
			jobTypes[jobType] = idx
			report.JobTypeBreakdown = append(report.JobTypeBreakdown, JobTypeCount{Type: jobType})
		}
		report.JobTypeBreakdown[idx].Count++

		idx, ok = companies[app.Company]
		if !ok {
			idx = len(report.TopCompanies)
			companies[app.Company] = idx
			report.TopCompanies = append(report.TopCompanies, CompanyCount{Company: app.Company})
		}
		report.TopCompanies[idx].Count++
	}

	report.Summary = summarize(in.Applications)

	sort.SliceStable(report.TopCompanies, func(i, j int) bool {
		return report.TopCompanies[i].Count > report.TopCompanies[j].Count
	})
	if len(report.TopCompanies) > topCompaniesLimit {
		report.TopCompanies = report.TopCompanies[:topCompaniesLimit]
	}

	report.WeeklyComparison = weekly(in.Applications, now)
	return report
}

func summarize(apps []ApplicationRow) Summary {
	s := Summary{TotalApplications: len(apps)}
	for _, app := range apps {
		if hasApplied(app.Status) {
			s.Applied++
		}
		if reachedInterview(app.Status) {
			s.Interviewing++
		}
		if app.Status == pipeline.Offer || app.Status == pipeline.Accepted {
			s.Offers++
		}
		if app.Status == pipeline.Accepted {
			s.Accepted++
		}
		if app.Status == pipeline.Rejected {
			s.Rejected++
		}
	}

	// response and interview rate share a formula; clients read both keys
	s.ResponseRate = Rate(s.Interviewing, s.Applied)
	s.InterviewRate = Rate(s.Interviewing, s.Applied)
	s.OfferRate = Rate(s.Offers, s.Interviewing)
	s.AcceptRate = Rate(s.Accepted, s.Offers)
	return s
}

func activityTrend(in Input, days int, now time.Time) []DayActivity {
	trend := make([]DayActivity, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i)).Format(dateLayout)
		trend[i] = DayActivity{Date: date}
		index[date] = i
	}

	for _, app := range in.Applications {
		if i, ok := index[app.CreatedAt.UTC().Format(dateLayout)]; ok {
			trend[i].Applications++
		}
	}
	for _, createdAt := range in.SavedJobs {
		if i, ok := index[createdAt.UTC().Format(dateLayout)]; ok {
			trend[i].Jobs++
		}
	}
	return trend
}

func weekly(apps []ApplicationRow, now time.Time) WeeklyComparison {
	thisWeekStart := now.AddDate(0, 0, -7)
	lastWeekStart := now.AddDate(0, 0, -14)

	var w WeeklyComparison
	for _, app := range apps {
		createdAt := app.CreatedAt.UTC()
		switch {
		case !createdAt.Before(thisWeekStart):
			w.ThisWeek++
		case !createdAt.Before(lastWeekStart):
			w.LastWeek++
		}
	}
	w.ChangePercent = ChangePercent(w.ThisWeek, w.LastWeek)
	return w
}

func hasApplied(s pipeline.Status) bool {
	return s != pipeline.Saved
}

func reachedInterview(s pipeline.Status) bool {
	return s == pipeline.Interviewing || s == pipeline.Offer || s == pipeline.Accepted
}

// Rate returns num/den as a percentage with one decimal, or 0 when den is 0.
func Rate(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	v, _ := strconv.ParseFloat(strconv.FormatFloat(100*float64(num)/float64(den), 'f', 1, 64), 64)
	return v
}

// ChangePercent compares two weekly counts as a whole percentage. With no
// previous activity any new activity counts as +100%.
func ChangePercent(thisWeek, lastWeek int) int {
	if lastWeek > 0 {
		return int(math.Round(100 * float64(thisWeek-lastWeek) / float64(lastWeek)))
	}
	if thisWeek > 0 {
		return 100
	}
	return 0
}
