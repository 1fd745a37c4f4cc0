package service

import (
	"time"

	"jobhunter"
	"jobhunter/internal/analytics"
	"jobhunter/internal/api/repo"
	"jobhunter/pkg"

	"github.com/rs/zerolog"
)

type AnalyticsService struct {
	appRepo *repo.ApplicationRepository
	jobRepo *repo.SavedJobRepository
	logger  zerolog.Logger
	now     func() time.Time
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		appRepo: repo.NewApplicationRepository(),
		jobRepo: repo.NewSavedJobRepository(),
		logger:  jobhunter.Logger,
		now:     time.Now,
	}
}

func (slf *AnalyticsService) Report(userID string, days int) (analytics.Report, error) {
	apps, err := slf.appRepo.FindAllByUserOldestFirst(userID)
	if err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error loading applications for analytics")
		return analytics.Report{}, err
	}
	jobTimes, err := slf.jobRepo.CreationTimesByUser(userID)
	if err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error loading saved jobs for analytics")
		return analytics.Report{}, err
	}

	rows := make([]analytics.ApplicationRow, 0, len(apps))
	for _, app := range apps {
		row := analytics.ApplicationRow{Status: app.Status, CreatedAt: app.CreatedAt}
		if app.Job != nil {
			row.Source = app.Job.Source
			row.JobType = pkg.FromPtr(app.Job.JobType)
			row.Company = app.Job.Company
		}
		rows = append(rows, row)
	}

	return analytics.Compute(analytics.Input{
		Applications: rows,
		SavedJobs:    jobTimes,
		Days:         analytics.NormalizeDays(days),
		Now:          slf.now(),
	}), nil
}
