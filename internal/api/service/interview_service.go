package service

import (
	"context"
	"time"

	"jobhunter"
	"jobhunter/internal/api/handler/mapper"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/internal/api/repo"
	"jobhunter/internal/apperr"
	"jobhunter/internal/pipeline"
	"jobhunter/pkg"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type InterviewService struct {
	interviewRepo   *repo.InterviewRepository
	appRepo         *repo.ApplicationRepository
	interviewMapper mapper.InterviewMapper
	logger          zerolog.Logger
	now             func() time.Time
}

func NewInterviewService() *InterviewService {
	return &InterviewService{
		interviewRepo:   repo.NewInterviewRepository(),
		appRepo:         repo.NewApplicationRepository(),
		interviewMapper: mapper.NewInterviewMapper(),
		logger:          jobhunter.Logger,
		now:             time.Now,
	}
}

// List returns the user's interviews by date. status "all" or "" disables the
// status filter; upcoming keeps scheduled interviews that have not started.
func (slf *InterviewService) List(userID, status string, upcoming bool) ([]models.Interview, error) {
	filter := repo.InterviewFilter{Upcoming: upcoming, Now: slf.now().UTC()}
	if status != "" && status != "all" {
		if !contains(models.InterviewStatuses, status) {
			return nil, apperr.Validation("invalid interview status %q", status)
		}
		filter.Status = status
	}

	interviews, err := slf.interviewRepo.FindAllByUser(userID, filter)
	if err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error listing interviews")
		return nil, err
	}
	return interviews, nil
}

func (slf *InterviewService) Get(userID, id string) (models.Interview, error) {
	interview, err := slf.interviewRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.Interview{}, notFound(err, "interview")
	}
	return interview, nil
}

// Create schedules an interview. An application still saved or applied is
// moved to interviewing in the same transaction.
func (slf *InterviewService) Create(ctx context.Context, userID string, req request.CreateInterview) (models.Interview, error) {
	interview := slf.interviewMapper.CreateInterview(req)

	var change pipeline.Change
	err := slf.interviewRepo.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appRepo := slf.appRepo.WithTx(tx)
		app, err := appRepo.FindByIDForUser(userID, req.ApplicationID)
		if err != nil {
			return notFound(err, "application")
		}

		if err := slf.interviewRepo.WithTx(tx).Create(&interview); err != nil {
			return err
		}

		change = pipeline.OnInterviewScheduled(app.Status, app.AppliedAt, slf.now())
		if !change.Changed() {
			return nil
		}
		return appRepo.Update(&models.Application{Model: app.Model}, map[string]any{
			"status":     change.To,
			"applied_at": change.AppliedAt,
		})
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			slf.logger.Error().Err(err).Str("userId", userID).Msg("Error creating interview")
		}
		return models.Interview{}, err
	}

	if change.Changed() {
		slf.logger.Info().Str("applicationId", req.ApplicationID).Str("from", change.From.String()).Msg("Application moved to interviewing")
		pkg.PublishActivity(userID, pkg.ActivityAutoAdvanced, map[string]any{
			"applicationId": req.ApplicationID,
			"interviewId":   interview.ID,
			"from":          change.From,
			"to":            change.To,
		})
	}

	return slf.Get(userID, interview.ID)
}

func (slf *InterviewService) Update(userID, id string, req request.UpdateInterview) (models.Interview, error) {
	interview, err := slf.interviewRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.Interview{}, notFound(err, "interview")
	}

	if patch := slf.interviewMapper.PatchInterview(req); len(patch) > 0 {
		if err := slf.interviewRepo.Update(&models.Interview{Model: interview.Model}, patch); err != nil {
			slf.logger.Error().Err(err).Str("interviewId", id).Msg("Error updating interview")
			return models.Interview{}, err
		}
	}
	return slf.Get(userID, id)
}

func (slf *InterviewService) Delete(userID, id string) error {
	rows, err := slf.interviewRepo.DeleteForUser(userID, id)
	return requireDeleted(rows, err, "interview")
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
