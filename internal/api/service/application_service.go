package service

import (
	"errors"
	"time"

	"jobhunter"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/internal/api/repo"
	"jobhunter/internal/apperr"
	"jobhunter/internal/pipeline"
	"jobhunter/pkg"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationService struct {
	appRepo *repo.ApplicationRepository
	jobRepo *repo.SavedJobRepository
	logger  zerolog.Logger
	now     func() time.Time
}

func NewApplicationService() *ApplicationService {
	return &ApplicationService{
		appRepo: repo.NewApplicationRepository(),
		jobRepo: repo.NewSavedJobRepository(),
		logger:  jobhunter.Logger,
		now:     time.Now,
	}
}

func (slf *ApplicationService) List(userID string) ([]models.Application, error) {
	apps, err := slf.appRepo.FindAllByUser(userID)
	if err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error listing applications")
		return nil, err
	}
	return apps, nil
}

func (slf *ApplicationService) Get(userID, id string) (models.Application, error) {
	app, err := slf.appRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.Application{}, notFound(err, "application")
	}
	return app, nil
}

// Create starts tracking a saved job. A job has at most one application.
func (slf *ApplicationService) Create(userID string, req request.CreateApplication) (models.Application, error) {
	status := pipeline.Saved
	if req.Status != nil && *req.Status != "" {
		parsed, err := pipeline.Parse(*req.Status)
		if err != nil {
			return models.Application{}, err
		}
		status = parsed
	}

	if _, err := slf.jobRepo.FindByIDForUser(userID, req.JobID); err != nil {
		return models.Application{}, notFound(err, "job")
	}

	exists, err := slf.appRepo.ExistsForJob(userID, req.JobID)
	if err != nil {
		return models.Application{}, err
	}
	if exists {
		return models.Application{}, apperr.Conflict("an application already exists for this job")
	}

	app := models.Application{
		UserID:    userID,
		JobID:     req.JobID,
		Status:    status,
		AppliedAt: pipeline.Stamp(nil, status, slf.now()),
		Notes:     nilIfBlankPtr(req.Notes),
	}
	if err := slf.appRepo.Create(&app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Application{}, apperr.Conflict("an application already exists for this job")
		}
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error creating application")
		return models.Application{}, err
	}

	slf.logger.Info().Str("userId", userID).Str("applicationId", app.ID).Str("status", app.Status.String()).Msg("Application created")
	return app, nil
}

// Update applies notes, next step and status changes. Any status may follow
// any other; the first non-saved status stamps AppliedAt.
func (slf *ApplicationService) Update(userID, id string, req request.UpdateApplication) (models.Application, error) {
	app, err := slf.appRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.Application{}, notFound(err, "application")
	}

	patch := map[string]any{}
	var change pipeline.Change
	if req.Status != nil {
		next, err := pipeline.Parse(*req.Status)
		if err != nil {
			return models.Application{}, err
		}
		change, err = pipeline.SetStatus(app.Status, app.AppliedAt, next, slf.now())
		if err != nil {
			return models.Application{}, err
		}
		patch["status"] = change.To
		patch["applied_at"] = change.AppliedAt
	}
	if req.Notes != nil {
		patch["notes"] = pkg.NilIfBlank(*req.Notes)
	}
	if req.NextStep != nil {
		patch["next_step"] = pkg.NilIfBlank(*req.NextStep)
	}

	if len(patch) > 0 {
		if err := slf.appRepo.Update(&models.Application{Model: app.Model}, patch); err != nil {
			slf.logger.Error().Err(err).Str("applicationId", id).Msg("Error updating application")
			return models.Application{}, err
		}
	}

	if change.Changed() {
		slf.logger.Info().Str("applicationId", id).Str("from", change.From.String()).Str("to", change.To.String()).Msg("Application status changed")
		pkg.PublishActivity(userID, pkg.ActivityStatusChanged, map[string]any{
			"applicationId": id,
			"from":          change.From,
			"to":            change.To,
		})
	}

	return slf.Get(userID, id)
}

func (slf *ApplicationService) Delete(userID, id string) error {
	rows, err := slf.appRepo.DeleteForUser(userID, id)
	return requireDeleted(rows, err, "application")
}

func nilIfBlankPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return pkg.NilIfBlank(*s)
}
