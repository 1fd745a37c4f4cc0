package service

import (
	"context"
	"errors"

	"jobhunter"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/api/models"
	"jobhunter/internal/api/repo"
	"jobhunter/internal/apperr"
	"jobhunter/pkg"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	defaultTone            = "professional"
	coverLetterMaxTokens   = 1024
	coverLetterTemperature = 0.7
)

type CoverLetterService struct {
	letterRepo *repo.CoverLetterRepository
	jobRepo    *repo.SavedJobRepository
	resumeRepo *repo.ResumeRepository
	llm        pkg.Completer
	logger     zerolog.Logger
}

func NewCoverLetterService() *CoverLetterService {
	return &CoverLetterService{
		letterRepo: repo.NewCoverLetterRepository(),
		jobRepo:    repo.NewSavedJobRepository(),
		resumeRepo: repo.NewResumeRepository(),
		llm:        pkg.DefaultCompleter(),
		logger:     jobhunter.Logger,
	}
}

func (slf *CoverLetterService) List(userID, jobID string) ([]models.CoverLetter, error) {
	letters, err := slf.letterRepo.FindAllByUser(userID, jobID)
	if err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error listing cover letters")
		return nil, err
	}
	return letters, nil
}

func (slf *CoverLetterService) Get(userID, id string) (models.CoverLetter, error) {
	letter, err := slf.letterRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.CoverLetter{}, notFound(err, "cover letter")
	}
	return letter, nil
}

// Save stores content as the next version for the job. Versions count from
// 1 separately for every (user, job) pair.
func (slf *CoverLetterService) Save(userID string, req request.CreateCoverLetter) (models.CoverLetter, error) {
	if _, err := slf.jobRepo.FindByIDForUser(userID, req.JobID); err != nil {
		return models.CoverLetter{}, notFound(err, "job")
	}

	letter := models.CoverLetter{
		UserID:  userID,
		JobID:   req.JobID,
		Content: req.Content,
		Tone:    req.Tone,
	}
	if letter.Tone == "" {
		letter.Tone = defaultTone
	}

	if err := slf.letterRepo.CreateNextVersion(&letter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.CoverLetter{}, apperr.Conflict("another version was saved at the same time, please retry")
		}
		slf.logger.Error().Err(err).Str("userId", userID).Str("jobId", req.JobID).Msg("Error saving cover letter")
		return models.CoverLetter{}, err
	}

	slf.logger.Info().Str("userId", userID).Str("jobId", req.JobID).Int("version", letter.Version).Msg("Cover letter saved")
	return letter, nil
}

func (slf *CoverLetterService) Update(userID, id string, req request.UpdateCoverLetter) (models.CoverLetter, error) {
	letter, err := slf.letterRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.CoverLetter{}, notFound(err, "cover letter")
	}

	patch := map[string]any{}
	if req.Content != nil {
		patch["content"] = *req.Content
	}
	if req.Tone != nil {
		patch["tone"] = *req.Tone
	}
	if len(patch) > 0 {
		if err := slf.letterRepo.Update(&models.CoverLetter{Model: letter.Model}, patch); err != nil {
			slf.logger.Error().Err(err).Str("coverLetterId", id).Msg("Error updating cover letter")
			return models.CoverLetter{}, err
		}
	}
	return slf.Get(userID, id)
}

func (slf *CoverLetterService) Delete(userID, id string) error {
	rows, err := slf.letterRepo.DeleteForUser(userID, id)
	return requireDeleted(rows, err, "cover letter")
}

// Generate drafts a cover letter for the job from the chosen resume, or the
// most recent one. The draft is returned, not stored.
func (slf *CoverLetterService) Generate(ctx context.Context, userID string, req request.GenerateCoverLetter) (response.GeneratedCoverLetter, error) {
	job, err := slf.jobRepo.FindByIDForUser(userID, req.JobID)
	if err != nil {
		return response.GeneratedCoverLetter{}, notFound(err, "job")
	}

	var resume models.Resume
	if req.ResumeID != "" {
		resume, err = slf.resumeRepo.FindByIDForUser(userID, req.ResumeID)
		if err != nil {
			return response.GeneratedCoverLetter{}, notFound(err, "resume")
		}
	} else {
		resume, err = slf.resumeRepo.FindLatestForUser(userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.GeneratedCoverLetter{}, apperr.Validation("No resume found. Please add a resume first.")
		}
		if err != nil {
			return response.GeneratedCoverLetter{}, err
		}
	}

	tone := req.Tone
	if tone == "" {
		tone = defaultTone
	}

	prompt, err := pkg.CoverLetterPrompt(pkg.CoverLetterInput{
		CandidateBackground: resume.RawText,
		JobTitle:            job.Title,
		Company:             job.Company,
		JobDescription:      job.Description,
		Tone:                tone,
	})
	if err != nil {
		return response.GeneratedCoverLetter{}, err
	}

	completion, err := slf.llm.Complete(ctx, prompt.System, prompt.User, pkg.CompletionOptions{
		MaxTokens:   coverLetterMaxTokens,
		Temperature: pkg.ToPtr(coverLetterTemperature),
	})
	if err != nil {
		slf.logger.Error().Err(err).Str("jobId", job.ID).Msg("Cover letter generation failed")
		return response.GeneratedCoverLetter{}, err
	}

	return response.GeneratedCoverLetter{
		Content: completion.Text,
		Tone:    tone,
		JobID:   job.ID,
		Usage:   completion.Usage,
	}, nil
}
