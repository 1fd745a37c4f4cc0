package service

import (
	"context"

	"jobhunter"
	"jobhunter/internal/api/handler/mapper"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/api/models"
	"jobhunter/internal/api/repo"
	"jobhunter/pkg"

	"github.com/rs/zerolog"
)

type JobService struct {
	jobRepo   *repo.SavedJobRepository
	jobMapper mapper.JobMapper
	search    pkg.JobSearcher
	llm       pkg.Completer
	logger    zerolog.Logger
}

func NewJobService() *JobService {
	return &JobService{
		jobRepo:   repo.NewSavedJobRepository(),
		jobMapper: mapper.NewJobMapper(),
		search:    pkg.DefaultJobSearcher(),
		llm:       pkg.DefaultCompleter(),
		logger:    jobhunter.Logger,
	}
}

func (slf *JobService) List(userID string) ([]models.SavedJob, error) {
	jobs, err := slf.jobRepo.FindAllByUser(userID)
	if err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error listing jobs")
		return nil, err
	}
	return jobs, nil
}

func (slf *JobService) Get(userID, id string) (models.SavedJob, error) {
	job, err := slf.jobRepo.FindDetailForUser(userID, id)
	if err != nil {
		return models.SavedJob{}, notFound(err, "job")
	}
	return job, nil
}

// Create stores a posting given in either the aggregator or the manual shape.
func (slf *JobService) Create(userID string, raw pkg.RawPosting) (models.SavedJob, error) {
	job := slf.jobMapper.PostingToSavedJob(userID, pkg.NormalizePosting(raw))
	if err := slf.jobRepo.Create(&job); err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error creating job")
		return models.SavedJob{}, err
	}

	slf.logger.Info().Str("userId", userID).Str("jobId", job.ID).Str("source", job.Source).Msg("Job saved")
	return job, nil
}

func (slf *JobService) Update(userID, id string, req request.UpdateJob) (models.SavedJob, error) {
	job, err := slf.jobRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.SavedJob{}, notFound(err, "job")
	}

	if patch := slf.jobMapper.PatchJob(req); len(patch) > 0 {
		if err := slf.jobRepo.Update(&models.SavedJob{Model: job.Model}, patch); err != nil {
			slf.logger.Error().Err(err).Str("jobId", id).Msg("Error updating job")
			return models.SavedJob{}, err
		}
	}

	job, err = slf.jobRepo.FindByIDForUser(userID, id)
	return job, notFound(err, "job")
}

func (slf *JobService) Delete(userID, id string) error {
	rows, err := slf.jobRepo.DeleteForUser(userID, id)
	if err := requireDeleted(rows, err, "job"); err != nil {
		return err
	}
	slf.logger.Info().Str("userId", userID).Str("jobId", id).Msg("Job deleted")
	return nil
}

// Search queries the aggregator and returns the postings in canonical form.
func (slf *JobService) Search(ctx context.Context, req request.SearchJobs) (response.JobSearch, error) {
	result, err := slf.search.Search(ctx, pkg.SearchParams{
		Query:           req.Query,
		Page:            req.Page,
		DatePosted:      req.DatePosted,
		RemoteOnly:      req.Remote,
		EmploymentType:  req.Type,
		JobRequirements: req.Experience,
		Radius:          req.Radius,
	})
	if err != nil {
		slf.logger.Error().Err(err).Str("query", req.Query).Msg("Job search failed")
		return response.JobSearch{}, err
	}

	postings := make([]pkg.Posting, len(result.Data))
	for i, raw := range result.Data {
		postings[i] = pkg.NormalizePosting(raw)
	}
	return response.JobSearch{Status: result.Status, Data: postings}, nil
}

// Parse extracts a structured posting from pasted text.
func (slf *JobService) Parse(ctx context.Context, text string) (response.ParsedJob, error) {
	prompt, err := pkg.JobParsingPrompt(text)
	if err != nil {
		return response.ParsedJob{}, err
	}

	completion, err := slf.llm.Complete(ctx, prompt.System, prompt.User, pkg.CompletionOptions{})
	if err != nil {
		slf.logger.Error().Err(err).Msg("Job parsing failed")
		return response.ParsedJob{}, err
	}
	return pkg.DecodeCompletion[response.ParsedJob](completion.Text)
}
