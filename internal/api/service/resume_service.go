package service

import (
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"strings"

	"jobhunter"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/internal/api/repo"
	"jobhunter/internal/apperr"
	"jobhunter/pkg"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
)

const (
	defaultResumeName = "My Resume"
	tailorMaxTokens   = 4096
)

type ResumeService struct {
	resumeRepo *repo.ResumeRepository
	jobRepo    *repo.SavedJobRepository
	llm        pkg.Completer
	extractPDF func([]byte) (string, error)
	logger     zerolog.Logger
}

func NewResumeService() *ResumeService {
	return &ResumeService{
		resumeRepo: repo.NewResumeRepository(),
		jobRepo:    repo.NewSavedJobRepository(),
		llm:        pkg.DefaultCompleter(),
		extractPDF: pkg.ExtractPDFText,
		logger:     jobhunter.Logger,
	}
}

// tailorReply holds the fields of the tailoring reply that are stored in
// columns. The full reply is kept as JSON as well.
type tailorReply struct {
	TailoredResume string   `json:"tailoredResume"`
	MatchScore     *float64 `json:"matchScore"`
	Suggestions    []string `json:"suggestions"`
}

func (slf *ResumeService) List(userID string) ([]models.Resume, error) {
	resumes, err := slf.resumeRepo.FindAllByUser(userID)
	if err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error listing resumes")
		return nil, err
	}
	return resumes, nil
}

func (slf *ResumeService) Get(userID, id string) (models.Resume, error) {
	resume, err := slf.resumeRepo.FindByIDForUser(userID, id)
	if err != nil {
		return models.Resume{}, notFound(err, "resume")
	}
	return resume, nil
}

func (slf *ResumeService) Create(userID string, req request.CreateResume) (models.Resume, error) {
	if strings.TrimSpace(req.RawText) == "" {
		return models.Resume{}, apperr.Validation("Name and resume text are required")
	}
	resume := models.Resume{UserID: userID, Name: req.Name, RawText: req.RawText}
	if err := slf.resumeRepo.Create(&resume); err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error creating resume")
		return models.Resume{}, err
	}
	return resume, nil
}

// Upload stores a resume from a file. Text and markdown files are read as
// is, PDF files go through text extraction.
func (slf *ResumeService) Upload(userID, name, fileName string, data []byte) (models.Resume, error) {
	if strings.TrimSpace(name) == "" {
		name = defaultResumeName
	}

	var rawText string
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".md":
		rawText = string(data)
	case ".pdf":
		text, err := slf.extractPDF(data)
		if err != nil {
			slf.logger.Warn().Err(err).Str("fileName", fileName).Msg("PDF parse error")
			return models.Resume{}, apperr.Validation("Failed to parse PDF file")
		}
		rawText = text
	default:
		return models.Resume{}, apperr.Validation("Supported formats: .txt, .md, .pdf")
	}

	if strings.TrimSpace(rawText) == "" {
		return models.Resume{}, apperr.Validation("Could not extract text from file")
	}

	resume := models.Resume{
		UserID:   userID,
		Name:     name,
		FileName: pkg.ToPtr(fileName),
		RawText:  rawText,
	}
	if err := slf.resumeRepo.Create(&resume); err != nil {
		slf.logger.Error().Err(err).Str("userId", userID).Msg("Error creating resume")
		return models.Resume{}, err
	}

	slf.logger.Info().Str("userId", userID).Str("resumeId", resume.ID).Int("chars", len(rawText)).Msg("Resume uploaded")
	return resume, nil
}

func (slf *ResumeService) Delete(userID, id string) error {
	rows, err := slf.resumeRepo.DeleteForUser(userID, id)
	return requireDeleted(rows, err, "resume")
}

// Analyze asks the model for a structured review of the resume and caches
// the reply on the resume.
func (slf *ResumeService) Analyze(ctx context.Context, userID, resumeID string) (map[string]any, error) {
	resume, err := slf.resumeRepo.FindByIDForUser(userID, resumeID)
	if err != nil {
		return nil, notFound(err, "resume")
	}

	prompt, err := pkg.ResumeAnalysisPrompt(resume.RawText)
	if err != nil {
		return nil, err
	}
	completion, err := slf.llm.Complete(ctx, prompt.System, prompt.User, pkg.CompletionOptions{})
	if err != nil {
		slf.logger.Error().Err(err).Str("resumeId", resumeID).Msg("Resume analysis failed")
		return nil, err
	}

	analysis, err := pkg.DecodeCompletion[map[string]any](completion.Text)
	if err != nil {
		return nil, err
	}

	if err := slf.resumeRepo.Update(&models.Resume{Model: resume.Model}, map[string]any{
		"parsed": datatypes.JSON(completion.Text),
	}); err != nil {
		slf.logger.Error().Err(err).Str("resumeId", resumeID).Msg("Error storing resume analysis")
		return nil, err
	}
	return analysis, nil
}

// Tailor rewrites the resume for a job. Tailoring the same pair again
// replaces the previous result.
func (slf *ResumeService) Tailor(ctx context.Context, userID string, req request.TailorResume) (map[string]any, error) {
	resume, err := slf.resumeRepo.FindByIDForUser(userID, req.ResumeID)
	if err != nil {
		return nil, notFound(err, "resume")
	}
	job, err := slf.jobRepo.FindByIDForUser(userID, req.JobID)
	if err != nil {
		return nil, notFound(err, "job")
	}

	prompt, err := pkg.ResumeTailoringPrompt(pkg.ResumeTailoringInput{
		ResumeText:     resume.RawText,
		JobTitle:       job.Title,
		Company:        job.Company,
		JobDescription: job.Description,
	})
	if err != nil {
		return nil, err
	}
	completion, err := slf.llm.Complete(ctx, prompt.System, prompt.User, pkg.CompletionOptions{MaxTokens: tailorMaxTokens})
	if err != nil {
		slf.logger.Error().Err(err).Str("resumeId", resume.ID).Str("jobId", job.ID).Msg("Resume tailoring failed")
		return nil, err
	}

	result, err := pkg.DecodeCompletion[map[string]any](completion.Text)
	if err != nil {
		return nil, err
	}
	reply, err := pkg.DecodeCompletion[tailorReply](completion.Text)
	if err != nil {
		return nil, err
	}

	tailored := models.TailoredResume{
		ResumeID:       resume.ID,
		JobID:          job.ID,
		TailoredText:   reply.TailoredResume,
		TailoredParsed: datatypes.JSON(completion.Text),
		Suggestions:    datatypes.JSONSlice[string](reply.Suggestions),
	}
	if reply.MatchScore != nil {
		tailored.MatchScore = pkg.ToPtr(int(math.Round(*reply.MatchScore)))
	}

	stored, err := slf.resumeRepo.UpsertTailored(&tailored)
	if err != nil {
		slf.logger.Error().Err(err).Str("resumeId", resume.ID).Str("jobId", job.ID).Msg("Error storing tailored resume")
		return nil, err
	}

	result["id"] = stored.ID
	return result, nil
}

// candidateSummary picks the short background used in outreach prompts: the
// analysis summary when the resume was analyzed, else the start of its text.
func candidateSummary(resume models.Resume) string {
	if len(resume.Parsed) > 0 {
		var parsed struct {
			Summary string `json:"summary"`
		}
		if err := json.Unmarshal(resume.Parsed, &parsed); err == nil && parsed.Summary != "" {
			return parsed.Summary
		}
	}
	return truncateRunes(resume.RawText, 500)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
