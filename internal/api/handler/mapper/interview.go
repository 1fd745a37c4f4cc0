package mapper

import (
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/pkg"

	"gorm.io/datatypes"
)

type InterviewMapper interface {
	CreateInterview(req request.CreateInterview) models.Interview

	// patch
	PatchInterview(req request.UpdateInterview) map[string]any
}

type InterviewMapperImpl struct{}

func (m InterviewMapperImpl) CreateInterview(req request.CreateInterview) models.Interview {
	interview := models.Interview{
		ApplicationID: req.ApplicationID,
		ScheduledAt:   req.ScheduledAt.UTC(),
		Duration:      req.Duration,
		Type:          req.Type,
		Location:      nilIfBlankPtr(req.Location),
		Status:        models.InterviewScheduled,
		PrepNotes:     nilIfBlankPtr(req.PrepNotes),
	}
	if interview.Type == "" {
		interview.Type = models.DefaultInterviewType
	}
	if len(req.Interviewers) > 0 {
		interview.Interviewers = datatypes.JSONSlice[string](req.Interviewers)
	}
	return interview
}

func (m InterviewMapperImpl) PatchInterview(req request.UpdateInterview) map[string]any {
	patch := map[string]any{}
	if req.ScheduledAt != nil {
		patch["scheduled_at"] = req.ScheduledAt.UTC()
	}
	if req.Duration != nil {
		patch["duration"] = *req.Duration
	}
	if req.Type != nil {
		patch["type"] = *req.Type
	}
	if req.Location != nil {
		patch["location"] = pkg.NilIfBlank(*req.Location)
	}
	if req.Interviewers != nil {
		patch["interviewers"] = datatypes.JSONSlice[string](*req.Interviewers)
	}
	if req.Status != nil {
		patch["status"] = *req.Status
	}
	if req.PrepNotes != nil {
		patch["prep_notes"] = pkg.NilIfBlank(*req.PrepNotes)
	}
	if req.PostNotes != nil {
		patch["post_notes"] = pkg.NilIfBlank(*req.PostNotes)
	}
	return patch
}

func NewInterviewMapper() InterviewMapper {
	return &InterviewMapperImpl{}
}

func nilIfBlankPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return pkg.NilIfBlank(*s)
}
