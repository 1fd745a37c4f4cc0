package mapper

import (
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/models"
	"jobhunter/pkg"
)

type JobMapper interface {
	PostingToSavedJob(userID string, p pkg.Posting) models.SavedJob

	// patch
	PatchJob(req request.UpdateJob) map[string]any
}

type JobMapperImpl struct{}

func (m JobMapperImpl) PostingToSavedJob(userID string, p pkg.Posting) models.SavedJob {
	return models.SavedJob{
		UserID:       userID,
		ExternalID:   p.ExternalID,
		Source:       p.Source,
		Title:        p.Title,
		Company:      p.Company,
		Location:     p.Location,
		Description:  p.Description,
		Requirements: p.Requirements,
		Salary:       p.Salary,
		JobType:      p.JobType,
		ApplyURL:     p.ApplyURL,
		CompanyLogo:  p.CompanyLogo,
		PostedAt:     p.PostedAt,
	}
}

func (m JobMapperImpl) PatchJob(req request.UpdateJob) map[string]any {
	patch := map[string]any{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Company != nil {
		patch["company"] = *req.Company
	}
	if req.Location != nil {
		patch["location"] = pkg.NilIfBlank(*req.Location)
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Requirements != nil {
		patch["requirements"] = pkg.NilIfBlank(*req.Requirements)
	}
	if req.Salary != nil {
		patch["salary"] = pkg.NilIfBlank(*req.Salary)
	}
	if req.JobType != nil {
		patch["job_type"] = pkg.NilIfBlank(*req.JobType)
	}
	if req.ApplyURL != nil {
		patch["apply_url"] = pkg.NilIfBlank(*req.ApplyURL)
	}
	if req.CompanyLogo != nil {
		patch["company_logo"] = pkg.NilIfBlank(*req.CompanyLogo)
	}
	return patch
}

func NewJobMapper() JobMapper {
	return &JobMapperImpl{}
}
