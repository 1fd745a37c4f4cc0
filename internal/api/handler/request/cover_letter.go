package request

type CreateCoverLetter struct {
	JobID   string `json:"jobId" validate:"required"`
	Content string `json:"content" validate:"required"`
	Tone    string `json:"tone" validate:"omitempty,oneof=professional enthusiastic creative"`
}

type UpdateCoverLetter struct {
	Content *string `json:"content" validate:"omitempty,min=1"`
	Tone    *string `json:"tone" validate:"omitempty,oneof=professional enthusiastic creative"`
}

type GenerateCoverLetter struct {
	JobID    string `json:"jobId" validate:"required"`
	ResumeID string `json:"resumeId"`
	Tone     string `json:"tone" validate:"omitempty,oneof=professional enthusiastic creative"`
}
