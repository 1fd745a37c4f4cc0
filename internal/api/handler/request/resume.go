package request

type CreateResume struct {
	Name    string `json:"name" validate:"required"`
	RawText string `json:"rawText" validate:"required"`
}

type AnalyzeResume struct {
	ResumeID string `json:"resumeId" validate:"required"`
}

type TailorResume struct {
	ResumeID string `json:"resumeId" validate:"required"`
	JobID    string `json:"jobId" validate:"required"`
}
