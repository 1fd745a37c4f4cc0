package request

type CreateApplication struct {
	JobID  string  `json:"jobId" validate:"required"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type UpdateApplication struct {
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
	NextStep *string `json:"nextStep"`
}
