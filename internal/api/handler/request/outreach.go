package request

type CreateEmail struct {
	JobID          *string `json:"jobId"`
	RecipientEmail string  `json:"recipientEmail" validate:"required,email"`
	RecipientName  *string `json:"recipientName"`
	Subject        string  `json:"subject" validate:"required"`
	Body           string  `json:"body" validate:"required"`
}

type UpdateEmail struct {
	Subject        *string `json:"subject" validate:"omitempty,min=1"`
	Body           *string `json:"body" validate:"omitempty,min=1"`
	RecipientEmail *string `json:"recipientEmail" validate:"omitempty,email"`
	RecipientName  *string `json:"recipientName"`
}

type GenerateEmail struct {
	JobID          string `json:"jobId" validate:"required"`
	ResumeID       string `json:"resumeId"`
	RecipientName  string `json:"recipientName"`
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
	Tone           string `json:"tone" validate:"omitempty,oneof=professional casual enthusiastic"`
}

type SendEmail struct {
	EmailID string `json:"emailId" validate:"required"`
}
