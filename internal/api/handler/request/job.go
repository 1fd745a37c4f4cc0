package request

// UpdateJob is a partial update; nil fields are left unchanged.
type UpdateJob struct {
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Company      *string `json:"company" validate:"omitempty,min=1"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Salary       *string `json:"salary"`
	JobType      *string `json:"jobType"`
	ApplyURL     *string `json:"applyUrl"`
	CompanyLogo  *string `json:"companyLogo"`
}

type ParseJob struct {
	Text string `json:"text" validate:"required"`
}

type SearchJobs struct {
	Query      string `form:"q" validate:"required"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	DatePosted string `form:"datePosted"`
	Remote     bool   `form:"remote"`
	Type       string `form:"type"`
	Experience string `form:"experience"`
	Radius     int    `form:"radius" validate:"omitempty,min=0"`
}
