package response

import "jobhunter/pkg"

type JobSearch struct {
	Status string        `json:"status"`
	Data   []pkg.Posting `json:"data"`
}

// ParsedJob is the structure extracted from a pasted job posting.
type ParsedJob struct {
	Title        *string  `json:"title"`
	Company      *string  `json:"company"`
	Location     *string  `json:"location"`
	JobType      *string  `json:"jobType"`
	Salary       *string  `json:"salary"`
	Description  *string  `json:"description"`
	Requirements []string `json:"requirements"`
	NiceToHave   []string `json:"niceToHave"`
	Benefits     []string `json:"benefits"`
}
