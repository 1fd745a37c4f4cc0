package response

import "jobhunter/pkg"

type GeneratedCoverLetter struct {
	Content string    `json:"content"`
	Tone    string    `json:"tone"`
	JobID   string    `json:"jobId"`
	Usage   pkg.Usage `json:"usage"`
}

// GeneratedEmail is the model reply for an outreach draft plus the id of the
// stored draft.
type GeneratedEmail struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	PlainText string `json:"plainText"`
}

type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
}
