package models

import "time"

type EmailStatus string

const (
	EmailDraft  EmailStatus = "draft"
	EmailSent   EmailStatus = "sent"
	EmailFailed EmailStatus = "failed"
)

var OutreachTones = []string{"professional", "casual", "enthusiastic"}

// Email is an outreach message. Once sent it can no longer be edited or sent
// again; a failed send keeps the error and may be retried.
type Email struct {
	Model
	UserID         string      `gorm:"size:36;index;not null" json:"userId"`
	JobID          *string     `gorm:"size:36;index" json:"jobId"`
	RecipientEmail string      `gorm:"not null" json:"recipientEmail"`
	RecipientName  *string     `json:"recipientName"`
	Subject        string      `gorm:"not null" json:"subject"`
	Body           string      `gorm:"type:text;not null" json:"body"`
	Status         EmailStatus `gorm:"size:20;not null;default:draft" json:"status"`
	SentAt         *time.Time  `json:"sentAt"`
	MessageID      *string     `json:"messageId"`
	ErrorMessage   *string     `gorm:"type:text" json:"errorMessage"`

	Job *SavedJob `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
