package models

import (
	"time"

	"gorm.io/datatypes"
)

var (
	InterviewTypes    = []string{"phone", "video", "onsite", "technical", "behavioral", "panel"}
	InterviewStatuses = []string{"scheduled", "completed", "cancelled", "rescheduled"}
)

const (
	DefaultInterviewType = "video"
	InterviewScheduled   = "scheduled"
)

type Interview struct {
	Model
	ApplicationID string                      `gorm:"size:36;index;not null" json:"applicationId"`
	ScheduledAt   time.Time                   `gorm:"not null;index" json:"scheduledAt"`
	Duration      *int                        `json:"duration"`
	Type          string                      `gorm:"size:20;not null;default:video" json:"type"`
	Location      *string                     `json:"location"`
	Interviewers  datatypes.JSONSlice[string] `json:"interviewers"`
	Status        string                      `gorm:"size:20;not null;default:scheduled" json:"status"`
	PrepNotes     *string                     `gorm:"type:text" json:"prepNotes"`
	PostNotes     *string                     `gorm:"type:text" json:"postNotes"`

	Application *Application `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
}
