package models

import (
	"time"

	"jobhunter/internal/pipeline"
)

// Application tracks one saved job through the status pipeline. There is at
// most one application per user and job.
type Application struct {
	Model
	UserID    string          `gorm:"size:36;not null;uniqueIndex:idx_application_user_job" json:"userId"`
	JobID     string          `gorm:"size:36;not null;uniqueIndex:idx_application_user_job" json:"jobId"`
	Status    pipeline.Status `gorm:"size:20;not null;default:saved;index" json:"status"`
	AppliedAt *time.Time      `json:"appliedAt"`
	NextStep  *string         `json:"nextStep"`
	Notes     *string         `gorm:"type:text" json:"notes"`

	Job        *SavedJob   `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Interviews []Interview `gorm:"foreignKey:ApplicationID" json:"interviews,omitempty"`
}
