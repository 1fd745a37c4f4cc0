package models

import "time"

const (
	SourceManual  = "manual"
	SourceJSearch = "jsearch"
)

// SavedJob is a job posting kept by a user, either from the search
// aggregator or entered by hand.
type SavedJob struct {
	Model
	UserID       string     `gorm:"size:36;index;not null" json:"userId"`
	ExternalID   *string    `gorm:"size:255" json:"externalId"`
	Source       string     `gorm:"size:50;not null;default:manual" json:"source"`
	Title        string     `gorm:"not null" json:"title"`
	Company      string     `gorm:"not null" json:"company"`
	Location     *string    `json:"location"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	Requirements *string    `gorm:"type:text" json:"requirements"`
	Salary       *string    `json:"salary"`
	JobType      *string    `gorm:"size:50" json:"jobType"`
	ApplyURL     *string    `gorm:"type:text" json:"applyUrl"`
	CompanyLogo  *string    `gorm:"type:text" json:"companyLogo"`
	PostedAt     *time.Time `json:"postedAt"`

	Application     *Application     `gorm:"foreignKey:JobID" json:"application,omitempty"`
	TailoredResumes []TailoredResume `gorm:"foreignKey:JobID" json:"tailoredResumes,omitempty"`
	Emails          []Email          `gorm:"foreignKey:JobID" json:"emails,omitempty"`
}
