package models

import "gorm.io/datatypes"

type Resume struct {
	Model
	UserID   string         `gorm:"size:36;index;not null" json:"userId"`
	Name     string         `gorm:"not null" json:"name"`
	FileName *string        `json:"fileName"`
	RawText  string         `gorm:"type:text;not null" json:"rawText"`
	Parsed   datatypes.JSON `json:"parsed"`

	TailoredResumes []TailoredResume `gorm:"foreignKey:ResumeID" json:"tailoredResumes,omitempty"`
}

// TailoredResume is the resume rewritten for one job. Written by upsert on
// (ResumeID, JobID).
type TailoredResume struct {
	Model
	ResumeID       string                      `gorm:"size:36;not null;uniqueIndex:idx_tailored_resume_resume_job" json:"resumeId"`
	JobID          string                      `gorm:"size:36;not null;uniqueIndex:idx_tailored_resume_resume_job" json:"jobId"`
	TailoredText   string                      `gorm:"type:text;not null" json:"tailoredText"`
	TailoredParsed datatypes.JSON              `json:"tailoredParsed"`
	MatchScore     *int                        `json:"matchScore"`
	Suggestions    datatypes.JSONSlice[string] `json:"suggestions"`

	Resume *Resume `gorm:"foreignKey:ResumeID" json:"resume,omitempty"`
}
