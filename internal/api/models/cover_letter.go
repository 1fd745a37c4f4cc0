package models

var CoverLetterTones = []string{"professional", "enthusiastic", "creative"}

// CoverLetter versions start at 1 and increase per (UserID, JobID).
type CoverLetter struct {
	Model
	UserID  string `gorm:"size:36;not null;uniqueIndex:idx_cover_letter_version" json:"userId"`
	JobID   string `gorm:"size:36;not null;uniqueIndex:idx_cover_letter_version" json:"jobId"`
	Version int    `gorm:"not null;uniqueIndex:idx_cover_letter_version" json:"version"`
	Content string `gorm:"type:text;not null" json:"content"`
	Tone    string `gorm:"size:20;not null;default:professional" json:"tone"`

	Job *SavedJob `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
