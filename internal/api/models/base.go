package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is embedded by every entity owned by a user. IDs are random UUIDs
// assigned on insert.
type Model struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updatedAt"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// All returns every model for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&SavedJob{},
		&Application{},
		&Interview{},
		&Contact{},
		&ContactInteraction{},
		&Resume{},
		&TailoredResume{},
		&CoverLetter{},
		&Email{},
		&SmtpConfig{},
	}
}
