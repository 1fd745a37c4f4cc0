package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string         `gorm:"primaryKey;size:36"`
	Email        string         `gorm:"uniqueIndex;size:255;not null"`
	Password     string         `gorm:"not null;column:password"`
	Name         string         `gorm:"not null;column:name"`
	Actif        bool           `gorm:"default:true;column:actif"`
	RefreshToken string         `gorm:"type:text;column:refresh_token"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;column:created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime;column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index;column:deleted_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
