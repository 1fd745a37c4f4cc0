package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	RelationshipTypes = []string{"recruiter", "hiring_manager", "referral", "peer", "other"}
	InteractionTypes  = []string{"email", "call", "meeting", "linkedin_message", "coffee_chat"}
)

const DefaultRelationshipType = "other"

type Contact struct {
	Model
	UserID           string                      `gorm:"size:36;index;not null" json:"userId"`
	Name             string                      `gorm:"not null" json:"name"`
	Company          *string                     `json:"company"`
	Role             *string                     `json:"role"`
	Email            *string                     `json:"email"`
	Phone            *string                     `json:"phone"`
	LinkedInURL      *string                     `gorm:"column:linkedin_url" json:"linkedInUrl"`
	RelationshipType string                      `gorm:"size:30;not null;default:other" json:"relationshipType"`
	Notes            *string                     `gorm:"type:text" json:"notes"`
	Tags             datatypes.JSONSlice[string] `json:"tags"`

	Interactions []ContactInteraction `gorm:"foreignKey:ContactID" json:"interactions,omitempty"`
}

type ContactInteraction struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ContactID  string    `gorm:"size:36;index;not null" json:"contactId"`
	Type       string    `gorm:"size:30;not null" json:"type"`
	Date       time.Time `gorm:"not null" json:"date"`
	Notes      *string   `gorm:"type:text" json:"notes"`
	NextAction *string   `json:"nextAction"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (i *ContactInteraction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
