package request

import "time"

type CreateContact struct {
	Name             string   `json:"name" validate:"required"`
	Company          *string  `json:"company"`
	Role             *string  `json:"role"`
	Email            *string  `json:"email" validate:"omitempty,email"`
	Phone            *string  `json:"phone"`
	LinkedInURL      *string  `json:"linkedInUrl"`
	RelationshipType string   `json:"relationshipType" validate:"omitempty,oneof=recruiter hiring_manager referral peer other"`
	Notes            *string  `json:"notes"`
	Tags             []string `json:"tags"`
}

type UpdateContact struct {
	Name             *string   `json:"name" validate:"omitempty,min=1"`
	Company          *string   `json:"company"`
	Role             *string   `json:"role"`
	Email            *string   `json:"email" validate:"omitempty,email"`
	Phone            *string   `json:"phone"`
	LinkedInURL      *string   `json:"linkedInUrl"`
	RelationshipType *string   `json:"relationshipType" validate:"omitempty,oneof=recruiter hiring_manager referral peer other"`
	Notes            *string   `json:"notes"`
	Tags             *[]string `json:"tags"`
}

type CreateInteraction struct {
	Type       string    `json:"type" validate:"required,oneof=email call meeting linkedin_message coffee_chat"`
	Date       time.Time `json:"date" validate:"required"`
	Notes      *string   `json:"notes"`
	NextAction *string   `json:"nextAction"`
}
