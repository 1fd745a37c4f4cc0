package request

import "time"

type CreateInterview struct {
	ApplicationID string    `json:"applicationId" validate:"required"`
	ScheduledAt   time.Time `json:"scheduledAt" validate:"required"`
	Duration      *int      `json:"duration" validate:"omitempty,min=1"`
	Type          string    `json:"type" validate:"omitempty,oneof=phone video onsite technical behavioral panel"`
	Location      *string   `json:"location"`
	Interviewers  []string  `json:"interviewers"`
	PrepNotes     *string   `json:"prepNotes"`
}

type UpdateInterview struct {
	ScheduledAt  *time.Time `json:"scheduledAt"`
	Duration     *int       `json:"duration" validate:"omitempty,min=1"`
	Type         *string    `json:"type" validate:"omitempty,oneof=phone video onsite technical behavioral panel"`
	Location     *string    `json:"location"`
	Interviewers *[]string  `json:"interviewers"`
	Status       *string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	PrepNotes    *string    `json:"prepNotes"`
	PostNotes    *string    `json:"postNotes"`
}
