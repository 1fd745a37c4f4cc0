package pkg

import (
	"encoding/json"
	"fmt"
	"time"

	"jobhunter"
)

const (
	ActivityStatusChanged = "application.status_changed"
	ActivityAutoAdvanced  = "application.auto_advanced"
	ActivityEmailSent     = "email.sent"
	ActivityEmailFailed   = "email.failed"
)

// Activity is a user-facing event relayed to the realtime service.
type Activity struct {
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

// ActivitySubject is the NATS subject activity of userID is published on.
func ActivitySubject(userID string) string {
	return fmt.Sprintf("user.%s.activity", userID)
}

// PublishActivity sends an activity event for userID. Without a NATS
// connection it only logs at debug level; publish failures are logged and
// never returned to the caller.
func PublishActivity(userID, kind string, payload any) {
	if jobhunter.Nats == nil {
		jobhunter.Logger.Debug().Str("userId", userID).Str("type", kind).Msg("activity (no-op)")
		return
	}

	data, err := json.Marshal(Activity{Type: kind, At: time.Now().UTC(), Payload: payload})
	if err != nil {
		jobhunter.Logger.Error().Err(err).Str("type", kind).Msg("activity marshal error")
		return
	}
	if err := jobhunter.Nats.Publish(ActivitySubject(userID), data); err != nil {
		jobhunter.Logger.Error().Err(err).Str("userId", userID).Str("type", kind).Msg("activity publish error")
	}
}
