package realtime

import (
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const activitySubjects = "user.*.activity"

// NATSBridge relays activity events published by the API to the hub.
type NATSBridge struct {
	conn   *nats.Conn
	hub    *Hub
	sub    *nats.Subscription
	logger zerolog.Logger
}

func NewNATSBridge(conn *nats.Conn, hub *Hub, logger zerolog.Logger) *NATSBridge {
	return &NATSBridge{conn: conn, hub: hub, logger: logger}
}

func (b *NATSBridge) Subscribe() error {
	sub, err := b.conn.Subscribe(activitySubjects, b.handle)
	if err != nil {
		return fmt.Errorf("nats subscribe %q: %w", activitySubjects, err)
	}
	b.sub = sub
	b.logger.Info().Str("subject", activitySubjects).Msg("NATS bridge subscribed")
	return nil
}

// handle forwards the event body untouched; it is already the JSON the
// browser expects.
func (b *NATSBridge) handle(msg *nats.Msg) {
	userID, err := userIDFromSubject(msg.Subject)
	if err != nil {
		b.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("nats: bad subject")
		return
	}
	b.hub.Broadcast(userID, msg.Data)
}

func (b *NATSBridge) Close() {
	if err := b.conn.Drain(); err != nil {
		b.logger.Error().Err(err).Msg("nats drain")
	}
}

// userIDFromSubject extracts the user from "user.<id>.activity".
func userIDFromSubject(subject string) (string, error) {
	parts := strings.Split(subject, ".")
	if len(parts) != 3 || parts[0] != "user" || parts[2] != "activity" {
		return "", fmt.Errorf("expected user.<id>.activity, got %q", subject)
	}
	if parts[1] == "" {
		return "", fmt.Errorf("empty user id in %q", subject)
	}
	return parts[1], nil
}
