package realtime

import (
	"fmt"

	"jobhunter"
)

type Config struct {
	NatsURL   string
	JWTSecret string
	Port      string
}

// ConfigFrom picks the realtime settings out of the application config.
func ConfigFrom(cfg jobhunter.AppConfig) (Config, error) {
	c := Config{
		NatsURL:   cfg.NatsConfig.URL,
		JWTSecret: cfg.JWTConfig.Secret,
		Port:      cfg.RealtimePort,
	}
	if c.NatsURL == "" {
		return Config{}, fmt.Errorf("NATS_URL is required by the realtime service")
	}
	if c.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required by the realtime service")
	}
	return c, nil
}
