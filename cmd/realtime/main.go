package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"jobhunter"
	"jobhunter/internal/realtime"
)

func main() {
	jobhunter.InitConfig(".env")
	logger := jobhunter.Logger

	cfg, err := realtime.ConfigFrom(jobhunter.GetConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid realtime configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := realtime.NewHub(logger)
	go hub.Run(ctx)

	bridge := realtime.NewNATSBridge(jobhunter.Nats, hub, logger)
	if err := bridge.Subscribe(); err != nil {
		logger.Fatal().Err(err).Msg("NATS subscribe failed")
	}
	defer bridge.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		realtime.ServeWS(hub, cfg.JWTSecret, w, r)
	})
	server := &http.Server{Addr: cfg.Port, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info().Msgf("Realtime service listening on %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Realtime server stopped")
	}
}
