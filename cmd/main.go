package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"jobhunter"
	"jobhunter/internal/api/handler/endpoints"
	"jobhunter/internal/api/handler/middleware"
	"jobhunter/internal/api/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
)

func main() {
	jobhunter.InitConfig(".env")
	gin.SetMode(gin.ReleaseMode)

	if jobhunter.GetConfig().Mode == "dev" {
		if err := jobhunter.DB.AutoMigrate(models.All()...); err != nil {
			jobhunter.Logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
		jobhunter.Logger.Info().Msg("Database migrated successfully")
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.New(gin.New(), graceful.WithAddr(jobhunter.GetConfig().ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(jobhunter.Logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	endpoints.Register(router)

	if jobhunter.Nats != nil {
		defer jobhunter.Nats.Drain()
	}

	jobhunter.Logger.Info().Msgf("Starting job hunter API on port %s", jobhunter.GetConfig().ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		jobhunter.Logger.Fatal().Err(err).Msg("API server stopped")
	}
}
