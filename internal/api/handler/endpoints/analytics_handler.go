package endpoints

import (
	"net/http"

	"jobhunter"
	"jobhunter/internal/analytics"
	"jobhunter/internal/api/handler/middleware"
	"jobhunter/internal/api/service"
	"jobhunter/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type analyticsHandler struct {
	analyticsService *service.AnalyticsService
	config           jobhunter.AppConfig
	logger           zerolog.Logger
}

func newAnalyticsHandler() *analyticsHandler {
	return &analyticsHandler{
		analyticsService: service.NewAnalyticsService(),
		config:           jobhunter.GetConfig(),
		logger:           jobhunter.Logger,
	}
}

func AnalyticsHandler(router gin.IRouter) {
	h := newAnalyticsHandler()

	routes := router.Group("/api/v1/analytics")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.report)
	}
}

func (slf *analyticsHandler) report(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	report, err := slf.analyticsService.Report(userID, analytics.ParseDays(c.Query("days")))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to compute analytics")
		return
	}
	c.JSON(http.StatusOK, report)
}
