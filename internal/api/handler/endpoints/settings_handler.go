package endpoints

import (
	"net/http"

	"jobhunter"
	"jobhunter/internal/api/handler/middleware"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/service"
	"jobhunter/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type settingsHandler struct {
	smtpService *service.SmtpService
	config      jobhunter.AppConfig
	logger      zerolog.Logger
}

func newSettingsHandler() *settingsHandler {
	return &settingsHandler{
		smtpService: service.NewSmtpService(),
		config:      jobhunter.GetConfig(),
		logger:      jobhunter.Logger,
	}
}

func SettingsHandler(router gin.IRouter) {
	h := newSettingsHandler()

	routes := router.Group("/api/v1/settings")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("/smtp", h.getSmtp)
		routes.PUT("/smtp", h.saveSmtp)
		routes.POST("/smtp/test", h.testSmtp)
	}
}

// getSmtp answers null when the user has no settings yet.
func (slf *settingsHandler) getSmtp(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	settings, err := slf.smtpService.Get(userID)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get SMTP settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (slf *settingsHandler) saveSmtp(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.SmtpSettings
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse SMTP settings")
		return
	}

	settings, err := slf.smtpService.Save(userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to save SMTP settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (slf *settingsHandler) testSmtp(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.SmtpSettings
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse SMTP settings")
		return
	}

	result, err := slf.smtpService.Test(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to test SMTP settings")
		return
	}
	c.JSON(http.StatusOK, result)
}
