package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register mounts every route of the API on router.
func Register(router gin.IRouter) {
	router.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	AuthHandler(router)
	JobHandler(router)
	ApplicationHandler(router)
	InterviewHandler(router)
	ContactHandler(router)
	ResumeHandler(router)
	CoverLetterHandler(router)
	OutreachHandler(router)
	SettingsHandler(router)
	AnalyticsHandler(router)
}
