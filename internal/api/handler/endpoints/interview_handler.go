package endpoints

import (
	"net/http"

	"jobhunter"
	"jobhunter/internal/api/handler/middleware"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/api/service"
	"jobhunter/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type interviewHandler struct {
	interviewService *service.InterviewService
	config           jobhunter.AppConfig
	logger           zerolog.Logger
}

func newInterviewHandler() *interviewHandler {
	return &interviewHandler{
		interviewService: service.NewInterviewService(),
		config:           jobhunter.GetConfig(),
		logger:           jobhunter.Logger,
	}
}

func InterviewHandler(router gin.IRouter) {
	h := newInterviewHandler()

	routes := router.Group("/api/v1/interviews")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.POST("", h.create)
		routes.GET("/:id", h.getByID)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
	}
}

// getAll supports ?status=<status|all> and ?upcoming=true.
func (slf *interviewHandler) getAll(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	interviews, err := slf.interviewService.List(userID, c.Query("status"), c.Query("upcoming") == "true")
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get interviews")
		return
	}
	c.JSON(http.StatusOK, interviews)
}

func (slf *interviewHandler) getByID(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	interview, err := slf.interviewService.Get(userID, c.Param("id"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get interview")
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (slf *interviewHandler) create(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateInterview
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse create interview request")
		return
	}

	interview, err := slf.interviewService.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to create interview")
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (slf *interviewHandler) update(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.UpdateInterview
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse update interview request")
		return
	}

	interview, err := slf.interviewService.Update(userID, c.Param("id"), req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to update interview")
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (slf *interviewHandler) delete(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	if err := slf.interviewService.Delete(userID, c.Param("id")); err != nil {
		writeError(c, slf.logger, err, "Failed to delete interview")
		return
	}
	c.JSON(http.StatusOK, response.Success{Success: true})
}
