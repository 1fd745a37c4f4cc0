package endpoints

import (
	"net/http"

	"jobhunter"
	"jobhunter/internal/api/handler/middleware"
	"jobhunter/internal/api/handler/request"
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/api/service"
	"jobhunter/internal/apperr"
	"jobhunter/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type jobHandler struct {
	jobService *service.JobService
	config     jobhunter.AppConfig
	logger     zerolog.Logger
}

func newJobHandler() *jobHandler {
	return &jobHandler{
		jobService: service.NewJobService(),
		config:     jobhunter.GetConfig(),
		logger:     jobhunter.Logger,
	}
}

func JobHandler(router gin.IRouter) {
	h := newJobHandler()

	routes := router.Group("/api/v1/jobs")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.POST("", h.create)
		routes.GET("/search", h.search)
		routes.POST("/parse", h.parse)
		routes.GET("/:id", h.getByID)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
	}
}

func (slf *jobHandler) getAll(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	jobs, err := slf.jobService.List(userID)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (slf *jobHandler) getByID(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	job, err := slf.jobService.Get(userID, c.Param("id"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// create accepts a posting in the aggregator shape or the manual shape.
func (slf *jobHandler) create(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var raw pkg.RawPosting
	if err := c.ShouldBindJSON(&raw); err != nil {
		writeError(c, slf.logger, apperr.Validation("invalid request body: %v", err), "Failed to parse job")
		return
	}

	job, err := slf.jobService.Create(userID, raw)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (slf *jobHandler) update(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.UpdateJob
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse update job request")
		return
	}

	job, err := slf.jobService.Update(userID, c.Param("id"), req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to update job")
		return
	}
	c.JSON(http.StatusOK, job)
}

func (slf *jobHandler) delete(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	if err := slf.jobService.Delete(userID, c.Param("id")); err != nil {
		writeError(c, slf.logger, err, "Failed to delete job")
		return
	}
	c.JSON(http.StatusOK, response.Success{Success: true})
}

func (slf *jobHandler) search(c *gin.Context) {
	if _, ok := pkg.GetUserID(c); !ok {
		return
	}

	var req request.SearchJobs
	if err := pkg.ParseQueryAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse search request")
		return
	}

	result, err := slf.jobService.Search(c.Request.Context(), req)
	if err != nil {
		writeError(c, slf.logger, err, "Job search failed")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (slf *jobHandler) parse(c *gin.Context) {
	if _, ok := pkg.GetUserID(c); !ok {
		return
	}

	var req request.ParseJob
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse job text request")
		return
	}

	parsed, err := slf.jobService.Parse(c.Request.Context(), req.Text)
	if err != nil {
		writeError(c, slf.logger, err, "Job parsing failed")
		return
	}
	c.JSON(http.StatusOK, parsed)
}
