package endpoints

import (
	"io"
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

const maxResumeUploadBytes = 10 << 20

type resumeHandler struct {
	resumeService *service.ResumeService
	config        jobhunter.AppConfig
	logger        zerolog.Logger
}

func newResumeHandler() *resumeHandler {
	return &resumeHandler{
		resumeService: service.NewResumeService(),
		config:        jobhunter.GetConfig(),
		logger:        jobhunter.Logger,
	}
}

func ResumeHandler(router gin.IRouter) {
	h := newResumeHandler()

	routes := router.Group("/api/v1/resumes")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.POST("", h.create)
		routes.POST("/upload", h.upload)
		routes.POST("/analyze", h.analyze)
		routes.POST("/tailor", h.tailor)
		routes.GET("/:id", h.getByID)
		routes.DELETE("/:id", h.delete)
	}
}

func (slf *resumeHandler) getAll(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	resumes, err := slf.resumeService.List(userID)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get resumes")
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (slf *resumeHandler) getByID(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	resume, err := slf.resumeService.Get(userID, c.Param("id"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get resume")
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (slf *resumeHandler) create(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateResume
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse create resume request")
		return
	}

	resume, err := slf.resumeService.Create(userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to create resume")
		return
	}
	c.JSON(http.StatusCreated, resume)
}

// upload reads the multipart "file" field, with an optional "name" field.
func (slf *resumeHandler) upload(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		writeError(c, slf.logger, apperr.Validation("No file uploaded"), "Missing resume file")
		return
	}
	if header.Size > maxResumeUploadBytes {
		writeError(c, slf.logger, apperr.Validation("File is too large (max 10 MB)"), "Resume file too large")
		return
	}

	file, err := header.Open()
	if err != nil {
		writeError(c, slf.logger, err, "Failed to open uploaded resume")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to read uploaded resume")
		return
	}

	resume, err := slf.resumeService.Upload(userID, c.PostForm("name"), header.Filename, data)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to upload resume")
		return
	}
	c.JSON(http.StatusCreated, resume)
}

func (slf *resumeHandler) delete(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	if err := slf.resumeService.Delete(userID, c.Param("id")); err != nil {
		writeError(c, slf.logger, err, "Failed to delete resume")
		return
	}
	c.JSON(http.StatusOK, response.Success{Success: true})
}

func (slf *resumeHandler) analyze(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.AnalyzeResume
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse analyze request")
		return
	}

	analysis, err := slf.resumeService.Analyze(c.Request.Context(), userID, req.ResumeID)
	if err != nil {
		writeError(c, slf.logger, err, "Resume analysis failed")
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (slf *resumeHandler) tailor(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.TailorResume
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse tailor request")
		return
	}

	tailored, err := slf.resumeService.Tailor(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Resume tailoring failed")
		return
	}
	c.JSON(http.StatusOK, tailored)
}
