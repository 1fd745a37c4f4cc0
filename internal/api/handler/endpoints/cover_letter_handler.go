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

type coverLetterHandler struct {
	coverLetterService *service.CoverLetterService
	config             jobhunter.AppConfig
	logger             zerolog.Logger
}

func newCoverLetterHandler() *coverLetterHandler {
	return &coverLetterHandler{
		coverLetterService: service.NewCoverLetterService(),
		config:             jobhunter.GetConfig(),
		logger:             jobhunter.Logger,
	}
}

func CoverLetterHandler(router gin.IRouter) {
	h := newCoverLetterHandler()

	routes := router.Group("/api/v1/cover-letters")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.POST("", h.save)
		routes.POST("/generate", h.generate)
		routes.GET("/:id", h.getByID)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
	}
}

func (slf *coverLetterHandler) getAll(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	letters, err := slf.coverLetterService.List(userID, c.Query("jobId"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get cover letters")
		return
	}
	c.JSON(http.StatusOK, letters)
}

func (slf *coverLetterHandler) getByID(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	letter, err := slf.coverLetterService.Get(userID, c.Param("id"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get cover letter")
		return
	}
	c.JSON(http.StatusOK, letter)
}

func (slf *coverLetterHandler) save(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateCoverLetter
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse cover letter request")
		return
	}

	letter, err := slf.coverLetterService.Save(userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to save cover letter")
		return
	}
	c.JSON(http.StatusCreated, letter)
}

func (slf *coverLetterHandler) update(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.UpdateCoverLetter
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse update cover letter request")
		return
	}

	letter, err := slf.coverLetterService.Update(userID, c.Param("id"), req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to update cover letter")
		return
	}
	c.JSON(http.StatusOK, letter)
}

func (slf *coverLetterHandler) delete(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	if err := slf.coverLetterService.Delete(userID, c.Param("id")); err != nil {
		writeError(c, slf.logger, err, "Failed to delete cover letter")
		return
	}
	c.JSON(http.StatusOK, response.Success{Success: true})
}

func (slf *coverLetterHandler) generate(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.GenerateCoverLetter
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse generate request")
		return
	}

	generated, err := slf.coverLetterService.Generate(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Cover letter generation failed")
		return
	}
	c.JSON(http.StatusOK, generated)
}
