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

type applicationHandler struct {
	applicationService *service.ApplicationService
	config             jobhunter.AppConfig
	logger             zerolog.Logger
}

func newApplicationHandler() *applicationHandler {
	return &applicationHandler{
		applicationService: service.NewApplicationService(),
		config:             jobhunter.GetConfig(),
		logger:             jobhunter.Logger,
	}
}

func ApplicationHandler(router gin.IRouter) {
	h := newApplicationHandler()

	routes := router.Group("/api/v1/applications")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.POST("", h.create)
		routes.GET("/:id", h.getByID)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
	}
}

func (slf *applicationHandler) getAll(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	apps, err := slf.applicationService.List(userID)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (slf *applicationHandler) getByID(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	app, err := slf.applicationService.Get(userID, c.Param("id"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get application")
		return
	}
	c.JSON(http.StatusOK, app)
}

func (slf *applicationHandler) create(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateApplication
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse create application request")
		return
	}

	app, err := slf.applicationService.Create(userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to create application")
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (slf *applicationHandler) update(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.UpdateApplication
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse update application request")
		return
	}

	app, err := slf.applicationService.Update(userID, c.Param("id"), req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to update application")
		return
	}
	c.JSON(http.StatusOK, app)
}

func (slf *applicationHandler) delete(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	if err := slf.applicationService.Delete(userID, c.Param("id")); err != nil {
		writeError(c, slf.logger, err, "Failed to delete application")
		return
	}
	c.JSON(http.StatusOK, response.Success{Success: true})
}
