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

type contactHandler struct {
	contactService *service.ContactService
	config         jobhunter.AppConfig
	logger         zerolog.Logger
}

func newContactHandler() *contactHandler {
	return &contactHandler{
		contactService: service.NewContactService(),
		config:         jobhunter.GetConfig(),
		logger:         jobhunter.Logger,
	}
}

func ContactHandler(router gin.IRouter) {
	h := newContactHandler()

	routes := router.Group("/api/v1/contacts")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.POST("", h.create)
		routes.GET("/:id", h.getByID)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
		routes.GET("/:id/interactions", h.getInteractions)
		routes.POST("/:id/interactions", h.addInteraction)
	}
}

func (slf *contactHandler) getAll(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	contacts, err := slf.contactService.List(userID, c.Query("type"), c.Query("search"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get contacts")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (slf *contactHandler) getByID(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	contact, err := slf.contactService.Get(userID, c.Param("id"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (slf *contactHandler) create(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateContact
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse create contact request")
		return
	}

	contact, err := slf.contactService.Create(userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to create contact")
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (slf *contactHandler) update(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.UpdateContact
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse update contact request")
		return
	}

	contact, err := slf.contactService.Update(userID, c.Param("id"), req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to update contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (slf *contactHandler) delete(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	if err := slf.contactService.Delete(userID, c.Param("id")); err != nil {
		writeError(c, slf.logger, err, "Failed to delete contact")
		return
	}
	c.JSON(http.StatusOK, response.Success{Success: true})
}

func (slf *contactHandler) getInteractions(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	interactions, err := slf.contactService.ListInteractions(userID, c.Param("id"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get interactions")
		return
	}
	c.JSON(http.StatusOK, interactions)
}

func (slf *contactHandler) addInteraction(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateInteraction
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse interaction request")
		return
	}

	interaction, err := slf.contactService.AddInteraction(userID, c.Param("id"), req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to add interaction")
		return
	}
	c.JSON(http.StatusCreated, interaction)
}
