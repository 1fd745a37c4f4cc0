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

type outreachHandler struct {
	outreachService *service.OutreachService
	config          jobhunter.AppConfig
	logger          zerolog.Logger
}

func newOutreachHandler() *outreachHandler {
	return &outreachHandler{
		outreachService: service.NewOutreachService(),
		config:          jobhunter.GetConfig(),
		logger:          jobhunter.Logger,
	}
}

func OutreachHandler(router gin.IRouter) {
	h := newOutreachHandler()

	routes := router.Group("/api/v1/outreach")
	routes.Use(middleware.AuthMiddleware(h.config))
	{
		routes.GET("", h.getAll)
		routes.POST("", h.create)
		routes.POST("/generate", h.generate)
		routes.POST("/send", h.send)
		routes.GET("/:id", h.getByID)
		routes.PUT("/:id", h.update)
		routes.DELETE("/:id", h.delete)
	}
}

func (slf *outreachHandler) getAll(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	emails, err := slf.outreachService.List(userID)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get emails")
		return
	}
	c.JSON(http.StatusOK, emails)
}

func (slf *outreachHandler) getByID(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	email, err := slf.outreachService.Get(userID, c.Param("id"))
	if err != nil {
		writeError(c, slf.logger, err, "Failed to get email")
		return
	}
	c.JSON(http.StatusOK, email)
}

func (slf *outreachHandler) create(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateEmail
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse create email request")
		return
	}

	email, err := slf.outreachService.Create(userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to create email")
		return
	}
	c.JSON(http.StatusCreated, email)
}

func (slf *outreachHandler) update(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.UpdateEmail
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse update email request")
		return
	}

	email, err := slf.outreachService.Update(userID, c.Param("id"), req)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to update email")
		return
	}
	c.JSON(http.StatusOK, email)
}

func (slf *outreachHandler) delete(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	if err := slf.outreachService.Delete(userID, c.Param("id")); err != nil {
		writeError(c, slf.logger, err, "Failed to delete email")
		return
	}
	c.JSON(http.StatusOK, response.Success{Success: true})
}

func (slf *outreachHandler) generate(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.GenerateEmail
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse generate email request")
		return
	}

	generated, err := slf.outreachService.Generate(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, slf.logger, err, "Outreach generation failed")
		return
	}
	c.JSON(http.StatusOK, generated)
}

func (slf *outreachHandler) send(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	var req request.SendEmail
	if err := pkg.ParseAndValidate(c, &req); err != nil {
		writeError(c, slf.logger, err, "Failed to parse send request")
		return
	}

	result, err := slf.outreachService.Send(c.Request.Context(), userID, req.EmailID)
	if err != nil {
		writeError(c, slf.logger, err, "Failed to send email")
		return
	}
	c.JSON(http.StatusOK, result)
}
