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

type authHandler struct {
	userService *service.UserService
	logger      zerolog.Logger
	config      jobhunter.AppConfig
}

func newAuthHandler() *authHandler {
	return &authHandler{
		userService: service.NewUserService(),
		logger:      jobhunter.Logger,
		config:      jobhunter.GetConfig(),
	}
}

func AuthHandler(router gin.IRouter) {
	h := newAuthHandler()

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refreshToken)
	}

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(h.config))
	{
		protected.GET("/me", h.getMe)
	}
}

func (slf *authHandler) register(c *gin.Context) {
	var registerDTO request.RegisterDTO
	if err := pkg.ParseAndValidate(c, &registerDTO); err != nil {
		writeError(c, slf.logger, err, "Error parsing and validating register DTO")
		return
	}

	authResponse, err := slf.userService.Register(registerDTO)
	if err != nil {
		writeError(c, slf.logger, err, "Error registering user")
		return
	}

	c.JSON(http.StatusCreated, authResponse)
}

func (slf *authHandler) login(c *gin.Context) {
	var loginDTO request.LoginDTO
	if err := pkg.ParseAndValidate(c, &loginDTO); err != nil {
		writeError(c, slf.logger, err, "Error parsing and validating login DTO")
		return
	}

	authResponse, err := slf.userService.Login(loginDTO)
	if err != nil {
		writeError(c, slf.logger, err, "Error logging in user")
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

func (slf *authHandler) refreshToken(c *gin.Context) {
	var refreshDTO request.RefreshTokenDTO
	if err := pkg.ParseAndValidate(c, &refreshDTO); err != nil {
		writeError(c, slf.logger, err, "Error parsing and validating refresh token DTO")
		return
	}

	authResponse, err := slf.userService.RefreshToken(refreshDTO.RefreshToken)
	if err != nil {
		writeError(c, slf.logger, err, "Error refreshing token")
		return
	}

	c.JSON(http.StatusOK, authResponse)
}

func (slf *authHandler) getMe(c *gin.Context) {
	userID, ok := pkg.GetUserID(c)
	if !ok {
		return
	}

	user, err := slf.userService.GetByID(userID)
	if err != nil {
		writeError(c, slf.logger, err, "Error getting user")
		return
	}

	c.JSON(http.StatusOK, user)
}
