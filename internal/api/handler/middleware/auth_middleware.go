package middleware

import (
	"net/http"
	"strings"

	"jobhunter"
	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/apperr"
	"jobhunter/pkg"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(cfg jobhunter.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		// Bearer token format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := pkg.ValidateToken(parts[1], cfg.JWTConfig.Secret)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(pkg.UserIDKey, claims.UserID)
		c.Set("userEmail", claims.Email)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.APIError{
		Code:    string(apperr.KindUnauthorized),
		Message: message,
	})
}
