package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"jobhunter/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParseAndValidate binds the JSON body into dto and runs its validate tags.
// Failures are reported as validation errors.
func ParseAndValidate(c *gin.Context, dto interface{}) error {
	if err := c.ShouldBindJSON(dto); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}
	return Validate(dto)
}

// ParseQueryAndValidate binds query parameters into dto and validates it.
func ParseQueryAndValidate(c *gin.Context, dto interface{}) error {
	if err := c.ShouldBindQuery(dto); err != nil {
		return apperr.Validation("invalid query parameters: %v", err)
	}
	return Validate(dto)
}

// UserIDKey is the context key the auth middleware stores the user id under.
const UserIDKey = "userID"

// GetUserID returns the authenticated user. When there is none it answers
// 401 and returns false.
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"code":    apperr.KindUnauthorized,
			"message": "User not authenticated",
		})
		return "", false
	}
	return userID, true
}

func Validate(dto interface{}) error {
	if err := validate.Struct(dto); err != nil {
		return apperr.Validation("%s", describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
