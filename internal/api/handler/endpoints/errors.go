package endpoints

import (
	"net/http"

	"jobhunter/internal/api/handler/response"
	"jobhunter/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var statusByKind = map[apperr.Kind]int{
	apperr.KindUnauthorized:      http.StatusUnauthorized,
	apperr.KindNotFound:          http.StatusNotFound,
	apperr.KindValidation:        http.StatusBadRequest,
	apperr.KindConflict:          http.StatusConflict,
	apperr.KindExternalService:   http.StatusBadGateway,
	apperr.KindMalformedResponse: http.StatusBadGateway,
}

// writeError answers with the status and code of err's kind. Internal errors
// are logged and replaced by a generic message.
func writeError(c *gin.Context, logger zerolog.Logger, err error, action string) {
	kind := apperr.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg(action)
		c.JSON(http.StatusInternalServerError, response.APIError{
			Code:    string(apperr.KindInternal),
			Message: "Internal server error",
		})
		return
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg(action)
	} else {
		logger.Debug().Err(err).Str("path", c.FullPath()).Msg(action)
	}
	c.JSON(status, response.APIError{Code: string(kind), Message: apperr.Message(err)})
}
