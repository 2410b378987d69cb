package httpHandler

import (
	"log"
	"net/http"

	"pitchcraft-server/apperr"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError maps the error's kind to an HTTP status exactly once, here.
func respondError(c *gin.Context, err error) {
	status := statusForKind(apperr.KindOf(err))
	message := err.Error()
	if status == http.StatusInternalServerError && apperr.KindOf(err) == apperr.KindUnknown {
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "Internal server error"
	}
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
