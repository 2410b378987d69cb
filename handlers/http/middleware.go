package httpHandler

import (
	"strings"

	"pitchcraft-server/apperr"
	"pitchcraft-server/entities"
	"pitchcraft-server/usecases"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// RequireAuth resolves the bearer token to an active account and stores it
// on the request context for downstream handlers.
func RequireAuth(authUseCase *usecases.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(c, apperr.Auth("Not authorized, no token provided"))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		user, err := authUseCase.Authenticate(token)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUser returns the account RequireAuth stored on the context.
func currentUser(c *gin.Context) *entities.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*entities.User)
	if !ok {
		return nil
	}
	return user
}
