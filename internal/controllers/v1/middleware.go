package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendwell/backend/internal/models"
)

const (
	contextUser         = "spendwell-user"
	contextSessionToken = "spendwell-session-token"
)

// Authenticate resolves the bearer credential of the request to a user
// before any handler runs. Requests without a valid credential are
// rejected and never reach the stores.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: errMissingCredentials.Error(),
			})
			return
		}

		user, err := models.UserForToken(token)
		if err != nil {
			s := http.StatusUnauthorized
			if !errors.Is(err, models.ErrNoValidSession) {
				s = status(err)
			}

			c.AbortWithStatusJSON(s, httpError{
				Error: err.Error(),
			})
			return
		}

		c.Set(contextUser, user)
		c.Set(contextSessionToken, token)
	}
}

// currentUser returns the user the request credential resolved to.
// It must only be called from handlers behind Authenticate.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}
