package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-arquivo/internal/session"
	"go-arquivo/internal/shared/contextutil"
	"go-arquivo/internal/shared/response"
)

// SessionAuth resolves the bearer token against the in-process session
// store and puts the acting identity on the context. Every mutating
// operation reads the actor from here for its audit-trail fields.
func SessionAuth(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			token = ""
		}

		if token == "" {
			if cookie, err := c.Cookie("session_token"); err == nil {
				token = cookie
			}
		}

		if token == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		sess, err := sessions.Authorize(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired session", nil)
			c.Abort()
			return
		}

		c.Set("user_id", sess.UserID)
		c.Set("actor", sess.Login)
		c.Set("role", sess.Role)
		c.Set("session_token", sess.Token)

		ctx := contextutil.WithActor(c.Request.Context(), sess.Login)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
