package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handyman-saas/handyman-platform/internal/session"
)

const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// AuthMiddleware guards the JSON API: a missing or invalid session aborts
// with 401 before the handler runs.
func AuthMiddleware(store session.Store, codec *session.CookieCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := resolveSession(c, store, codec)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
			return
		}

		c.Set(ContextUserID, data.UserID)
		c.Set(ContextUsername, data.Username)

		c.Next()
	}
}

// WebAuthMiddleware guards the HTML pages: unauthenticated browsers are sent
// to the login form instead of getting a JSON error.
func WebAuthMiddleware(store session.Store, codec *session.CookieCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := resolveSession(c, store, codec)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserID, data.UserID)
		c.Set(ContextUsername, data.Username)

		c.Next()
	}
}

func resolveSession(c *gin.Context, store session.Store, codec *session.CookieCodec) (*session.Data, bool) {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie == "" {
		return nil, false
	}

	sessionID, err := codec.Decode(cookie)
	if err != nil {
		return nil, false
	}

	data, err := store.Get(c.Request.Context(), sessionID)
	if err != nil || data == nil {
		return nil, false
	}

	return data, true
}
