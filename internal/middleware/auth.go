package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wastewise_portal/internal/session"
)

const sessionKey = "session"

// RequireSession redirects signed-out visitors to the sign-in screen and
// stores the decoded session for downstream handlers.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessions.FromRequest(c)
		if !ok {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// RequireRole gates a route group to one actor role. The session's role is
// fixed at login; there is no in-session role switching.
func RequireRole(sessions *session.Manager, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessions.FromRequest(c)
		if !ok {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}
		if s.Role != requiredRole {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// SessionFrom fetches the session placed by RequireSession/RequireRole.
func SessionFrom(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return nil
}
