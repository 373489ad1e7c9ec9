package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// VisitorCookie carries the anonymous visitor id.
	VisitorCookie = "hantrip_visitor"
	visitorMaxAge = int(365 * 24 * time.Hour / time.Second)
)

// SessionValidator checks a session token against the sign-out denylist and
// resolves its subject.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (string, error)
}

// SessionMiddleware resolves the visitor identity for state-carrying routes.
// A validated session token binds the request to the signed-in user's id;
// without one (or with a revoked token), an anonymous visitor id cookie is
// issued so carts and UI state survive reloads either way. Both land in the
// context under "visitorID".
func SessionMiddleware(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" && sessions != nil {
			if id, err := sessions.ValidateSession(c.Request.Context(), token); err == nil && id != "" {
				c.Set("visitorID", id)
				c.Set("userID", id)
				c.Set("sessionToken", token)
				c.Next()
				return
			}
		}

		visitorID, err := c.Cookie(VisitorCookie)
		if err != nil || visitorID == "" {
			visitorID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(VisitorCookie, visitorID, visitorMaxAge, "/", "", false, true)
		}
		c.Set("visitorID", visitorID)
		c.Next()
	}
}

// RequireUserMiddleware rejects requests without a validated session token.
// Revoked tokens fail here the same as forged ones.
func RequireUserMiddleware(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || sessions == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		id, err := sessions.ValidateSession(c.Request.Context(), token)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		c.Set("visitorID", id)
		c.Set("userID", id)
		c.Set("sessionToken", token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("hantrip_session"); err == nil {
		return cookie
	}
	return ""
}
