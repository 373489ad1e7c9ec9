package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hantrip/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	revoked map[string]bool
}

func (s *stubSessions) ValidateSession(_ context.Context, token string) (string, error) {
	if s.revoked[token] {
		return "", errors.New("session has been signed out")
	}
	return utils.ExtractIDFromToken(token)
}

func sessionRouter(sessions SessionValidator) (*gin.Engine, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	identity := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"visitorID": c.GetString("visitorID"),
			"userID":    c.GetString("userID"),
		})
	}

	open := gin.New()
	open.Use(SessionMiddleware(sessions))
	open.GET("/", identity)

	protected := gin.New()
	protected.Use(RequireUserMiddleware(sessions))
	protected.GET("/", identity)
	return open, protected
}

func TestSessionRevocation(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "visitor@example.com", time.Hour)
	require.NoError(t, err)
	sessions := &stubSessions{revoked: map[string]bool{}}
	open, protected := sessionRouter(sessions)

	get := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token binds the user id", func(t *testing.T) {
		w := get(protected)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-1")
	})

	t.Run("revoked token is rejected even though the JWT is still valid", func(t *testing.T) {
		sessions.revoked[token] = true

		w := get(protected)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token degrades to an anonymous visitor", func(t *testing.T) {
		sessions.revoked[token] = true

		w := get(open)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "user-1")
		assert.Contains(t, w.Header().Get("Set-Cookie"), VisitorCookie)
	})
}
