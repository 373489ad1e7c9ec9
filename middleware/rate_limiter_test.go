package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddlewarePerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	status := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 200; i++ {
		require.Equal(t, http.StatusOK, status("10.0.0.1:1234"))
	}
	assert.Equal(t, http.StatusTooManyRequests, status("10.0.0.1:1234"))

	// A different client keeps its own budget.
	assert.Equal(t, http.StatusOK, status("10.0.0.2:1234"))
}
