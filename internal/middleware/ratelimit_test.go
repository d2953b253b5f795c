package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func limiterRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", limiter.Handler(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterRejectsPastBurst(t *testing.T) {
	// 10 per minute gives a burst of 1: the second immediate attempt fails
	r := limiterRouter(NewRateLimiter(10))

	require.Equal(t, http.StatusOK, hit(r))
	require.Equal(t, http.StatusTooManyRequests, hit(r))
}

func TestRateLimiterDisabled(t *testing.T) {
	r := limiterRouter(NewRateLimiter(0))

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, hit(r))
	}
}
