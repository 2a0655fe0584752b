package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limiter.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	router := rateLimitedRouter(NewRateLimiter(100))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	router := rateLimitedRouter(NewRateLimiter(1))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	router := rateLimitedRouter(NewRateLimiter(1))

	a := httptest.NewRequest(http.MethodGet, "/ping", nil)
	a.RemoteAddr = "10.0.0.3:1234"
	wa := httptest.NewRecorder()
	router.ServeHTTP(wa, a)
	assert.Equal(t, http.StatusOK, wa.Code)

	b := httptest.NewRequest(http.MethodGet, "/ping", nil)
	b.RemoteAddr = "10.0.0.4:1234"
	wb := httptest.NewRecorder()
	router.ServeHTTP(wb, b)
	assert.Equal(t, http.StatusOK, wb.Code)
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.5:1234"
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.5")

	assert.Equal(t, "203.0.113.7", getClientIP(c))
}
