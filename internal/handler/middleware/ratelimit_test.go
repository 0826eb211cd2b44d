//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"hub-booking/internal/handler/middleware"
	"hub-booking/internal/pkg/config"
	"hub-booking/internal/usecase/shared"
	"hub-booking/tests/common/authtest"
	"hub-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig, actor *shared.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	rl := middleware.NewRateLimiter(cfg)
	r.POST("/check", authtest.FakeAuth(actor), rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRateLimiter(t *testing.T) {
	// A near-zero refill rate makes the burst the whole budget for the test.
	cfg := config.RateLimitConfig{ConflictCheckRPS: 0.001, ConflictCheckBurst: 2}

	t.Run("burst then 429", func(t *testing.T) {
		actor := authtest.Member()
		router := newLimitedRouter(cfg, &actor)

		for i := 0; i < 2; i++ {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", nil, "token")
			assert.Equal(t, http.StatusNoContent, rec.Code)
			httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": ""})
		}

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", nil, "token")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "1"})
	})

	t.Run("buckets are per member", func(t *testing.T) {
		actor := authtest.Member()
		router := newLimitedRouter(cfg, &actor)

		for i := 0; i < 2; i++ {
			httptest.PerformRequest(t, router, http.MethodPost, "/check", nil, "token")
		}
		actor = authtest.Member()

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", nil, "token")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("non-positive burst still admits one request", func(t *testing.T) {
		actor := authtest.Member()
		router := newLimitedRouter(config.RateLimitConfig{ConflictCheckRPS: 0.001}, &actor)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/check", nil, "token")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		rec = httptest.PerformRequest(t, router, http.MethodPost, "/check", nil, "token")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}
