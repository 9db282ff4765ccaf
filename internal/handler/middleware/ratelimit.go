package middleware

import (
	"net/http"

	"course-cart/internal/handler/httperr"
	"course-cart/internal/pkg/errs"
	"course-cart/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit throttles per profile, falling back to the client IP.
func RateLimit(l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := GetProfileID(c)
		if key == "" {
			key = c.ClientIP()
		}
		if !l.Allow(key) {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.ErrCheckoutRateLimited, "Too many requests", nil)
		}
	}
}
