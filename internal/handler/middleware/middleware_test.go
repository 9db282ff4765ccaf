//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"course-cart/internal/handler/httperr"
	"course-cart/internal/handler/middleware"
	"course-cart/internal/pkg/clock"
	"course-cart/internal/pkg/config"
	"course-cart/internal/pkg/errs"
	"course-cart/internal/pkg/ratelimit"
	"course-cart/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireProfile(t *testing.T) {
	r := gin.New()
	r.GET("/who", middleware.RequireProfile(), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetProfileID(c))
	})

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"missing header", "", http.StatusOK, "default"},
		{"plain id", "alice", http.StatusOK, "alice"},
		{"surrounding spaces trimmed", "  bob_1 ", http.StatusOK, "bob_1"},
		{"max length", strings.Repeat("a", 64), http.StatusOK, strings.Repeat("a", 64)},
		{"too long", strings.Repeat("a", 65), http.StatusBadRequest, ""},
		{"slash", "a/b", http.StatusBadRequest, ""},
		{"dot", "a.b", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/who", nil, tt.header)

			require.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, tt.body, rec.Body.String())
			} else {
				httptest.AssertErrorResponse(t, rec, tt.code, "Invalid profile id")
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	l := ratelimit.New(1, 2, time.Minute, clk)

	r := gin.New()
	r.POST("/checkout", middleware.RequireProfile(), middleware.RateLimit(l), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/checkout", nil, "alice")
		require.Equal(t, http.StatusCreated, rec.Code, "request %d", i)
	}

	rec := httptest.PerformRequest(t, r, http.MethodPost, "/checkout", nil, "alice")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// buckets are per profile
	rec = httptest.PerformRequest(t, r, http.MethodPost, "/checkout", nil, "bob")
	assert.Equal(t, http.StatusCreated, rec.Code)

	clk.Add(time.Second)
	rec = httptest.PerformRequest(t, r, http.MethodPost, "/checkout", nil, "alice")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "Cart is empty"
		_ = c.Error(&gin.Error{Err: errs.ErrEmptyCart, Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errs.New("db down"))
	})
	r.GET("/written", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("bad"), "Invalid id", nil)
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Cart is empty")

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.NotContains(t, rec.Body.String(), "db down")

	rec = httptest.PerformRequest(t, r, http.MethodGet, "/written", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid id")
}

func TestCustomRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := middleware.NewLoggerTo(&buf, config.NewTestConfig().Log, true)

	r := gin.New()
	r.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	assert.Contains(t, buf.String(), "recovered from panic")
	assert.Contains(t, buf.String(), "kaboom")
}

func TestLoggingMiddleware(t *testing.T) {
	cfg := config.NewTestConfig().Log
	cfg.Level = "info"

	t.Run("generates a request id and logs profile", func(t *testing.T) {
		var buf bytes.Buffer
		logger := middleware.NewLoggerTo(&buf, cfg, true)

		r := gin.New()
		r.Use(logger.LoggingMiddleware())
		r.GET("/api/cart", middleware.RequireProfile(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
		})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/cart", nil, "alice")
		require.Equal(t, http.StatusOK, rec.Code)

		requestID := rec.Header().Get(middleware.RequestIDHeader)
		require.NotEmpty(t, requestID)
		assert.Contains(t, rec.Body.String(), requestID)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "Request completed", line["msg"])
		assert.Equal(t, "INFO", line["level"])
		assert.Equal(t, requestID, line["request_id"])
		assert.Equal(t, "alice", line["profile_id"])
		assert.Equal(t, "/api/cart", line["path"])
		assert.EqualValues(t, http.StatusOK, line["status_code"])
	})

	t.Run("reuses an incoming request id and warns on 4xx", func(t *testing.T) {
		var buf bytes.Buffer
		logger := middleware.NewLoggerTo(&buf, cfg, true)

		r := gin.New()
		r.Use(logger.LoggingMiddleware())
		r.GET("/missing", func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})

		rec := httptest.PerformRequestWithHeaders(t, r, http.MethodGet, "/missing", nil,
			map[string]string{middleware.RequestIDHeader: "req-123"})

		assert.Equal(t, "req-123", rec.Header().Get(middleware.RequestIDHeader))
		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "WARN", line["level"])
		assert.Equal(t, "req-123", line["request_id"])
	})

	t.Run("level below threshold is dropped", func(t *testing.T) {
		var buf bytes.Buffer
		logger := middleware.NewLoggerTo(&buf, config.NewTestConfig().Log, false)

		r := gin.New()
		r.Use(logger.LoggingMiddleware())
		r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "")

		assert.Empty(t, buf.String())
	})
}
