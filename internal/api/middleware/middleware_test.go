// Package middleware_test provides behavior tests for the API middleware package.
package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jroosing/mailreply/internal/api/middleware"
	"github.com/jroosing/mailreply/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func historyRouter(mw ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw...)
	router.GET("/api/history", func(c *gin.Context) {
		c.JSON(http.StatusOK, []any{})
	})
	return router
}

// ============================================================================
// RequireAPIKey Middleware Tests
// ============================================================================

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		sent     string
		want     int
	}{
		{"matching key", "test-secret", "test-secret", http.StatusOK},
		{"wrong key", "correct-key", "wrong-key", http.StatusUnauthorized},
		{"missing key", "expected-key", "", http.StatusUnauthorized},
		{"key prefix only", "expected-key", "expected", http.StatusUnauthorized},
		{"auth disabled", "", "", http.StatusOK},
		{"auth disabled with key", "", "some-key", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := historyRouter(middleware.RequireAPIKey(tt.expected))

			req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
			if tt.sent != "" {
				req.Header.Set(middleware.APIKeyHeader, tt.sent)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
			}
		})
	}
}

// ============================================================================
// SlogRequestLogger Middleware Tests
// ============================================================================

func TestSlogRequestLogger_NilLogger(t *testing.T) {
	router := historyRouter(middleware.SlogRequestLogger(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSlogRequestLogger_LogsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := historyRouter(middleware.RequestID(), middleware.SlogRequestLogger(logger))
	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	line := buf.String()
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, "method=GET")
	assert.Contains(t, line, "path=/api/history")
	assert.Contains(t, line, "status=200")
	assert.Contains(t, line, "request_id=req-42")
}

func TestSlogRequestLogger_ServerErrorsLogAtWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	router := gin.New()
	router.Use(middleware.SlogRequestLogger(logger))
	router.POST("/api/parse", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	})
	router.POST("/api/bad", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No email text provided"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bad", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, buf.String(), "level=INFO")
}

// ============================================================================
// RequestID Middleware Tests
// ============================================================================

func TestRequestID_GeneratesUUID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	var seen string
	router.GET("/test", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	header := w.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, header)
	assert.Equal(t, header, seen)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

// ============================================================================
// RateLimit Middleware Tests
// ============================================================================

func TestRateLimit_RejectsOverBurst(t *testing.T) {
	limiter := ratelimit.New(ratelimit.Settings{IPRPS: 0.001, IPBurst: 2, MaxIPEntries: 16})
	rejected := 0

	router := gin.New()
	router.Use(middleware.RateLimit(limiter, func() { rejected++ }))
	router.POST("/parse", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/parse", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, rejected)
}

func TestRateLimit_NilLimiterAllows(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RateLimit(nil, nil))
	router.POST("/parse", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/parse", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// ============================================================================
// Integration Tests
// ============================================================================

func TestMiddlewareChain(t *testing.T) {
	limiter := ratelimit.New(ratelimit.Settings{IPRPS: 0.001, IPBurst: 1, MaxIPEntries: 16})
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.SlogRequestLogger(nil), middleware.RequireAPIKey("secret"))
	router.POST("/api/parse", middleware.RateLimit(limiter, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": 1})
	})

	post := func(key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(`{"email":"ok"}`))
		if key != "" {
			req.Header.Set(middleware.APIKeyHeader, key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Rejected before the limiter sees it.
	w := post("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusOK, post("secret").Code)
	assert.Equal(t, http.StatusTooManyRequests, post("secret").Code)
}
