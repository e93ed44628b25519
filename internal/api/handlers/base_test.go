// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/mailreply/internal/api/handlers"
	"github.com/jroosing/mailreply/internal/config"
	"github.com/jroosing/mailreply/internal/database"
	"github.com/jroosing/mailreply/internal/extract"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeProvider answers every prompt with a fixed completion.
type fakeProvider struct {
	answer string
	err    error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(context.Context, string) (string, error) {
	return f.answer, f.err
}

var errUpstream = errors.New("upstream unavailable")

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createTestHandler(t *testing.T, provider extract.Provider) (*handlers.Handler, *database.DB) {
	t.Helper()
	cfg := config.Default()
	db := openTestDB(t)
	return handlers.New(cfg, db, extract.New(provider, nil), nil), db
}

func setupTestRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()

	api := r.Group("/api")
	api.POST("/parse", h.Parse)
	api.GET("/history", h.History)
	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/config", h.GetConfig)

	return r
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
