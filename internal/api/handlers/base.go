// Package handlers implements the REST API endpoint handlers for MailReply.
//
// REST API Endpoints:
//
// Parsing:
//   - POST /api/parse - Extract scheduling fields from an email reply and store the result
//   - GET /api/history - Stored results, newest first (?limit=N, default 50, max 500)
//
// System:
//   - GET /api/health - Service and database health
//   - GET /api/stats - Runtime, host and parse statistics
//   - GET /api/config - Current configuration (secrets redacted)
//
// Authentication:
//
// When api.api_key is configured every /api endpoint except /health requires
// the X-API-Key header.
//
// @title MailReply API
// @version 1.0
// @description Turns meeting-scheduling email replies into structured JSON.
//
// @contact.name MailReply Support
// @contact.url https://github.com/jroosing/mailreply
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jroosing/mailreply/internal/api/models"
	"github.com/jroosing/mailreply/internal/config"
	"github.com/jroosing/mailreply/internal/database"
	"github.com/jroosing/mailreply/internal/extract"
	"github.com/jroosing/mailreply/internal/logging"
)

// parseCounters collects /api/parse outcomes.
// All fields are safe for concurrent use.
type parseCounters struct {
	requests    atomic.Uint64
	degraded    atomic.Uint64
	failed      atomic.Uint64
	rejected    atomic.Uint64
	rateLimited atomic.Uint64
	history     atomic.Uint64
}

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	extractor *extract.Extractor
	logger    *slog.Logger
	startTime time.Time

	counters parseCounters
}

// New creates a new Handler. db and extractor may be nil; the affected
// endpoints then report failures instead of panicking.
func New(cfg *config.Config, db *database.DB, extractor *extract.Extractor, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		db:        db,
		extractor: extractor,
		logger:    logging.OrDiscard(logger),
		startTime: time.Now(),
	}
}

// DB returns the database connection for handlers that need it.
func (h *Handler) DB() *database.DB {
	return h.db
}

// RecordRateLimited counts a parse request rejected before reaching the handler.
func (h *Handler) RecordRateLimited() {
	h.counters.rateLimited.Add(1)
}

// ParseStats returns the current parse counters. StoredTotal is read from the
// database and left at zero when it is unavailable.
func (h *Handler) ParseStats(ctx context.Context) models.ParseStats {
	s := models.ParseStats{
		RequestsTotal:   h.counters.requests.Load(),
		Degraded:        h.counters.degraded.Load(),
		Failed:          h.counters.failed.Load(),
		Rejected:        h.counters.rejected.Load(),
		RateLimited:     h.counters.rateLimited.Load(),
		HistoryRequests: h.counters.history.Load(),
	}
	if h.db != nil {
		if n, err := h.db.CountParsedEmails(ctx); err == nil {
			s.StoredTotal = n
		}
	}
	return s
}

func (h *Handler) historyLimit() int {
	if h.cfg == nil || h.cfg.History.Limit <= 0 {
		return config.DefaultHistoryLimit
	}
	return h.cfg.History.Limit
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
