// Package api provides the MailReply HTTP service.
// It exposes the parse and history endpoints, health and statistics, swagger
// docs and the embedded web form via a Gin-based HTTP server.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/mailreply/internal/api/handlers"
	"github.com/jroosing/mailreply/internal/api/middleware"
	"github.com/jroosing/mailreply/internal/config"
	"github.com/jroosing/mailreply/internal/database"
	"github.com/jroosing/mailreply/internal/extract"
	"github.com/jroosing/mailreply/internal/logging"
	"github.com/jroosing/mailreply/internal/ratelimit"
)

// Server is the MailReply REST API server.
//
// Security note: do not expose the API to untrusted networks without setting api.api_key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	handler    *handlers.Handler
	httpServer *http.Server
}

// New builds the engine and HTTP server. db and extractor may be nil in tests.
func New(cfg *config.Config, db *database.DB, extractor *extract.Extractor, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	logger = logging.OrDiscard(logger)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(cfg, db, extractor, logger)
	limiter := ratelimit.New(ratelimit.SettingsFromConfig(cfg.RateLimit))
	RegisterRoutes(engine, h, limiter, cfg)
	MountSPA(engine, logger)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Parse waits on the upstream model.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, handler: h, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler exposes the endpoint handlers, mainly for their counters.
func (s *Server) Handler() *handlers.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
