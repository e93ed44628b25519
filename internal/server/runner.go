// Package server wires configuration, storage, extraction and the HTTP API
// into a running MailReply process.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jroosing/mailreply/internal/api"
	"github.com/jroosing/mailreply/internal/config"
	"github.com/jroosing/mailreply/internal/database"
	"github.com/jroosing/mailreply/internal/extract"
	"github.com/jroosing/mailreply/internal/logging"
	"github.com/jroosing/mailreply/internal/ratelimit"
)

const shutdownTimeout = 5 * time.Second

// Runner orchestrates the service startup and shutdown.
type Runner struct {
	logger      *slog.Logger
	provider    extract.Provider
	onListening func(addr net.Addr)
}

// NewRunner creates a new server runner with the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logging.OrDiscard(logger)}
}

// SetProvider injects the extraction provider. If nil, RunWithContext builds
// one from the config.
func (r *Runner) SetProvider(p extract.Provider) {
	r.provider = p
}

// SetListenHook is called with the bound address once the listener is open.
func (r *Runner) SetListenHook(fn func(addr net.Addr)) {
	r.onListening = fn
}

// Run starts the service and blocks until SIGINT/SIGTERM.
//
// Server lifecycle:
//  1. Open and migrate the history database
//  2. Build the extraction provider
//  3. Start the HTTP API
//  4. Wait for shutdown signal
//  5. Drain in-flight requests with timeout and close the database
func (r *Runner) Run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return r.RunWithContext(ctx, cfg)
}

// RunWithContext starts the service and blocks until ctx is canceled or the
// HTTP server fails.
func (r *Runner) RunWithContext(ctx context.Context, cfg *config.Config) error {
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			r.logger.Warn("failed to close database", "err", cerr)
		}
	}()

	extractor := extract.New(r.buildProvider(cfg), r.logger)
	srv := api.New(cfg, db, extractor, r.logger)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := listenTCPReusePort(ctx, addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	r.logStartup(cfg, ln.Addr())
	if r.onListening != nil {
		r.onListening(ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("graceful shutdown incomplete", "err", err)
	}
	r.logger.Info("MailReply stopped")
	return nil
}

// buildProvider returns the injected provider or one built from cfg. A missing
// key is not fatal: parse requests then degrade to all-null fields.
func (r *Runner) buildProvider(cfg *config.Config) extract.Provider {
	if r.provider != nil {
		return r.provider
	}
	p, err := extract.NewProvider(cfg.Provider, nil)
	if err != nil {
		if errors.Is(err, extract.ErrMissingAPIKey) {
			r.logger.Warn("extraction disabled, parse results will be empty", "provider", cfg.Provider.Name, "err", err)
		} else {
			r.logger.Error("failed to build provider", "provider", cfg.Provider.Name, "err", err)
		}
		return nil
	}
	return p
}

func (r *Runner) logStartup(cfg *config.Config, addr net.Addr) {
	r.logger.Info("MailReply listening",
		"addr", addr.String(),
		"database", cfg.Database.Path,
		"provider", cfg.Provider.Name,
		"model", cfg.Provider.Model,
		"api_key_required", cfg.API.APIKey != "",
	)
	r.logger.Info("rate limits", "effective", ratelimit.SettingsFromConfig(cfg.RateLimit).String())
}
