package client

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jroosing/mailreply/internal/logging"
)

const (
	// ValidationMessage is shown when Submit gets blank input.
	ValidationMessage = "Please enter an email to parse"
	// HistoryFailureMessage replaces the history list when it cannot be loaded.
	HistoryFailureMessage = "Failed to load history"
)

// API is the part of Client the Controller needs.
type API interface {
	Parse(ctx context.Context, email string) (*ParseResponse, error)
	History(ctx context.Context) ([]HistoryEntry, error)
}

// View is the surface a Controller renders to.
type View interface {
	SetSubmitEnabled(enabled bool)
	SetBusy(busy bool)
	ClearResult()
	ShowResult(pretty string)
	ShowError(message string)
	ShowHistory(entries []HistoryEntry)
	ShowHistoryFailure(message string)
}

// State is a step of the submit cycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Controller runs the submit cycle:
//
//	Idle -> Validating -> (Error | Loading) -> (Success | Error) -> Idle
//
// Only one submit runs at a time. A history reload may overlap a submit; all
// View calls are serialized.
type Controller struct {
	api           API
	view          View
	logger        *slog.Logger
	reloadHistory bool
	onTransition  func(from, to State)

	inFlight atomic.Bool

	stateMu sync.Mutex
	state   State

	viewMu sync.Mutex
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithHistoryReload controls whether a successful submit reloads history (default true).
func WithHistoryReload(enabled bool) ControllerOption {
	return func(c *Controller) {
		c.reloadHistory = enabled
	}
}

// WithTransitionHook calls fn on every state change.
func WithTransitionHook(fn func(from, to State)) ControllerOption {
	return func(c *Controller) {
		c.onTransition = fn
	}
}

// WithControllerLogger sets where submit and history failures are logged.
func WithControllerLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController binds api to view.
func NewController(api API, view View, opts ...ControllerOption) *Controller {
	c := &Controller{api: api, view: view, reloadHistory: true}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.OrDiscard(c.logger)
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.state
}

// Submit validates input, posts it and renders the outcome. It returns
// ErrEmptyInput for blank input, ErrBusy while another submit runs, or the
// request error that was rendered. The submit control is re-enabled and the
// busy indicator hidden on every path that reached the request.
func (c *Controller) Submit(ctx context.Context, input string) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}

	err := c.submit(ctx, input)
	c.inFlight.Store(false)

	if err == nil && c.reloadHistory {
		// History failures render in the history region and do not fail the submit.
		_ = c.LoadHistory(ctx)
	}
	return err
}

func (c *Controller) submit(ctx context.Context, input string) error {
	c.transition(StateValidating)

	text := strings.TrimSpace(input)
	if text == "" {
		c.transition(StateError)
		c.render(func(v View) { v.ShowError(ValidationMessage) })
		c.transition(StateIdle)
		return ErrEmptyInput
	}

	c.transition(StateLoading)
	c.render(func(v View) {
		v.SetSubmitEnabled(false)
		v.SetBusy(true)
		v.ClearResult()
	})
	defer func() {
		c.render(func(v View) {
			v.SetSubmitEnabled(true)
			v.SetBusy(false)
		})
		c.transition(StateIdle)
	}()

	pretty, err := c.parse(ctx, text)
	if err != nil {
		c.transition(StateError)
		c.logger.Error("parse error", "err", err)
		c.render(func(v View) { v.ShowError("Error: " + err.Error()) })
		return err
	}

	c.transition(StateSuccess)
	c.render(func(v View) { v.ShowResult(pretty) })
	return nil
}

func (c *Controller) parse(ctx context.Context, text string) (string, error) {
	resp, err := c.api.Parse(ctx, text)
	if err != nil {
		return "", err
	}
	return resp.Pretty()
}

// LoadHistory fetches history and renders it. On failure the history region
// shows HistoryFailureMessage; the main error region is left alone.
func (c *Controller) LoadHistory(ctx context.Context) error {
	entries, err := c.api.History(ctx)
	if err != nil {
		c.logger.Error("history error", "err", err)
		c.render(func(v View) { v.ShowHistoryFailure(HistoryFailureMessage) })
		return err
	}
	c.render(func(v View) { v.ShowHistory(entries) })
	return nil
}

func (c *Controller) render(fn func(View)) {
	if c.view == nil {
		return
	}
	c.viewMu.Lock()
	defer c.viewMu.Unlock()
	fn(c.view)
}

func (c *Controller) transition(to State) {
	c.stateMu.Lock()
	from := c.state
	c.state = to
	hook := c.onTransition
	c.stateMu.Unlock()

	if hook != nil && from != to {
		hook(from, to)
	}
}

// IsRequestError reports whether err came from the service rather than the
// transport or local validation.
func IsRequestError(err error) bool {
	var httpErr *HTTPError
	var logicErr *LogicError
	return errors.As(err, &httpErr) || errors.As(err, &logicErr)
}
