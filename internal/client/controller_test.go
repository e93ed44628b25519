package client_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jroosing/mailreply/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, f *fakeService, opts ...client.ControllerOption) (*client.Controller, *recorderView) {
	t.Helper()
	view := newRecorderView()
	return client.NewController(newFakeService(t, f), view, opts...), view
}

// ============================================================================
// Validation Tests
// ============================================================================

func TestSubmit_EmptyInputNeverCallsNetwork(t *testing.T) {
	f := &fakeService{parseBody: `{}`}
	ctrl, view := newController(t, f)

	for _, input := range []string{"", "   ", "\n\t "} {
		err := ctrl.Submit(context.Background(), input)
		assert.ErrorIs(t, err, client.ErrEmptyInput)
		assert.Equal(t, client.ValidationMessage, view.errorText)
		assert.Equal(t, client.StateIdle, ctrl.State())
	}

	assert.Zero(t, f.parseCalls.Load())
	assert.Zero(t, f.historyCalls.Load())
	assert.True(t, view.submitEnabled)
	assert.False(t, view.busy)
	assert.Equal(t,
		"error=Please enter an email to parse\nerror=Please enter an email to parse\nerror=Please enter an email to parse",
		view.Calls())
}

// ============================================================================
// Success Path Tests
// ============================================================================

func TestSubmit_SuccessRendersPrettyBodyAndReloadsHistory(t *testing.T) {
	f := &fakeService{
		parseBody:   `{"reply_type":"acceptance","id":1}`,
		historyBody: `[{"id":1,"reply_type":"acceptance","created_at":"2024-01-01T00:00:00Z"}]`,
	}
	ctrl, view := newController(t, f)

	err := ctrl.Submit(context.Background(), "  see you then  ")
	require.NoError(t, err)

	assert.Equal(t, "see you then", f.lastEmail.Load())
	assert.Equal(t, "{\n  \"reply_type\": \"acceptance\",\n  \"id\": 1\n}", view.result)
	assert.Empty(t, view.errorText)
	assert.Len(t, view.history, 1)
	assert.Equal(t, int32(1), f.historyCalls.Load())
	assert.True(t, view.submitEnabled)
	assert.False(t, view.busy)
	assert.Equal(t, client.StateIdle, ctrl.State())

	assert.Equal(t,
		"submit_enabled=false\nbusy=true\nclear\nresult\nsubmit_enabled=true\nbusy=false\nhistory=1",
		view.Calls())
}

func TestSubmit_HistoryReloadDisabled(t *testing.T) {
	f := &fakeService{parseBody: `{}`}
	ctrl, _ := newController(t, f, client.WithHistoryReload(false))

	require.NoError(t, ctrl.Submit(context.Background(), "hello"))
	assert.Zero(t, f.historyCalls.Load())
}

func TestSubmit_HistoryFailureDoesNotTouchErrorRegion(t *testing.T) {
	f := &fakeService{parseBody: `{"reply_type":"decline"}`, historyStatus: http.StatusInternalServerError, historyBody: `{"error":"Internal server error"}`}
	ctrl, view := newController(t, f)

	err := ctrl.Submit(context.Background(), "no thanks")

	require.NoError(t, err)
	assert.Equal(t, client.HistoryFailureMessage, view.historyFailure)
	assert.Empty(t, view.errorText)
	assert.NotEmpty(t, view.result)
}

// ============================================================================
// Error Path Tests
// ============================================================================

func TestSubmit_ErrorPaths(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "2xx with error field", status: http.StatusOK, body: `{"error":"model unavailable"}`, wantMsg: "Error: model unavailable"},
		{name: "non-2xx with error field", status: http.StatusBadRequest, body: `{"error":"No email text provided"}`, wantMsg: "Error: No email text provided"},
		{name: "non-2xx without error field", status: http.StatusServiceUnavailable, body: `{}`, wantMsg: "Error: HTTP error! status: 503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeService{parseStatus: tt.status, parseBody: tt.body}
			ctrl, view := newController(t, f)

			err := ctrl.Submit(context.Background(), "hello")

			require.Error(t, err)
			assert.True(t, client.IsRequestError(err))
			assert.Equal(t, tt.wantMsg, view.errorText)
			assert.Empty(t, view.result)
			assert.True(t, view.submitEnabled)
			assert.False(t, view.busy)
			assert.Zero(t, f.historyCalls.Load())
			assert.Equal(t, client.StateIdle, ctrl.State())
		})
	}
}

func TestSubmit_UndecodableBodyShownAsError(t *testing.T) {
	f := &fakeService{parseStatus: http.StatusBadGateway, parseBody: `<html>bad gateway</html>`}
	ctrl, view := newController(t, f)

	err := ctrl.Submit(context.Background(), "hello")

	require.Error(t, err)
	assert.Contains(t, view.errorText, "Error: ")
	assert.True(t, view.submitEnabled)
	assert.False(t, view.busy)
}

func TestSubmit_ClearsPreviousResult(t *testing.T) {
	f := &fakeService{parseBody: `{"reply_type":"acceptance"}`}
	ctrl, view := newController(t, f, client.WithHistoryReload(false))

	require.NoError(t, ctrl.Submit(context.Background(), "first"))
	require.NotEmpty(t, view.result)

	f.setParse(http.StatusInternalServerError, `{"error":"Internal server error"}`)
	require.Error(t, ctrl.Submit(context.Background(), "second"))

	assert.Empty(t, view.result)
	assert.Equal(t, "Error: Internal server error", view.errorText)
}

// ============================================================================
// State Machine Tests
// ============================================================================

func TestSubmit_TransitionSequence(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	hook := client.WithTransitionHook(func(from, to client.State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, from.String()+">"+to.String())
	})

	f := &fakeService{parseBody: `{}`}
	ctrl, _ := newController(t, f, hook, client.WithHistoryReload(false))

	require.NoError(t, ctrl.Submit(context.Background(), "ok"))
	require.ErrorIs(t, ctrl.Submit(context.Background(), " "), client.ErrEmptyInput)

	f.setParse(http.StatusBadRequest, `{}`)
	require.Error(t, ctrl.Submit(context.Background(), "bad"))

	assert.Equal(t, []string{
		"idle>validating", "validating>loading", "loading>success", "success>idle",
		"idle>validating", "validating>error", "error>idle",
		"idle>validating", "validating>loading", "loading>error", "error>idle",
	}, seen)
}

// blockingAPI holds Parse until release is closed.
type blockingAPI struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingAPI) Parse(ctx context.Context, _ string) (*client.ParseResponse, error) {
	close(b.started)
	select {
	case <-b.release:
		return nil, errors.New("released")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (b *blockingAPI) History(context.Context) ([]client.HistoryEntry, error) {
	return nil, nil
}

func TestSubmit_RejectsWhileInFlight(t *testing.T) {
	api := &blockingAPI{started: make(chan struct{}), release: make(chan struct{})}
	view := newRecorderView()
	ctrl := client.NewController(api, view)

	done := make(chan error, 1)
	go func() { done <- ctrl.Submit(context.Background(), "first") }()

	select {
	case <-api.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first submit never reached the API")
	}
	assert.Equal(t, client.StateLoading, ctrl.State())

	assert.ErrorIs(t, ctrl.Submit(context.Background(), "second"), client.ErrBusy)

	close(api.release)
	require.Error(t, <-done)
	assert.Equal(t, client.StateIdle, ctrl.State())
	assert.True(t, view.submitEnabled)
}

func TestSubmit_CancelledContext(t *testing.T) {
	api := &blockingAPI{started: make(chan struct{}), release: make(chan struct{})}
	view := newRecorderView()
	ctrl := client.NewController(api, view)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ctrl.Submit(ctx, "hello") }()

	<-api.started
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Error: context canceled", view.errorText)
	assert.False(t, view.busy)
}

// ============================================================================
// LoadHistory Tests
// ============================================================================

func TestLoadHistory_Standalone(t *testing.T) {
	f := &fakeService{historyBody: `[{"id":5,"created_at":"2024-01-01T00:00:00Z"}]`}
	ctrl, view := newController(t, f)

	require.NoError(t, ctrl.LoadHistory(context.Background()))
	assert.Len(t, view.history, 1)
	assert.Zero(t, f.parseCalls.Load())
}

func TestLoadHistory_Failure(t *testing.T) {
	f := &fakeService{historyStatus: http.StatusUnauthorized, historyBody: `{"error":"unauthorized"}`}
	ctrl, view := newController(t, f)

	err := ctrl.LoadHistory(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Failed to load history", view.historyFailure)
	assert.Empty(t, view.errorText)
	assert.Equal(t, "history_failure=Failed to load history", view.Calls())
}
