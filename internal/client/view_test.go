package client_test

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jroosing/mailreply/internal/client"
)

// recorderView logs every call in order and keeps the last rendered state.
type recorderView struct {
	mu sync.Mutex

	calls          []string
	submitEnabled  bool
	busy           bool
	result         string
	errorText      string
	history        []client.HistoryEntry
	historyFailure string
}

func newRecorderView() *recorderView {
	return &recorderView{submitEnabled: true}
}

func (v *recorderView) record(format string, args ...any) {
	v.calls = append(v.calls, fmt.Sprintf(format, args...))
}

func (v *recorderView) SetSubmitEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.submitEnabled = enabled
	v.record("submit_enabled=%t", enabled)
}

func (v *recorderView) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = busy
	v.record("busy=%t", busy)
}

func (v *recorderView) ClearResult() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.result = ""
	v.errorText = ""
	v.record("clear")
}

func (v *recorderView) ShowResult(pretty string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.result = pretty
	v.record("result")
}

func (v *recorderView) ShowError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errorText = message
	v.record("error=%s", message)
}

func (v *recorderView) ShowHistory(entries []client.HistoryEntry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.history = entries
	v.historyFailure = ""
	v.record("history=%d", len(entries))
}

func (v *recorderView) ShowHistoryFailure(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.historyFailure = message
	v.record("history_failure=%s", message)
}

func (v *recorderView) Calls() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return strings.Join(v.calls, "\n")
}
