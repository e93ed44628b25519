package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jroosing/mailreply/internal/client"
)

const adapterBuffer = 64

// ViewAdapter is a client.View that turns every call into a tea.Msg. The
// model drains them with waitForViewMsgCmd.
type ViewAdapter struct {
	msgs chan tea.Msg
	done chan struct{}
	once sync.Once
}

// NewViewAdapter creates an open adapter.
func NewViewAdapter() *ViewAdapter {
	return &ViewAdapter{
		msgs: make(chan tea.Msg, adapterBuffer),
		done: make(chan struct{}),
	}
}

// Close stops forwarding. Calls after Close are dropped.
func (a *ViewAdapter) Close() {
	a.once.Do(func() { close(a.done) })
}

func (a *ViewAdapter) send(msg tea.Msg) {
	select {
	case <-a.done:
		return
	default:
	}
	select {
	case a.msgs <- msg:
	case <-a.done:
	}
}

func (a *ViewAdapter) SetSubmitEnabled(enabled bool) { a.send(submitEnabledMsg(enabled)) }
func (a *ViewAdapter) SetBusy(busy bool)             { a.send(busyMsg(busy)) }
func (a *ViewAdapter) ClearResult()                  { a.send(clearResultMsg{}) }
func (a *ViewAdapter) ShowResult(pretty string)      { a.send(resultMsg(pretty)) }
func (a *ViewAdapter) ShowError(message string)      { a.send(errorMsg(message)) }

func (a *ViewAdapter) ShowHistory(entries []client.HistoryEntry) {
	a.send(historyMsg(entries))
}

func (a *ViewAdapter) ShowHistoryFailure(message string) {
	a.send(historyFailureMsg(message))
}

var _ client.View = (*ViewAdapter)(nil)
