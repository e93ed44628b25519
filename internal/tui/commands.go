package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jroosing/mailreply/internal/client"
)

// waitForViewMsgCmd delivers the next forwarded view call. The model re-queues
// it after every view message.
func waitForViewMsgCmd(a *ViewAdapter) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-a.msgs:
			return msg
		case <-a.done:
			return viewClosedMsg{}
		}
	}
}

func submitCmd(ctx context.Context, ctrl *client.Controller, input string) tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{Err: ctrl.Submit(ctx, input)}
	}
}

func loadHistoryCmd(ctx context.Context, ctrl *client.Controller) tea.Cmd {
	return func() tea.Msg {
		return historyDoneMsg{Err: ctrl.LoadHistory(ctx)}
	}
}
