package tui

import "github.com/jroosing/mailreply/internal/client"

// View updates forwarded from the controller.
type (
	submitEnabledMsg  bool
	busyMsg           bool
	clearResultMsg    struct{}
	resultMsg         string
	errorMsg          string
	historyMsg        []client.HistoryEntry
	historyFailureMsg string
)

// submitDoneMsg reports the end of a Controller.Submit run.
type submitDoneMsg struct{ Err error }

// historyDoneMsg reports the end of a Controller.LoadHistory run.
type historyDoneMsg struct{ Err error }

// viewClosedMsg is sent once the adapter stops forwarding.
type viewClosedMsg struct{}
