// Package tui is a terminal front end for the reply form. The Model renders
// whatever a client.Controller shows through a ViewAdapter.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jroosing/mailreply/internal/client"
)

const placeholder = "Paste or type the email reply here..."

// Model is the bubbletea model for the terminal form.
type Model struct {
	ctx     context.Context
	ctrl    *client.Controller
	adapter *ViewAdapter
	loc     *time.Location

	input []rune

	submitEnabled  bool
	busy           bool
	result         string
	errText        string
	history        []client.HistoryEntry
	historyLoaded  bool
	historyFailure string

	statusBarText string
	statusIsError bool

	width, height int
}

// NewModel builds a model around ctrl, which must render to adapter.
func NewModel(ctx context.Context, ctrl *client.Controller, adapter *ViewAdapter) Model {
	return Model{
		ctx:           ctx,
		ctrl:          ctrl,
		adapter:       adapter,
		loc:           time.Local,
		submitEnabled: true,
		statusBarText: "ctrl+s submit | ctrl+r reload history | ctrl+l clear | esc quit",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForViewMsgCmd(m.adapter),
		loadHistoryCmd(m.ctx, m.ctrl),
	)
}

// Input returns the current text in the input box.
func (m Model) Input() string {
	return string(m.input)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case submitEnabledMsg:
		m.submitEnabled = bool(msg)
		return m, waitForViewMsgCmd(m.adapter)
	case busyMsg:
		m.busy = bool(msg)
		return m, waitForViewMsgCmd(m.adapter)
	case clearResultMsg:
		m.result = ""
		m.errText = ""
		return m, waitForViewMsgCmd(m.adapter)
	case resultMsg:
		m.result = string(msg)
		return m, waitForViewMsgCmd(m.adapter)
	case errorMsg:
		m.errText = string(msg)
		return m, waitForViewMsgCmd(m.adapter)
	case historyMsg:
		m.history = []client.HistoryEntry(msg)
		m.historyLoaded = true
		m.historyFailure = ""
		return m, waitForViewMsgCmd(m.adapter)
	case historyFailureMsg:
		m.historyFailure = string(msg)
		return m, waitForViewMsgCmd(m.adapter)
	case viewClosedMsg:
		return m, nil

	case submitDoneMsg:
		m.setSubmitStatus(msg.Err)
	case historyDoneMsg:
		if msg.Err != nil {
			m.updateStatusBar("History unavailable", true)
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.adapter.Close()
		return m, tea.Quit
	case "ctrl+s":
		if !m.submitEnabled || m.busy {
			return m, nil
		}
		return m, submitCmd(m.ctx, m.ctrl, string(m.input))
	case "ctrl+r":
		m.updateStatusBar("Reloading history...", false)
		return m, loadHistoryCmd(m.ctx, m.ctrl)
	case "ctrl+l":
		m.input = m.input[:0]
		return m, nil
	}

	if !m.submitEnabled {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyEnter:
		m.input = append(m.input, '\n')
	case tea.KeyTab:
		m.input = append(m.input, '\t')
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	}
	return m, nil
}

func (m *Model) setSubmitStatus(err error) {
	switch {
	case err == nil:
		m.updateStatusBar("Parsed", false)
	case errors.Is(err, client.ErrBusy):
		m.updateStatusBar("Still working on the previous reply", true)
	case errors.Is(err, client.ErrEmptyInput):
		m.updateStatusBar("Nothing to submit", true)
	default:
		m.updateStatusBar("Parse failed", true)
	}
}

func (m *Model) updateStatusBar(text string, isError bool) {
	m.statusBarText = text
	m.statusIsError = isError
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("MailReply"))
	b.WriteString("\n\n")

	b.WriteString(m.renderInput())
	b.WriteString("\n")

	if m.busy {
		b.WriteString(BusyStyle.Render("Processing..."))
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString(ErrorStyle.Render(m.errText))
		b.WriteString("\n")
	}
	if m.result != "" {
		b.WriteString(LabelStyle.Render("Result"))
		b.WriteString("\n")
		b.WriteString(ResultBoxStyle.Render(m.result))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHistory())
	b.WriteString("\n")

	statusStyle := StatusBarNormalStyle
	if m.statusIsError {
		statusStyle = StatusBarErrorStyle
	}
	b.WriteString(statusStyle.Render(m.statusBarText))

	return AppStyle.Render(b.String())
}

func (m Model) renderInput() string {
	box := InputBoxStyle
	if !m.submitEnabled {
		box = DisabledInputBoxStyle
	}
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}

	content := PlaceholderStyle.Render(placeholder)
	if len(m.input) > 0 {
		content = string(m.input)
	}
	if m.submitEnabled {
		content += CursorStyle.Render(" ")
	}
	return box.Render(content)
}

func (m Model) renderHistory() string {
	var body string
	switch {
	case m.historyFailure != "":
		body = ErrorStyle.Render(m.historyFailure)
	case !m.historyLoaded:
		body = HelpStyle.Render("Loading...")
	default:
		var sb strings.Builder
		if err := client.RenderHistoryText(&sb, m.history, m.loc); err != nil {
			body = ErrorStyle.Render(err.Error())
		} else {
			body = strings.TrimRight(sb.String(), "\n")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		HistoryTitleStyle.Render("History"),
		HistoryBoxStyle.Render(body),
	)
}
