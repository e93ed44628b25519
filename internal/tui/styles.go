package tui

import "github.com/charmbracelet/lipgloss"

var (
	// General
	AppStyle   = lipgloss.NewStyle().Padding(0, 1)
	TitleStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("63")).Foreground(lipgloss.Color("255")).Padding(0, 1)
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "244"})

	// Input
	InputBoxStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).BorderForeground(lipgloss.Color("99")).Padding(0, 1)
	DisabledInputBoxStyle = InputBoxStyle.BorderForeground(lipgloss.Color("240"))
	PlaceholderStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "238"})
	CursorStyle           = lipgloss.NewStyle().Reverse(true)

	// Result & Error
	ResultBoxStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).BorderForeground(lipgloss.Color("28")).Padding(0, 1)
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	BusyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	// History
	HistoryBoxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	HistoryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

	// Status Bar
	StatusBarNormalStyle = lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("250")).Padding(0, 1)
	StatusBarErrorStyle  = lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")).Padding(0, 1)
)
