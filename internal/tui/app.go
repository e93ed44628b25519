package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jroosing/mailreply/internal/client"
)

// Run starts the terminal form against api and blocks until the user quits
// or ctx ends.
func Run(ctx context.Context, api client.API, logger *slog.Logger) error {
	adapter := NewViewAdapter()
	defer adapter.Close()

	ctrl := client.NewController(api, adapter, client.WithControllerLogger(logger))

	p := tea.NewProgram(NewModel(ctx, ctrl, adapter), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal form: %w", err)
	}
	return nil
}
