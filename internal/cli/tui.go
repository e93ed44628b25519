package cli

import (
	"github.com/jroosing/mailreply/internal/tui"
	"github.com/spf13/cobra"
)

func newTUICommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := opts.newClient(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), api, opts.logger(cmd))
		},
	}
}
