package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jroosing/mailreply/internal/client"
	"github.com/spf13/cobra"
)

// History output formats.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
)

func newHistoryCommand(opts *Options) *cobra.Command {
	var (
		format string
		utc    bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously parsed replies, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != FormatText && format != FormatHTML && format != FormatJSON {
				return fmt.Errorf("unknown format %q (want text, html or json)", format)
			}

			api, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			entries, err := api.History(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), client.HistoryFailureMessage+": "+err.Error())
				return ErrReported
			}

			out := cmd.OutOrStdout()
			switch format {
			case FormatHTML:
				return client.RenderHistoryHTML(out, entries, location(utc))
			case FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			default:
				return client.RenderHistoryText(out, entries, location(utc))
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatText, "Output format: text, html or json")
	cmd.Flags().BoolVar(&utc, "utc", false, "Show times in UTC")
	return cmd
}

func location(utc bool) *time.Location {
	if utc {
		return time.UTC
	}
	return time.Local
}
