package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jroosing/mailreply/internal/client"
	"github.com/spf13/cobra"
)

const maxInputBytes = 1 << 20

func newParseCommand(opts *Options) *cobra.Command {
	var (
		file        string
		withHistory bool
		utc         bool
	)

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse an email reply and print the extracted fields",
		Example: `  replyctl parse "Tuesday at 3pm works, see you then"
  replyctl parse -f reply.txt --history
  pbpaste | replyctl parse -f -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, file, args)
			if err != nil {
				return err
			}

			api, err := opts.newClient(cmd)
			if err != nil {
				return err
			}

			view := &writerView{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), loc: location(utc)}
			ctrl := client.NewController(api, view,
				client.WithHistoryReload(withHistory),
				client.WithControllerLogger(opts.logger(cmd)),
			)

			if err := ctrl.Submit(cmd.Context(), text); err != nil {
				return ErrReported
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the email from a file ('-' for stdin)")
	cmd.Flags().BoolVar(&withHistory, "history", false, "Print the history after a successful parse")
	cmd.Flags().BoolVar(&utc, "utc", false, "Show history times in UTC")
	return cmd
}

// readInput returns the joined args, or the file contents when --file is set.
func readInput(cmd *cobra.Command, file string, args []string) (string, error) {
	if file == "" {
		return strings.Join(args, " "), nil
	}
	if len(args) > 0 {
		return "", fmt.Errorf("use either text arguments or --file, not both")
	}

	var r io.Reader
	if file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if len(raw) > maxInputBytes {
		return "", fmt.Errorf("input is larger than %d bytes", maxInputBytes)
	}
	return string(raw), nil
}
