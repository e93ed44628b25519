// Package cli implements the replyctl command line client.
package cli

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/jroosing/mailreply/internal/client"
	"github.com/jroosing/mailreply/internal/logging"
	"github.com/spf13/cobra"
)

// Environment variables read for flag defaults.
const (
	ServerEnvVar = "MAILREPLY_SERVER"
	APIKeyEnvVar = "MAILREPLY_API_KEY"
)

// ErrReported means the failure was already written to stderr. main exits 1
// without printing it again.
var ErrReported = errors.New("failure already reported")

// Options holds the persistent flags.
type Options struct {
	Server string
	APIKey string
	Debug  bool
}

// NewRootCmd wires the replyctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	root := &cobra.Command{
		Use:           "replyctl",
		Short:         "MailReply command line client",
		Long:          "replyctl submits email replies to a MailReply service and shows the parse history.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.Server, "server", envOr(ServerEnvVar, client.DefaultServerURL), "MailReply base URL (env "+ServerEnvVar+")")
	flags.StringVar(&opts.APIKey, "api-key", os.Getenv(APIKeyEnvVar), "API key sent as X-API-Key (env "+APIKeyEnvVar+")")
	flags.BoolVar(&opts.Debug, "debug", false, "Log requests and failures to stderr")

	root.AddCommand(
		newParseCommand(opts),
		newHistoryCommand(opts),
		newTUICommand(opts),
	)
	return root
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (o *Options) logger(cmd *cobra.Command) *slog.Logger {
	if !o.Debug {
		return logging.OrDiscard(nil)
	}
	return logging.New(logging.Config{Level: "DEBUG", Output: cmd.ErrOrStderr()})
}

func (o *Options) newClient(cmd *cobra.Command) (*client.Client, error) {
	clientOpts := []client.Option{client.WithLogger(o.logger(cmd))}
	if o.APIKey != "" {
		clientOpts = append(clientOpts, client.WithAPIKey(o.APIKey))
	}
	return client.New(o.Server, clientOpts...)
}
