package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jroosing/mailreply/internal/config"
	"github.com/jroosing/mailreply/internal/logging"
	"github.com/jroosing/mailreply/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set MAILREPLY_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		dbPath     = flag.String("db", "", "Override history database path")
		provider   = flag.String("provider", "", "Override extraction provider (gemini, openai, ollama)")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *provider != "" {
		cfg.Provider.Name = *provider
		cfg.Provider.APIKeyEnv = ""
		cfg.Provider.Model = ""
		cfg.Provider.Endpoint = ""
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}
	// Flags may have changed provider or port.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.FromConfig(cfg.Logging))
	logger.Info("MailReply starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"provider", cfg.Provider.Name,
	)

	runner := server.NewRunner(logger)
	if err := runner.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
