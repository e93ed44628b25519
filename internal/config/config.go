// Package config provides configuration types, loading and validation for MailReply.
//
// Configuration is read from an optional YAML file, then environment overrides are
// applied, then Validate fills in defaults and rejects impossible values.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Provider names understood by the extraction layer.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// History limits for /api/history.
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{
			Path: "mailreply.db",
		},
		Provider: ProviderConfig{
			Name:      ProviderGemini,
			MaxTokens: 300,
			Timeout:   "30s",
		},
		History: HistoryConfig{
			Limit: DefaultHistoryLimit,
		},
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
			ExtraFields:      map[string]string{},
		},
		RateLimit: RateLimitConfig{
			CleanupSeconds:   60,
			MaxIPEntries:     4096,
			MaxPrefixEntries: 1024,
			GlobalRPS:        20,
			GlobalBurst:      40,
			PrefixRPS:        5,
			PrefixBurst:      10,
			IPRPS:            2,
			IPBurst:          5,
		},
	}
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return errors.New("server.port must be 1..65535")
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}

	if strings.TrimSpace(cfg.Database.Path) == "" {
		return errors.New("database.path must not be empty")
	}

	if err := cfg.Provider.normalize(); err != nil {
		return err
	}

	if cfg.History.Limit <= 0 {
		cfg.History.Limit = DefaultHistoryLimit
	}
	if cfg.History.Limit > MaxHistoryLimit {
		cfg.History.Limit = MaxHistoryLimit
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}

func (p *ProviderConfig) normalize() error {
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	if p.Name == "" {
		p.Name = ProviderGemini
	}

	switch p.Name {
	case ProviderGemini:
		if p.APIKeyEnv == "" {
			p.APIKeyEnv = "GEMINI_API_KEY"
		}
		if p.Model == "" {
			p.Model = "gemini-pro"
		}
	case ProviderOpenAI:
		if p.APIKeyEnv == "" {
			p.APIKeyEnv = "OPENAI_API_KEY"
		}
		if p.Model == "" {
			p.Model = "gpt-4o-mini"
		}
	case ProviderOllama:
		if p.Model == "" {
			p.Model = "llama3"
		}
	default:
		return fmt.Errorf("provider.name %q is not one of gemini, openai, ollama", p.Name)
	}

	if p.MaxTokens <= 0 {
		p.MaxTokens = 300
	}

	if p.Timeout == "" {
		p.Timeout = "30s"
	}
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return fmt.Errorf("provider.timeout %q is not a positive duration", p.Timeout)
	}
	p.TimeoutDuration = d

	return nil
}
