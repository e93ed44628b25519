package models

import "github.com/jroosing/mailreply/internal/config"

// ConfigResponse is the redacted view of the running configuration.
type ConfigResponse struct {
	Server    config.ServerConfig    `json:"server"`
	Database  config.DatabaseConfig  `json:"database"`
	Provider  ProviderConfigResponse `json:"provider"`
	History   config.HistoryConfig   `json:"history"`
	Logging   config.LoggingConfig   `json:"logging"`
	RateLimit config.RateLimitConfig `json:"rate_limit"`
	API       APIConfigResponse      `json:"api"`
}

// ProviderConfigResponse names the key variable, never the key.
type ProviderConfigResponse struct {
	Name      string `json:"name"`
	Endpoint  string `json:"endpoint,omitempty"`
	Model     string `json:"model"`
	APIKeyEnv string `json:"api_key_env,omitempty"`
	MaxTokens int    `json:"max_tokens"`
	Timeout   string `json:"timeout"`
}

// APIConfigResponse reports whether API key auth is on.
type APIConfigResponse struct {
	AuthEnabled bool `json:"auth_enabled"`
}
