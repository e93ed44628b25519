package config

import "time"

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// DatabaseConfig points at the SQLite file holding parse history.
type DatabaseConfig struct {
	Path string `yaml:"path" json:"path"`
}

// ProviderConfig selects the upstream language model that turns reply text
// into structured fields.
type ProviderConfig struct {
	Name      string `yaml:"name" json:"name"`               // "gemini", "openai" or "ollama"
	Endpoint  string `yaml:"endpoint" json:"endpoint"`       // Full URL; derived from Name when empty
	Model     string `yaml:"model" json:"model"`             // Model identifier sent upstream
	APIKeyEnv string `yaml:"api_key_env" json:"api_key_env"` // Environment variable holding the key
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
	Timeout   string `yaml:"timeout" json:"timeout"` // e.g. "30s"

	TimeoutDuration time.Duration `yaml:"-" json:"-"`
}

// HistoryConfig controls the /api/history listing.
type HistoryConfig struct {
	Limit int `yaml:"limit" json:"limit"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level" json:"level"`
	Structured       bool              `yaml:"structured" json:"structured"`
	StructuredFormat string            `yaml:"structured_format" json:"structured_format"`
	IncludePID       bool              `yaml:"include_pid" json:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields,omitempty" json:"extra_fields,omitempty"`
}

// RateLimitConfig controls admission on the parse endpoint.
type RateLimitConfig struct {
	// CleanupSeconds is how often stale entries are cleaned up (default: 60)
	CleanupSeconds float64 `yaml:"cleanup_seconds" json:"cleanup_seconds"`
	// MaxIPEntries is the maximum number of tracked IPs (default: 4096)
	MaxIPEntries int `yaml:"max_ip_entries" json:"max_ip_entries"`
	// MaxPrefixEntries is the maximum number of tracked prefixes (default: 1024)
	MaxPrefixEntries int `yaml:"max_prefix_entries" json:"max_prefix_entries"`
	// GlobalRPS is the server-wide parse requests per second (0 = disabled)
	GlobalRPS float64 `yaml:"global_rps" json:"global_rps"`
	// GlobalBurst is the global burst size
	GlobalBurst int `yaml:"global_burst" json:"global_burst"`
	// PrefixRPS is the per-prefix limit (0 = disabled)
	PrefixRPS float64 `yaml:"prefix_rps" json:"prefix_rps"`
	// PrefixBurst is the per-prefix burst size
	PrefixBurst int `yaml:"prefix_burst" json:"prefix_burst"`
	// IPRPS is the per-IP limit (0 = disabled)
	IPRPS float64 `yaml:"ip_rps" json:"ip_rps"`
	// IPBurst is the per-IP burst size
	IPBurst int `yaml:"ip_burst" json:"ip_burst"`
}

// APIConfig contains API access settings.
//
// Note: APIKey is a secret and is never returned by API endpoints.
type APIConfig struct {
	APIKey string `yaml:"api_key,omitempty" json:"api_key,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server"`
	Database  DatabaseConfig  `yaml:"database" json:"database"`
	Provider  ProviderConfig  `yaml:"provider" json:"provider"`
	History   HistoryConfig   `yaml:"history" json:"history"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`
	API       APIConfig       `yaml:"api" json:"api"`
}
