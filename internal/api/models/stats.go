package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string         `json:"uptime"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	StartTime     time.Time      `json:"start_time"`
	GoRoutines    int            `json:"goroutines"`
	MemoryAllocMB float64        `json:"memory_alloc_mb"`
	CPU           CPUStats       `json:"cpu"`
	Memory        MemoryStats    `json:"memory"`
	Parse         ParseStats     `json:"parse"`
	RateLimit     *RateLimitInfo `json:"rate_limit,omitempty"`
}

// CPUStats contains host CPU usage.
type CPUStats struct {
	NumCPU      int     `json:"num_cpu"`
	UsedPercent float64 `json:"used_percent"`
	IdlePercent float64 `json:"idle_percent"`
}

// MemoryStats contains host memory usage.
type MemoryStats struct {
	TotalMB     float64 `json:"total_mb"`
	FreeMB      float64 `json:"free_mb"`
	UsedMB      float64 `json:"used_mb"`
	UsedPercent float64 `json:"used_percent"`
}

// ParseStats counts /api/parse outcomes since startup.
type ParseStats struct {
	RequestsTotal   uint64 `json:"requests_total"`
	Degraded        uint64 `json:"degraded"`
	Failed          uint64 `json:"failed"`
	Rejected        uint64 `json:"rejected"`
	RateLimited     uint64 `json:"rate_limited"`
	HistoryRequests uint64 `json:"history_requests"`
	StoredTotal     int64  `json:"stored_total"`
}

// RateLimitInfo describes the configured parse limits.
type RateLimitInfo struct {
	Settings string `json:"settings"`
}
