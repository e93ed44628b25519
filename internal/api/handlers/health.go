package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/mailreply/internal/api/models"
	"github.com/jroosing/mailreply/internal/ratelimit"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Health godoc
// @Summary Health check
// @Description Returns service health, including database connectivity
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 500 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusInternalServerError, models.HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    "database not configured",
		})
		return
	}

	if err := h.db.Health(c.Request.Context()); err != nil {
		h.logger.Warn("health check failed", "err", err)
		c.JSON(http.StatusInternalServerError, models.HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{Status: "healthy", Database: "connected"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including host CPU and memory, goroutines, and parse counters
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		CPU:           models.CPUStats{NumCPU: runtime.NumCPU()},
		Parse:         h.ParseStats(ctx),
	}

	// Host metrics are best effort; some sandboxes hide /proc.
	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		resp.CPU.NumCPU = n
	}
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		resp.CPU.UsedPercent = pct[0]
		resp.CPU.IdlePercent = 100 - pct[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		resp.Memory = models.MemoryStats{
			TotalMB:     float64(vm.Total) / 1024 / 1024,
			FreeMB:      float64(vm.Available) / 1024 / 1024,
			UsedMB:      float64(vm.Used) / 1024 / 1024,
			UsedPercent: vm.UsedPercent,
		}
	}

	if h.cfg != nil {
		resp.RateLimit = &models.RateLimitInfo{
			Settings: ratelimit.SettingsFromConfig(h.cfg.RateLimit).String(),
		}
	}

	c.JSON(http.StatusOK, resp)
}
