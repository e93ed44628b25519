// Package ratelimit provides token-bucket admission control for the parse endpoint.
//
// Each request is checked at three levels, cheapest key first:
//   - Global: one bucket for the whole server
//   - Prefix: one bucket per /24 (IPv4) or /64 (IPv6)
//   - IP: one bucket per client address
//
// Every parse request costs an upstream model call, so the limits are far lower
// than those of a plain read endpoint.
package ratelimit

import (
	"fmt"
	"math"
	"net/netip"
	"sync"
	"time"

	"github.com/jroosing/mailreply/internal/config"
)

// Settings configures a Limiter.
type Settings struct {
	CleanupInterval  time.Duration
	MaxIPEntries     int
	MaxPrefixEntries int
	GlobalRPS        float64
	GlobalBurst      int
	PrefixRPS        float64
	PrefixBurst      int
	IPRPS            float64
	IPBurst          int
}

// SettingsFromConfig converts the rate_limit config section.
func SettingsFromConfig(c config.RateLimitConfig) Settings {
	return Settings{
		CleanupInterval:  time.Duration(math.Max(0, c.CleanupSeconds) * float64(time.Second)),
		MaxIPEntries:     c.MaxIPEntries,
		MaxPrefixEntries: c.MaxPrefixEntries,
		GlobalRPS:        c.GlobalRPS,
		GlobalBurst:      c.GlobalBurst,
		PrefixRPS:        c.PrefixRPS,
		PrefixBurst:      c.PrefixBurst,
		IPRPS:            c.IPRPS,
		IPBurst:          c.IPBurst,
	}
}

// String summarizes the effective limits for the startup log.
func (s Settings) String() string {
	level := func(name string, rate float64, burst int) string {
		if rate <= 0 || burst <= 0 {
			return name + "=disabled"
		}
		return fmt.Sprintf("%s=%grps/%d", name, rate, burst)
	}
	return fmt.Sprintf("%s %s %s cleanup=%s max_ip=%d max_prefix=%d",
		level("global", s.GlobalRPS, s.GlobalBurst),
		level("prefix", s.PrefixRPS, s.PrefixBurst),
		level("ip", s.IPRPS, s.IPBurst),
		s.CleanupInterval,
		s.MaxIPEntries,
		s.MaxPrefixEntries,
	)
}

// Limiter combines global, prefix and per-IP buckets.
// A nil *Limiter allows everything.
type Limiter struct {
	global *Bucket
	prefix *Bucket
	ip     *Bucket
}

// New creates a Limiter from s.
func New(s Settings) *Limiter {
	cleanup := s.CleanupInterval
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &Limiter{
		global: NewBucket(BucketConfig{Rate: s.GlobalRPS, Burst: s.GlobalBurst, CleanupInterval: cleanup, MaxEntries: 1}),
		prefix: NewBucket(BucketConfig{Rate: s.PrefixRPS, Burst: s.PrefixBurst, CleanupInterval: cleanup, MaxEntries: s.MaxPrefixEntries}),
		ip:     NewBucket(BucketConfig{Rate: s.IPRPS, Burst: s.IPBurst, CleanupInterval: cleanup, MaxEntries: s.MaxIPEntries}),
	}
}

// Allow reports whether a request from clientIP may proceed, consuming a token
// at every level it passes.
func (l *Limiter) Allow(clientIP string) bool {
	if l == nil {
		return true
	}
	if !l.global.Allow("*") {
		return false
	}
	if !l.prefix.Allow(PrefixKey(clientIP)) {
		return false
	}
	return l.ip.Allow(clientIP)
}

// PrefixKey maps an address to its /24 (IPv4) or /64 (IPv6) network.
// Unparseable input is keyed as-is.
func PrefixKey(clientIP string) string {
	addr, err := netip.ParseAddr(clientIP)
	if err != nil {
		return "ip:" + clientIP
	}
	addr = addr.Unmap()
	if addr.Is4() {
		pfx, _ := addr.Prefix(24)
		return "v4:" + pfx.String()
	}
	pfx, _ := addr.Prefix(64)
	return "v6:" + pfx.String()
}

// BucketConfig configures a keyed token bucket.
type BucketConfig struct {
	Rate            float64       // Tokens replenished per second
	Burst           int           // Bucket capacity
	CleanupInterval time.Duration // How often idle keys are dropped
	MaxEntries      int           // Maximum tracked keys
}

// Bucket is a keyed token bucket. Each key starts full, spends one token per
// request and refills at Rate tokens per second up to Burst.
type Bucket struct {
	rate            float64
	burst           float64
	cleanupInterval time.Duration
	maxEntries      int
	now             func() time.Time

	mu          sync.Mutex
	lastCleanup time.Time
	lastSeen    map[string]time.Time
	tokens      map[string]float64
}

// NewBucket creates a Bucket. Rate or Burst <= 0 disables it.
func NewBucket(cfg BucketConfig) *Bucket {
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 1
	}
	ci := cfg.CleanupInterval
	if ci <= 0 {
		ci = time.Minute
	}
	return &Bucket{
		rate:            cfg.Rate,
		burst:           float64(cfg.Burst),
		cleanupInterval: ci,
		maxEntries:      maxEntries,
		now:             time.Now,
		lastCleanup:     time.Now(),
		lastSeen:        map[string]time.Time{},
		tokens:          map[string]float64{},
	}
}

// Allow consumes a token for key if one is available.
func (b *Bucket) Allow(key string) bool {
	if b == nil || b.rate <= 0 || b.burst <= 0 {
		return true
	}

	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	if now.Sub(b.lastCleanup) > b.cleanupInterval {
		b.cleanupLocked(now)
	}

	last, exists := b.lastSeen[key]
	if !exists {
		if len(b.lastSeen) >= b.maxEntries {
			b.cleanupLocked(now)
			if len(b.lastSeen) >= b.maxEntries {
				// Full of active keys; refuse newcomers.
				return false
			}
		}
		b.lastSeen[key] = now
		b.tokens[key] = b.burst - 1
		return true
	}

	tokens := b.tokens[key]
	if elapsed := now.Sub(last).Seconds(); elapsed > 0 {
		tokens = math.Min(b.burst, tokens+elapsed*b.rate)
	}
	b.lastSeen[key] = now

	if tokens >= 1 {
		b.tokens[key] = tokens - 1
		return true
	}
	b.tokens[key] = tokens
	return false
}

// Len returns the number of tracked keys.
func (b *Bucket) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lastSeen)
}

// cleanupLocked drops keys idle for a full cleanup interval. Caller holds b.mu.
func (b *Bucket) cleanupLocked(now time.Time) {
	staleBefore := now.Add(-b.cleanupInterval)
	for k, last := range b.lastSeen {
		if !last.After(staleBefore) {
			delete(b.lastSeen, k)
			delete(b.tokens, k)
		}
	}
	b.lastCleanup = now
}
