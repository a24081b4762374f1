package ratelimiter

import (
	"sync"
	"time"

	"github.com/suritel/worklog-api/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client within a fixed time
// window. Counters reset when the window rolls over.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
	enabled bool
	logger  *zap.SugaredLogger
}

type clientWindow struct {
	count      int
	windowEnds time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

func (rl *FixedWindowRateLimiter) Enabled() bool {
	return rl.enabled
}

// Allow reports whether the client may proceed and, when denied, how long
// until the current window resets.
func (rl *FixedWindowRateLimiter) Allow(clientID string) (bool, time.Duration) {
	if !rl.enabled {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cw, ok := rl.clients[clientID]
	if !ok || now.After(cw.windowEnds) {
		rl.clients[clientID] = &clientWindow{count: 1, windowEnds: now.Add(rl.window)}
		rl.cleanupLocked(now)
		return true, 0
	}

	if cw.count >= rl.limit {
		rl.logger.Debugf("Rate limit exceeded for client %s", clientID)
		return false, time.Until(cw.windowEnds)
	}

	cw.count++
	return true, 0
}

// cleanupLocked drops expired windows so the map does not grow unbounded.
// Caller must hold mu.
func (rl *FixedWindowRateLimiter) cleanupLocked(now time.Time) {
	if len(rl.clients) < 10000 {
		return
	}
	for id, cw := range rl.clients {
		if now.After(cw.windowEnds) {
			delete(rl.clients, id)
		}
	}
}
