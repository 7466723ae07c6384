package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"stayhub-backend/utils"
)

// limiterIdleTTL is how long an IP's bucket survives without traffic
// before a sweep drops it.
const limiterIdleTTL = 3 * time.Minute

type ipLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// limiterTable holds one token bucket per client IP. Idle entries are
// swept on access so a scan of spoofed addresses cannot grow the map
// without bound.
type limiterTable struct {
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	entries   map[string]*ipLimiter
}

func newLimiterTable(r rate.Limit, burst int, idleTTL time.Duration) *limiterTable {
	return &limiterTable{
		rate:    r,
		burst:   burst,
		idleTTL: idleTTL,
		entries: map[string]*ipLimiter{},
	}
}

func (t *limiterTable) get(ip string, now time.Time) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	if now.Sub(t.lastSweep) >= t.idleTTL {
		for k, e := range t.entries {
			if now.Sub(e.lastSeen) >= t.idleTTL {
				delete(t.entries, k)
			}
		}
		t.lastSweep = now
	}

	e, ok := t.entries[ip]
	if !ok {
		e = &ipLimiter{lim: rate.NewLimiter(t.rate, t.burst)}
		t.entries[ip] = e
	}
	e.lastSeen = now
	return e.lim
}

func (t *limiterTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// RateLimit applies a per-client-IP token bucket. Used on the auth
// endpoints to slow down credential guessing.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	table := newLimiterTable(r, burst, limiterIdleTTL)

	return func(c *gin.Context) {
		if !table.get(c.ClientIP(), time.Now()).Allow() {
			utils.JSONError(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
