package gateway

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/repository"
)

var _ repository.RateLimiter = (*IPRateLimiter)(nil)

// IPRateLimiter throttles websocket upgrades per remote IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(perSecond float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*ipLimiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

func (l *IPRateLimiter) Allow(ip string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
		l.evictIdle(now)
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1), nil
}

// callers hold l.mu
func (l *IPRateLimiter) evictIdle(now time.Time) {
	for ip, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > l.idleTTL && !entry.lastSeen.IsZero() {
			delete(l.limiters, ip)
		}
	}
}
