package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter hands out a token bucket per client key (the caller's IP) and
// evicts buckets that have been idle for a while.
type Limiter struct {
	rate     rate.Limit
	burst    int
	mu       sync.Mutex
	visitors map[string]*clientLimiter
}

func NewLimiter(perSecond, burst int) *Limiter {
	return &Limiter{
		rate:     rate.Limit(perSecond),
		burst:    burst,
		visitors: make(map[string]*clientLimiter),
	}
}

// Visitor returns the bucket for key, creating one on first sight.
func (l *Limiter) Visitor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(l.rate, l.burst)
		l.visitors[key] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartVisitorCleanupLoop drops buckets idle for over five minutes. Run it
// on its own goroutine.
func (l *Limiter) StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		l.mu.Lock()
		for key, v := range l.visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(l.visitors, key)
			}
		}
		l.mu.Unlock()
	}
}
