package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const visitorTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

// NewIPRateLimiter creates a limiter allowing rps requests per second per IP
// with the given burst. Idle visitors are evicted until ctx is done.
func NewIPRateLimiter(ctx context.Context, rps float64, burst int) *IPRateLimiter {
	rl := &IPRateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
	go rl.evictLoop(ctx)
	return rl
}

// Allow reports whether a request from ip may proceed now.
func (rl *IPRateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *IPRateLimiter) evict(olderThan time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if v.lastSeen.Before(olderThan) {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *IPRateLimiter) evictLoop(ctx context.Context) {
	ticker := time.NewTicker(visitorTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.evict(now.Add(-visitorTTL))
		}
	}
}

// RateLimit returns middleware that rejects requests over the per-IP limit
// with 429 and a Retry-After hint.
func RateLimit(rl *IPRateLimiter) func(http.Handler) http.Handler {
	retryAfter := "1"
	if rl.rps > 0 && rl.rps < 1 {
		retryAfter = strconv.Itoa(int(1/float64(rl.rps)) + 1)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !rl.Allow(ip) {
				w.Header().Set("Retry-After", retryAfter)
				writeJSONError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
