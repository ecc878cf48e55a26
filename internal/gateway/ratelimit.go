package gateway

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const maxTrackedSenders = 4096

// rateLimiter throttles inbound messages per sender phone number. Limiter
// state for idle senders is evicted after a while so the map cannot grow
// unbounded on webhook floods.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func newRateLimiter(perMinute int) *rateLimiter {
	if perMinute <= 0 {
		return &rateLimiter{}
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedSenders, nil, 10*time.Minute),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
}

func (r *rateLimiter) allow(sender string) bool {
	if r.limiters == nil {
		return true
	}

	r.mu.Lock()
	limiter, ok := r.limiters.Get(sender)
	if !ok {
		limiter = rate.NewLimiter(r.limit, r.burst)
		r.limiters.Add(sender, limiter)
	}
	r.mu.Unlock()

	return limiter.Allow()
}
