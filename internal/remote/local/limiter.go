package local

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const minSweep = 1024

// limiter hands out one token bucket per key. A zero burst disables limiting.
type limiter struct {
	mu      sync.Mutex
	every   rate.Limit
	burst   int
	buckets map[string]*rate.Limiter

	// buckets are swept once the map grows to sweepAt entries
	minSweep int
	sweepAt  int
}

func newLimiter(burst int, interval time.Duration) *limiter {
	every := rate.Inf
	if interval > 0 {
		every = rate.Every(interval)
	}
	return &limiter{
		every:    every,
		burst:    burst,
		buckets:  make(map[string]*rate.Limiter),
		minSweep: minSweep,
		sweepAt:  minSweep,
	}
}

func (l *limiter) allow(key string, now time.Time) bool {
	if l.burst <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= l.sweepAt {
			l.sweep(now)
		}
		bucket = rate.NewLimiter(l.every, l.burst)
		l.buckets[key] = bucket
	}
	return bucket.AllowN(now, 1)
}

// sweep drops buckets that have refilled, since a full bucket is the same as a new one.
func (l *limiter) sweep(now time.Time) {
	for key, bucket := range l.buckets {
		if bucket.TokensAt(now) >= float64(l.burst) {
			delete(l.buckets, key)
		}
	}
	l.sweepAt = max(l.minSweep, 2*len(l.buckets))
}
