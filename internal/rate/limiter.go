package rate

import (
	"sync"
	"time"
)

// Limiter is a per-client token bucket with fixed rps and burst.
type Limiter struct {
	mu      sync.Mutex
	rps     float64
	burst   float64
	clients map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewLimiter creates a limiter refilling rps tokens per second up to burst.
func NewLimiter(rps, burst int) *Limiter {
	if rps <= 0 {
		rps = 10
	}
	if burst < rps {
		burst = rps
	}
	return &Limiter{
		rps:     float64(rps),
		burst:   float64(burst),
		clients: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow consumes one token for client if available.
func (l *Limiter) Allow(client string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.clients[client]
	if !ok {
		l.clients[client] = &bucket{tokens: l.burst - 1, last: now}
		return true
	}

	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = min(l.burst, b.tokens+elapsed*l.rps)
		b.last = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Sweep forgets clients idle for longer than idle and returns how many were
// dropped. A forgotten client starts again with a full bucket, which is what
// it would have refilled to anyway once idle > burst/rps.
func (l *Limiter) Sweep(idle time.Duration) int {
	cutoff := l.now().Add(-idle)

	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for k, b := range l.clients {
		if b.last.Before(cutoff) {
			delete(l.clients, k)
			n++
		}
	}
	return n
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
