package ratelimit

import (
	"sync"
	"time"

	"course-cart/internal/pkg/clock"

	"golang.org/x/time/rate"
)

// Limiter keeps one token bucket per key and forgets keys idle longer than expiry.
type Limiter struct {
	limit  rate.Limit
	burst  int
	expiry time.Duration
	clock  clock.Clock

	mu      sync.Mutex
	clients map[string]*clientLimiter

	stop     chan struct{}
	stopOnce sync.Once
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func New(limitRPS float64, burst int, expiry time.Duration, clk clock.Clock) *Limiter {
	return &Limiter{
		limit:   rate.Limit(limitRPS),
		burst:   burst,
		expiry:  expiry,
		clock:   clk,
		clients: make(map[string]*clientLimiter),
		stop:    make(chan struct{}),
	}
}

// Allow consumes one token for key.
func (l *Limiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = cl
	}
	cl.lastAccess = now
	return cl.limiter.AllowN(now, 1)
}

// Sweep drops keys whose last access is older than the expiry.
func (l *Limiter) Sweep() int {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, cl := range l.clients {
		if now.Sub(cl.lastAccess) > l.expiry {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// Run sweeps every interval until Stop is called.
func (l *Limiter) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func Every(interval time.Duration) float64 {
	return float64(rate.Every(interval))
}
