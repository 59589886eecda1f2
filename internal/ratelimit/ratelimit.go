package ratelimit

//go:generate mockgen -package=mocks -destination=mocks/mock_limiter.go github.com/wheelparty/chaoswheel/internal/ratelimit Limiter

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/wheelparty/chaoswheel/internal/common/clock"
)

// Decision is the outcome of one rate limit check
type Decision struct {
	// OK reports whether the request may proceed
	OK bool

	// RetryAfter is how long the caller should wait before retrying,
	// zero when OK
	RetryAfter time.Duration
}

// Limiter gates requests per key
type Limiter interface {
	Allow(key string) Decision
}

// Config holds the token bucket parameters
type Config struct {
	// Limit is the bucket capacity and the sustained rate per Interval
	Limit int

	// Interval is the window over which Limit tokens refill
	Interval time.Duration

	Clock clock.Clock
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// TokenBucket is an in-memory, continuously refilling token bucket per
// key. A full bucket allows a burst of Limit requests; after that,
// tokens refill at Limit per Interval.
type TokenBucket struct {
	limit    float64
	interval time.Duration
	clock    clock.Clock

	mu      sync.Mutex
	buckets map[string]*bucket
}

// New creates a token bucket limiter
func New(cfg *Config) (*TokenBucket, error) {
	if cfg == nil || cfg.Limit <= 0 || cfg.Interval <= 0 {
		return nil, errors.New("limit and interval must be positive")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	return &TokenBucket{
		limit:    float64(cfg.Limit),
		interval: cfg.Interval,
		clock:    cfg.Clock,
		buckets:  make(map[string]*bucket),
	}, nil
}

// Allow consumes one token for the key if available
func (t *TokenBucket) Allow(key string) Decision {
	now := t.clock.Now()
	perNano := t.limit / float64(t.interval.Nanoseconds())

	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{tokens: t.limit, lastRefill: now}
		t.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefill)
	if elapsed > 0 {
		b.tokens = math.Min(t.limit, b.tokens+float64(elapsed.Nanoseconds())*perNano)
	}
	b.lastRefill = now

	if b.tokens < 1 {
		wait := time.Duration(math.Ceil((1 - b.tokens) / perNano))
		return Decision{RetryAfter: wait}
	}

	b.tokens--
	return Decision{OK: true}
}
