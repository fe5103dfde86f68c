package health

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"
)

// DefaultTTL is how long a probe result is reused before re-pinging the store.
const DefaultTTL = 10 * time.Second

// PingFunc probes a backend dependency.
type PingFunc func(ctx context.Context) error

// Checker caches the result of a connectivity probe for a TTL, so request
// handling can gate on store availability without pinging per request.
type Checker struct {
	ping PingFunc
	ttl  time.Duration

	mu      sync.Mutex
	checked time.Time
	healthy bool
}

// New creates a checker around an arbitrary probe.
func New(ping PingFunc, ttl time.Duration) *Checker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Checker{ping: ping, ttl: ttl}
}

// NewDB creates a checker that pings the underlying SQL connection.
func NewDB(gormDB *gorm.DB, ttl time.Duration) *Checker {
	return New(func(ctx context.Context) error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}, ttl)
}

// Healthy reports whether the dependency was reachable at the last probe,
// re-probing when the cached result is older than the TTL.
func (c *Checker) Healthy(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Since(c.checked) < c.ttl {
		return c.healthy
	}

	c.healthy = c.ping(ctx) == nil
	c.checked = time.Now()
	return c.healthy
}
