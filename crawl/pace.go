// Package crawl orchestrates harvesting and extraction against the origin
// site: per-year index fallback, manifest aggregation, and the sequential,
// rate-limited, idempotent extraction run.
package crawl

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/time/rate"
)

// Default jitter bounds between network-bound iterations.
const (
	DefaultJitterMin = 300 * time.Millisecond
	DefaultJitterMax = 600 * time.Millisecond
)

// Pacer bounds the request rate against the origin. A token bucket enforces
// the configured requests-per-second ceiling; a bounded random jitter is
// added on top of each wait. Processing is sequential, so the pacer is the
// sole rate-limiting mechanism.
type Pacer struct {
	limiter   *rate.Limiter
	jitterMin time.Duration
	jitterMax time.Duration
}

// NewPacer creates a Pacer with the given requests-per-second ceiling and
// jitter bounds. A burst of 1 disallows bursting entirely.
func NewPacer(rps float64, jitterMin, jitterMax time.Duration) *Pacer {
	if jitterMax < jitterMin {
		jitterMax = jitterMin
	}
	return &Pacer{
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		jitterMin: jitterMin,
		jitterMax: jitterMax,
	}
}

// Wait blocks for the rate limiter plus a random jitter in the configured
// bounds. Returns early with the context error on cancellation.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	jitter := p.jitterMin
	if span := p.jitterMax - p.jitterMin; span > 0 {
		jitter += time.Duration(rand.Int63n(int64(span)))
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(jitter):
		return nil
	}
}
