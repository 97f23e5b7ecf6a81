package scan

import (
	"context"

	"github.com/yardenlev/miluim"
	"golang.org/x/time/rate"
)

var _ miluim.RateLimiter = (*Limiter)(nil)

// Limiter paces requests to the source host using a token bucket.
// All posts live on a single host, so one bucket is enough; a burst of
// 1 means strictly spaced requests.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a new Limiter with the given requests-per-second
// limit.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the rate limit allows another request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
