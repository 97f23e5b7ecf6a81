package mock

import (
	"context"

	"github.com/yardenlev/miluim"
)

var _ miluim.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of miluim.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RateLimiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
