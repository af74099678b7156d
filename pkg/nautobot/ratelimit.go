package nautobot

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter bounds the outbound request rate with a token bucket: capacity
// perMinute tokens, refilled continuously at perMinute/60 tokens per second.
// One Limiter may be shared by any number of concurrent callers; token
// accounting is atomic, tokens are never lost or double spent. A Limiter is
// an explicitly owned value, not a process-wide singleton: construct one and
// hand it to every client that must share the ceiling.
type Limiter struct {
	bucket *rate.Limiter
}

// NewLimiter returns a limiter admitting at most perMinute requests per
// rolling minute. Non-positive values fall back to DefaultRateLimit.
func NewLimiter(perMinute int) *Limiter {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	return &Limiter{
		bucket: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
	}
}

// Acquire blocks until one more outbound request may be issued, then debits
// one token. It returns ctx.Err() as soon as ctx is cancelled; no token is
// spent in that case.
func (l *Limiter) Acquire(ctx context.Context) error {
	return l.bucket.Wait(ctx)
}

// Allow debits one token without blocking and reports whether it could.
func (l *Limiter) Allow() bool {
	return l.bucket.Allow()
}
