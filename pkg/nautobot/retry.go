package nautobot

import (
	"time"
)

// retryState drives the attempt loop in Client.get. Every logical request
// moves Attempting -> {Succeeded | Backoff | terminal return}; Backoff moves
// back to Attempting until the retry budget is spent, then Exhausted.
type retryState int

const (
	stateAttempting retryState = iota
	stateBackoff
	stateSucceeded
	stateExhausted
)

// retryPolicy is the budget for transient failures: maxRetries additional
// attempts after the first, with exponential backoff between them.
type retryPolicy struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultRetryBaseDelay,
		maxDelay:   defaultRetryMaxDelay,
	}
}

// delay returns the backoff before retry n (zero-based): baseDelay doubled n
// times, capped at maxDelay. Delays are deterministic and strictly increase
// until the cap.
func (p retryPolicy) delay(retry int) time.Duration {
	if retry < 0 {
		retry = 0
	}
	d := p.baseDelay
	for i := 0; i < retry; i++ {
		d *= 2
		if d >= p.maxDelay {
			return p.maxDelay
		}
	}
	if d > p.maxDelay {
		return p.maxDelay
	}
	return d
}
