package nautobot

import (
	"errors"
	"fmt"
)

// Kind classifies a terminal client failure.
type Kind string

const (
	KindAuthenticationFailure Kind = "authentication_failure"
	KindConnectionFailure     Kind = "connection_failure"
	KindRateLimitExceeded     Kind = "rate_limit_exceeded"
	KindNotFound              Kind = "not_found"
	KindClientError           Kind = "client_error"
	KindValidationFailure     Kind = "validation_failure"
	KindCancelled             Kind = "cancelled"
	KindTimeout               Kind = "timeout"
)

// ErrTLSVerification marks certificate verification failures so callers can
// tell them apart from generic connection failures. Requests that fail this
// way are never retried.
var ErrTLSVerification = errors.New("tls certificate verification failed")

// Error is the typed failure returned by every client operation. Op is the
// logical operation ("list_ip_addresses", "test_connection", ...), Status the
// last HTTP status observed (0 when the failure happened before any response)
// and Attempts how many requests were actually sent. The wrapped cause never
// contains the API token.
type Error struct {
	Op       string
	Kind     Kind
	Status   int
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("nautobot: %s: %s", e.Op, e.Kind)
	if e.Status > 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Attempts > 1 {
		msg += fmt.Sprintf(" after %d attempts", e.Attempts)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func errKind(err error) (Kind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return "", false
}

// IsNotFound reports whether err means "no such record".
func IsNotFound(err error) bool {
	k, ok := errKind(err)
	return ok && k == KindNotFound
}

// IsAuthFailure reports whether err was caused by a rejected credential
// (HTTP 401 or 403).
func IsAuthFailure(err error) bool {
	k, ok := errKind(err)
	return ok && k == KindAuthenticationFailure
}

// IsConnectionFailure reports whether err means the service was unreachable,
// TLS verification failures included. Use errors.Is(err, ErrTLSVerification)
// to single those out.
func IsConnectionFailure(err error) bool {
	k, ok := errKind(err)
	return ok && k == KindConnectionFailure
}

// IsRateLimited reports whether the retry budget was exhausted on repeated
// HTTP 429 responses.
func IsRateLimited(err error) bool {
	k, ok := errKind(err)
	return ok && k == KindRateLimitExceeded
}

// IsClientError reports whether the service rejected the request itself
// (malformed filter or identifier).
func IsClientError(err error) bool {
	k, ok := errKind(err)
	return ok && k == KindClientError
}

// IsValidationFailure reports whether a response body failed schema decode.
func IsValidationFailure(err error) bool {
	k, ok := errKind(err)
	return ok && k == KindValidationFailure
}

// IsCancelled reports whether the caller's context was cancelled while the
// operation was suspended.
func IsCancelled(err error) bool {
	k, ok := errKind(err)
	return ok && k == KindCancelled
}

// IsTimeout reports whether the caller's deadline expired.
func IsTimeout(err error) bool {
	k, ok := errKind(err)
	return ok && k == KindTimeout
}
