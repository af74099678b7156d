package nautobot

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"net/http"
)

// outcome is the per-attempt classification that drives the retry loop.
type outcome int

const (
	outcomeSuccess outcome = iota
	// outcomeRetryable covers network timeouts, HTTP 5xx and HTTP 429.
	outcomeRetryable
	outcomeAuth
	outcomeNotFound
	outcomeClientError
)

// classifyStatus maps one HTTP status to an outcome. 2xx classifies as
// success here; body decode can still fail the call later with a
// validation failure.
func classifyStatus(status int) outcome {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return outcomeAuth
	case status == http.StatusNotFound:
		return outcomeNotFound
	case status == http.StatusTooManyRequests:
		return outcomeRetryable
	case status >= 500:
		return outcomeRetryable
	case status >= 400:
		return outcomeClientError
	default:
		return outcomeSuccess
	}
}

// isTLSVerificationError reports whether err was caused by certificate
// verification. These are terminal: retrying cannot make an untrusted
// certificate trusted.
func isTLSVerificationError(err error) bool {
	var certVerify *tls.CertificateVerificationError
	if errors.As(err, &certVerify) {
		return true
	}
	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return true
	}
	var hostname x509.HostnameError
	if errors.As(err, &hostname) {
		return true
	}
	var invalid x509.CertificateInvalidError
	return errors.As(err, &invalid)
}

// isTransientNetErr reports whether a transport failure is worth retrying.
// Only timeouts qualify; refused or reset connections surface immediately as
// connection failures.
func isTransientNetErr(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ctxKind maps a context error to its terminal kind. The caller must only
// use this when ctx.Err() is non-nil.
func ctxKind(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindCancelled
}
