// Package nautobot is the query client for a Nautobot network
// source-of-truth. Every operation runs the same pipeline: token-bucket rate
// limiting, one or more classified transport attempts with exponential
// backoff for transient failures, fail-closed decoding into typed records,
// and offset pagination. Callers get back well-formed records or a typed
// *Error; nothing unclassified crosses the package boundary.
package nautobot

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	urlutil "github.com/netfold/nautobot-mcp-server/pkg/util/url"
	"github.com/netfold/nautobot-mcp-server/pkg/version"
)

// Defaults and hard caps for the query surface.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 100

	DefaultListLimit   = 100
	MaxListLimit       = 1000
	DefaultSearchLimit = 50
	MaxSearchLimit     = 500

	defaultMaxRetries     = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
	defaultRetryMaxDelay  = 8 * time.Second
)

// API paths relative to the /api root.
const (
	ipAddressesPath = "/ipam/ip-addresses/"
	prefixesPath    = "/ipam/prefixes/"
	statusPath      = "/status/"
)

// Logical operation names carried on typed errors.
const (
	opListIPAddresses   = "list_ip_addresses"
	opListPrefixes      = "list_prefixes"
	opGetIPAddress      = "get_ip_address_by_id"
	opSearchIPAddresses = "search_ip_addresses"
	opTestConnection    = "test_connection"
	opIPAddressPage     = "get_ip_address_page"
	opPrefixPage        = "get_prefix_page"
)

// Config is the value object a Client consumes: where the service lives, the
// opaque bearer credential, and the transport ceilings. The credential is
// sent as an Authorization header and never appears in errors or logs.
type Config struct {
	BaseURL string
	Token   string
	// InsecureSkipVerify disables TLS certificate verification. Leave it
	// false outside of lab environments.
	InsecureSkipVerify bool
	// Timeout bounds each transport attempt. Zero means DefaultTimeout.
	Timeout time.Duration
	// RateLimit is the outbound ceiling in requests per minute. Zero means
	// DefaultRateLimit. Ignored when a shared limiter is injected.
	RateLimit int
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the transport, including its timeout and TLS
// settings. Mostly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLimiter shares an existing token bucket instead of building one from
// Config.RateLimit. Use it when several clients must stay under one ceiling.
func WithLimiter(l *Limiter) Option {
	return func(c *Client) {
		if l != nil {
			c.limiter = l
		}
	}
}

// WithMaxRetries overrides how many additional attempts follow a transient
// failure.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retry.maxRetries = n
		}
	}
}

// WithRetryBackoff overrides the backoff schedule: base doubles per retry up
// to max.
func WithRetryBackoff(base, max time.Duration) Option {
	return func(c *Client) {
		if base > 0 {
			c.retry.baseDelay = base
		}
		if max > 0 {
			c.retry.maxDelay = max
		}
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// Client is the query façade. One instance is safe for any number of
// concurrent callers; the token bucket is its only shared mutable state.
type Client struct {
	baseURL    string
	apiURL     string
	token      string
	httpClient *http.Client
	limiter    *Limiter
	retry      retryPolicy
	logger     zerolog.Logger
}

// NewClient validates cfg and builds a client. It does not touch the
// network; use TestConnection for that.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, errors.New("nautobot: base URL is required")
	}
	if cfg.Token == "" {
		return nil, errors.New("nautobot: API token is required")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("nautobot: invalid base URL %q: %w", base, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("nautobot: base URL %q must start with http:// or https://", base)
	}

	c := &Client{
		baseURL: urlutil.NormalizeBaseURL(base),
		apiURL:  urlutil.APIURL(base),
		token:   cfg.Token,
		retry:   defaultRetryPolicy(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.InsecureSkipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		c.httpClient = &http.Client{Timeout: timeout, Transport: transport}
	}
	if c.limiter == nil {
		c.limiter = NewLimiter(cfg.RateLimit)
	}
	return c, nil
}

// BaseURL returns the normalized service URL the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// ListIPAddresses returns up to f.Limit IP address records matching f
// (default 100, cap 1000), walking as many pages as the window needs.
func (c *Client) ListIPAddresses(ctx context.Context, f Filter) ([]IPAddress, error) {
	f = normalizeFilter(f, DefaultListLimit, MaxListLimit)
	return fetchAll(ctx, c, opListIPAddresses, ipAddressesPath, f, f.Limit, decodeIPAddress)
}

// ListPrefixes returns up to f.Limit prefix records matching f (default 100,
// cap 1000).
func (c *Client) ListPrefixes(ctx context.Context, f Filter) ([]Prefix, error) {
	f = normalizeFilter(f, DefaultListLimit, MaxListLimit)
	return fetchAll(ctx, c, opListPrefixes, prefixesPath, f, f.Limit, decodePrefix)
}

// GetIPAddressByID fetches one record by its server-assigned identifier.
// A 404 from the service surfaces as a typed NotFound error; check it with
// IsNotFound.
func (c *Client) GetIPAddressByID(ctx context.Context, id string) (*IPAddress, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &Error{Op: opGetIPAddress, Kind: KindClientError, Err: errors.New("id must not be empty")}
	}
	res, err := c.get(ctx, opGetIPAddress, ipAddressesPath+url.PathEscape(id)+"/", nil)
	if err != nil {
		return nil, err
	}
	rec, err := decodeIPAddress(res.body)
	if err != nil {
		return nil, &Error{Op: opGetIPAddress, Kind: KindValidationFailure, Status: res.status, Attempts: res.attempts, Err: err}
	}
	return &rec, nil
}

// SearchIPAddresses runs the service's free-text search over IP addresses.
// limit defaults to 50 and is capped at 500.
func (c *Client) SearchIPAddresses(ctx context.Context, query string, limit int) ([]IPAddress, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &Error{Op: opSearchIPAddresses, Kind: KindClientError, Err: errors.New("query must not be empty")}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	f := Filter{Query: query, Limit: limit}
	return fetchAll(ctx, c, opSearchIPAddresses, ipAddressesPath, f, f.Limit, decodeIPAddress)
}

// TestConnection probes the service's status endpoint once through the full
// pipeline. It returns nil iff the probe classified as success, otherwise
// the classified *Error: health checks get the real failure, never a bare
// boolean.
func (c *Client) TestConnection(ctx context.Context) error {
	_, err := c.get(ctx, opTestConnection, statusPath, nil)
	return err
}

// GetIPAddressPage fetches exactly one page of IP addresses, exposing the
// server's total count and a has-more flag.
func (c *Client) GetIPAddressPage(ctx context.Context, f Filter) (*Page[IPAddress], error) {
	f = normalizeFilter(f, DefaultListLimit, MaxListLimit)
	return fetchPage(ctx, c, opIPAddressPage, ipAddressesPath, f, decodeIPAddress)
}

// GetPrefixPage fetches exactly one page of prefixes.
func (c *Client) GetPrefixPage(ctx context.Context, f Filter) (*Page[Prefix], error) {
	f = normalizeFilter(f, DefaultListLimit, MaxListLimit)
	return fetchPage(ctx, c, opPrefixPage, prefixesPath, f, decodePrefix)
}

// response is the raw product of one request whose status classified as
// success. attempts counts every request sent for the logical call.
type response struct {
	status   int
	body     []byte
	attempts int
}

// get drives one logical GET through the rate limiter and the retry state
// machine. Transient outcomes (network timeout, 5xx, 429) loop through
// Backoff until the budget is spent; every other outcome returns
// immediately. Cancellation is observed at the limiter wait, the in-flight
// request, and the backoff sleep.
func (c *Client) get(ctx context.Context, op, path string, query url.Values) (*response, error) {
	var (
		state      = stateAttempting
		attempts   int
		lastStatus int
		lastErr    error
		res        *response
	)
	for {
		switch state {
		case stateAttempting:
			if err := c.limiter.Acquire(ctx); err != nil {
				kind := KindTimeout
				if errors.Is(err, context.Canceled) {
					kind = KindCancelled
				}
				return nil, &Error{Op: op, Kind: kind, Attempts: attempts, Err: err}
			}
			attempts++
			status, body, err := c.attempt(ctx, path, query)
			if err != nil {
				if ctx.Err() != nil {
					return nil, &Error{Op: op, Kind: ctxKind(ctx.Err()), Attempts: attempts, Err: ctx.Err()}
				}
				if isTLSVerificationError(err) {
					return nil, &Error{Op: op, Kind: KindConnectionFailure, Attempts: attempts, Err: fmt.Errorf("%w: %v", ErrTLSVerification, err)}
				}
				if isTransientNetErr(err) {
					lastStatus, lastErr = 0, err
					state = stateBackoff
					continue
				}
				return nil, &Error{Op: op, Kind: KindConnectionFailure, Attempts: attempts, Err: err}
			}
			switch classifyStatus(status) {
			case outcomeSuccess:
				res = &response{status: status, body: body, attempts: attempts}
				state = stateSucceeded
			case outcomeRetryable:
				lastStatus, lastErr = status, statusError(status, body)
				state = stateBackoff
			case outcomeAuth:
				return nil, &Error{Op: op, Kind: KindAuthenticationFailure, Status: status, Attempts: attempts, Err: statusError(status, body)}
			case outcomeNotFound:
				return nil, &Error{Op: op, Kind: KindNotFound, Status: status, Attempts: attempts, Err: statusError(status, body)}
			case outcomeClientError:
				return nil, &Error{Op: op, Kind: KindClientError, Status: status, Attempts: attempts, Err: statusError(status, body)}
			}

		case stateBackoff:
			if attempts > c.retry.maxRetries {
				state = stateExhausted
				continue
			}
			delay := c.retry.delay(attempts - 1)
			c.logger.Warn().
				Str("op", op).
				Int("attempt", attempts).
				Int("max_attempts", c.retry.maxRetries+1).
				Int("status", lastStatus).
				Dur("backoff", delay).
				Msg("transient failure, backing off")
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, &Error{Op: op, Kind: ctxKind(ctx.Err()), Status: lastStatus, Attempts: attempts, Err: ctx.Err()}
			case <-timer.C:
			}
			state = stateAttempting

		case stateSucceeded:
			return res, nil

		case stateExhausted:
			kind := KindConnectionFailure
			if lastStatus == http.StatusTooManyRequests {
				kind = KindRateLimitExceeded
			}
			return nil, &Error{Op: op, Kind: kind, Status: lastStatus, Attempts: attempts, Err: fmt.Errorf("retry budget exhausted: %w", lastErr)}
		}
	}
}

// attempt sends exactly one GET and reads the full body. It reports
// transport failures as-is for the caller to classify.
func (c *Client) attempt(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	endpoint := c.apiURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	c.logger.Debug().Str("url", endpoint).Msg("issuing request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// statusError builds the wrapped cause for a non-2xx response, including the
// service's detail message when the body carries one.
func statusError(status int, body []byte) error {
	if detail := errorDetail(body); detail != "" {
		return fmt.Errorf("server returned status %d: %s", status, detail)
	}
	return fmt.Errorf("server returned status %d", status)
}
