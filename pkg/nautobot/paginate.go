package nautobot

import (
	"context"
	"encoding/json"
	"fmt"
)

// fetchPage issues one rate-limited, classified list request and decodes the
// envelope fail closed: a malformed envelope or any malformed record fails
// the whole page with a validation failure.
func fetchPage[T any](ctx context.Context, c *Client, op, path string, f Filter, decode func(json.RawMessage) (T, error)) (*Page[T], error) {
	res, err := c.get(ctx, op, path, f.values())
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(res.body)
	if err != nil {
		return nil, &Error{Op: op, Kind: KindValidationFailure, Status: res.status, Attempts: res.attempts, Err: err}
	}
	records := make([]T, 0, len(env.Results))
	for i, raw := range env.Results {
		rec, err := decode(raw)
		if err != nil {
			return nil, &Error{Op: op, Kind: KindValidationFailure, Status: res.status, Attempts: res.attempts, Err: fmt.Errorf("record %d: %w", f.Offset+i, err)}
		}
		records = append(records, rec)
	}
	hasMore := f.Offset+len(records) < *env.Count
	if env.Next != nil && *env.Next != "" {
		hasMore = true
	}
	return &Page[T]{Records: records, Count: *env.Count, HasMore: hasMore}, nil
}

// fetchAll walks successive pages in strictly increasing offset order until
// the window is filled, the server runs out of records, or a page fails.
// At most maxRecords records come back and no page beyond the bound is ever
// requested. A failed page surfaces its error; there is no silent
// truncation. The walk trusts each page's own count/has-more signals and
// does not re-validate that the server-reported total stayed stable across
// pages; concurrent writers on the remote side can shift it.
func fetchAll[T any](ctx context.Context, c *Client, op, path string, f Filter, maxRecords int, decode func(json.RawMessage) (T, error)) ([]T, error) {
	if maxRecords <= 0 {
		maxRecords = f.Limit
	}
	out := make([]T, 0, maxRecords)
	offset := f.Offset
	for {
		remaining := maxRecords - len(out)
		page, err := fetchPage(ctx, c, op, path, f.withWindow(remaining, offset), decode)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Records...)
		if len(out) >= maxRecords {
			return out[:maxRecords], nil
		}
		if !page.HasMore || len(page.Records) == 0 {
			return out, nil
		}
		offset += len(page.Records)
	}
}
