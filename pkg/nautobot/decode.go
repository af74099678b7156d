package nautobot

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"
)

// listEnvelope is the wire shape of every list response:
// {"count": N, "next": ..., "previous": ..., "results": [...]}.
// Count and Results use pointer/nil checks so a missing field can be told
// apart from a present-but-empty one.
type listEnvelope struct {
	Count    *int              `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []json.RawMessage `json:"results"`
}

var (
	errMissingCount   = errors.New("envelope is missing the count field")
	errMissingResults = errors.New("envelope is missing the results field")
)

// decodeEnvelope validates the list envelope itself. A malformed envelope
// fails the whole page decode; records are not inspected.
func decodeEnvelope(body []byte) (*listEnvelope, error) {
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("malformed list envelope: %w", err)
	}
	if env.Count == nil {
		return nil, errMissingCount
	}
	if env.Results == nil {
		return nil, errMissingResults
	}
	return &env, nil
}

// decodeIPAddress decodes and validates one IP address record. Decoding is
// fail closed: a record missing its identifier or address, or carrying an
// address that is not valid CIDR host notation, is an error for the whole
// decode call, never a silently dropped or coerced record.
func decodeIPAddress(raw json.RawMessage) (IPAddress, error) {
	var rec IPAddress
	if err := json.Unmarshal(raw, &rec); err != nil {
		return IPAddress{}, fmt.Errorf("malformed ip address record: %w", err)
	}
	if rec.ID == "" {
		return IPAddress{}, errors.New("ip address record is missing id")
	}
	if rec.Address == "" {
		return IPAddress{}, errors.New("ip address record is missing address")
	}
	if _, err := netip.ParsePrefix(rec.Address); err != nil {
		return IPAddress{}, fmt.Errorf("invalid address %q: %w", rec.Address, err)
	}
	return rec, nil
}

// decodePrefix decodes and validates one prefix record. The prefix must be a
// CIDR network with the network bits consistent with the mask; "10.0.1.0/8"
// is rejected even though it parses.
func decodePrefix(raw json.RawMessage) (Prefix, error) {
	var rec Prefix
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Prefix{}, fmt.Errorf("malformed prefix record: %w", err)
	}
	if rec.ID == "" {
		return Prefix{}, errors.New("prefix record is missing id")
	}
	if rec.Prefix == "" {
		return Prefix{}, errors.New("prefix record is missing prefix")
	}
	p, err := netip.ParsePrefix(rec.Prefix)
	if err != nil {
		return Prefix{}, fmt.Errorf("invalid prefix %q: %w", rec.Prefix, err)
	}
	if p.Masked() != p {
		return Prefix{}, fmt.Errorf("prefix %q has host bits set", rec.Prefix)
	}
	return rec, nil
}

// errorDetail pulls the service's {"detail": "..."} message out of a non-2xx
// body, if there is one. Used for error context only.
func errorDetail(body []byte) string {
	var d struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &d); err != nil {
		return ""
	}
	return d.Detail
}
