package nautobot

import (
	"net/url"
	"strconv"
)

// Filter narrows list queries. All criteria are optional; the zero value
// selects everything with the service-side default window. Filters are
// passed by value so a query can never mutate its caller's copy.
type Filter struct {
	// Address matches IP addresses exactly ("10.0.0.1/24").
	Address string
	// Parent restricts IP addresses to those contained in a prefix.
	Parent string
	// Prefix matches prefix records exactly ("10.0.0.0/8").
	Prefix string
	// Query is the service's free-text search.
	Query  string
	Status string
	Role   string
	Tenant string
	VRF    string
	Site   string
	// Limit is the maximum number of records the caller wants. It is
	// clamped to the endpoint's hard cap; zero means the default window.
	Limit int
	// Offset is the zero-based index of the first record. Negative values
	// are treated as zero.
	Offset int
}

// withWindow returns a copy of f with the pagination window replaced.
func (f Filter) withWindow(limit, offset int) Filter {
	f.Limit = limit
	f.Offset = offset
	return f
}

// values renders the filter as wire query parameters. Empty criteria are
// omitted entirely rather than sent as empty strings.
func (f Filter) values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("address", f.Address)
	set("parent", f.Parent)
	set("prefix", f.Prefix)
	set("q", f.Query)
	set("status", f.Status)
	set("role", f.Role)
	set("tenant", f.Tenant)
	set("vrf", f.VRF)
	set("site", f.Site)
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		v.Set("offset", strconv.Itoa(f.Offset))
	}
	return v
}

// normalizeFilter applies the window invariants: a non-positive limit becomes
// def, a limit above max is clamped to max, and a negative offset becomes
// zero.
func normalizeFilter(f Filter, def, max int) Filter {
	if f.Limit <= 0 {
		f.Limit = def
	}
	if f.Limit > max {
		f.Limit = max
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
