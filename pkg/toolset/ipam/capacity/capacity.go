// Package capacity computes address capacity and utilization for network prefixes.
package capacity

import (
	"context"
	"fmt"
	"math/big"
	"net/netip"

	"go4.org/netipx"
	"golang.org/x/sync/errgroup"

	"github.com/netfold/nautobot-mcp-server/pkg/nautobot"
)

// fetchConcurrency bounds parallel per-prefix count queries.
const fetchConcurrency = 4

// Client captures the Nautobot operations the analyzer relies on.
type Client interface {
	ListPrefixes(ctx context.Context, f nautobot.Filter) ([]nautobot.Prefix, error)
	GetIPAddressPage(ctx context.Context, f nautobot.Filter) (*nautobot.Page[nautobot.IPAddress], error)
}

// Params controls which prefixes are analyzed.
type Params struct {
	Prefix string
	Site   string
	Tenant string
	Status string
	Limit  int
}

// PrefixUtilization describes how heavily one prefix is used.
type PrefixUtilization struct {
	Prefix      string  `json:"prefix" yaml:"prefix"`
	Status      string  `json:"status" yaml:"status"`
	Site        string  `json:"site,omitempty" yaml:"site,omitempty"`
	FirstUsable string  `json:"first_usable" yaml:"first_usable"`
	LastUsable  string  `json:"last_usable" yaml:"last_usable"`
	Usable      string  `json:"usable" yaml:"usable"`
	Assigned    int     `json:"assigned" yaml:"assigned"`
	Percent     float64 `json:"percent" yaml:"percent"`
}

// Result aggregates utilization across the analyzed prefixes.
type Result struct {
	Prefixes      []PrefixUtilization `json:"prefixes" yaml:"prefixes"`
	TotalAssigned int                 `json:"total_assigned" yaml:"total_assigned"`
}

// Analyzer computes prefix utilization against a Nautobot instance.
type Analyzer struct {
	client Client
}

// NewAnalyzer creates a new utilization analyzer.
func NewAnalyzer(client Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze fetches matching prefixes and counts assigned addresses in each.
// Counts are fetched concurrently; the first failure aborts the analysis.
func (a *Analyzer) Analyze(ctx context.Context, p Params) (*Result, error) {
	prefixes, err := a.client.ListPrefixes(ctx, nautobot.Filter{
		Prefix: p.Prefix,
		Site:   p.Site,
		Tenant: p.Tenant,
		Status: p.Status,
		Limit:  p.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list prefixes: %w", err)
	}

	utilizations := make([]PrefixUtilization, len(prefixes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, pfx := range prefixes {
		g.Go(func() error {
			// A single-record page is enough: only the total count matters.
			page, err := a.client.GetIPAddressPage(gctx, nautobot.Filter{Parent: pfx.Prefix, Limit: 1})
			if err != nil {
				return fmt.Errorf("failed to count addresses in %s: %w", pfx.Prefix, err)
			}
			u, err := buildUtilization(pfx, page.Count)
			if err != nil {
				return err
			}
			utilizations[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Prefixes: utilizations}
	for _, u := range utilizations {
		result.TotalAssigned += u.Assigned
	}
	return result, nil
}

// buildUtilization derives capacity figures for a single prefix.
func buildUtilization(pfx nautobot.Prefix, assigned int) (PrefixUtilization, error) {
	p, err := netip.ParsePrefix(pfx.Prefix)
	if err != nil {
		return PrefixUtilization{}, fmt.Errorf("prefix %q is not valid CIDR: %w", pfx.Prefix, err)
	}

	usable := UsableAddresses(p)
	first, last := UsableRange(p)

	return PrefixUtilization{
		Prefix:      pfx.Prefix,
		Status:      pfx.Status.Value,
		Site:        pfx.Site.String(),
		FirstUsable: first.String(),
		LastUsable:  last.String(),
		Usable:      usable.String(),
		Assigned:    assigned,
		Percent:     utilizationPercent(assigned, usable),
	}, nil
}

// UsableAddresses returns the number of assignable addresses in a prefix.
// IPv4 prefixes shorter than /31 exclude the network and broadcast
// addresses; /31 and /32 are fully usable per RFC 3021.
func UsableAddresses(p netip.Prefix) *big.Int {
	host := p.Addr().BitLen() - p.Bits()
	total := new(big.Int).Lsh(big.NewInt(1), uint(host))
	if p.Addr().Is4() && p.Bits() < 31 {
		total.Sub(total, big.NewInt(2))
	}
	return total
}

// UsableRange returns the first and last assignable addresses of a prefix.
func UsableRange(p netip.Prefix) (netip.Addr, netip.Addr) {
	r := netipx.RangeOfPrefix(p)
	first, last := r.From(), r.To()
	if p.Addr().Is4() && p.Bits() < 31 {
		first = first.Next()
		last = last.Prev()
	}
	return first, last
}

// utilizationPercent computes assigned/usable as a percentage.
func utilizationPercent(assigned int, usable *big.Int) float64 {
	if usable.Sign() <= 0 {
		return 0
	}
	ratio := new(big.Float).Quo(
		new(big.Float).SetInt64(int64(assigned)),
		new(big.Float).SetInt(usable),
	)
	percent, _ := ratio.Float64()
	return percent * 100
}
