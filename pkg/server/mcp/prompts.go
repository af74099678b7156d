package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/netfold/nautobot-mcp-server/pkg/logging"
	"github.com/netfold/nautobot-mcp-server/pkg/nautobot"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset/handler"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset/ipam/capacity"
)

const (
	// promptRecordLimit caps how many address records are embedded in a prompt.
	promptRecordLimit = 50
	// promptPrefixLimit caps how many prefixes the utilization prompt analyzes.
	promptPrefixLimit = 20
)

// registerPrompts registers reusable prompt templates with the server
func (s *Server) registerPrompts() {
	s.server.AddPrompt(mcp.NewPrompt(
		"ip-summary-report",
		mcp.WithPromptDescription("Summarize the IP address inventory, optionally scoped to a single prefix"),
		mcp.WithArgument("prefix",
			mcp.ArgumentDescription("Limit the report to addresses inside this prefix, e.g. 10.0.0.0/24"),
		),
	), s.ipSummaryPrompt)

	s.server.AddPrompt(mcp.NewPrompt(
		"network-utilization",
		mcp.WithPromptDescription("Analyze prefix utilization and point out pools close to exhaustion"),
		mcp.WithArgument("site",
			mcp.ArgumentDescription("Limit the analysis to prefixes at this site"),
		),
		mcp.WithArgument("prefix",
			mcp.ArgumentDescription("Limit the analysis to this prefix"),
		),
	), s.networkUtilizationPrompt)

	logging.Info("Registered prompts: ip-summary-report, network-utilization")
}

func (s *Server) ipSummaryPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	if s.client == nil {
		return nil, fmt.Errorf("nautobot client not configured")
	}

	prefix := request.Params.Arguments["prefix"]
	addresses, err := s.client.ListIPAddresses(ctx, nautobot.Filter{
		Parent: prefix,
		Limit:  promptRecordLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch IP addresses: %w", err)
	}

	scope := "the Nautobot inventory"
	if prefix != "" {
		scope = fmt.Sprintf("prefix %s", prefix)
	}

	rows := make([]map[string]string, len(addresses))
	for i, ip := range addresses {
		rows[i] = map[string]string{
			"address":  ip.Address,
			"status":   ip.Status.Value,
			"dns_name": ip.DNSName,
			"role":     ip.Role.String(),
			"tenant":   ip.Tenant.String(),
		}
	}
	table := handler.FormatAsTable(rows, []string{"address", "status", "dns_name", "role", "tenant"})

	text := fmt.Sprintf(
		"Here are up to %d IP address records from %s:\n\n%s\n\n"+
			"Write a short report covering the status mix, naming coverage (dns_name), "+
			"and anything unusual such as deprecated or reserved addresses still in use.",
		promptRecordLimit, scope, table)

	return mcp.NewGetPromptResult(
		fmt.Sprintf("IP address summary for %s", scope),
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}

func (s *Server) networkUtilizationPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	if s.client == nil {
		return nil, fmt.Errorf("nautobot client not configured")
	}

	site := request.Params.Arguments["site"]
	prefix := request.Params.Arguments["prefix"]

	analyzer := capacity.NewAnalyzer(s.client)
	result, err := analyzer.Analyze(ctx, capacity.Params{
		Prefix: prefix,
		Site:   site,
		Limit:  promptPrefixLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze utilization: %w", err)
	}

	table, err := capacity.FormatResult(result, handler.FormatTable)
	if err != nil {
		return nil, fmt.Errorf("failed to format utilization: %w", err)
	}

	scope := "all prefixes"
	switch {
	case prefix != "":
		scope = fmt.Sprintf("prefix %s", prefix)
	case site != "":
		scope = fmt.Sprintf("site %s", site)
	}

	text := fmt.Sprintf(
		"Here is the current address utilization for %s:\n\n%s\n\n"+
			"Identify prefixes above 80%% utilization, estimate how much headroom remains, "+
			"and recommend where new allocations should come from.",
		scope, table)

	return mcp.NewGetPromptResult(
		fmt.Sprintf("Network utilization analysis for %s", scope),
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
		},
	), nil
}
