package ipam

import (
	"context"
	"fmt"
	"strconv"

	"github.com/netfold/nautobot-mcp-server/pkg/nautobot"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset/handler"
)

// prefixSummaryHeaders are the columns shown for prefix listings.
var prefixSummaryHeaders = []string{"id", "prefix", "status", "site", "is_pool"}

// prefixDetailHeaders extend the summary with related objects and timestamps.
var prefixDetailHeaders = []string{"id", "prefix", "status", "site", "is_pool", "role", "tenant", "vrf", "description", "created", "last_updated"}

// prefixToRow converts a prefix to a row map for list output.
func prefixToRow(p nautobot.Prefix, includeDetails bool) map[string]string {
	row := map[string]string{
		"id":      p.ID,
		"prefix":  p.Prefix,
		"status":  p.Status.Value,
		"site":    p.Site.String(),
		"is_pool": strconv.FormatBool(p.IsPool),
	}
	if includeDetails {
		row["role"] = p.Role.String()
		row["tenant"] = p.Tenant.String()
		row["vrf"] = p.VRF.String()
		row["description"] = p.Description
		row["created"] = handler.FormatTime(p.Created)
		row["last_updated"] = handler.FormatTime(p.LastUpdated)
	}
	return row
}

// prefixHeaders returns the table headers matching the requested detail level.
func prefixHeaders(includeDetails bool) []string {
	if includeDetails {
		return prefixDetailHeaders
	}
	return prefixSummaryHeaders
}

// getPrefixesHandler handles the get_prefixes tool
func getPrefixesHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	nautobotClient, err := validateClient(client)
	if err != nil {
		return "", err
	}

	format, err := handler.ExtractAndValidateFormat(params, "")
	if err != nil {
		return "", err
	}
	includeDetails := handler.ExtractBool(params, handler.ParamIncludeDetails, false)

	filter := nautobot.Filter{
		Prefix: handler.ExtractOptionalString(params, handler.ParamPrefix),
		Status: handler.ExtractOptionalString(params, handler.ParamStatus),
		Role:   handler.ExtractOptionalString(params, handler.ParamRole),
		Tenant: handler.ExtractOptionalString(params, handler.ParamTenant),
		VRF:    handler.ExtractOptionalString(params, handler.ParamVRF),
		Site:   handler.ExtractOptionalString(params, handler.ParamSite),
		Limit:  handler.ExtractInt(params, handler.ParamLimit, 0),
		Offset: handler.ExtractInt(params, handler.ParamOffset, 0),
	}

	prefixes, err := nautobotClient.ListPrefixes(ctx, filter)
	if err != nil {
		return "", fmt.Errorf("failed to list prefixes: %w", err)
	}

	rows := make([]map[string]string, len(prefixes))
	for i, p := range prefixes {
		rows[i] = prefixToRow(p, includeDetails)
	}

	return handler.FormatOutput(rows, format, prefixHeaders(includeDetails))
}
