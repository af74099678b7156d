package ipam

import (
	"context"
	"fmt"

	"github.com/netfold/nautobot-mcp-server/pkg/nautobot"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset/handler"
)

// ipSummaryHeaders are the columns shown for IP address listings.
var ipSummaryHeaders = []string{"id", "address", "status", "dns_name"}

// ipDetailHeaders extend the summary with related objects and timestamps.
var ipDetailHeaders = []string{"id", "address", "status", "dns_name", "role", "tenant", "vrf", "description", "created", "last_updated"}

// ipToRow converts an IP address to a row map for list output.
func ipToRow(ip nautobot.IPAddress, includeDetails bool) map[string]string {
	row := map[string]string{
		"id":       ip.ID,
		"address":  ip.Address,
		"status":   ip.Status.Value,
		"dns_name": ip.DNSName,
	}
	if includeDetails {
		row["role"] = ip.Role.String()
		row["tenant"] = ip.Tenant.String()
		row["vrf"] = ip.VRF.String()
		row["description"] = ip.Description
		row["created"] = handler.FormatTime(ip.Created)
		row["last_updated"] = handler.FormatTime(ip.LastUpdated)
	}
	return row
}

// ipToDetailMap converts an IP address to a full map for single-record output.
func ipToDetailMap(ip *nautobot.IPAddress) map[string]interface{} {
	return map[string]interface{}{
		"id":           ip.ID,
		"url":          ip.URL,
		"address":      ip.Address,
		"status":       ip.Status.Value,
		"dns_name":     ip.DNSName,
		"role":         ip.Role.String(),
		"tenant":       ip.Tenant.String(),
		"vrf":          ip.VRF.String(),
		"description":  ip.Description,
		"created":      ip.Created,
		"last_updated": ip.LastUpdated,
	}
}

// ipHeaders returns the table headers matching the requested detail level.
func ipHeaders(includeDetails bool) []string {
	if includeDetails {
		return ipDetailHeaders
	}
	return ipSummaryHeaders
}

// getIPAddressesHandler handles the get_ip_addresses tool
func getIPAddressesHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
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
		Address: handler.ExtractOptionalString(params, handler.ParamAddress),
		Parent:  handler.ExtractOptionalString(params, handler.ParamPrefix),
		Status:  handler.ExtractOptionalString(params, handler.ParamStatus),
		Role:    handler.ExtractOptionalString(params, handler.ParamRole),
		Tenant:  handler.ExtractOptionalString(params, handler.ParamTenant),
		VRF:     handler.ExtractOptionalString(params, handler.ParamVRF),
		Limit:   handler.ExtractInt(params, handler.ParamLimit, 0),
		Offset:  handler.ExtractInt(params, handler.ParamOffset, 0),
	}

	ips, err := nautobotClient.ListIPAddresses(ctx, filter)
	if err != nil {
		return "", fmt.Errorf("failed to list IP addresses: %w", err)
	}

	rows := make([]map[string]string, len(ips))
	for i, ip := range ips {
		rows[i] = ipToRow(ip, includeDetails)
	}

	return handler.FormatOutput(rows, format, ipHeaders(includeDetails))
}

// getIPAddressByIDHandler handles the get_ip_address_by_id tool
func getIPAddressByIDHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	nautobotClient, err := validateClient(client)
	if err != nil {
		return "", err
	}

	ipID, err := handler.ExtractRequiredString(params, handler.ParamIPID)
	if err != nil {
		return "", err
	}

	format, err := handler.ExtractAndValidateFormat(params, "")
	if err != nil {
		return "", err
	}

	ip, err := nautobotClient.GetIPAddressByID(ctx, ipID)
	if err != nil {
		return "", fmt.Errorf("failed to get IP address %s: %w", ipID, err)
	}

	return handler.FormatSingleResult(ipToDetailMap(ip), format, "id", "address", "status", "dns_name", "role", "tenant", "vrf")
}

// searchIPAddressesHandler handles the search_ip_addresses tool
func searchIPAddressesHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	nautobotClient, err := validateClient(client)
	if err != nil {
		return "", err
	}

	query, err := handler.ExtractRequiredString(params, handler.ParamQuery)
	if err != nil {
		return "", err
	}

	format, err := handler.ExtractAndValidateFormat(params, "")
	if err != nil {
		return "", err
	}
	includeDetails := handler.ExtractBool(params, handler.ParamIncludeDetails, false)
	limit := handler.ExtractInt(params, handler.ParamLimit, 0)

	ips, err := nautobotClient.SearchIPAddresses(ctx, query, limit)
	if err != nil {
		return "", fmt.Errorf("failed to search IP addresses: %w", err)
	}

	rows := make([]map[string]string, len(ips))
	for i, ip := range ips {
		rows[i] = ipToRow(ip, includeDetails)
	}

	return handler.FormatOutput(rows, format, ipHeaders(includeDetails))
}
