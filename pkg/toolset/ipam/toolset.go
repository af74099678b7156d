package ipam

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/netfold/nautobot-mcp-server/pkg/toolset"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset/handler"
)

// Toolset implements the Nautobot IPAM toolset
type Toolset struct{}

var _ toolset.Toolset = (*Toolset)(nil)

// formatProperty is the shared schema for the format parameter
// used across tool definitions.
var formatProperty = map[string]any{
	"type":        "string",
	"description": "Output format: json, table, or yaml",
	"enum":        []string{"json", "table", "yaml"},
	"default":     "json",
}

// includeDetailsProperty is the shared schema for the include_details parameter.
var includeDetailsProperty = map[string]any{
	"type":        "boolean",
	"description": "Include role, tenant, VRF and timestamp fields in the output",
	"default":     false,
}

// GetName returns the name of the toolset
func (t *Toolset) GetName() string {
	return "ipam"
}

// GetDescription returns the description of the toolset
func (t *Toolset) GetDescription() string {
	return "Nautobot IPAM operations for querying IP addresses and network prefixes"
}

// GetTools returns the tools provided by this toolset
func (t *Toolset) GetTools(client interface{}) []toolset.ServerTool {
	return []toolset.ServerTool{
		{
			Tool: mcp.Tool{
				Name:        "get_ip_addresses",
				Description: "List IP addresses from Nautobot. Supports filtering by address, parent prefix, status, role, tenant, and VRF.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"address": map[string]any{
							"type":        "string",
							"description": "Filter by exact address (e.g., 10.0.0.1 or 10.0.0.1/24)",
							"default":     "",
						},
						"prefix": map[string]any{
							"type":        "string",
							"description": "Filter by parent prefix in CIDR notation (e.g., 10.0.0.0/24)",
							"default":     "",
						},
						"status": map[string]any{
							"type":        "string",
							"description": "Filter by status (e.g., active, reserved, deprecated)",
							"default":     "",
						},
						"role": map[string]any{
							"type":        "string",
							"description": "Filter by role name",
							"default":     "",
						},
						"tenant": map[string]any{
							"type":        "string",
							"description": "Filter by tenant name",
							"default":     "",
						},
						"vrf": map[string]any{
							"type":        "string",
							"description": "Filter by VRF name",
							"default":     "",
						},
						"limit": map[string]any{
							"type":        "integer",
							"description": "Maximum number of records to return (default 100, maximum 1000)",
							"default":     100,
						},
						"offset": map[string]any{
							"type":        "integer",
							"description": "Number of records to skip before returning results",
							"default":     0,
						},
						"format":          formatProperty,
						"include_details": includeDetailsProperty,
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:     handler.BoolPtr(true),
				RequiresNautobot: handler.BoolPtr(true),
			},
			Handler: getIPAddressesHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_prefixes",
				Description: "List network prefixes from Nautobot. Supports filtering by prefix, status, role, tenant, VRF, and site.",
				InputSchema: mcp.ToolInputSchema{
					Type: "object",
					Properties: map[string]any{
						"prefix": map[string]any{
							"type":        "string",
							"description": "Filter by exact prefix in CIDR notation (e.g., 10.0.0.0/16)",
							"default":     "",
						},
						"status": map[string]any{
							"type":        "string",
							"description": "Filter by status (e.g., active, container, reserved)",
							"default":     "",
						},
						"role": map[string]any{
							"type":        "string",
							"description": "Filter by role name",
							"default":     "",
						},
						"tenant": map[string]any{
							"type":        "string",
							"description": "Filter by tenant name",
							"default":     "",
						},
						"vrf": map[string]any{
							"type":        "string",
							"description": "Filter by VRF name",
							"default":     "",
						},
						"site": map[string]any{
							"type":        "string",
							"description": "Filter by site name",
							"default":     "",
						},
						"limit": map[string]any{
							"type":        "integer",
							"description": "Maximum number of records to return (default 100, maximum 1000)",
							"default":     100,
						},
						"offset": map[string]any{
							"type":        "integer",
							"description": "Number of records to skip before returning results",
							"default":     0,
						},
						"format":          formatProperty,
						"include_details": includeDetailsProperty,
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:     handler.BoolPtr(true),
				RequiresNautobot: handler.BoolPtr(true),
			},
			Handler: getPrefixesHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "get_ip_address_by_id",
				Description: "Get a single IP address record by its Nautobot ID.",
				InputSchema: mcp.ToolInputSchema{
					Type:     "object",
					Required: []string{"ip_id"},
					Properties: map[string]any{
						"ip_id": map[string]any{
							"type":        "string",
							"description": "Nautobot ID (UUID) of the IP address record",
						},
						"format": formatProperty,
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:     handler.BoolPtr(true),
				RequiresNautobot: handler.BoolPtr(true),
			},
			Handler: getIPAddressByIDHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "search_ip_addresses",
				Description: "Search IP addresses by free-text query. Matches against address text and DNS names.",
				InputSchema: mcp.ToolInputSchema{
					Type:     "object",
					Required: []string{"query"},
					Properties: map[string]any{
						"query": map[string]any{
							"type":        "string",
							"description": "Search text (e.g., an address fragment or DNS name)",
						},
						"limit": map[string]any{
							"type":        "integer",
							"description": "Maximum number of records to return (default 50, maximum 500)",
							"default":     50,
						},
						"format":          formatProperty,
						"include_details": includeDetailsProperty,
					},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:     handler.BoolPtr(true),
				RequiresNautobot: handler.BoolPtr(true),
			},
			Handler: searchIPAddressesHandler,
		},
		{
			Tool: mcp.Tool{
				Name:        "test_connection",
				Description: "Test connectivity and authentication against the configured Nautobot instance.",
				InputSchema: mcp.ToolInputSchema{
					Type:       "object",
					Properties: map[string]any{},
				},
			},
			Annotations: toolset.ToolAnnotations{
				ReadOnlyHint:     handler.BoolPtr(true),
				RequiresNautobot: handler.BoolPtr(true),
			},
			Handler: testConnectionHandler,
		},
	}
}
