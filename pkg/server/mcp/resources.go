package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/netfold/nautobot-mcp-server/pkg/logging"
	"github.com/netfold/nautobot-mcp-server/pkg/nautobot"
)

// resourceLimit caps how many records a browsable resource returns.
// Resources are meant as a quick inventory peek, not a full export.
const resourceLimit = 10

// registerResources registers browsable MCP resources with the server
func (s *Server) registerResources() {
	s.server.AddResource(mcp.NewResource(
		"nautobot://ip-addresses",
		"IP Addresses",
		mcp.WithResourceDescription("Most recent IP address records from the Nautobot inventory"),
		mcp.WithMIMEType("application/json"),
	), s.readIPAddressesResource)

	s.server.AddResource(mcp.NewResource(
		"nautobot://prefixes",
		"Prefixes",
		mcp.WithResourceDescription("Most recent network prefix records from the Nautobot inventory"),
		mcp.WithMIMEType("application/json"),
	), s.readPrefixesResource)

	s.server.AddResource(mcp.NewResource(
		"nautobot://status",
		"Connection Status",
		mcp.WithResourceDescription("Connectivity state of the configured Nautobot instance"),
		mcp.WithMIMEType("application/json"),
	), s.readStatusResource)

	logging.Info("Registered resources: nautobot://ip-addresses, nautobot://prefixes, nautobot://status")
}

func (s *Server) readIPAddressesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if s.client == nil {
		return nil, fmt.Errorf("nautobot client not configured")
	}

	addresses, err := s.client.ListIPAddresses(ctx, nautobot.Filter{Limit: resourceLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to read IP addresses: %w", err)
	}

	return jsonResourceContents(request.Params.URI, addresses)
}

func (s *Server) readPrefixesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if s.client == nil {
		return nil, fmt.Errorf("nautobot client not configured")
	}

	prefixes, err := s.client.ListPrefixes(ctx, nautobot.Filter{Limit: resourceLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to read prefixes: %w", err)
	}

	return jsonResourceContents(request.Params.URI, prefixes)
}

func (s *Server) readStatusResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	status := map[string]interface{}{
		"connected": false,
	}

	if s.client == nil {
		status["error"] = "nautobot client not configured"
		return jsonResourceContents(request.Params.URI, status)
	}

	status["base_url"] = s.client.BaseURL()
	if err := s.client.TestConnection(ctx); err != nil {
		status["error"] = err.Error()
	} else {
		status["connected"] = true
	}

	return jsonResourceContents(request.Params.URI, status)
}

func jsonResourceContents(uri string, data interface{}) ([]mcp.ResourceContents, error) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(payload),
		},
	}, nil
}
