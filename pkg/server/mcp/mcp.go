package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/netfold/nautobot-mcp-server/pkg/config"
	"github.com/netfold/nautobot-mcp-server/pkg/logging"
	"github.com/netfold/nautobot-mcp-server/pkg/nautobot"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset/handler"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset/ipam"
	"github.com/netfold/nautobot-mcp-server/pkg/version"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const authorizationKey contextKey = "Authorization"

// Configuration wraps the static configuration with additional runtime components
type Configuration struct {
	*config.StaticConfig
}

// Server represents the MCP server
type Server struct {
	configuration *Configuration
	server        *server.MCPServer
	enabledTools  []string
	client        *nautobot.Client
}

// NewServer creates a new MCP server with the given configuration
func NewServer(configuration Configuration) (*Server, error) {
	// Note: Logging is initialized in root.go before calling NewServer
	// to properly handle stdio vs HTTP/SSE mode

	var serverOptions []server.ServerOption

	// Configure server capabilities
	serverOptions = append(serverOptions,
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	// Initialize the Nautobot client. A missing or invalid configuration
	// keeps the server usable; tools answer with a configuration error.
	var client *nautobot.Client
	if configuration.HasNautobotConfig() {
		var err error
		client, err = nautobot.NewClient(nautobot.Config{
			BaseURL:            configuration.NautobotURL,
			Token:              configuration.NautobotToken,
			InsecureSkipVerify: !configuration.VerifySSL,
			Timeout:            time.Duration(configuration.Timeout) * time.Second,
			RateLimit:          configuration.RateLimit,
		}, nautobot.WithLogger(logging.Get()))
		if err != nil {
			logging.Warn("Failed to create Nautobot client: %v", err)
			logging.Warn("Nautobot tools will not be available")
		} else {
			logging.Info("Nautobot client initialized for %s (token %s)",
				client.BaseURL(), handler.RedactToken(configuration.NautobotToken))
		}
	} else {
		logging.Warn("Nautobot is not configured, set NAUTOBOT_URL and NAUTOBOT_TOKEN to enable IPAM tools")
	}

	s := &Server{
		configuration: &configuration,
		server:        server.NewMCPServer(version.BinaryName, version.Version, serverOptions...),
		client:        client,
	}

	// Register tools
	if err := s.registerTools(); err != nil {
		return nil, err
	}
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// registerTools registers all available tools based on configuration
func (s *Server) registerTools() error {
	availableToolsets := map[string]toolset.Toolset{
		"ipam": &ipam.Toolset{},
	}

	// Determine which toolsets to enable
	enabledToolsets := make([]toolset.Toolset, 0)
	if len(s.configuration.Toolsets) > 0 {
		for _, toolsetName := range s.configuration.Toolsets {
			if ts, exists := availableToolsets[toolsetName]; exists {
				enabledToolsets = append(enabledToolsets, ts)
			}
		}
	} else {
		for _, ts := range availableToolsets {
			enabledToolsets = append(enabledToolsets, ts)
		}
	}

	// Register tools from each enabled toolset
	for _, ts := range enabledToolsets {
		tools := ts.GetTools(s.client)
		for _, tool := range tools {
			if !s.shouldEnableTool(tool) {
				continue
			}
			configuredTool := s.configureTool(tool)
			if err := s.registerTool(configuredTool); err != nil {
				return fmt.Errorf("failed to register tool %s: %w", tool.Tool.Name, err)
			}
		}
	}

	logging.Info("MCP server initialized with %d tools", len(s.enabledTools))
	return nil
}

// shouldEnableTool determines if a tool should be enabled based on configuration
func (s *Server) shouldEnableTool(tool toolset.ServerTool) bool {
	// Read-only mode admits only tools annotated as read-only
	if s.configuration.ReadOnly {
		if tool.Annotations.ReadOnlyHint == nil || !*tool.Annotations.ReadOnlyHint {
			return false
		}
	}

	// Check if tool is explicitly disabled
	for _, disabledTool := range s.configuration.DisabledTools {
		if disabledTool == tool.Tool.Name {
			return false
		}
	}

	// Check if tool is explicitly enabled
	if len(s.configuration.EnabledTools) > 0 {
		for _, enabledTool := range s.configuration.EnabledTools {
			if enabledTool == tool.Tool.Name {
				return true
			}
		}
		// If enabled tools are specified and this tool is not in the list, disable it
		return false
	}

	// Default: enable the tool
	return true
}

// configureTool creates a configured tool handler that applies server defaults
func (s *Server) configureTool(tool toolset.ServerTool) toolset.ServerTool {
	return toolset.ServerTool{
		Tool:        tool.Tool,
		Annotations: tool.Annotations,
		Handler: func(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
			// Inject default output format if not specified
			if _, hasFormat := params[handler.ParamFormat]; !hasFormat && s.configuration.ListOutput != "" {
				params[handler.ParamFormat] = s.configuration.ListOutput
			}

			return tool.Handler(ctx, client, params)
		},
	}
}

func contextFunc(ctx context.Context, r *http.Request) context.Context {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return context.WithValue(ctx, authorizationKey, authHeader)
	}
	return ctx
}

// registerTool registers a single tool with the MCP server
func (s *Server) registerTool(tool toolset.ServerTool) error {
	toolHandler := server.ToolHandlerFunc(func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logging.Debug("Tool %s called with params: %v", tool.Tool.Name, request.Params.Arguments)

		// Convert arguments to the format expected by our tool handlers
		params := make(map[string]interface{})
		if arguments, ok := request.Params.Arguments.(map[string]interface{}); ok {
			for key, value := range arguments {
				params[key] = value
			}
		}

		result, err := tool.Handler(ctx, s.client, params)
		return NewTextResult(result, err), nil
	})

	s.server.AddTool(tool.Tool, toolHandler)
	s.enabledTools = append(s.enabledTools, tool.Tool.Name)

	logging.Info("Registered tool: %s", tool.Tool.Name)
	return nil
}

// ServeStdio starts the MCP server in stdio mode
func (s *Server) ServeStdio() error {
	logging.Info("Starting MCP server in stdio mode")
	return server.ServeStdio(s.server)
}

// ServeSse starts the MCP server in SSE mode
func (s *Server) ServeSse(baseURL string, httpServer *http.Server) *server.SSEServer {
	logging.Info("Starting MCP server in SSE mode")

	options := make([]server.SSEOption, 0)
	options = append(options, server.WithHTTPServer(httpServer), server.WithSSEContextFunc(contextFunc))

	if baseURL != "" {
		options = append(options, server.WithBaseURL(baseURL))
	}

	return server.NewSSEServer(s.server, options...)
}

// ServeHTTP starts the MCP server in HTTP mode
func (s *Server) ServeHTTP(httpServer *http.Server) *server.StreamableHTTPServer {
	logging.Info("Starting MCP server in HTTP mode")

	options := []server.StreamableHTTPOption{
		server.WithHTTPContextFunc(contextFunc),
		server.WithStreamableHTTPServer(httpServer),
		server.WithStateLess(true),
	}

	return server.NewStreamableHTTPServer(s.server, options...)
}

// GetEnabledTools returns the list of enabled tools
func (s *Server) GetEnabledTools() []string {
	return s.enabledTools
}

// IsHealthy returns true if the server and its clients are properly initialized
func (s *Server) IsHealthy() bool {
	// A configured Nautobot connection must have produced a client
	if s.configuration.HasNautobotConfig() {
		return s.client != nil
	}
	return true
}

// Close cleans up the server resources
func (s *Server) Close() {
	logging.Info("Closing MCP server")
	// Nothing to clean up for now
}

// NewTextResult creates a standardized text result for tool responses
func NewTextResult(content string, err error) *mcp.CallToolResult {
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: renderError(err),
				},
			},
		}
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: content,
			},
		},
	}
}

// renderError appends remediation hints to classified upstream failures.
func renderError(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, nautobot.ErrTLSVerification):
		return msg + "\nTLS verification failed. If the instance uses a certificate you trust, set verify_ssl: false."
	case nautobot.IsAuthFailure(err):
		return msg + "\nCheck that the configured token is valid and may read IPAM data."
	case nautobot.IsRateLimited(err):
		return msg + "\nThe upstream kept rate limiting after retries. Lower rate_limit or try again later."
	case nautobot.IsConnectionFailure(err):
		return msg + "\nCheck that the configured Nautobot URL is reachable from this host."
	case nautobot.IsValidationFailure(err):
		return msg + "\nThe Nautobot response did not match the expected schema."
	default:
		return msg
	}
}
