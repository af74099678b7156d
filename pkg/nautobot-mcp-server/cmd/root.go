package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/netfold/nautobot-mcp-server/pkg/config"
	"github.com/netfold/nautobot-mcp-server/pkg/logging"
	httpserver "github.com/netfold/nautobot-mcp-server/pkg/server/http"
	"github.com/netfold/nautobot-mcp-server/pkg/server/mcp"
	"github.com/netfold/nautobot-mcp-server/pkg/version"
)

// IOStreams represents standard input, output, and error streams
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewMCPServer creates a new cobra command for the Nautobot MCP Server
func NewMCPServer(streams IOStreams) *cobra.Command {
	flags := config.DefaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "nautobot-mcp-server",
		Short: "Nautobot MCP Server - Model Context Protocol server for Nautobot IPAM data",
		Long: `Nautobot MCP Server is a Model Context Protocol (MCP) server that provides
read access to the IP address and prefix inventory of a Nautobot network
source of truth.

This server can run in stdio mode for integration with MCP clients or in HTTP mode
for network access.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg, flags)
			return runServer(cmd.Context(), cfg, streams)
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	// Add flags
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	cmd.Flags().IntVar(&flags.Port, "port", flags.Port, "Port to listen on for HTTP mode (0 for stdio mode)")
	cmd.Flags().StringVar(&flags.SSEBaseURL, "sse-base-url", flags.SSEBaseURL, "Public base URL advertised to SSE clients")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&flags.LogJSON, "log-json", flags.LogJSON, "Log as JSON instead of console output")
	cmd.Flags().StringVar(&flags.NautobotURL, "nautobot-url", flags.NautobotURL, "Nautobot server URL")
	cmd.Flags().StringVar(&flags.NautobotToken, "nautobot-token", flags.NautobotToken, "Nautobot API token")
	cmd.Flags().BoolVar(&flags.VerifySSL, "verify-ssl", flags.VerifySSL, "Verify the Nautobot TLS certificate")
	cmd.Flags().IntVar(&flags.Timeout, "timeout", flags.Timeout, "Per-request timeout in seconds")
	cmd.Flags().IntVar(&flags.RateLimit, "rate-limit", flags.RateLimit, "Outbound request ceiling in requests per minute")
	cmd.Flags().BoolVar(&flags.ReadOnly, "read-only", flags.ReadOnly, "Run in read-only mode")
	cmd.Flags().StringVar(&flags.ListOutput, "list-output", flags.ListOutput, "Output format for list operations (table, yaml, json)")
	cmd.Flags().StringSliceVar(&flags.Toolsets, "toolsets", flags.Toolsets, "Comma-separated list of toolsets to enable")
	cmd.Flags().StringSliceVar(&flags.EnabledTools, "enabled-tools", flags.EnabledTools, "Comma-separated list of tools to enable")
	cmd.Flags().StringSliceVar(&flags.DisabledTools, "disabled-tools", flags.DisabledTools, "Comma-separated list of tools to disable")

	// Add version command
	cmd.AddCommand(newVersionCommand(streams))

	return cmd
}

// applyFlagOverrides copies flags the user set explicitly over the loaded
// configuration, so flags win over both the config file and the environment.
func applyFlagOverrides(cmd *cobra.Command, cfg, flags *config.StaticConfig) {
	if cmd.Flags().Changed("port") {
		cfg.Port = flags.Port
	}
	if cmd.Flags().Changed("sse-base-url") {
		cfg.SSEBaseURL = flags.SSEBaseURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = flags.LogJSON
	}
	if cmd.Flags().Changed("nautobot-url") {
		cfg.NautobotURL = flags.NautobotURL
	}
	if cmd.Flags().Changed("nautobot-token") {
		cfg.NautobotToken = flags.NautobotToken
	}
	if cmd.Flags().Changed("verify-ssl") {
		cfg.VerifySSL = flags.VerifySSL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flags.Timeout
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit = flags.RateLimit
	}
	if cmd.Flags().Changed("read-only") {
		cfg.ReadOnly = flags.ReadOnly
	}
	if cmd.Flags().Changed("list-output") {
		cfg.ListOutput = flags.ListOutput
	}
	if cmd.Flags().Changed("toolsets") {
		cfg.Toolsets = flags.Toolsets
	}
	if cmd.Flags().Changed("enabled-tools") {
		cfg.EnabledTools = flags.EnabledTools
	}
	if cmd.Flags().Changed("disabled-tools") {
		cfg.DisabledTools = flags.DisabledTools
	}
}

// runServer runs the MCP server with the given configuration
func runServer(ctx context.Context, cfg *config.StaticConfig, streams IOStreams) error {
	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %v", err)
	}

	// Logging must be up before the server logs tool registration. Output
	// goes to stderr, so stdio mode stays clean.
	logging.Initialize(cfg.LogLevel, cfg.LogJSON)

	// Create MCP server configuration
	mcpConfig := mcp.Configuration{
		StaticConfig: cfg,
	}

	// Create MCP server
	server, err := mcp.NewServer(mcpConfig)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %v", err)
	}
	defer server.Close()

	// Start server based on port configuration
	if cfg.Port == 0 {
		// Stdio mode
		fmt.Fprintf(streams.ErrOut, "Starting Nautobot MCP Server in stdio mode\n")
		fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
		return server.ServeStdio()
	}

	// HTTP mode
	fmt.Fprintf(streams.ErrOut, "Starting Nautobot MCP Server in HTTP mode on port %d\n", cfg.Port)
	fmt.Fprintf(streams.ErrOut, "Enabled tools: %v\n", server.GetEnabledTools())
	return httpserver.Serve(ctx, server, cfg)
}

// newVersionCommand creates the version command
func newVersionCommand(streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(streams.Out, "%s\n", version.GetVersionInfo())
		},
	}

	// Set output streams for the command
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	return cmd
}
