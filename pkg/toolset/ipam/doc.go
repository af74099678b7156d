// Package ipam provides the Nautobot IPAM toolset.
// It implements MCP tools for querying IP address management data:
//   - IP addresses (list, get by ID, search)
//   - Prefixes (list)
//   - Connectivity checks
//
// All tools support multiple output formats (JSON, YAML, table) and
// are read-only operations against the Nautobot REST API.
package ipam
