// Package version carries build metadata stamped in via ldflags.
package version

import (
	"fmt"
	"runtime"
)

const BinaryName = "nautobot-mcp-server"

// Set at build time:
//
//	-ldflags "-X .../pkg/version.Version=v1.2.3 -X .../pkg/version.GitCommit=abc1234 -X .../pkg/version.BuildDate=2026-01-02"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	GoVersion = runtime.Version()
	Platform  = runtime.GOOS + "/" + runtime.GOARCH
)

// GetVersionInfo returns the multi-line version report printed by the
// version command.
func GetVersionInfo() string {
	return fmt.Sprintf(`%s
Version:    %s
Git commit: %s
Built:      %s
Go version: %s
Platform:   %s`,
		BinaryName, Version, GitCommit, BuildDate, GoVersion, Platform)
}

// UserAgent is the User-Agent header value sent on every outbound request.
func UserAgent() string {
	return BinaryName + "/" + Version
}
