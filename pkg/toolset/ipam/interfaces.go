package ipam

//go:generate mockgen -source=interfaces.go -destination=mock_client.go -package=ipam

import (
	"context"

	"github.com/netfold/nautobot-mcp-server/pkg/nautobot"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset/handler"
)

// Client captures the Nautobot query operations the IPAM tools rely on.
type Client interface {
	BaseURL() string
	ListIPAddresses(ctx context.Context, f nautobot.Filter) ([]nautobot.IPAddress, error)
	ListPrefixes(ctx context.Context, f nautobot.Filter) ([]nautobot.Prefix, error)
	GetIPAddressByID(ctx context.Context, id string) (*nautobot.IPAddress, error)
	SearchIPAddresses(ctx context.Context, query string, limit int) ([]nautobot.IPAddress, error)
	TestConnection(ctx context.Context) error
}

var _ Client = (*nautobot.Client)(nil)

// validateClient validates and returns a usable Nautobot client.
// Returns ErrNautobotNotConfigured if the client is nil or unusable.
func validateClient(client interface{}) (Client, error) {
	// Check for the concrete client first so a typed nil is caught
	if nautobotClient, ok := client.(*nautobot.Client); ok {
		if nautobotClient == nil {
			return nil, handler.ErrNautobotNotConfigured
		}
		return nautobotClient, nil
	}

	if c, ok := client.(Client); ok && c != nil {
		return c, nil
	}
	return nil, handler.ErrNautobotNotConfigured
}
