package ipam

import (
	"context"
	"fmt"
)

// testConnectionHandler handles the test_connection tool
func testConnectionHandler(ctx context.Context, client interface{}, params map[string]interface{}) (string, error) {
	nautobotClient, err := validateClient(client)
	if err != nil {
		return "", err
	}

	if err := nautobotClient.TestConnection(ctx); err != nil {
		return "", fmt.Errorf("connection test failed: %w", err)
	}

	return fmt.Sprintf("Successfully connected to Nautobot at %s", nautobotClient.BaseURL()), nil
}
