package ipam

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netfold/nautobot-mcp-server/pkg/nautobot"
	"github.com/netfold/nautobot-mcp-server/pkg/toolset/handler"
)

func TestTestConnectionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockClient(ctrl)
	mockClient.EXPECT().TestConnection(gomock.Any()).Return(nil)
	mockClient.EXPECT().BaseURL().Return("https://nautobot.example.com")

	out, err := testConnectionHandler(context.Background(), mockClient, map[string]interface{}{})
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully connected")
	assert.Contains(t, out, "https://nautobot.example.com")
}

func TestTestConnectionHandlerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := &nautobot.Error{
		Op:     "test_connection",
		Kind:   nautobot.KindAuthenticationFailure,
		Status: 403,
		Err:    errors.New("forbidden"),
	}

	mockClient := NewMockClient(ctrl)
	mockClient.EXPECT().TestConnection(gomock.Any()).Return(upstream)

	_, err := testConnectionHandler(context.Background(), mockClient, map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection test failed")
	assert.True(t, nautobot.IsAuthFailure(err))
}

func TestTestConnectionHandlerNotConfigured(t *testing.T) {
	_, err := testConnectionHandler(context.Background(), nil, map[string]interface{}{})
	assert.ErrorIs(t, err, handler.ErrNautobotNotConfigured)
}

func TestValidateClientAcceptsConcreteClient(t *testing.T) {
	client, err := nautobot.NewClient(nautobot.Config{
		BaseURL: "https://nautobot.example.com",
		Token:   "0123456789abcdef",
	})
	require.NoError(t, err)

	got, err := validateClient(client)
	require.NoError(t, err)
	assert.Equal(t, client.BaseURL(), got.BaseURL())
}

func TestValidateClientRejectsNil(t *testing.T) {
	_, err := validateClient(nil)
	assert.ErrorIs(t, err, handler.ErrNautobotNotConfigured)

	var typedNil *nautobot.Client
	_, err = validateClient(typedNil)
	assert.ErrorIs(t, err, handler.ErrNautobotNotConfigured)

	_, err = validateClient("not a client")
	assert.ErrorIs(t, err, handler.ErrNautobotNotConfigured)
}

func TestValidateClientAcceptsInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockClient(ctrl)
	got, err := validateClient(mockClient)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
