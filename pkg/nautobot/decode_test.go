package nautobot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validIPJSON = `{
	"id": "89abcdef-0123-4567-89ab-cdef01234567",
	"url": "https://nautobot.example.com/api/ipam/ip-addresses/89abcdef-0123-4567-89ab-cdef01234567/",
	"display": "192.168.1.10/24",
	"address": "192.168.1.10/24",
	"status": {"value": "active", "label": "Active"},
	"role": null,
	"tenant": {"id": "t-1", "name": "Engineering"},
	"vrf": null,
	"dns_name": "web01.example.com",
	"description": "Primary web server",
	"created": "2024-01-15",
	"last_updated": "2024-06-01T10:30:00Z"
}`

const validPrefixJSON = `{
	"id": "fedcba98-7654-3210-fedc-ba9876543210",
	"prefix": "10.20.0.0/16",
	"status": {"value": "active", "label": "Active"},
	"site": {"id": "s-1", "name": "DC-East"},
	"is_pool": false,
	"description": "East datacenter supernet"
}`

func TestDecodeIPAddress(t *testing.T) {
	t.Parallel()

	rec, err := decodeIPAddress(json.RawMessage(validIPJSON))
	require.NoError(t, err)

	assert.Equal(t, "89abcdef-0123-4567-89ab-cdef01234567", rec.ID)
	assert.Equal(t, "192.168.1.10/24", rec.Address)
	assert.Equal(t, "active", rec.Status.Value)
	assert.Equal(t, "Active", rec.Status.Label)
	assert.Nil(t, rec.Role)
	require.NotNil(t, rec.Tenant)
	assert.Equal(t, "Engineering", rec.Tenant.String())
	assert.Equal(t, "web01.example.com", rec.DNSName)
}

func TestDecodeIPAddressRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"missing id", `{"address": "10.0.0.1/24", "status": {"value": "active"}}`},
		{"missing address", `{"id": "ip-1", "status": {"value": "active"}}`},
		{"empty address", `{"id": "ip-1", "address": ""}`},
		{"address without mask", `{"id": "ip-1", "address": "10.0.0.1"}`},
		{"address not cidr", `{"id": "ip-1", "address": "not-an-ip/24"}`},
		{"wrong field type", `{"id": "ip-1", "address": 42}`},
		{"not an object", `["ip-1"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeIPAddress(json.RawMessage(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestDecodePrefix(t *testing.T) {
	t.Parallel()

	rec, err := decodePrefix(json.RawMessage(validPrefixJSON))
	require.NoError(t, err)

	assert.Equal(t, "fedcba98-7654-3210-fedc-ba9876543210", rec.ID)
	assert.Equal(t, "10.20.0.0/16", rec.Prefix)
	assert.Equal(t, "DC-East", rec.Site.String())
	assert.False(t, rec.IsPool)
}

func TestDecodePrefixRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"missing id", `{"prefix": "10.0.0.0/8"}`},
		{"missing prefix", `{"id": "p-1"}`},
		{"host bits set", `{"id": "p-1", "prefix": "10.0.1.0/8"}`},
		{"no mask", `{"id": "p-1", "prefix": "10.0.0.0"}`},
		{"garbage", `{"id": "p-1", "prefix": "10.0.0.0/99"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePrefix(json.RawMessage(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestDecodePrefixIPv6(t *testing.T) {
	t.Parallel()

	rec, err := decodePrefix(json.RawMessage(`{"id": "p-6", "prefix": "2001:db8::/32", "status": {"value": "active"}}`))
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/32", rec.Prefix)

	_, err = decodePrefix(json.RawMessage(`{"id": "p-6", "prefix": "2001:db8::1/32"}`))
	assert.Error(t, err, "host bits set in an IPv6 prefix must be rejected")
}

func TestDecodeEnvelope(t *testing.T) {
	t.Parallel()

	env, err := decodeEnvelope([]byte(`{"count": 2, "next": null, "previous": null, "results": [{}, {}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, *env.Count)
	assert.Len(t, env.Results, 2)
	assert.Nil(t, env.Next)
}

func TestDecodeEnvelopeRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"missing count", `{"results": []}`},
		{"missing results", `{"count": 0}`},
		{"not json", `<html>502 Bad Gateway</html>`},
		{"wrong envelope type", `[1, 2, 3]`},
		{"count wrong type", `{"count": "three", "results": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeEnvelope([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDecodeEnvelopeEmptyResultsOK(t *testing.T) {
	t.Parallel()

	env, err := decodeEnvelope([]byte(`{"count": 0, "results": []}`))
	require.NoError(t, err)
	assert.Empty(t, env.Results)
}

// Decoding then re-serializing must preserve identifier, address and status
// exactly.
func TestIPAddressRoundTrip(t *testing.T) {
	t.Parallel()

	rec, err := decodeIPAddress(json.RawMessage(validIPJSON))
	require.NoError(t, err)

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	again, err := decodeIPAddress(data)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, again.ID)
	assert.Equal(t, rec.Address, again.Address)
	assert.Equal(t, rec.Status, again.Status)
	assert.Equal(t, rec, again)
}

func TestErrorDetail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invalid token.", errorDetail([]byte(`{"detail": "Invalid token."}`)))
	assert.Equal(t, "", errorDetail([]byte(`{"error": "nope"}`)))
	assert.Equal(t, "", errorDetail([]byte(`not json`)))
}
