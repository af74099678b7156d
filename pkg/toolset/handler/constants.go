package handler

import "errors"

// Format constants
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// Parameter name constants
const (
	ParamAddress        = "address"
	ParamPrefix         = "prefix"
	ParamQuery          = "query"
	ParamStatus         = "status"
	ParamRole           = "role"
	ParamTenant         = "tenant"
	ParamVRF            = "vrf"
	ParamSite           = "site"
	ParamIPID           = "ip_id"
	ParamLimit          = "limit"
	ParamOffset         = "offset"
	ParamFormat         = "format"
	ParamIncludeDetails = "include_details"
)

// Error definitions
var (
	ErrNautobotNotConfigured = errors.New("nautobot client not configured, please configure nautobot credentials to use this tool")
	ErrInvalidFormat         = errors.New("invalid output format")
	ErrMissingParameter      = errors.New("missing required parameter")
)
