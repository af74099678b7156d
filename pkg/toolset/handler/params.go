package handler

import "fmt"

// ExtractRequiredString extracts a required string parameter from params map.
// Returns ErrMissingParameter if the parameter is missing or empty.
func ExtractRequiredString(params map[string]interface{}, key string) (string, error) {
	if v, ok := params[key].(string); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
}

// ExtractOptionalString extracts an optional string parameter.
// Returns empty string if the parameter is missing or empty.
func ExtractOptionalString(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// ExtractOptionalStringWithDefault extracts an optional string parameter with a default value.
// Returns defaultValue if the parameter is missing or empty.
func ExtractOptionalStringWithDefault(params map[string]interface{}, key, defaultValue string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return defaultValue
}

// ExtractBool extracts a boolean parameter with a default value
func ExtractBool(params map[string]interface{}, key string, defaultValue bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return defaultValue
}

// ExtractInt extracts an integer parameter with a default value.
// JSON unmarshaling delivers numbers as float64, so that is checked first.
func ExtractInt(params map[string]interface{}, key string, defaultValue int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	if v, ok := params[key].(int64); ok {
		return int(v)
	}
	if v, ok := params[key].(int); ok {
		return v
	}
	return defaultValue
}

// ExtractFormat extracts the format parameter, falling back to defaultFormat
// and then to json.
func ExtractFormat(params map[string]interface{}, defaultFormat string) string {
	if defaultFormat == "" {
		defaultFormat = FormatJSON
	}
	return ExtractOptionalStringWithDefault(params, ParamFormat, defaultFormat)
}

// ValidateFormat validates that the format is one of the supported formats
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatYAML, FormatTable:
		return nil
	default:
		return fmt.Errorf("%w: %s (supported: json, yaml, table)", ErrInvalidFormat, format)
	}
}

// ExtractAndValidateFormat extracts format parameter and validates it.
// Returns validated format or error if format is invalid.
func ExtractAndValidateFormat(params map[string]interface{}, defaultFormat string) (string, error) {
	format := ExtractFormat(params, defaultFormat)
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
