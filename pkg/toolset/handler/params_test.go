package handler

import (
	"errors"
	"testing"
)

func TestExtractRequiredString(t *testing.T) {
	params := map[string]interface{}{
		"query": "10.0.0",
		"empty": "",
		"count": 5,
	}

	v, err := ExtractRequiredString(params, "query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "10.0.0" {
		t.Errorf("expected 10.0.0, got %q", v)
	}

	if _, err := ExtractRequiredString(params, "empty"); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter for empty value, got %v", err)
	}

	if _, err := ExtractRequiredString(params, "missing"); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter for missing key, got %v", err)
	}

	if _, err := ExtractRequiredString(params, "count"); !errors.Is(err, ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter for non-string value, got %v", err)
	}
}

func TestExtractOptionalString(t *testing.T) {
	params := map[string]interface{}{
		"status": "active",
	}

	if v := ExtractOptionalString(params, "status"); v != "active" {
		t.Errorf("expected active, got %q", v)
	}
	if v := ExtractOptionalString(params, "role"); v != "" {
		t.Errorf("expected empty string for missing key, got %q", v)
	}
}

func TestExtractOptionalStringWithDefault(t *testing.T) {
	params := map[string]interface{}{
		"format": "yaml",
		"empty":  "",
	}

	if v := ExtractOptionalStringWithDefault(params, "format", "json"); v != "yaml" {
		t.Errorf("expected yaml, got %q", v)
	}
	if v := ExtractOptionalStringWithDefault(params, "empty", "json"); v != "json" {
		t.Errorf("expected default for empty value, got %q", v)
	}
	if v := ExtractOptionalStringWithDefault(params, "missing", "json"); v != "json" {
		t.Errorf("expected default for missing key, got %q", v)
	}
}

func TestExtractBool(t *testing.T) {
	params := map[string]interface{}{
		"include_details": true,
		"not_bool":        "yes",
	}

	if !ExtractBool(params, "include_details", false) {
		t.Error("expected true")
	}
	if ExtractBool(params, "missing", false) {
		t.Error("expected default false for missing key")
	}
	if !ExtractBool(params, "not_bool", true) {
		t.Error("expected default true for non-bool value")
	}
}

func TestExtractInt(t *testing.T) {
	params := map[string]interface{}{
		"from_json":  float64(25),
		"from_int64": int64(50),
		"from_int":   75,
		"not_number": "100",
	}

	if v := ExtractInt(params, "from_json", 0); v != 25 {
		t.Errorf("expected 25 from float64, got %d", v)
	}
	if v := ExtractInt(params, "from_int64", 0); v != 50 {
		t.Errorf("expected 50 from int64, got %d", v)
	}
	if v := ExtractInt(params, "from_int", 0); v != 75 {
		t.Errorf("expected 75 from int, got %d", v)
	}
	if v := ExtractInt(params, "missing", 100); v != 100 {
		t.Errorf("expected default 100, got %d", v)
	}
	if v := ExtractInt(params, "not_number", 100); v != 100 {
		t.Errorf("expected default for non-number value, got %d", v)
	}
}

func TestExtractFormat(t *testing.T) {
	if v := ExtractFormat(map[string]interface{}{"format": "table"}, "json"); v != "table" {
		t.Errorf("expected table, got %q", v)
	}
	if v := ExtractFormat(map[string]interface{}{}, "yaml"); v != "yaml" {
		t.Errorf("expected configured default yaml, got %q", v)
	}
	if v := ExtractFormat(map[string]interface{}{}, ""); v != FormatJSON {
		t.Errorf("expected json fallback, got %q", v)
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML, FormatTable} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("expected %s to be valid, got %v", format, err)
		}
	}

	err := ValidateFormat("xml")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestExtractAndValidateFormat(t *testing.T) {
	format, err := ExtractAndValidateFormat(map[string]interface{}{"format": "yaml"}, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != "yaml" {
		t.Errorf("expected yaml, got %q", format)
	}

	if _, err := ExtractAndValidateFormat(map[string]interface{}{"format": "csv"}, "json"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
