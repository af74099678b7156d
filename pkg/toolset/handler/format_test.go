package handler

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleRows() []map[string]string {
	return []map[string]string{
		{"ADDRESS": "10.0.0.1/24", "STATUS": "active", "DNS NAME": "gw.example.com"},
		{"ADDRESS": "10.0.0.20/24", "STATUS": "reserved", "DNS NAME": ""},
	}
}

func TestFormatAsTable(t *testing.T) {
	headers := []string{"ADDRESS", "STATUS", "DNS NAME"}
	out := FormatAsTable(sampleRows(), headers)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "ADDRESS") || !strings.Contains(lines[0], "STATUS") {
		t.Errorf("header row missing columns: %q", lines[0])
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("expected separator line, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "10.0.0.1/24") {
		t.Errorf("expected first record in row, got %q", lines[2])
	}

	// Column width follows the widest value
	if !strings.Contains(lines[0], "ADDRESS     ") {
		t.Errorf("expected ADDRESS column padded to widest value, got %q", lines[0])
	}
}

func TestFormatAsTableEmpty(t *testing.T) {
	out := FormatAsTable(nil, []string{"ADDRESS"})
	if out != "No data available" {
		t.Errorf("expected empty-data message, got %q", out)
	}
}

func TestFormatAsJSON(t *testing.T) {
	out, err := FormatAsJSON(sampleRows())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("expected 2 records, got %d", len(decoded))
	}
	if decoded[0]["ADDRESS"] != "10.0.0.1/24" {
		t.Errorf("expected first address preserved, got %q", decoded[0]["ADDRESS"])
	}
}

func TestFormatAsYAML(t *testing.T) {
	out, err := FormatAsYAML(sampleRows())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "ADDRESS: 10.0.0.1/24") {
		t.Errorf("expected YAML to contain address, got:\n%s", out)
	}
}

func TestFormatEmptyResult(t *testing.T) {
	out, err := FormatEmptyResult(FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[]" {
		t.Errorf("expected empty JSON array, got %q", out)
	}

	out, err = FormatEmptyResult(FormatTable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty string for table, got %q", out)
	}
}

func TestFormatOutput(t *testing.T) {
	headers := []string{"ADDRESS", "STATUS"}

	out, err := FormatOutput(sampleRows(), FormatTable, headers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "10.0.0.20/24") {
		t.Errorf("expected table with records, got:\n%s", out)
	}

	out, err = FormatOutput(nil, FormatJSON, headers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "[]" {
		t.Errorf("expected empty JSON array for no records, got %q", out)
	}

	if _, err := FormatOutput(sampleRows(), "csv", headers); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatSingleResult(t *testing.T) {
	record := map[string]interface{}{
		"id":      "ip-001",
		"address": "10.0.0.1/24",
		"status":  "active",
	}

	out, err := FormatSingleResult(record, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"address": "10.0.0.1/24"`) {
		t.Errorf("expected JSON with address, got:\n%s", out)
	}

	out, err = FormatSingleResult(record, FormatTable, "address", "status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "10.0.0.1/24") || !strings.Contains(out, "active") {
		t.Errorf("expected table with field values, got:\n%s", out)
	}

	if _, err := FormatSingleResult(record, FormatTable); err == nil {
		t.Error("expected error when table format has no headers")
	}
}

func TestGetStringValue(t *testing.T) {
	if v := GetStringValue(nil); v != "-" {
		t.Errorf("expected - for nil, got %q", v)
	}
	if v := GetStringValue("active"); v != "active" {
		t.Errorf("expected active, got %q", v)
	}
	if v := GetStringValue(42); v != "42" {
		t.Errorf("expected 42, got %q", v)
	}
}

func TestFormatTime(t *testing.T) {
	if v := FormatTime(""); v != "-" {
		t.Errorf("expected - for empty timestamp, got %q", v)
	}
	if v := FormatTime("2024-05-01T10:00:00Z"); v != "2024-05-01T10:00:00Z" {
		t.Errorf("expected timestamp unchanged, got %q", v)
	}
}
