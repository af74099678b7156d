package capacity

import (
	"fmt"
	"strconv"

	"github.com/netfold/nautobot-mcp-server/pkg/toolset/handler"
)

var tableHeaders = []string{"prefix", "status", "site", "range", "usable", "assigned", "percent"}

// FormatResult formats the result according to the specified format.
func FormatResult(result *Result, format string) (string, error) {
	switch format {
	case handler.FormatYAML:
		return handler.FormatAsYAML(result)
	case handler.FormatJSON:
		return handler.FormatAsJSON(result)
	default:
		return formatAsTable(result), nil
	}
}

func formatAsTable(result *Result) string {
	rows := make([]map[string]string, len(result.Prefixes))
	for i, u := range result.Prefixes {
		rows[i] = map[string]string{
			"prefix":   u.Prefix,
			"status":   u.Status,
			"site":     u.Site,
			"range":    u.FirstUsable + " - " + u.LastUsable,
			"usable":   u.Usable,
			"assigned": strconv.Itoa(u.Assigned),
			"percent":  fmt.Sprintf("%.1f%%", u.Percent),
		}
	}
	return handler.FormatAsTable(rows, tableHeaders)
}
