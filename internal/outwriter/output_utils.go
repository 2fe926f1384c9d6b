package outwriter

import (
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/ringside/internal/contract"
)

// csvHeader turns table headers into snake_case CSV column names.
func csvHeader(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = strings.ReplaceAll(strings.ToLower(h), " ", "_")
	}
	return out
}

// formatDate renders a date, or "-" for nil.
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}

// formatTimestamp renders a full timestamp for CSV output.
func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(contract.DateTimeFormat)
}

// formatNames maps wrestler ids to names joined with sep. Unknown ids print as "#id".
func formatNames(ids []int64, names map[int64]string, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		if n, ok := names[id]; ok {
			parts[i] = n
			continue
		}
		parts[i] = "#" + strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, sep)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
