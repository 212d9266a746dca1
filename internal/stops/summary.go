package stops

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vishnupradeep-dot/police-log/internal/table"
)

var timeLayouts = []string{"15:04:05", "15:04", "3:04 PM", "03:04 PM"}

// Summarize renders one listing row as a one-line synopsis. Every field
// degrades to a fallback phrase when absent or unparseable; the function
// always returns a non-empty string and never panics.
func Summarize(row table.Row) string {
	age := "unknown"
	switch v := row["driver_age"].(type) {
	case int64:
		age = fmt.Sprintf("%d", v)
	case int:
		age = fmt.Sprintf("%d", v)
	case float64:
		age = fmt.Sprintf("%d", int(v))
	}

	violation, _ := row["violation"].(string)
	if violation == "" {
		violation = "unknown violation"
	}

	subject := "driver"
	switch gender, _ := row["driver_gender"].(string); gender {
	case "M":
		subject = "male driver"
	case "F":
		subject = "female driver"
	}

	searchText := "No search was conducted"
	if b, _ := row["search_conducted"].(bool); b {
		searchText = "A search was conducted"
	}
	arrestText := "the driver received a citation"
	if b, _ := row["is_arrested"].(bool); b {
		arrestText = "the driver was arrested"
	}

	duration, _ := row["stop_duration"].(string)
	if duration == "" {
		duration = "6-15 min"
	}
	drugText := "was not drug-related"
	if b, _ := row["drugs_related_stop"].(bool); b {
		drugText = "was drug-related"
	}

	return fmt.Sprintf(
		"A %s-year-old %s was stopped for %s at %s. %s, and %s. The stop lasted %s and %s.",
		age, subject, violation, stopTimePhrase(row["stop_time"]),
		searchText, arrestText, duration, drugText,
	)
}

// stopTimePhrase renders the stop time as a 12-hour clock phrase, falling
// back to "an unknown time" on anything it cannot parse.
func stopTimePhrase(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("03:04 PM")
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			break
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.Format("03:04 PM")
			}
		}
	}
	return "an unknown time"
}
