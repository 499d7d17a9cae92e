package formatutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// Open-Meteo sends local wall-clock values without an offset when timezone=auto.
var timestampLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

const displayLocale = monday.LocalePtBR

// FormatDate renders a date in Brazilian Portuguese with abbreviated weekday and month,
// e.g. "seg., 20 de out.". Unparseable input is returned unchanged.
func FormatDate(value string) string {
	t, ok := parseTimestamp(value)
	if !ok {
		return value
	}

	weekday := abbreviation(monday.Format(t, "Mon", displayLocale))
	month := abbreviation(monday.Format(t, "Jan", displayLocale))
	return fmt.Sprintf("%s., %d de %s.", weekday, t.Day(), month)
}

// FormatTime renders the hour and minute of a timestamp as "HH:MM".
// Unparseable input is returned unchanged.
func FormatTime(value string) string {
	t, ok := parseTimestamp(value)
	if !ok {
		return value
	}
	return t.Format("15:04")
}

// parseTimestamp keeps the wall clock of the value; it never converts to the server time zone.
func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func abbreviation(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "."))
}
