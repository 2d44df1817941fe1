// Package dateutils provides the date parsing and formatting helpers shared
// by the normalizer and the summary builder. Source date formats vary by
// extraction path; the canonical textual form is ISO YYYY-MM-DD.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the canonical date layout used on every normalized
// transaction.
const DateLayoutISO = "2006-01-02"

// CommonFormats are the layouts tried in order when parsing a source date.
// The extraction service is prompted for ISO but does not always comply; the
// partner feed posts ISO dates.
var CommonFormats = []string{
	DateLayoutISO,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"2006/01/02",
	"02-01-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
	"2006-01-02 15:04:05",
}

// ParseDate attempts to parse a date string using the common formats,
// returning the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// Normalize parses a source date string and re-formats it as ISO.
func Normalize(dateStr string) (string, error) {
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayoutISO), nil
}

// FormatRange renders an inclusive date range as the human-readable period
// label, e.g. "2024-01-15 to 2024-01-20".
func FormatRange(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s to %s", start.Format(DateLayoutISO), end.Format(DateLayoutISO))
}
