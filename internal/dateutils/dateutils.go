// Package dateutils provides date normalization for values captured from
// statements. The extraction engine deliberately leaves dates raw; callers
// opt in to normalization as a post-processing step.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// NormalizedLayout is the canonical output layout, DD/MM/YYYY.
const NormalizedLayout = "02/01/2006"

// CommonFormats lists the statement date layouts tried when normalizing,
// in order. Day-first layouts come before month-first ones because the
// supported issuers are predominantly day-first.
var CommonFormats = []string{
	"02/01/2006",
	"02-01-2006",
	"01/02/2006",
	"01-02-2006",
	"2/1/2006",
	"2-1-2006",
	"02/01/06",
	"02-01-06",
	"2006-01-02",
}

// ParseDate attempts to parse a raw captured date using the common layouts.
// Returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("empty date string")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// Normalize converts a raw captured date to DD/MM/YYYY. When no layout
// matches, the input is returned unchanged rather than discarded; a raw
// date is more useful to the consumer than nothing.
func Normalize(dateStr string) string {
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(NormalizedLayout)
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// CleanDateString trims whitespace and collapses internal runs of spaces.
func CleanDateString(dateStr string) string {
	return whitespaceRuns.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// DaysUntil returns the number of whole days from now until the given raw
// due date. Negative values mean the date has passed.
func DaysUntil(dateStr string, now time.Time) (int, error) {
	due, _, err := ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	return int(due.Sub(now).Hours() / 24), nil
}
