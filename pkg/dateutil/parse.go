package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// inputLayouts are tried in order by ParseTime
var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
}

// ParseTime interprets s as a Unix millisecond timestamp when it is an
// integer, so "20250307" is an instant in 1970 and not a compact date.
// Anything else is tried against the common date layouts. Layouts without a
// zone are read in loc; a nil loc means time.Local.
func ParseTime(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).In(loc), true
	}
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatInput parses input with ParseTime and renders it with Format.
// Empty or unparsable input is returned unchanged.
func FormatInput(input, layout string, english bool, loc *time.Location) string {
	if input == "" {
		return input
	}
	t, ok := ParseTime(input, loc)
	if !ok {
		return input
	}
	return Format(t, layout, english)
}
