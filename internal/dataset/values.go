package dataset

import (
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

var dateLayouts = []string{
	DateLayout,
	TimestampLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"02-01-2006",
	"2006/01/02",
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// NormalizeDate rewrites any recognised date as YYYY-MM-DD. Other text is kept
// so the row survives; date-based reports then ignore it.
func NormalizeDate(s string) string {
	if t, ok := parseTime(s); ok {
		return t.Format(DateLayout)
	}

	return s
}

func NormalizeTimestamp(s string) string {
	if t, ok := parseTime(s); ok {
		return t.Format(TimestampLayout)
	}

	return s
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	// ids exported as floats, e.g. "12.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}

	return 0, false
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
