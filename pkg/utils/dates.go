package utils

import (
	"time"
)

// Date layouts accepted by the flight backend.
const (
	DATE_LAYOUT_SLASH   = "02/01/2006"
	DATE_LAYOUT_ISO     = "2006-01-02"
	DATE_LAYOUT_DISPLAY = "02 Jan 2006"
)

// NormalizeDate parses a date string as DD/MM/YYYY first, then YYYY-MM-DD.
// When both fail it returns the current time — a lossy but documented
// fallback, so callers must not assume the result reflects the input.
// It never returns an error.
func NormalizeDate(value string) time.Time {
	if t, err := time.Parse(DATE_LAYOUT_SLASH, value); err == nil {
		return t
	}
	if t, err := time.Parse(DATE_LAYOUT_ISO, value); err == nil {
		return t
	}
	return time.Now()
}

// FormatDisplayDate renders a raw date string as "02 Jan 2006".
func FormatDisplayDate(value string) string {
	return NormalizeDate(value).Format(DATE_LAYOUT_DISPLAY)
}
