// Package timeutil holds the belt's small clock helpers.
package timeutil

import (
	"strings"
	"time"
)

// StampLayout is the fixed, lexically sortable timestamp layout the belt
// prints everywhere.
const StampLayout = "2006-01-02 15:04:05"

// Stamp returns the local wall clock in StampLayout.
func Stamp() string {
	return time.Now().Format(StampLayout)
}

// StampUTC is Stamp in UTC.
func StampUTC() string {
	return time.Now().UTC().Format(StampLayout)
}

// ElapsedMS returns whole milliseconds since start.
func ElapsedMS(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

// ParseDurationOr parses raw as a duration, returning fallback when raw
// is empty or malformed.
func ParseDurationOr(raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
