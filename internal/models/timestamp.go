package models

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Timestamp is an instant exactly as the API delivered it. It may be empty or
// unparsable, in which case it is treated as absent.
type Timestamp string

// Parse returns the instant and true, or the zero time and false when the
// value is empty or cannot be parsed.
func (ts Timestamp) Parse() (time.Time, bool) {
	s := strings.TrimSpace(string(ts))
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}

	// timestamps without an offset are produced by the API in UTC
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// IsZero reports whether the timestamp is absent or invalid.
func (ts Timestamp) IsZero() bool {
	_, ok := ts.Parse()
	return !ok
}

// NewTimestamp formats t as an RFC3339 timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(time.RFC3339Nano))
}
