package contract

import (
	"fmt"
	"regexp"
	"time"
)

// Window is the scoring period, aligned to UTC day boundaries.
type Window struct {
	Since time.Time
	Until time.Time
}

// NewWindow builds a window covering the last daysBack days, ending now.
// Both endpoints are truncated to the start of their UTC day so that a run
// at any time of day covers the same set of calendar days.
func NewWindow(now time.Time, daysBack int) Window {
	end := now.UTC().Truncate(24 * time.Hour)
	return Window{
		Since: end.AddDate(0, 0, -daysBack),
		Until: end,
	}
}

// Label renders the window for the board header, e.g. "Jan 2 - Jan 9".
func (w Window) Label() string {
	return fmt.Sprintf("%s - %s", w.Since.Format("Jan 2"), w.Until.Format("Jan 2"))
}

var fracRe = regexp.MustCompile(`\.\d+(Z|[+-]\d{2}:\d{2})$`)

// ParseInstant parses an RFC 3339 timestamp, tolerating fractional seconds.
// Records carrying timestamps that still fail to parse are skipped upstream.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	stripped := fracRe.ReplaceAllString(s, "$1")
	if stripped != s {
		if t, err2 := time.Parse(time.RFC3339, stripped); err2 == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse instant %q: %w", s, err)
}
