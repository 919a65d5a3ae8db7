// Package dates parses, orders and formats the "happened" timestamps carried
// by news items.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DisplayLayout renders dates the way the site shows them, e.g. "March 4, 2024"
const DisplayLayout = "January 2, 2006"

var ErrEmptyDate = errors.New("empty date")

// ParseHappened parses an ISO-8601 style date or date-time. Values without a
// zone are read as UTC.
func ParseHappened(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders s with DisplayLayout. Unparseable input is returned as is.
func FormatDate(s string) string {
	t, err := ParseHappened(s)
	if err != nil {
		return s
	}
	return t.Format(DisplayLayout)
}
