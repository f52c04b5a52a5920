// Package filter applies time-range and location predicates to session
// collections, shared by the report and history views.
package filter

import (
	"time"

	"github.com/nicehand/nicehand/internal/session"
)

// TimeRange selects which sessions fall inside the reporting window
type TimeRange string

const (
	All   TimeRange = "all"
	Week  TimeRange = "week"  // trailing 7 days
	Month TimeRange = "month" // same calendar month as now
	Year  TimeRange = "year"  // same calendar year as now
)

// TimeRanges lists the selectable ranges in display order
func TimeRanges() []TimeRange {
	return []TimeRange{All, Week, Month, Year}
}

// Filter is an ephemeral view-side predicate descriptor. An empty
// Location matches any location.
type Filter struct {
	Time     TimeRange
	Location string
}

// Matches reports whether a single session passes the filter at now
func (f Filter) Matches(s *session.Session, now time.Time) bool {
	if f.Location != "" && s.Location != f.Location {
		return false
	}

	switch f.Time {
	case Week:
		return s.StartTime.After(now.Add(-7 * 24 * time.Hour))
	case Month:
		return s.StartTime.Year() == now.Year() && s.StartTime.Month() == now.Month()
	case Year:
		return s.StartTime.Year() == now.Year()
	default:
		return true
	}
}

// Apply returns the sessions passing the filter, preserving input order
func Apply(sessions []*session.Session, f Filter, now time.Time) []*session.Session {
	out := make([]*session.Session, 0, len(sessions))
	for _, s := range sessions {
		if f.Matches(s, now) {
			out = append(out, s)
		}
	}
	return out
}

// Locations returns the distinct session locations in encounter order,
// used to populate the location selector
func Locations(sessions []*session.Session) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range sessions {
		if s.Location == "" {
			continue
		}
		if _, ok := seen[s.Location]; ok {
			continue
		}
		seen[s.Location] = struct{}{}
		out = append(out, s.Location)
	}
	return out
}
