package filter

import (
	"testing"
	"time"

	"github.com/nicehand/nicehand/internal/session"
)

func at(start time.Time, location string) *session.Session {
	return &session.Session{StartTime: start, Location: location}
}

func TestApply_TimeRanges(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	sessions := []*session.Session{
		at(now.Add(-time.Hour), "Macau"),           // today
		at(now.Add(-6*24*time.Hour), "Macau"),      // this week
		at(now.Add(-10*24*time.Hour), "Vegas"),     // this month, not this week
		at(now.Add(-60*24*time.Hour), "Vegas"),     // this year (June)
		at(now.Add(-400*24*time.Hour), "Macau"),    // last year
		at(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "Vegas"), // January, this year
	}

	tests := []struct {
		name     string
		filter   Filter
		expected int
	}{
		{"all", Filter{Time: All}, 6},
		{"week", Filter{Time: Week}, 2},
		{"month", Filter{Time: Month}, 3},
		{"year", Filter{Time: Year}, 5},
		{"location only", Filter{Time: All, Location: "Vegas"}, 3},
		{"location and year", Filter{Time: Year, Location: "Macau"}, 2},
		{"no match", Filter{Time: All, Location: "Monaco"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sessions, tt.filter, now)
			if len(got) != tt.expected {
				t.Errorf("Expected %d sessions, got %d", tt.expected, len(got))
			}
		})
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	now := time.Now()
	sessions := []*session.Session{
		at(now.Add(-3*time.Hour), "A"),
		at(now.Add(-2*time.Hour), "B"),
		at(now.Add(-1*time.Hour), "A"),
	}

	got := Apply(sessions, Filter{Time: All, Location: "A"}, now)
	if len(got) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(got))
	}
	if !got[0].StartTime.Before(got[1].StartTime) {
		t.Error("Filtering must preserve input order")
	}
}

func TestApply_Idempotent(t *testing.T) {
	now := time.Now()
	sessions := []*session.Session{
		at(now.Add(-time.Hour), "Macau"),
		at(now.Add(-30*24*time.Hour), "Vegas"),
		at(now.Add(-2*24*time.Hour), "Macau"),
	}

	f := Filter{Time: Week, Location: "Macau"}
	once := Apply(sessions, f, now)
	twice := Apply(once, f, now)

	if len(once) != len(twice) {
		t.Fatalf("Filter not idempotent: %d != %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("Element %d differs after refiltering", i)
		}
	}
}

func TestLocations(t *testing.T) {
	sessions := []*session.Session{
		at(time.Now(), "Macau"),
		at(time.Now(), "Vegas"),
		at(time.Now(), "Macau"),
		at(time.Now(), ""),
	}

	locs := Locations(sessions)
	if len(locs) != 2 {
		t.Fatalf("Expected 2 distinct locations, got %v", locs)
	}
	if locs[0] != "Macau" || locs[1] != "Vegas" {
		t.Errorf("Expected encounter order [Macau Vegas], got %v", locs)
	}
}
