package session

import (
	"time"
)

// Currency is one of the fixed set of currencies a session can be
// denominated in. Exchange rates are expressed against USD.
type Currency string

const (
	CNY Currency = "CNY"
	USD Currency = "USD"
	HKD Currency = "HKD"
	EUR Currency = "EUR"
)

// Currencies lists the supported currencies in display order
func Currencies() []Currency {
	return []Currency{CNY, USD, HKD, EUR}
}

// Valid reports whether c is one of the supported currencies
func (c Currency) Valid() bool {
	switch c {
	case CNY, USD, HKD, EUR:
		return true
	}
	return false
}

// Pause is a recorded interval during which elapsed time does not
// accrue. An open pause has no End.
type Pause struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

// Open reports whether the pause has not been closed yet
func (p Pause) Open() bool {
	return p.End == nil
}

// Duration returns the paused span, treating an open pause's end as now
func (p Pause) Duration(now time.Time) time.Duration {
	end := now
	if p.End != nil {
		end = *p.End
	}
	return end.Sub(p.Start)
}

// Session is one continuous or logged poker-playing episode with a
// financial outcome.
type Session struct {
	ID        string     `json:"id"`
	Location  string     `json:"location"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`

	// BuyIn grows on rebuy. CashOut is set once at end of session and
	// stays nil while the session is live.
	BuyIn   float64  `json:"buyIn"`
	CashOut *float64 `json:"cashOut,omitempty"`

	Blinds   string   `json:"blinds"`
	Currency Currency `json:"currency"`
	Notes    string   `json:"notes,omitempty"`

	// DurationSeconds is only authoritative once the session has ended.
	// While live it is recomputed on demand, see Tracker.Elapsed.
	DurationSeconds int64 `json:"durationSeconds"`

	IsLive bool    `json:"isLive"`
	Pauses []Pause `json:"pauses"`
}

// Paused reports whether the last pause entry is still open
func (s *Session) Paused() bool {
	if len(s.Pauses) == 0 {
		return false
	}
	return s.Pauses[len(s.Pauses)-1].Open()
}

// PausedDuration sums all pause intervals, treating an open pause's end
// as now
func (s *Session) PausedDuration(now time.Time) time.Duration {
	var total time.Duration
	for _, p := range s.Pauses {
		total += p.Duration(now)
	}
	return total
}

// Elapsed returns whole seconds of play time at now, excluding pauses.
// Never negative.
func (s *Session) Elapsed(now time.Time) int64 {
	elapsed := now.Sub(s.StartTime) - s.PausedDuration(now)
	secs := int64(elapsed / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// PnL returns the session's net result in its own currency. The second
// return is false while the session is live or has no recorded cash-out.
func (s *Session) PnL() (float64, bool) {
	if s.CashOut == nil {
		return 0, false
	}
	return *s.CashOut - s.BuyIn, true
}
