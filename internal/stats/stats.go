// Package stats derives aggregate statistics from session history.
// Every read recomputes from scratch; input sizes are personal-scale
// so there is no caching.
package stats

import (
	"math"

	"github.com/nicehand/nicehand/internal/session"
)

// Summary holds aggregate results over a session collection, with all
// monetary values expressed in the requested display currency.
type Summary struct {
	TotalPnL   float64 // net profit/loss in the display currency
	Wins       int
	Losses     int
	Sessions   int     // total sessions seen, including unresolved ones
	TotalHours float64 // summed session durations
	WinRate    float64 // wins / (wins+losses) * 100, one decimal
	HourlyRate float64 // TotalPnL / TotalHours, one decimal
}

// Compute aggregates the given sessions into a Summary. Sessions
// without a recorded cash-out have no defined outcome and contribute
// only to the session count. Break-even sessions count toward neither
// wins nor losses.
func Compute(sessions []*session.Session, display session.Currency, rates ExchangeRates) Summary {
	var totalBase float64
	s := Summary{Sessions: len(sessions)}

	for _, sess := range sessions {
		pnl, ok := sess.PnL()
		if !ok {
			continue
		}

		totalBase += rates.ToBase(pnl, sess.Currency)
		if pnl > 0 {
			s.Wins++
		} else if pnl < 0 {
			s.Losses++
		}
		s.TotalHours += float64(sess.DurationSeconds) / 3600
	}

	s.TotalPnL = rates.FromBase(totalBase, display)
	if decided := s.Wins + s.Losses; decided > 0 {
		s.WinRate = round1(float64(s.Wins) / float64(decided) * 100)
	}
	if s.TotalHours > 0 {
		s.HourlyRate = round1(s.TotalPnL / s.TotalHours)
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
