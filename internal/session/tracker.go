package session

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// Tracker owns the single active-session slot and the session history.
// All mutations run synchronously on the caller's goroutine; the
// surrounding application serializes access.
//
// States: no active session, live running, live paused. Ending a
// session is terminal: it moves into history and the slot clears.
type Tracker struct {
	clock   quartz.Clock
	logger  *log.Logger
	active  *Session
	history []*Session
}

// NewTracker creates a tracker with the given clock
func NewTracker(clock quartz.Clock, logger *log.Logger) *Tracker {
	return &Tracker{
		clock:  clock,
		logger: logger.WithPrefix("session"),
	}
}

// Restore installs previously persisted state, replacing whatever the
// tracker currently holds
func (t *Tracker) Restore(active *Session, history []*Session) {
	t.active = active
	t.history = history
}

// Active returns the live session, or nil when none is running
func (t *Tracker) Active() *Session {
	return t.active
}

// History returns ended sessions, most recent last
func (t *Tracker) History() []*Session {
	return t.history
}

// Start creates a new live session and installs it in the active slot.
// A still-running previous session is overwritten; last call wins.
func (t *Tracker) Start(location, blinds string, buyIn float64, currency Currency, startTime time.Time) *Session {
	if t.active != nil {
		t.logger.Warn("starting session over a live one, discarding", "discarded", t.active.ID)
	}

	s := &Session{
		ID:        uuid.NewString(),
		Location:  location,
		StartTime: startTime,
		BuyIn:     buyIn,
		Blinds:    blinds,
		Currency:  currency,
		IsLive:    true,
		Pauses:    []Pause{},
	}
	t.active = s
	t.logger.Info("session started", "id", s.ID, "location", location, "blinds", blinds)
	return s
}

// TogglePause closes the open pause if one exists, otherwise opens a
// new one. No-op without an active session.
func (t *Tracker) TogglePause() {
	if t.active == nil {
		return
	}

	now := t.clock.Now()
	if n := len(t.active.Pauses); n > 0 && t.active.Pauses[n-1].Open() {
		t.active.Pauses[n-1].End = &now
		t.logger.Info("session resumed", "id", t.active.ID)
		return
	}
	t.active.Pauses = append(t.active.Pauses, Pause{Start: now})
	t.logger.Info("session paused", "id", t.active.ID)
}

// Rebuy adds amount to the active session's total buy-in. The amount is
// deliberately unvalidated: negative rebuys record corrections.
func (t *Tracker) Rebuy(amount float64) {
	if t.active == nil {
		return
	}
	t.active.BuyIn += amount
	t.logger.Info("rebuy", "id", t.active.ID, "amount", amount, "total", t.active.BuyIn)
}

// End freezes the active session's duration, records the cash-out, and
// moves it into history. No-op when no session is active.
func (t *Tracker) End(cashOut float64) *Session {
	if t.active == nil {
		return nil
	}

	now := t.clock.Now()
	s := t.active

	if n := len(s.Pauses); n > 0 && s.Pauses[n-1].Open() {
		s.Pauses[n-1].End = &now
	}

	s.DurationSeconds = s.Elapsed(now)
	s.EndTime = &now
	s.CashOut = &cashOut
	s.IsLive = false

	t.history = append(t.history, s)
	t.active = nil
	t.logger.Info("session ended", "id", s.ID, "duration_secs", s.DurationSeconds, "cash_out", cashOut)
	return s
}

// LogPast appends an already-ended session directly to history, used
// for back-filling games that were not tracked live
func (t *Tracker) LogPast(location, blinds string, buyIn, cashOut float64, currency Currency, startTime time.Time, duration time.Duration) *Session {
	end := startTime.Add(duration)
	s := &Session{
		ID:              uuid.NewString(),
		Location:        location,
		StartTime:       startTime,
		EndTime:         &end,
		BuyIn:           buyIn,
		CashOut:         &cashOut,
		Blinds:          blinds,
		Currency:        currency,
		DurationSeconds: int64(duration / time.Second),
		IsLive:          false,
		Pauses:          []Pause{},
	}
	t.history = append(t.history, s)
	t.logger.Info("past session logged", "id", s.ID, "location", location)
	return s
}

// Elapsed returns the active session's play time in whole seconds,
// zero when no session is running
func (t *Tracker) Elapsed() int64 {
	if t.active == nil {
		return 0
	}
	return t.active.Elapsed(t.clock.Now())
}
