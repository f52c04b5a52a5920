package session

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T) (*Tracker, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	tracker := NewTracker(clock, log.New(io.Discard))
	return tracker, clock
}

func TestTracker_StartInstallsActiveSession(t *testing.T) {
	tracker, clock := newTestTracker(t)

	s := tracker.Start("Macau", "5/10", 1000, CNY, clock.Now())

	require.NotNil(t, tracker.Active())
	assert.Equal(t, s.ID, tracker.Active().ID)
	assert.True(t, s.IsLive)
	assert.Empty(t, s.Pauses)
	assert.Nil(t, s.CashOut)
	assert.Empty(t, tracker.History())
}

func TestTracker_StartOverwritesLiveSession(t *testing.T) {
	tracker, clock := newTestTracker(t)

	first := tracker.Start("Macau", "5/10", 1000, CNY, clock.Now())
	second := tracker.Start("Vegas", "1/2", 300, USD, clock.Now())

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, second.ID, tracker.Active().ID)
	// Discarded session never reaches history
	assert.Empty(t, tracker.History())
}

func TestTracker_TogglePauseNeverLeavesTwoOpenPauses(t *testing.T) {
	tracker, clock := newTestTracker(t)
	tracker.Start("Macau", "5/10", 1000, CNY, clock.Now())

	for i := 0; i < 7; i++ {
		tracker.TogglePause()
		clock.Advance(time.Minute)

		pauses := tracker.Active().Pauses
		open := 0
		for j, p := range pauses {
			if p.Open() {
				open++
				assert.Equal(t, len(pauses)-1, j, "only the last pause may be open")
			}
		}
		assert.LessOrEqual(t, open, 1)
	}
}

func TestTracker_ElapsedFreezesWhilePaused(t *testing.T) {
	tracker, clock := newTestTracker(t)
	tracker.Start("Macau", "5/10", 1000, CNY, clock.Now())

	clock.Advance(30 * time.Minute)
	assert.Equal(t, int64(1800), tracker.Elapsed())

	tracker.TogglePause()
	clock.Advance(10 * time.Minute)
	assert.Equal(t, int64(1800), tracker.Elapsed(), "elapsed must not advance while paused")

	tracker.TogglePause()
	clock.Advance(5 * time.Minute)
	assert.Equal(t, int64(2100), tracker.Elapsed())
}

func TestTracker_ElapsedZeroWithoutActiveSession(t *testing.T) {
	tracker, _ := newTestTracker(t)
	assert.Equal(t, int64(0), tracker.Elapsed())
}

func TestTracker_Rebuy(t *testing.T) {
	tracker, clock := newTestTracker(t)
	tracker.Start("Macau", "5/10", 1000, CNY, clock.Now())

	tracker.Rebuy(500)
	tracker.Rebuy(250)
	assert.Equal(t, float64(1750), tracker.Active().BuyIn)

	// Negative rebuys record corrections and are accepted
	tracker.Rebuy(-250)
	assert.Equal(t, float64(1500), tracker.Active().BuyIn)
}

func TestTracker_EndClosesOpenPauseAndFreezesDuration(t *testing.T) {
	tracker, clock := newTestTracker(t)
	tracker.Start("Macau", "5/10", 1000, CNY, clock.Now())

	clock.Advance(time.Hour)
	tracker.TogglePause()
	clock.Advance(20 * time.Minute)

	s := tracker.End(1500)
	require.NotNil(t, s)

	assert.False(t, s.IsLive)
	require.NotNil(t, s.CashOut)
	assert.Equal(t, float64(1500), *s.CashOut)
	require.Len(t, s.Pauses, 1)
	assert.False(t, s.Pauses[0].Open(), "open pause must be closed at end")
	assert.Equal(t, int64(3600), s.DurationSeconds)

	assert.Nil(t, tracker.Active())
	require.Len(t, tracker.History(), 1)
	assert.Equal(t, s.ID, tracker.History()[0].ID)
}

func TestTracker_EndWithoutActiveSessionIsNoop(t *testing.T) {
	tracker, _ := newTestTracker(t)
	assert.Nil(t, tracker.End(100))
	assert.Empty(t, tracker.History())
}

// Full scenario: start at t0, pause at t0+1800s, resume at t0+2400s,
// end at t0+7200s. Duration excludes the 600s pause.
func TestTracker_PauseResumeEndScenario(t *testing.T) {
	tracker, clock := newTestTracker(t)
	tracker.Start("Macau", "5/10", 1000, CNY, clock.Now())

	clock.Advance(1800 * time.Second)
	tracker.TogglePause()
	clock.Advance(600 * time.Second)
	tracker.TogglePause()
	clock.Advance(4800 * time.Second)

	s := tracker.End(1500)
	require.NotNil(t, s)
	assert.Equal(t, int64(6600), s.DurationSeconds)

	pnl, ok := s.PnL()
	require.True(t, ok)
	assert.Equal(t, float64(500), pnl)
}

func TestTracker_DurationNeverNegative(t *testing.T) {
	tracker, clock := newTestTracker(t)
	// Session back-dated into the future relative to the clock
	tracker.Start("Macau", "5/10", 1000, CNY, clock.Now().Add(time.Hour))

	assert.Equal(t, int64(0), tracker.Elapsed())
	s := tracker.End(1000)
	require.NotNil(t, s)
	assert.GreaterOrEqual(t, s.DurationSeconds, int64(0))
}

func TestTracker_LogPast(t *testing.T) {
	tracker, clock := newTestTracker(t)

	start := clock.Now().Add(-48 * time.Hour)
	s := tracker.LogPast("Vegas", "2/5", 500, 800, USD, start, 4*time.Hour)

	assert.Nil(t, tracker.Active())
	require.Len(t, tracker.History(), 1)
	assert.False(t, s.IsLive)
	assert.Equal(t, int64(14400), s.DurationSeconds)
	require.NotNil(t, s.EndTime)
	assert.Equal(t, start.Add(4*time.Hour), *s.EndTime)
}

func TestSession_PnLUndefinedWhileLive(t *testing.T) {
	tracker, clock := newTestTracker(t)
	s := tracker.Start("Macau", "5/10", 1000, CNY, clock.Now())

	_, ok := s.PnL()
	assert.False(t, ok)
}
