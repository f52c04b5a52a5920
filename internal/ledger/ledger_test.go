package ledger

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	return NewLedger(clock, log.New(io.Discard)), clock
}

func TestLedger_SaveAssignsIDAndTimestamp(t *testing.T) {
	l, clock := newTestLedger(t)

	h := l.Save(&Hand{Profit: 150})

	assert.NotEmpty(t, h.ID)
	assert.Equal(t, clock.Now(), h.Timestamp)
	require.Len(t, l.Hands(), 1)
}

func TestLedger_SaveUpdatesInPlace(t *testing.T) {
	l, clock := newTestLedger(t)

	h := l.Save(&Hand{Profit: 150, Note: "original"})
	created := h.Timestamp

	clock.Advance(time.Hour)
	l.Save(&Hand{ID: h.ID, Profit: -75, Note: "edited"})

	require.Len(t, l.Hands(), 1)
	updated := l.Get(h.ID)
	require.NotNil(t, updated)
	assert.Equal(t, float64(-75), updated.Profit)
	assert.Equal(t, "edited", updated.Note)
	assert.Equal(t, created, updated.Timestamp, "editing must preserve the original timestamp")
}

func TestLedger_SaveWithUnknownIDCreates(t *testing.T) {
	l, _ := newTestLedger(t)

	// A hand restored from a backup keeps its id even though the
	// ledger has never seen it
	l.Save(&Hand{ID: "imported-1", Profit: 10})

	require.Len(t, l.Hands(), 1)
	assert.NotNil(t, l.Get("imported-1"))
}

func TestLedger_SaveCapsCardCounts(t *testing.T) {
	l, _ := newTestLedger(t)

	h := l.Save(&Hand{
		HoleCards:      cards(t, "Ah", "Kd", "Qs"),
		CommunityCards: cards(t, "2c", "3c", "4c", "5c", "6c", "7c"),
		Villains:       []Villain{{Name: "Pete", Cards: cards(t, "Jh", "Jd", "Js")}},
	})

	assert.Len(t, h.HoleCards, 2, "two hole cards at most")
	assert.Len(t, h.CommunityCards, 5, "five board cards at most")
	require.Len(t, h.Villains, 1)
	assert.Len(t, h.Villains[0].Cards, 2)
	assert.NotEmpty(t, h.Villains[0].ID, "villains get ids on save")
}

func TestLedger_Delete(t *testing.T) {
	l, _ := newTestLedger(t)

	a := l.Save(&Hand{Profit: 1})
	b := l.Save(&Hand{Profit: 2})

	l.Delete(a.ID)
	require.Len(t, l.Hands(), 1)
	assert.Nil(t, l.Get(a.ID))
	assert.NotNil(t, l.Get(b.ID))

	l.Delete("missing")
	assert.Len(t, l.Hands(), 1)
}

func TestLedger_Restore(t *testing.T) {
	l, _ := newTestLedger(t)
	l.Save(&Hand{Profit: 1})

	l.Restore([]*Hand{{ID: "x", Profit: 9}})
	require.Len(t, l.Hands(), 1)
	assert.Equal(t, "x", l.Hands()[0].ID)
}
