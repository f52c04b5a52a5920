package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicehand/nicehand/internal/i18n"
	"github.com/nicehand/nicehand/internal/ledger"
	"github.com/nicehand/nicehand/internal/session"
	"github.com/nicehand/nicehand/internal/stats"
)

func testSnapshot() *Snapshot {
	cashOut := 1500.0
	return &Snapshot{
		Sessions: []*session.Session{{
			ID:       "s1",
			Location: "Macau",
			BuyIn:    1000,
			CashOut:  &cashOut,
			Currency: session.CNY,
		}},
		Hands: []*ledger.Hand{{ID: "h1", Profit: 150}},
		Settings: Settings{
			Currency: session.CNY,
			Rates:    stats.DefaultRates(),
			Lang:     i18n.Chinese,
			Theme:    "indigo",
		},
		UpdatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
}

func TestSnapshot_EncodeParseRoundTrip(t *testing.T) {
	data, err := testSnapshot().Encode()
	require.NoError(t, err)

	imp, err := Parse(data)
	require.NoError(t, err)

	require.True(t, imp.HasSessions)
	require.Len(t, imp.Sessions, 1)
	assert.Equal(t, "Macau", imp.Sessions[0].Location)
	require.NotNil(t, imp.Sessions[0].CashOut)
	assert.Equal(t, 1500.0, *imp.Sessions[0].CashOut)

	require.True(t, imp.HasHands)
	require.Len(t, imp.Hands, 1)

	require.NotNil(t, imp.Settings)
	assert.Equal(t, session.CNY, imp.Settings.Currency)
}

func TestParse_MissingHandsLeavesLedgerUntouched(t *testing.T) {
	imp, err := Parse([]byte(`{"sessions": []}`))
	require.NoError(t, err)

	assert.True(t, imp.HasSessions, "empty sessions array still replaces history")
	assert.Empty(t, imp.Sessions)
	assert.False(t, imp.HasHands, "absent hands field must not touch the ledger")
}

func TestParse_NonArrayFieldsIgnored(t *testing.T) {
	imp, err := Parse([]byte(`{"sessions": "oops", "hands": 42}`))
	require.NoError(t, err)
	assert.False(t, imp.HasSessions)
	assert.False(t, imp.HasHands)
}

func TestParse_MalformedDocumentRejectedWhole(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"sessions": [{"buyIn": "not-a-number"}]}`))
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "nicehand_backup_2026-08-29.json", FileName(now))
}

func TestSnapshot_WriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName(time.Now()))
	require.NoError(t, testSnapshot().WriteFile(path))

	imp, err := ReadFile(path)
	require.NoError(t, err)
	assert.True(t, imp.HasSessions)
	assert.True(t, imp.HasHands)
}
