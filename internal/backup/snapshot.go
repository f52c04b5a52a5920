// Package backup handles full-state snapshots: file export/import, the
// Google Drive round trip, and the debounced auto-backup scheduler.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nicehand/nicehand/internal/fileutil"
	"github.com/nicehand/nicehand/internal/i18n"
	"github.com/nicehand/nicehand/internal/ledger"
	"github.com/nicehand/nicehand/internal/session"
	"github.com/nicehand/nicehand/internal/stats"
)

// Settings is the portable settings block carried inside a snapshot.
// Field names match the historical export format.
type Settings struct {
	Currency session.Currency    `json:"userCurrency"`
	Rates    stats.ExchangeRates `json:"exchangeRates"`
	Lang     i18n.Language       `json:"lang"`
	Theme    string              `json:"themeColor"`
	APIKey   string              `json:"userApiKey"`
	ClientID string              `json:"googleClientId"`
}

// Snapshot is the full exported application state
type Snapshot struct {
	Sessions  []*session.Session `json:"sessions"`
	Hands     []*ledger.Hand     `json:"hands"`
	Settings  Settings           `json:"settings"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Encode renders the snapshot as indented JSON
func (s *Snapshot) Encode() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// FileName returns the dated export file name, e.g.
// "nicehand_backup_2026-08-29.json"
func FileName(now time.Time) string {
	return fmt.Sprintf("nicehand_backup_%s.json", now.Format("2006-01-02"))
}

// WriteFile exports the snapshot to path atomically
func (s *Snapshot) WriteFile(path string) error {
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Import is the result of parsing an external snapshot document.
// Sessions and Hands wholesale-replace local collections only when the
// document carried them as arrays; the Has flags record that.
type Import struct {
	Sessions    []*session.Session
	HasSessions bool
	Hands       []*ledger.Hand
	HasHands    bool
	Settings    *Settings
	UpdatedAt   time.Time
}

// Parse decodes an imported document. A field that is absent or not an
// array leaves the corresponding local collection untouched. A document
// that fails to parse is rejected whole; nothing is partially applied.
func Parse(data []byte) (*Import, error) {
	var raw struct {
		Sessions  json.RawMessage `json:"sessions"`
		Hands     json.RawMessage `json:"hands"`
		Settings  *Settings       `json:"settings"`
		UpdatedAt time.Time       `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	imp := &Import{Settings: raw.Settings, UpdatedAt: raw.UpdatedAt}

	if isJSONArray(raw.Sessions) {
		if err := json.Unmarshal(raw.Sessions, &imp.Sessions); err != nil {
			return nil, fmt.Errorf("parsing sessions: %w", err)
		}
		imp.HasSessions = true
	}
	if isJSONArray(raw.Hands) {
		if err := json.Unmarshal(raw.Hands, &imp.Hands); err != nil {
			return nil, fmt.Errorf("parsing hands: %w", err)
		}
		imp.HasHands = true
	}
	return imp, nil
}

// ReadFile parses a snapshot document from disk
func ReadFile(path string) (*Import, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
