// Package app wires the domain engines, settings, and collaborators
// into one explicit application-state aggregate. Every mutation is
// mirrored to the store before any network side effect runs; remote
// failures never roll back local state.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/nicehand/nicehand/internal/ai"
	"github.com/nicehand/nicehand/internal/backup"
	"github.com/nicehand/nicehand/internal/i18n"
	"github.com/nicehand/nicehand/internal/ledger"
	"github.com/nicehand/nicehand/internal/session"
	"github.com/nicehand/nicehand/internal/stats"
	"github.com/nicehand/nicehand/internal/store"
)

// Settings are the persisted app-wide user settings with their defaults
type Settings struct {
	Currency      session.Currency
	Rates         stats.ExchangeRates
	Lang          i18n.Language
	Theme         string
	WidgetEnabled bool
	APIKey        string
	DriveClientID string
	AutoBackup    bool
}

// DefaultSettings returns the settings used before any are persisted
func DefaultSettings() Settings {
	return Settings{
		Currency:      session.CNY,
		Rates:         stats.DefaultRates(),
		Lang:          i18n.Chinese,
		Theme:         "indigo",
		WidgetEnabled: true,
	}
}

// App is the application-state aggregate shared by the TUI and the CLI
// commands. Access is single-goroutine; network calls are dispatched
// only after the corresponding local write has committed.
type App struct {
	logger *log.Logger
	clock  quartz.Clock
	store  *store.Store

	Tracker  *session.Tracker
	Ledger   *ledger.Ledger
	Settings Settings

	AI    *ai.Client
	Drive *backup.DriveClient

	debouncer  *backup.Debouncer
	driveToken string

	// guards ledger access: analysis merges can land concurrently with
	// hand edits. All other mutations are single-goroutine.
	mu sync.Mutex
}

// New assembles the aggregate around an opened store
func New(st *store.Store, clock quartz.Clock, logger *log.Logger) *App {
	a := &App{
		logger:   logger.WithPrefix("app"),
		clock:    clock,
		store:    st,
		Tracker:  session.NewTracker(clock, logger),
		Ledger:   ledger.NewLedger(clock, logger),
		Settings: DefaultSettings(),
		AI:       ai.NewClient(logger),
		Drive:    backup.NewDriveClient(logger),
	}
	a.debouncer = backup.NewDebouncer(clock, backup.Window, a.autoBackup)
	return a
}

// Load hydrates the aggregate from the store, falling back to defaults
// for missing keys
func (a *App) Load() error {
	var sessions []*session.Session
	if _, err := a.store.Get(store.KeySessions, &sessions); err != nil {
		return err
	}
	var active *session.Session
	if _, err := a.store.Get(store.KeyActiveSession, &active); err != nil {
		return err
	}
	a.Tracker.Restore(active, sessions)

	var hands []*ledger.Hand
	if _, err := a.store.Get(store.KeyHands, &hands); err != nil {
		return err
	}
	a.Ledger.Restore(hands)

	for key, v := range map[string]any{
		store.KeyCurrency:      &a.Settings.Currency,
		store.KeyExchangeRates: &a.Settings.Rates,
		store.KeyLanguage:      &a.Settings.Lang,
		store.KeyTheme:         &a.Settings.Theme,
		store.KeyWidgetEnabled: &a.Settings.WidgetEnabled,
		store.KeyAIAPIKey:      &a.Settings.APIKey,
		store.KeyDriveClientID: &a.Settings.DriveClientID,
		store.KeyAutoBackup:    &a.Settings.AutoBackup,
	} {
		if _, err := a.store.Get(key, v); err != nil {
			return err
		}
	}
	if !a.Settings.Currency.Valid() {
		a.Settings.Currency = session.CNY
	}
	if !a.Settings.Lang.Valid() {
		a.Settings.Lang = i18n.Chinese
	}
	if len(a.Settings.Rates) == 0 {
		a.Settings.Rates = stats.DefaultRates()
	}
	return nil
}

// Close stops pending background work and closes the store
func (a *App) Close() error {
	a.debouncer.Stop()
	return a.store.Close()
}

// T translates a message key into the configured language
func (a *App) T(key string) string {
	return i18n.T(a.Settings.Lang, key)
}

// SetDriveToken installs the OAuth bearer token used by auto and
// manual backups for the rest of the process lifetime
func (a *App) SetDriveToken(token string) {
	a.driveToken = token
}

// DriveToken returns the installed bearer token, empty when absent
func (a *App) DriveToken() string {
	return a.driveToken
}

// -- session mutations --

// StartSession starts a live session and persists the active slot. A
// zero startTime means now.
func (a *App) StartSession(location, blinds string, buyIn float64, currency session.Currency, startTime time.Time) (*session.Session, error) {
	if startTime.IsZero() {
		startTime = a.clock.Now()
	}
	s := a.Tracker.Start(location, blinds, buyIn, currency, startTime)
	return s, a.persistActive()
}

// TogglePause pauses or resumes the live session
func (a *App) TogglePause() error {
	a.Tracker.TogglePause()
	return a.persistActive()
}

// Rebuy adds to the live session's buy-in
func (a *App) Rebuy(amount float64) error {
	a.Tracker.Rebuy(amount)
	return a.persistActive()
}

// EndSession ends the live session and moves it into history
func (a *App) EndSession(cashOut float64) (*session.Session, error) {
	s := a.Tracker.End(cashOut)
	if s == nil {
		return nil, nil
	}
	if err := a.persistActive(); err != nil {
		return s, err
	}
	return s, a.persistSessions()
}

// LogPastSession records an already-finished session
func (a *App) LogPastSession(location, blinds string, buyIn, cashOut float64, currency session.Currency, startTime time.Time, duration time.Duration) (*session.Session, error) {
	if startTime.IsZero() {
		startTime = a.clock.Now()
	}
	s := a.Tracker.LogPast(location, blinds, buyIn, cashOut, currency, startTime, duration)
	return s, a.persistSessions()
}

// -- hand mutations --

// SaveHand creates or updates a hand and persists the ledger
func (a *App) SaveHand(h *ledger.Hand) (*ledger.Hand, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	saved := a.Ledger.Save(h)
	return saved, a.persistHands()
}

// DeleteHand removes a hand and persists the ledger
func (a *App) DeleteHand(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Ledger.Delete(id)
	return a.persistHands()
}

// AnalyzeHand requests AI commentary for an already-saved hand and
// merges the result back only if the hand still exists when the call
// returns; a stale result for a deleted hand is dropped. The returned
// text is the analysis or a localized failure message.
func (a *App) AnalyzeHand(ctx context.Context, id string) (string, error) {
	a.mu.Lock()
	h := a.Ledger.Get(id)
	a.mu.Unlock()
	if h == nil {
		return "", fmt.Errorf("hand %s not found", id)
	}

	text := a.AI.AnalyzeHand(ctx, h, a.Settings.Lang, a.Settings.APIKey)

	a.mu.Lock()
	defer a.mu.Unlock()
	if current := a.Ledger.Get(id); current != nil {
		current.Analysis = text
		if err := a.persistHands(); err != nil {
			return text, err
		}
	} else {
		a.logger.Debug("dropping analysis for deleted hand", "id", id)
	}
	return text, nil
}

// AnalyzeHands analyzes several hands concurrently, bounded so a large
// backlog does not flood the AI service. Per-hand failures surface as
// localized text in the hand itself, never as an aggregate error.
func (a *App) AnalyzeHands(ctx context.Context, ids []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(3)
	for _, id := range ids {
		g.Go(func() error {
			_, err := a.AnalyzeHand(ctx, id)
			return err
		})
	}
	return g.Wait()
}

// -- settings mutations --

// SetCurrency changes the display currency
func (a *App) SetCurrency(c session.Currency) error {
	a.Settings.Currency = c
	return a.persistSetting(store.KeyCurrency, c)
}

// SetLanguage changes the UI language
func (a *App) SetLanguage(l i18n.Language) error {
	a.Settings.Lang = l
	return a.persistSetting(store.KeyLanguage, l)
}

// SetTheme changes the color theme
func (a *App) SetTheme(theme string) error {
	a.Settings.Theme = theme
	return a.persistSetting(store.KeyTheme, theme)
}

// SetRate updates one currency's exchange rate
func (a *App) SetRate(c session.Currency, rate float64) error {
	a.Settings.Rates[c] = rate
	return a.persistSetting(store.KeyExchangeRates, a.Settings.Rates)
}

// ResetRates restores the built-in default rate table
func (a *App) ResetRates() error {
	a.Settings.Rates = stats.DefaultRates()
	return a.persistSetting(store.KeyExchangeRates, a.Settings.Rates)
}

// SetAPIKey stores the Gemini API key
func (a *App) SetAPIKey(key string) error {
	a.Settings.APIKey = key
	return a.persistSetting(store.KeyAIAPIKey, key)
}

// SetDriveClientID stores the OAuth client id for Drive consent
func (a *App) SetDriveClientID(id string) error {
	a.Settings.DriveClientID = id
	return a.persistSetting(store.KeyDriveClientID, id)
}

// SetAutoBackup toggles the debounced auto-backup
func (a *App) SetAutoBackup(enabled bool) error {
	a.Settings.AutoBackup = enabled
	if !enabled {
		a.debouncer.Stop()
	}
	return a.persistSetting(store.KeyAutoBackup, enabled)
}

// SetWidgetEnabled toggles the floating live-session widget
func (a *App) SetWidgetEnabled(enabled bool) error {
	a.Settings.WidgetEnabled = enabled
	return a.persistSetting(store.KeyWidgetEnabled, enabled)
}

// -- statistics --

// Summary computes aggregate statistics over the given sessions in the
// configured display currency
func (a *App) Summary(sessions []*session.Session) stats.Summary {
	return stats.Compute(sessions, a.Settings.Currency, a.Settings.Rates)
}

// -- snapshot / backup --

// Snapshot captures the full application state for export or upload
func (a *App) Snapshot() *backup.Snapshot {
	return &backup.Snapshot{
		Sessions: a.Tracker.History(),
		Hands:    a.Ledger.Hands(),
		Settings: backup.Settings{
			Currency: a.Settings.Currency,
			Rates:    a.Settings.Rates,
			Lang:     a.Settings.Lang,
			Theme:    a.Settings.Theme,
			APIKey:   a.Settings.APIKey,
			ClientID: a.Settings.DriveClientID,
		},
		UpdatedAt: a.clock.Now(),
	}
}

// ExportTo writes the snapshot to a file
func (a *App) ExportTo(path string) error {
	return a.Snapshot().WriteFile(path)
}

// Apply merges an imported snapshot: sessions and hands replace the
// local collections only when the document carried them as arrays;
// settings apply when present. All changes persist before returning.
func (a *App) Apply(imp *backup.Import) error {
	if imp.HasSessions {
		a.Tracker.Restore(a.Tracker.Active(), imp.Sessions)
		if err := a.persistSessions(); err != nil {
			return err
		}
	}
	if imp.HasHands {
		a.Ledger.Restore(imp.Hands)
		if err := a.persistHands(); err != nil {
			return err
		}
	}
	if imp.Settings != nil {
		s := imp.Settings
		if s.Currency.Valid() {
			if err := a.SetCurrency(s.Currency); err != nil {
				return err
			}
		}
		if s.Lang.Valid() {
			if err := a.SetLanguage(s.Lang); err != nil {
				return err
			}
		}
		if s.Theme != "" {
			if err := a.SetTheme(s.Theme); err != nil {
				return err
			}
		}
		if len(s.Rates) > 0 {
			a.Settings.Rates = s.Rates
			if err := a.persistSetting(store.KeyExchangeRates, s.Rates); err != nil {
				return err
			}
		}
		if s.APIKey != "" {
			if err := a.SetAPIKey(s.APIKey); err != nil {
				return err
			}
		}
		if s.ClientID != "" {
			if err := a.SetDriveClientID(s.ClientID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ImportFile parses and applies a snapshot document from disk
func (a *App) ImportFile(path string) error {
	imp, err := backup.ReadFile(path)
	if err != nil {
		return err
	}
	return a.Apply(imp)
}

// BackupNow uploads the current snapshot to Drive immediately
func (a *App) BackupNow(ctx context.Context, token string) error {
	return a.Drive.Upload(ctx, a.Snapshot(), token)
}

// RestoreFromDrive downloads the cloud backup and applies it
func (a *App) RestoreFromDrive(ctx context.Context, token string) error {
	imp, err := a.Drive.Restore(ctx, token)
	if err != nil {
		return err
	}
	return a.Apply(imp)
}

// autoBackup runs when the debounce window elapses. Best effort: a
// missing token or upload failure is logged and forgotten.
func (a *App) autoBackup() {
	if !a.Settings.AutoBackup || a.driveToken == "" {
		return
	}
	if err := a.Drive.Upload(context.Background(), a.Snapshot(), a.driveToken); err != nil {
		a.logger.Warn("auto backup failed", "err", err)
	}
}

// -- persistence helpers --

func (a *App) persistActive() error {
	if err := a.store.Put(store.KeyActiveSession, a.Tracker.Active()); err != nil {
		return err
	}
	a.noteMutation()
	return nil
}

func (a *App) persistSessions() error {
	if err := a.store.Put(store.KeySessions, a.Tracker.History()); err != nil {
		return err
	}
	a.noteMutation()
	return nil
}

func (a *App) persistHands() error {
	if err := a.store.Put(store.KeyHands, a.Ledger.Hands()); err != nil {
		return err
	}
	a.noteMutation()
	return nil
}

func (a *App) persistSetting(key string, v any) error {
	if err := a.store.Put(key, v); err != nil {
		return err
	}
	a.noteMutation()
	return nil
}

// noteMutation restarts the auto-backup quiescence window
func (a *App) noteMutation() {
	if a.Settings.AutoBackup {
		a.debouncer.Trigger()
	}
}
