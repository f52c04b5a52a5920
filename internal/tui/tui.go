// Package tui renders the five-view terminal interface: report,
// results, record, hands, and more. All state mutations go through the
// app aggregate; the model only holds view-side cursor and input state.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nicehand/nicehand/internal/ai"
	"github.com/nicehand/nicehand/internal/app"
	"github.com/nicehand/nicehand/internal/backup"
	"github.com/nicehand/nicehand/internal/deck"
	"github.com/nicehand/nicehand/internal/filter"
	"github.com/nicehand/nicehand/internal/i18n"
	"github.com/nicehand/nicehand/internal/ledger"
	"github.com/nicehand/nicehand/internal/session"
)

// View identifies one of the five top-level screens
type View int

const (
	ViewReport View = iota
	ViewResults
	ViewRecord
	ViewHands
	ViewMore
)

// inputMode says what the shared prompt input is currently collecting
type inputMode int

const (
	inputNone inputMode = iota
	inputStartLocation
	inputStartBlinds
	inputStartBuyIn
	inputRebuy
	inputCashOut
	inputPastLocation
	inputPastBlinds
	inputPastBuyIn
	inputPastCashOut
	inputPastHours
	inputHandCards
	inputHandBoard
	inputHandVillainName
	inputHandVillainCards
	inputHandPosition
	inputHandActions
	inputHandProfit
	inputHandNote
	inputHandAnalyze
	inputEditNote
	inputImportPath
	inputAPIKey
	inputClientID
)

// tickMsg drives the once-per-second live duration refresh
type tickMsg time.Time

// analysisMsg carries an async AI hand analysis result
type analysisMsg struct {
	id   string
	text string
	err  error
}

// chatMsg carries an async coach reply
type chatMsg struct {
	text string
}

// driveMsg carries the result of a manual Drive backup or restore
type driveMsg struct {
	label string
	err   error
}

// Model is the Bubble Tea model for the tracker interface
type Model struct {
	app    *app.App
	logger *log.Logger
	theme  Theme

	view   View
	width  int
	height int

	// report filter state
	filter filter.Filter

	// list cursors
	resultCursor int
	handCursor   int

	// shared prompt input and pending multi-step form fields
	input           textinput.Model
	mode            inputMode
	pendLocation    string
	pendBlinds      string
	pendBuyIn       float64
	pendCashOut     float64
	pendCards       []deck.Card
	pendBoard       []deck.Card
	pendVillainName string
	pendVillains    []ledger.Villain
	pendPosition    string
	pendActions     string
	pendProfit      float64
	pendHandID      string

	// coach chat overlay
	chatOpen    bool
	chatBusy    bool
	chatHistory []ai.Message
	chatView    viewport.Model
	chatInput   textinput.Model

	analyzing map[string]bool
	status    string
	quitting  bool
}

// NewModel creates the tracker TUI model
func NewModel(a *app.App, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "> "

	ci := textinput.New()
	ci.CharLimit = 400
	ci.Width = 60
	ci.Prompt = "> "

	return &Model{
		app:       a,
		logger:    logger.WithPrefix("tui"),
		theme:     ThemeByName(a.Settings.Theme),
		view:      ViewReport,
		filter:    filter.Filter{Time: filter.All},
		input:     ti,
		chatInput: ci,
		chatView:  viewport.New(10, 5),
		analyzing: make(map[string]bool),
	}
}

// Init starts the per-second refresh used by the live session display
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chatView.Width = max(20, m.width-6)
		m.chatView.Height = max(5, m.height-8)

	case tickMsg:
		// The elapsed display only moves while a session is live, so
		// the refresh loop stops with the session and restarts on the
		// next start. The tracker freezes elapsed time while paused.
		if m.app.Tracker.Active() == nil {
			return m, nil
		}
		return m, tick()

	case analysisMsg:
		delete(m.analyzing, msg.id)
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil

	case driveMsg:
		if msg.err != nil {
			m.status = msg.label + ": " + msg.err.Error()
		} else {
			m.status = msg.label + " ✓"
		}
		return m, nil

	case chatMsg:
		m.chatBusy = false
		m.chatHistory = append(m.chatHistory, ai.Message{Role: ai.RoleModel, Text: msg.text})
		m.refreshChat()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.chatOpen {
		return m.handleChatKey(msg)
	}
	if m.mode != inputNone {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	case "1":
		m.view = ViewReport
	case "2":
		m.view = ViewResults
	case "3":
		m.view = ViewRecord
	case "4":
		m.view = ViewHands
	case "5":
		m.view = ViewMore
	case "tab":
		m.view = (m.view + 1) % 5
	case "shift+tab":
		m.view = (m.view + 4) % 5
	case "C":
		return m.openChat()
	}

	switch m.view {
	case ViewReport:
		return m.handleReportKey(msg)
	case ViewResults:
		return m.handleListKey(msg, &m.resultCursor, len(m.app.Tracker.History()))
	case ViewRecord:
		return m.handleRecordKey(msg)
	case ViewHands:
		return m.handleHandsKey(msg)
	case ViewMore:
		return m.handleMoreKey(msg)
	}
	return m, nil
}

func (m *Model) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f":
		ranges := filter.TimeRanges()
		for i, r := range ranges {
			if r == m.filter.Time {
				m.filter.Time = ranges[(i+1)%len(ranges)]
				return m, nil
			}
		}
		m.filter.Time = ranges[0]
	case "l":
		locs := filter.Locations(m.app.Tracker.History())
		if len(locs) == 0 {
			return m, nil
		}
		// "" (all locations) sits before the first named location
		cycle := append([]string{""}, locs...)
		for i, l := range cycle {
			if l == m.filter.Location {
				m.filter.Location = cycle[(i+1)%len(cycle)]
				return m, nil
			}
		}
		m.filter.Location = ""
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg, cursor *int, n int) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if *cursor > 0 {
			*cursor--
		}
	case "down", "j":
		if *cursor < n-1 {
			*cursor++
		}
	}
	return m, nil
}

func (m *Model) handleRecordKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.app.Tracker.Active()
	switch msg.String() {
	case "n":
		if active == nil {
			m.prompt(inputStartLocation, m.app.T("live.location"))
		}
	case "L":
		if active == nil {
			m.prompt(inputPastLocation, m.app.T("live.location"))
		}
	case "h":
		m.pendBoard = nil
		m.pendVillains = nil
		m.pendPosition = ""
		m.pendActions = ""
		m.pendHandID = ""
		m.prompt(inputHandCards, m.app.T("hand.hero")+" (Ah Kd)")
	case "p":
		if active != nil {
			if err := m.app.TogglePause(); err != nil {
				m.status = err.Error()
			}
		}
	case "r":
		if active != nil {
			m.prompt(inputRebuy, m.app.T("live.rebuy"))
		}
	case "e":
		if active != nil {
			m.prompt(inputCashOut, m.app.T("live.cashOut"))
		}
	}
	return m, nil
}

func (m *Model) handleHandsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	hands := m.app.Ledger.Hands()
	switch msg.String() {
	case "a":
		if m.handCursor < len(hands) {
			h := hands[m.handCursor]
			if !m.analyzing[h.ID] {
				m.analyzing[h.ID] = true
				return m, m.analyzeCmd(h.ID)
			}
		}
		return m, nil
	case "d":
		if m.handCursor < len(hands) {
			if err := m.app.DeleteHand(hands[m.handCursor].ID); err != nil {
				m.status = err.Error()
			}
			if m.handCursor > 0 {
				m.handCursor--
			}
		}
		return m, nil
	case "e":
		if m.handCursor < len(hands) {
			m.prompt(inputEditNote, m.app.T("common.notes"))
			m.input.SetValue(hands[m.handCursor].Note)
		}
		return m, nil
	}
	return m.handleListKey(msg, &m.handCursor, len(hands))
}

func (m *Model) handleMoreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch msg.String() {
	case "x":
		path := backup.FileName(time.Now())
		if err := m.app.ExportTo(path); err != nil {
			m.status = err.Error()
		} else {
			m.status = m.app.T("more.export") + ": " + path
		}
		return m, nil
	case "i":
		m.prompt(inputImportPath, "nicehand_backup.json")
		return m, nil
	case "k":
		m.prompt(inputAPIKey, "API key")
		return m, nil
	case "o":
		m.prompt(inputClientID, "client id")
		return m, nil
	case "R":
		if err := m.app.ResetRates(); err != nil {
			m.status = err.Error()
		}
		return m, nil
	case "B":
		if m.app.DriveToken() == "" {
			m.status = m.app.T("more.driveBackup") + ": no token"
			return m, nil
		}
		return m, m.backupCmd()
	case "r":
		if m.app.DriveToken() == "" {
			m.status = m.app.T("more.restoreDrive") + ": no token"
			return m, nil
		}
		return m, m.restoreCmd()
	case "u":
		cs := session.Currencies()
		for i, c := range cs {
			if c == m.app.Settings.Currency {
				err = m.app.SetCurrency(cs[(i+1)%len(cs)])
				break
			}
		}
	case "g":
		next := i18nToggle(m.app.Settings.Lang)
		err = m.app.SetLanguage(next)
	case "t":
		themes := Themes()
		for i, t := range themes {
			if t.Name == m.theme.Name {
				m.theme = themes[(i+1)%len(themes)]
				break
			}
		}
		err = m.app.SetTheme(m.theme.Name)
	case "w":
		err = m.app.SetWidgetEnabled(!m.app.Settings.WidgetEnabled)
	case "b":
		err = m.app.SetAutoBackup(!m.app.Settings.AutoBackup)
	}
	if err != nil {
		m.status = err.Error()
	}
	return m, nil
}

// -- prompt input flow --

func (m *Model) prompt(mode inputMode, placeholder string) {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.input.Blur()
		return m, nil
	case "enter":
		return m.submitPrompt(strings.TrimSpace(m.input.Value()))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitPrompt(value string) (tea.Model, tea.Cmd) {
	switch m.mode {
	case inputStartLocation:
		m.pendLocation = value
		m.prompt(inputStartBlinds, m.app.T("live.blinds"))
		return m, nil
	case inputStartBlinds:
		m.pendBlinds = value
		m.prompt(inputStartBuyIn, m.app.T("live.buyIn"))
		return m, nil
	case inputStartBuyIn:
		buyIn, err := parseAmount(value)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = inputNone
		m.input.Blur()
		if _, err := m.app.StartSession(m.pendLocation, m.pendBlinds, buyIn, m.app.Settings.Currency, time.Time{}); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, tick()
	case inputRebuy:
		amount, err := parseAmount(value)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = inputNone
		m.input.Blur()
		if err := m.app.Rebuy(amount); err != nil {
			m.status = err.Error()
		}
		return m, nil
	case inputCashOut:
		cashOut, err := parseAmount(value)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = inputNone
		m.input.Blur()
		if _, err := m.app.EndSession(cashOut); err != nil {
			m.status = err.Error()
		}
		return m, nil

	case inputPastLocation:
		m.pendLocation = value
		m.prompt(inputPastBlinds, m.app.T("live.blinds"))
		return m, nil
	case inputPastBlinds:
		m.pendBlinds = value
		m.prompt(inputPastBuyIn, m.app.T("live.buyIn"))
		return m, nil
	case inputPastBuyIn:
		buyIn, err := parseAmount(value)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.pendBuyIn = buyIn
		m.prompt(inputPastCashOut, m.app.T("live.cashOut"))
		return m, nil
	case inputPastCashOut:
		cashOut, err := parseAmount(value)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.pendCashOut = cashOut
		m.prompt(inputPastHours, m.app.T("live.duration")+" (h)")
		return m, nil
	case inputPastHours:
		hours, err := parseAmount(value)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = inputNone
		m.input.Blur()
		duration := time.Duration(hours * float64(time.Hour))
		if _, err := m.app.LogPastSession(m.pendLocation, m.pendBlinds, m.pendBuyIn, m.pendCashOut,
			m.app.Settings.Currency, time.Time{}, duration); err != nil {
			m.status = err.Error()
		}
		return m, nil

	case inputHandCards:
		cards, err := parseCards(value, 2)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.pendCards = cards
		m.prompt(inputHandBoard, m.app.T("hand.board")+" (7h 8h 2c)")
		return m, nil
	case inputHandBoard:
		if value != "" {
			board, err := parseCards(value, 5)
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.pendBoard = board
		}
		m.prompt(inputHandVillainName, m.app.T("hand.villain"))
		return m, nil
	case inputHandVillainName:
		// Blank ends the villain list and moves on
		if value == "" {
			m.prompt(inputHandPosition, m.app.T("common.position")+" (BTN)")
			return m, nil
		}
		m.pendVillainName = value
		m.prompt(inputHandVillainCards, value+" (Qs Qd)")
		return m, nil
	case inputHandVillainCards:
		cards, err := parseCards(value, 2)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.pendVillains = append(m.pendVillains, ledger.Villain{Name: m.pendVillainName, Cards: cards})
		m.prompt(inputHandVillainName, m.app.T("hand.villain"))
		return m, nil
	case inputHandPosition:
		if value != "" {
			pos, ok := matchPosition(value)
			if !ok {
				m.status = fmt.Sprintf("unknown position %q", value)
				return m, nil
			}
			m.pendPosition = pos
		}
		m.prompt(inputHandActions, "preflop raise, flop c-bet...")
		return m, nil
	case inputHandActions:
		m.pendActions = value
		m.prompt(inputHandProfit, m.app.T("hand.profit"))
		return m, nil
	case inputHandProfit:
		profit, err := parseAmount(value)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.pendProfit = profit
		m.prompt(inputHandNote, m.app.T("common.notes"))
		return m, nil
	case inputHandNote:
		h := &ledger.Hand{
			HoleCards:      m.pendCards,
			CommunityCards: m.pendBoard,
			Villains:       m.pendVillains,
			HeroPosition:   m.pendPosition,
			StreetActions:  m.pendActions,
			Profit:         m.pendProfit,
			Note:           value,
		}
		if active := m.app.Tracker.Active(); active != nil {
			h.SessionID = active.ID
			h.SessionLocation = active.Location
		}
		saved, err := m.app.SaveHand(h)
		if err != nil {
			m.mode = inputNone
			m.input.Blur()
			m.status = err.Error()
			return m, nil
		}
		m.pendHandID = saved.ID
		m.prompt(inputHandAnalyze, m.app.T("hand.analysis")+"? y/N")
		return m, nil
	case inputHandAnalyze:
		m.mode = inputNone
		m.input.Blur()
		if strings.EqualFold(value, "y") && m.pendHandID != "" {
			m.analyzing[m.pendHandID] = true
			return m, m.analyzeCmd(m.pendHandID)
		}
		return m, nil
	case inputEditNote:
		m.mode = inputNone
		m.input.Blur()
		hands := m.app.Ledger.Hands()
		if m.handCursor < len(hands) {
			h := hands[m.handCursor]
			h.Note = value
			if _, err := m.app.SaveHand(h); err != nil {
				m.status = err.Error()
			}
		}
		return m, nil

	case inputImportPath:
		m.mode = inputNone
		m.input.Blur()
		if err := m.app.ImportFile(value); err != nil {
			m.status = m.app.T("backup.badImport") + ": " + err.Error()
		}
		return m, nil
	case inputAPIKey:
		m.mode = inputNone
		m.input.Blur()
		if err := m.app.SetAPIKey(value); err != nil {
			m.status = err.Error()
		}
		return m, nil
	case inputClientID:
		m.mode = inputNone
		m.input.Blur()
		if err := m.app.SetDriveClientID(value); err != nil {
			m.status = err.Error()
		}
		return m, nil
	}
	m.mode = inputNone
	m.input.Blur()
	return m, nil
}

// -- coach chat overlay --

func (m *Model) openChat() (tea.Model, tea.Cmd) {
	m.chatOpen = true
	if len(m.chatHistory) == 0 {
		m.chatHistory = append(m.chatHistory, ai.Message{Role: ai.RoleModel, Text: m.app.T("ai.greeting")})
	}
	m.refreshChat()
	m.chatInput.Focus()
	return m, textinput.Blink
}

func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chatOpen = false
		m.chatInput.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.chatBusy {
			return m, nil
		}
		m.chatInput.SetValue("")
		history := append([]ai.Message{}, m.chatHistory...)
		m.chatHistory = append(m.chatHistory, ai.Message{Role: ai.RoleUser, Text: text})
		m.chatBusy = true
		m.refreshChat()
		return m, m.chatCmd(history, text)
	case "up":
		m.chatView.ScrollUp(1)
		return m, nil
	case "down":
		m.chatView.ScrollDown(1)
		return m, nil
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m *Model) refreshChat() {
	var b strings.Builder
	for _, msg := range m.chatHistory {
		name := "HAO"
		style := m.accent()
		if msg.Role == ai.RoleUser {
			name = m.app.T("hand.hero")
			style = ValueStyle
		}
		b.WriteString(style.Render(name+":") + " " + msg.Text + "\n\n")
	}
	if m.chatBusy {
		b.WriteString(HelpStyle.Render(m.app.T("hand.analyzing")) + "\n")
	}
	m.chatView.SetContent(b.String())
	m.chatView.GotoBottom()
}

// -- async commands --

func (m *Model) analyzeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		text, err := m.app.AnalyzeHand(context.Background(), id)
		return analysisMsg{id: id, text: text, err: err}
	}
}

func (m *Model) backupCmd() tea.Cmd {
	a := m.app
	label := m.app.T("more.driveBackup")
	return func() tea.Msg {
		return driveMsg{label: label, err: a.BackupNow(context.Background(), a.DriveToken())}
	}
}

func (m *Model) restoreCmd() tea.Cmd {
	a := m.app
	label := m.app.T("more.restoreDrive")
	return func() tea.Msg {
		return driveMsg{label: label, err: a.RestoreFromDrive(context.Background(), a.DriveToken())}
	}
}

func (m *Model) chatCmd(history []ai.Message, text string) tea.Cmd {
	a := m.app
	return func() tea.Msg {
		reply := a.AI.Chat(context.Background(), history, text, a.Settings.Lang, a.Settings.APIKey)
		return chatMsg{text: reply}
	}
}

// View renders the interface
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return m.app.T("common.loading")
	}

	if m.chatOpen {
		return m.renderChat()
	}

	var body string
	switch m.view {
	case ViewReport:
		body = m.renderReport()
	case ViewResults:
		body = m.renderResults()
	case ViewRecord:
		body = m.renderRecord()
	case ViewHands:
		body = m.renderHands()
	case ViewMore:
		body = m.renderMore()
	}

	sections := []string{m.renderTabs(), body}
	if m.mode != inputNone {
		sections = append(sections, m.input.View())
	}
	if m.status != "" {
		sections = append(sections, StatusStyle.Render(m.status))
	}
	sections = append(sections, m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderTabs() string {
	labels := []string{
		m.app.T("nav.report"),
		m.app.T("nav.results"),
		m.app.T("nav.record"),
		m.app.T("nav.hands"),
		m.app.T("nav.more"),
	}
	var tabs []string
	for i, label := range labels {
		text := fmt.Sprintf(" %d %s ", i+1, label)
		if View(i) == m.view {
			tabs = append(tabs, m.accentBg().Render(text))
		} else {
			tabs = append(tabs, LabelStyle.Render(text))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m *Model) renderReport() string {
	now := time.Now()
	sessions := filter.Apply(m.app.Tracker.History(), m.filter, now)
	summary := m.app.Summary(sessions)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.app.T("dashboard.title")) + "\n")
	b.WriteString(HelpStyle.Render(m.filterLabel()) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n",
		LabelStyle.Render(m.app.T("dashboard.totalPnl")+":"),
		m.money(summary.TotalPnL)))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		LabelStyle.Render(m.app.T("dashboard.hourly")+":"),
		m.money(summary.HourlyRate)))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		LabelStyle.Render(m.app.T("dashboard.winRate")+":"),
		ValueStyle.Render(fmt.Sprintf("%.1f%% (%dW/%dL)", summary.WinRate, summary.Wins, summary.Losses))))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		LabelStyle.Render(m.app.T("dashboard.sessions")+":"),
		ValueStyle.Render(fmt.Sprintf("%d (%.1fh)", summary.Sessions, summary.TotalHours))))

	best, worst := ledger.AggregateByLabel(m.app.Ledger.Hands())
	if len(best) > 0 {
		b.WriteString("\n" + m.accent().Render(m.app.T("hand.bestHands")) + "\n")
		for _, s := range best {
			b.WriteString(fmt.Sprintf("  %-4s ×%-3d %s\n", s.Label, s.Count, m.money(s.Profit)))
		}
		b.WriteString("\n" + m.accent().Render(m.app.T("hand.worstHands")) + "\n")
		for _, s := range worst {
			b.WriteString(fmt.Sprintf("  %-4s ×%-3d %s\n", s.Label, s.Count, m.money(s.Profit)))
		}
	}
	return b.String()
}

func (m *Model) filterLabel() string {
	timeLabel := m.app.T("filter." + string(m.filter.Time))
	if m.filter.Time == "" {
		timeLabel = m.app.T("filter.all")
	}
	loc := m.filter.Location
	if loc == "" {
		loc = m.app.T("filter.allLoc")
	}
	return timeLabel + " · " + loc
}

func (m *Model) renderResults() string {
	history := m.app.Tracker.History()
	if len(history) == 0 {
		return HelpStyle.Render(m.app.T("history.noHistory"))
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.app.T("history.title")) + "\n\n")
	// Newest first
	for i := len(history) - 1; i >= 0; i-- {
		s := history[i]
		cursor := "  "
		if len(history)-1-i == m.resultCursor {
			cursor = m.accent().Render("> ")
		}
		pnl := "—"
		if v, ok := s.PnL(); ok {
			pnl = m.rawMoney(v, s.Currency)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s %s  %s  %s\n",
			cursor,
			s.StartTime.Format("01-02"),
			ValueStyle.Render(s.Location),
			LabelStyle.Render(s.Blinds),
			formatDuration(time.Duration(s.DurationSeconds)*time.Second),
			pnl))
	}
	return b.String()
}

func (m *Model) renderRecord() string {
	active := m.app.Tracker.Active()
	if active == nil {
		return HelpStyle.Render(m.app.T("live.startNew") + " [n] · " + m.app.T("live.logPast") + " [L]")
	}

	state := LiveStyle.Render("● " + m.app.T("live.ongoing"))
	if active.Paused() {
		state = PausedStyle.Render("⏸ " + m.app.T("live.pause"))
	}

	var b strings.Builder
	b.WriteString(state + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s %s\n",
		LabelStyle.Render(m.app.T("live.location")+":"),
		ValueStyle.Render(active.Location),
		LabelStyle.Render(active.Blinds)))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		LabelStyle.Render(m.app.T("live.duration")+":"),
		ValueStyle.Render(formatDuration(time.Duration(m.app.Tracker.Elapsed())*time.Second))))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		LabelStyle.Render(m.app.T("live.totalBuyIn")+":"),
		ValueStyle.Render(fmt.Sprintf("%.0f %s", active.BuyIn, active.Currency))))
	return b.String()
}

func (m *Model) renderHands() string {
	hands := m.app.Ledger.Hands()
	if len(hands) == 0 {
		return HelpStyle.Render(m.app.T("history.noHistory"))
	}

	var b strings.Builder
	for i, h := range hands {
		cursor := "  "
		if i == m.handCursor {
			cursor = m.accent().Render("> ")
		}
		label := ledger.Classify(h.HoleCards)
		b.WriteString(fmt.Sprintf("%s%s  %s %s  %s\n",
			cursor,
			h.Timestamp.Format("01-02 15:04"),
			formatCards(h.HoleCards),
			LabelStyle.Render(label),
			m.rawMoneyPlain(h.Profit)))
	}

	if m.handCursor < len(hands) {
		h := hands[m.handCursor]
		b.WriteString("\n")
		if len(h.CommunityCards) > 0 {
			b.WriteString(LabelStyle.Render(m.app.T("hand.board")+":") + " " + formatCards(h.CommunityCards) + "\n")
		}
		for _, v := range h.Villains {
			b.WriteString(LabelStyle.Render(m.app.T("hand.villain")+":") + " " + v.Name + " " + formatCards(v.Cards) + "\n")
		}
		if h.HeroPosition != "" {
			b.WriteString(LabelStyle.Render(m.app.T("common.position")+":") + " " + ValueStyle.Render(h.HeroPosition) + "\n")
		}
		if h.StreetActions != "" {
			b.WriteString(LabelStyle.Render(h.StreetActions) + "\n")
		}
		if h.Note != "" {
			b.WriteString(HelpStyle.Render(h.Note) + "\n")
		}
		switch {
		case m.analyzing[h.ID]:
			b.WriteString("\n" + HelpStyle.Render(m.app.T("hand.analyzing")) + "\n")
		case h.Analysis != "":
			b.WriteString("\n" + m.accent().Render(m.app.T("hand.analysis")) + "\n" + h.Analysis + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderMore() string {
	s := m.app.Settings
	onOff := func(v bool) string {
		if v {
			return ProfitStyle.Render("on")
		}
		return LabelStyle.Render("off")
	}

	masked := m.app.T("common.none")
	if s.APIKey != "" {
		masked = "••••" + s.APIKey[max(0, len(s.APIKey)-4):]
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[u] %s  %s\n", m.app.T("live.currency"), ValueStyle.Render(string(s.Currency))))
	b.WriteString(fmt.Sprintf("[g] Language  %s\n", ValueStyle.Render(string(s.Lang))))
	b.WriteString(fmt.Sprintf("[t] Theme  %s\n", m.accent().Render(m.theme.Name)))
	b.WriteString(fmt.Sprintf("[w] Widget  %s\n", onOff(s.WidgetEnabled)))
	b.WriteString(fmt.Sprintf("[b] %s  %s\n", m.app.T("more.driveBackup"), onOff(s.AutoBackup)))
	b.WriteString(fmt.Sprintf("[k] API key  %s\n", ValueStyle.Render(masked)))
	b.WriteString(fmt.Sprintf("[o] Client id  %s\n", ValueStyle.Render(s.DriveClientID)))
	b.WriteString(fmt.Sprintf("[R] Rates  %s\n", rateLine(s)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("[x] %s  [i] Import  [B] %s  [r] %s\n",
		m.app.T("more.export"), m.app.T("more.driveBackup"), m.app.T("more.restoreDrive")))
	return b.String()
}

func (m *Model) renderChat() string {
	header := m.accentBg().Render(" HAO ")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.chatView.View(),
		m.chatInput.View(),
		HelpStyle.Render("esc "+m.app.T("common.back")))
}

func (m *Model) renderHelp() string {
	var hints []string
	switch m.view {
	case ViewReport:
		hints = []string{"f " + m.app.T("filter.all"), "l " + m.app.T("filter.allLoc")}
	case ViewRecord:
		if m.app.Tracker.Active() != nil {
			hints = []string{"p " + m.app.T("live.pause"), "r " + m.app.T("live.rebuy"), "h " + m.app.T("nav.record"), "e " + m.app.T("live.endSession")}
		} else {
			hints = []string{"n " + m.app.T("live.startNew"), "L " + m.app.T("live.logPast"), "h " + m.app.T("nav.record")}
		}
	case ViewHands:
		hints = []string{"a " + m.app.T("hand.analysis"), "e note", "d " + m.app.T("common.delete")}
	}
	hints = append(hints, "C HAO", "q quit")
	return "\n" + HelpStyle.Render(strings.Join(hints, " · "))
}

// -- render helpers --

func (m *Model) accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
}

func (m *Model) accentBg() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(m.theme.Accent).Bold(true)
}

// money renders an amount already in the display currency
func (m *Model) money(v float64) string {
	return m.rawMoney(v, m.app.Settings.Currency)
}

func (m *Model) rawMoney(v float64, c session.Currency) string {
	text := fmt.Sprintf("%+.1f %s", v, c)
	if v < 0 {
		return LossStyle.Render(text)
	}
	return ProfitStyle.Render(text)
}

func (m *Model) rawMoneyPlain(v float64) string {
	text := fmt.Sprintf("%+.1f", v)
	if v < 0 {
		return LossStyle.Render(text)
	}
	return ProfitStyle.Render(text)
}

func formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return ""
	}
	var formatted []string
	for _, card := range cards {
		if card.IsRed() {
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		} else {
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	min := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, min, sec)
}

func rateLine(s app.Settings) string {
	var parts []string
	for _, c := range session.Currencies() {
		parts = append(parts, fmt.Sprintf("%s %.2f", c, s.Rates.Rate(c)))
	}
	return LabelStyle.Render(strings.Join(parts, "  "))
}

// parseCards parses a space-separated card list like "Ah Kd",
// rejecting input beyond max cards
func parseCards(s string, max int) ([]deck.Card, error) {
	fields := strings.Fields(s)
	if len(fields) > max {
		return nil, fmt.Errorf("at most %d cards", max)
	}
	cards := make([]deck.Card, 0, len(fields))
	for _, f := range fields {
		c, err := deck.ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// matchPosition resolves a case-insensitive position tag
func matchPosition(s string) (string, bool) {
	for _, p := range ledger.Positions() {
		if strings.EqualFold(p, s) {
			return p, true
		}
	}
	return "", false
}

func parseAmount(s string) (float64, error) {
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func i18nToggle(l i18n.Language) i18n.Language {
	if l == i18n.Chinese {
		return i18n.English
	}
	return i18n.Chinese
}
