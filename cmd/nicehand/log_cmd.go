package main

import (
	"fmt"
	"time"

	"github.com/nicehand/nicehand/internal/session"
)

// LogCmd records an already-finished session from the command line
type LogCmd struct {
	Location string  `arg:"" help:"Where the session was played"`
	BuyIn    float64 `arg:"" help:"Total buy-in amount"`
	CashOut  float64 `arg:"" help:"Final cash-out amount"`

	Blinds   string        `help:"Blind structure, e.g. 5/10"`
	Currency string        `default:"" help:"Session currency (defaults to the display currency)"`
	Start    string        `help:"Start time, RFC 3339 or 2006-01-02 15:04"`
	Duration time.Duration `default:"4h" help:"How long the session lasted"`
}

func (c *LogCmd) Run(cli *CLI) error {
	a, err := cli.openApp(cli.logger())
	if err != nil {
		return err
	}
	defer a.Close()

	currency := a.Settings.Currency
	if c.Currency != "" {
		currency = session.Currency(c.Currency)
		if !currency.Valid() {
			return fmt.Errorf("unknown currency %q", c.Currency)
		}
	}

	var start time.Time
	if c.Start != "" {
		start, err = parseTime(c.Start)
		if err != nil {
			return err
		}
	}

	s, err := a.LogPastSession(c.Location, c.Blinds, c.BuyIn, c.CashOut, currency, start, c.Duration)
	if err != nil {
		return err
	}

	pnl, _ := s.PnL()
	fmt.Printf("logged %s %s: %+.1f %s over %s\n",
		s.StartTime.Format("2006-01-02"), s.Location, pnl, s.Currency, c.Duration)
	return nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
