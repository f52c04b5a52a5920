package main

import (
	"fmt"
	"time"

	"github.com/nicehand/nicehand/internal/filter"
	"github.com/nicehand/nicehand/internal/ledger"
)

// rangeFlag is the shared --range flag for the reporting commands
type rangeFlag struct {
	Range    string `default:"all" enum:"all,week,month,year" help:"Time range: all, week, month or year"`
	Location string `help:"Only sessions at this location"`
}

func (r rangeFlag) filter() filter.Filter {
	return filter.Filter{Time: filter.TimeRange(r.Range), Location: r.Location}
}

// SessionsCmd lists recorded sessions, newest first
type SessionsCmd struct {
	rangeFlag
}

func (c *SessionsCmd) Run(cli *CLI) error {
	a, err := cli.openApp(cli.logger())
	if err != nil {
		return err
	}
	defer a.Close()

	sessions := filter.Apply(a.Tracker.History(), c.filter(), time.Now())
	if len(sessions) == 0 {
		fmt.Println(a.T("history.noHistory"))
		return nil
	}

	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		pnl := "—"
		if v, ok := s.PnL(); ok {
			pnl = fmt.Sprintf("%+.1f %s", v, s.Currency)
		}
		hours := float64(s.DurationSeconds) / 3600
		fmt.Printf("%s  %-16s %-8s %5.1fh  %s\n",
			s.StartTime.Format("2006-01-02"), s.Location, s.Blinds, hours, pnl)
	}

	if active := a.Tracker.Active(); active != nil {
		fmt.Printf("\n%s: %s %s (%s)\n",
			a.T("live.ongoing"), active.Location, active.Blinds,
			(time.Duration(a.Tracker.Elapsed()) * time.Second).String())
	}
	return nil
}

// HandsCmd lists recorded hands with their starting-hand labels
type HandsCmd struct {
	Analyzed bool `help:"Only hands that already have AI analysis"`
}

func (c *HandsCmd) Run(cli *CLI) error {
	a, err := cli.openApp(cli.logger())
	if err != nil {
		return err
	}
	defer a.Close()

	hands := a.Ledger.Hands()
	if len(hands) == 0 {
		fmt.Println(a.T("history.noHistory"))
		return nil
	}

	for _, h := range hands {
		if c.Analyzed && h.Analysis == "" {
			continue
		}
		cards := ""
		for i, card := range h.HoleCards {
			if i > 0 {
				cards += " "
			}
			cards += card.String()
		}
		marker := " "
		if h.Analysis != "" {
			marker = "*"
		}
		fmt.Printf("%s %s  %-12s [%s] %-4s %+.1f  %s\n",
			marker, h.Timestamp.Format("2006-01-02 15:04"), h.SessionLocation,
			cards, ledger.Classify(h.HoleCards), h.Profit, h.ID)
	}
	return nil
}

// StatsCmd prints the aggregate summary in the display currency
type StatsCmd struct {
	rangeFlag
}

func (c *StatsCmd) Run(cli *CLI) error {
	a, err := cli.openApp(cli.logger())
	if err != nil {
		return err
	}
	defer a.Close()

	sessions := filter.Apply(a.Tracker.History(), c.filter(), time.Now())
	summary := a.Summary(sessions)

	cur := a.Settings.Currency
	fmt.Printf("%s: %+.1f %s\n", a.T("dashboard.totalPnl"), summary.TotalPnL, cur)
	fmt.Printf("%s: %+.1f %s/h\n", a.T("dashboard.hourly"), summary.HourlyRate, cur)
	fmt.Printf("%s: %.1f%% (%dW/%dL)\n", a.T("dashboard.winRate"), summary.WinRate, summary.Wins, summary.Losses)
	fmt.Printf("%s: %d (%.1fh)\n", a.T("dashboard.sessions"), summary.Sessions, summary.TotalHours)

	best, worst := ledger.AggregateByLabel(a.Ledger.Hands())
	if len(best) > 0 {
		fmt.Printf("\n%s\n", a.T("hand.bestHands"))
		for _, s := range best {
			fmt.Printf("  %-4s ×%-3d %+.1f\n", s.Label, s.Count, s.Profit)
		}
		fmt.Printf("%s\n", a.T("hand.worstHands"))
		for _, s := range worst {
			fmt.Printf("  %-4s ×%-3d %+.1f\n", s.Label, s.Count, s.Profit)
		}
	}
	return nil
}
