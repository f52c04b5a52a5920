package stats

import (
	"math"
	"testing"

	"github.com/nicehand/nicehand/internal/session"
)

func ended(buyIn, cashOut float64, currency session.Currency, hours float64) *session.Session {
	return &session.Session{
		BuyIn:           buyIn,
		CashOut:         &cashOut,
		Currency:        currency,
		DurationSeconds: int64(hours * 3600),
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, session.CNY, DefaultRates())

	if s.TotalPnL != 0 {
		t.Errorf("Expected zero PnL, got %f", s.TotalPnL)
	}
	if s.WinRate != 0 {
		t.Errorf("Expected zero win rate, got %f", s.WinRate)
	}
	if s.HourlyRate != 0 {
		t.Errorf("Expected zero hourly rate, got %f", s.HourlyRate)
	}
	if s.Sessions != 0 {
		t.Errorf("Expected zero sessions, got %d", s.Sessions)
	}
}

func TestCompute_SingleCurrency(t *testing.T) {
	sessions := []*session.Session{
		ended(1000, 1500, session.CNY, 2), // +500
		ended(2000, 1800, session.CNY, 3), // -200
	}

	s := Compute(sessions, session.CNY, DefaultRates())

	if math.Abs(s.TotalPnL-300) > 1e-9 {
		t.Errorf("Expected total PnL 300 CNY, got %f", s.TotalPnL)
	}
	if s.Wins != 1 || s.Losses != 1 {
		t.Errorf("Expected 1 win / 1 loss, got %d / %d", s.Wins, s.Losses)
	}
	if s.WinRate != 50.0 {
		t.Errorf("Expected 50.0 win rate, got %f", s.WinRate)
	}
	if s.HourlyRate != 60.0 {
		t.Errorf("Expected 60.0 hourly, got %f", s.HourlyRate)
	}
}

func TestCompute_CrossCurrency(t *testing.T) {
	rates := ExchangeRates{session.USD: 1, session.CNY: 7.2}
	sessions := []*session.Session{
		ended(100, 200, session.USD, 1), // +100 USD
		ended(0, 720, session.CNY, 1),   // +720 CNY = +100 USD
	}

	s := Compute(sessions, session.USD, rates)
	if math.Abs(s.TotalPnL-200) > 1e-9 {
		t.Errorf("Expected 200 USD total, got %f", s.TotalPnL)
	}

	s = Compute(sessions, session.CNY, rates)
	if math.Abs(s.TotalPnL-1440) > 1e-9 {
		t.Errorf("Expected 1440 CNY total, got %f", s.TotalPnL)
	}
}

func TestCompute_BreakEvenExcludedFromWinRate(t *testing.T) {
	sessions := []*session.Session{
		ended(100, 100, session.USD, 1), // break even
		ended(100, 150, session.USD, 1), // win
	}

	s := Compute(sessions, session.USD, DefaultRates())
	if s.Wins != 1 || s.Losses != 0 {
		t.Errorf("Expected 1 win / 0 losses, got %d / %d", s.Wins, s.Losses)
	}
	if s.WinRate != 100.0 {
		t.Errorf("Expected 100.0 win rate, got %f", s.WinRate)
	}
}

func TestCompute_UnresolvedSessionsOnlyCounted(t *testing.T) {
	live := &session.Session{BuyIn: 500, Currency: session.USD, IsLive: true}
	sessions := []*session.Session{
		live,
		ended(100, 150, session.USD, 1),
	}

	s := Compute(sessions, session.USD, DefaultRates())
	if s.Sessions != 2 {
		t.Errorf("Expected 2 sessions, got %d", s.Sessions)
	}
	if math.Abs(s.TotalPnL-50) > 1e-9 {
		t.Errorf("Unresolved session must not affect PnL, got %f", s.TotalPnL)
	}
}

func TestCompute_ZeroHoursGuard(t *testing.T) {
	sessions := []*session.Session{ended(0, 100, session.USD, 0)}

	s := Compute(sessions, session.USD, DefaultRates())
	if s.HourlyRate != 0 {
		t.Errorf("Expected zero hourly rate with zero hours, got %f", s.HourlyRate)
	}
}

func TestRates_RoundTrip(t *testing.T) {
	rates := DefaultRates()
	for _, c := range session.Currencies() {
		for _, amount := range []float64{0, 1, -250.5, 99999.99} {
			back := rates.FromBase(rates.ToBase(amount, c), c)
			if math.Abs(back-amount) > 1e-9 {
				t.Errorf("Round trip for %s %f gave %f", c, amount, back)
			}
		}
	}
}

func TestRates_MissingCurrencyDefaultsToOne(t *testing.T) {
	rates := ExchangeRates{}
	if rates.Rate(session.CNY) != 1 {
		t.Errorf("Expected default rate 1, got %f", rates.Rate(session.CNY))
	}
	if rates.ToBase(42, session.HKD) != 42 {
		t.Error("Missing rate must behave as identity")
	}
}

func TestDefaultRates_USDPinned(t *testing.T) {
	if DefaultRates()[session.USD] != 1 {
		t.Error("USD must be pinned to 1")
	}
}
