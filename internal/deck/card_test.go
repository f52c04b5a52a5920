package deck

import (
	"encoding/json"
	"testing"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		input string
		rank  Rank
		suit  Suit
	}{
		{"As", Ace, Spades},
		{"Ah", Ace, Hearts},
		{"Kd", King, Diamonds},
		{"Tc", Ten, Clubs},
		{"2s", Two, Spades},
		{"9h", Nine, Hearts},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			card, err := ParseCard(tt.input)
			if err != nil {
				t.Fatalf("ParseCard(%q) returned error: %v", tt.input, err)
			}
			if card.Rank != tt.rank {
				t.Errorf("Expected rank %v, got %v", tt.rank, card.Rank)
			}
			if card.Suit != tt.suit {
				t.Errorf("Expected suit %v, got %v", tt.suit, card.Suit)
			}
			if card.ID == "" {
				t.Error("Expected non-empty card id")
			}
		})
	}
}

func TestParseCard_Invalid(t *testing.T) {
	for _, input := range []string{"", "A", "Axs", "1s", "Az"} {
		if _, err := ParseCard(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestCard_String(t *testing.T) {
	card, err := ParseCard("Ks")
	if err != nil {
		t.Fatal(err)
	}
	if card.String() != "K♠" {
		t.Errorf("Expected K♠, got %s", card.String())
	}
}

func TestCard_IsRed(t *testing.T) {
	red, _ := ParseCard("Qh")
	black, _ := ParseCard("Qc")
	if !red.IsRed() {
		t.Error("Expected hearts to be red")
	}
	if black.IsRed() {
		t.Error("Expected clubs to be black")
	}
}

func TestCard_JSONRoundTrip(t *testing.T) {
	card, err := ParseCard("Th")
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(card)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Card
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != card {
		t.Errorf("Round trip mismatch: %+v != %+v", decoded, card)
	}
}

func TestCard_UnmarshalSymbolSuits(t *testing.T) {
	// Backups written by older exports store suits as symbols
	raw := `{"rank":"A","suit":"♥","id":"c1"}`
	var card Card
	if err := json.Unmarshal([]byte(raw), &card); err != nil {
		t.Fatal(err)
	}
	if card.Rank != Ace || card.Suit != Hearts {
		t.Errorf("Unexpected card %+v", card)
	}
}
