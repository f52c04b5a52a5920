package deck

import (
	"fmt"

	"github.com/google/uuid"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// MarshalText encodes the suit as its symbol for JSON storage
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts either the suit symbol or the single-letter form
func (s *Suit) UnmarshalText(text []byte) error {
	switch string(text) {
	case "♠", "s", "S":
		*s = Spades
	case "♥", "h", "H":
		*s = Hearts
	case "♦", "d", "D":
		*s = Diamonds
	case "♣", "c", "C":
		*s = Clubs
	default:
		return fmt.Errorf("unknown suit %q", text)
	}
	return nil
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Value returns the numeric value of the rank for comparison, aces high
func (r Rank) Value() int {
	return int(r)
}

// MarshalText encodes the rank as its face symbol
func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rank from its face symbol ("2".."9", "T", "J", "Q", "K", "A")
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := parseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "T", "t", "10":
		return Ten, nil
	case "J", "j":
		return Jack, nil
	case "Q", "q":
		return Queen, nil
	case "K", "k":
		return King, nil
	case "A", "a":
		return Ace, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

// Card represents a playing card. Each card carries a unique id so the
// UI can address individual cards inside hole/board/villain collections.
type Card struct {
	Rank Rank   `json:"rank"`
	Suit Suit   `json:"suit"`
	ID   string `json:"id"`
}

// NewCard creates a new card with a fresh id
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit, ID: uuid.NewString()}
}

// ParseCard parses a card from a compact string like "As" or "Th"
func ParseCard(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	rank, err := parseRank(string(runes[0]))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}

	var suit Suit
	if err := suit.UnmarshalText([]byte(string(runes[1]))); err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}

	return NewCard(rank, suit), nil
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Suits lists all four suits in display order
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Ranks lists all thirteen ranks from Ace down to Two, the order used
// by the card picker
func Ranks() []Rank {
	return []Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}
}
