package ledger

import (
	"time"

	"github.com/nicehand/nicehand/internal/deck"
)

// Villain is an opponent's revealed cards within a single hand
type Villain struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Cards []deck.Card `json:"cards"`
}

// Hand is one recorded poker deal. SessionID is a weak back-reference:
// hands may be logged outside any session and outlive the session's
// lifecycle. SessionLocation is a denormalized snapshot for display.
type Hand struct {
	ID              string      `json:"id"`
	SessionID       string      `json:"sessionId,omitempty"`
	SessionLocation string      `json:"sessionLocation,omitempty"`
	Timestamp       time.Time   `json:"timestamp"`
	HoleCards       []deck.Card `json:"holeCards"`
	CommunityCards  []deck.Card `json:"communityCards"`
	Villains        []Villain   `json:"villains"`
	HeroPosition    string      `json:"heroPosition,omitempty"`
	Profit          float64     `json:"profit"`
	StreetActions   string      `json:"streetActions"`
	Note            string      `json:"note,omitempty"`
	Analysis        string      `json:"analysis,omitempty"`
}

// Positions lists the position tags offered for the hero
func Positions() []string {
	return []string{"SB", "BB", "UTG", "UTG+1", "MP", "HJ", "CO", "BTN"}
}
