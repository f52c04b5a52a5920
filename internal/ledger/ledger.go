package ledger

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/nicehand/nicehand/internal/deck"
)

// Ledger is the in-memory hand collection. Mutations run synchronously;
// the surrounding application mirrors state to durable storage after
// each one.
type Ledger struct {
	clock  quartz.Clock
	logger *log.Logger
	hands  []*Hand
}

// NewLedger creates an empty hand ledger
func NewLedger(clock quartz.Clock, logger *log.Logger) *Ledger {
	return &Ledger{
		clock:  clock,
		logger: logger.WithPrefix("ledger"),
	}
}

// Restore replaces the ledger's contents with persisted state
func (l *Ledger) Restore(hands []*Hand) {
	l.hands = hands
}

// Hands returns all recorded hands, oldest first
func (l *Ledger) Hands() []*Hand {
	return l.hands
}

// Get returns the hand with the given id, or nil
func (l *Ledger) Get(id string) *Hand {
	for _, h := range l.hands {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// Hole cards cap at two, the board at five, and each villain at two;
// Save truncates anything beyond those limits.
const (
	maxHoleCards      = 2
	maxCommunityCards = 5
	maxVillainCards   = 2
)

// Save creates or updates a hand. A hand without an id gets a fresh id
// and timestamp; an existing id keeps its original timestamp and is
// replaced in place.
func (l *Ledger) Save(hand *Hand) *Hand {
	hand.HoleCards = capCards(hand.HoleCards, maxHoleCards)
	hand.CommunityCards = capCards(hand.CommunityCards, maxCommunityCards)
	for i := range hand.Villains {
		hand.Villains[i].Cards = capCards(hand.Villains[i].Cards, maxVillainCards)
		if hand.Villains[i].ID == "" {
			hand.Villains[i].ID = uuid.NewString()
		}
	}

	if hand.ID != "" {
		for i, existing := range l.hands {
			if existing.ID == hand.ID {
				hand.Timestamp = existing.Timestamp
				l.hands[i] = hand
				l.logger.Info("hand updated", "id", hand.ID)
				return hand
			}
		}
	}

	if hand.ID == "" {
		hand.ID = uuid.NewString()
	}
	if hand.Timestamp.IsZero() {
		hand.Timestamp = l.clock.Now()
	}
	l.hands = append(l.hands, hand)
	l.logger.Info("hand saved", "id", hand.ID, "profit", hand.Profit)
	return hand
}

func capCards(cards []deck.Card, max int) []deck.Card {
	if len(cards) > max {
		return cards[:max]
	}
	return cards
}

// Delete removes the hand with the given id. Deleting an unknown id is
// a no-op; there are no cascading effects on sessions.
func (l *Ledger) Delete(id string) {
	for i, h := range l.hands {
		if h.ID == id {
			l.hands = append(l.hands[:i], l.hands[i+1:]...)
			l.logger.Info("hand deleted", "id", id)
			return
		}
	}
}
