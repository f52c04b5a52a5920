package ledger

import (
	"fmt"
	"sort"

	"github.com/nicehand/nicehand/internal/deck"
)

// LabelUnknown is the sentinel for hands that cannot be classified
// (fewer or more than two hole cards). Such hands are excluded from
// label aggregation.
const LabelUnknown = "Unknown"

// Classify returns the canonical starting-hand label for two hole
// cards: "AA" for pairs, otherwise high rank first plus an "s"/"o"
// suitedness suffix, e.g. "AKs" or "T9o".
func Classify(holeCards []deck.Card) string {
	if len(holeCards) != 2 {
		return LabelUnknown
	}

	c1, c2 := holeCards[0], holeCards[1]
	if c1.Rank == c2.Rank {
		return fmt.Sprintf("%s%s", c1.Rank, c2.Rank)
	}

	high, low := c1.Rank, c2.Rank
	if low.Value() > high.Value() {
		high, low = low, high
	}
	suffix := "o"
	if c1.Suit == c2.Suit {
		suffix = "s"
	}
	return fmt.Sprintf("%s%s%s", high, low, suffix)
}

// LabelStat aggregates all classified hands sharing a starting-hand label
type LabelStat struct {
	Label  string
	Count  int
	Profit float64
}

// AggregateByLabel groups hands by starting-hand label and returns the
// top three labels by net profit (best) and the bottom three (worst).
// Unclassifiable hands are skipped. Ties keep encounter order; with
// fewer than six distinct labels the two lists may overlap.
func AggregateByLabel(hands []*Hand) (best, worst []LabelStat) {
	index := make(map[string]int)
	var groups []LabelStat

	for _, h := range hands {
		label := Classify(h.HoleCards)
		if label == LabelUnknown {
			continue
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, LabelStat{Label: label})
		}
		groups[i].Count++
		groups[i].Profit += h.Profit
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Profit > groups[j].Profit
	})

	best = append(best, groups[:min(3, len(groups))]...)
	for i := len(groups) - 1; i >= 0 && len(worst) < 3; i-- {
		worst = append(worst, groups[i])
	}
	return best, worst
}
