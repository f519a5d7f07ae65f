package deck

import (
	"math/rand/v2"
	"sort"

	"github.com/arcanaland/deckhand/internal/card"
)

// split expands defs and takes out one card per removed title, always the
// first instance still present. Titles with nothing left to match are ignored.
func split(defs []card.Definition, removed []string) (live, gone []card.Card) {
	cards := card.Expand(defs)
	taken := make([]bool, len(cards))

	for _, title := range removed {
		for i, c := range cards {
			if !taken[i] && c.Title == title {
				taken[i] = true
				break
			}
		}
	}

	live = make([]card.Card, 0, len(cards))
	for i, c := range cards {
		if taken[i] {
			gone = append(gone, c)
		} else {
			live = append(live, c)
		}
	}
	return live, gone
}

// Assemble returns the live deck: every card in defs minus the removed
// titles, shuffled with r.
func Assemble(defs []card.Definition, removed []string, r *rand.Rand) []card.Card {
	live, _ := split(defs, removed)
	r.Shuffle(len(live), func(i, j int) {
		live[i], live[j] = live[j], live[i]
	})
	return live
}

// History returns every card whose title appears in removed, in source order.
// A title removed once still lists all of its copies.
func History(defs []card.Definition, removed []string) []card.Card {
	titles := make(map[string]bool, len(removed))
	for _, title := range removed {
		titles[title] = true
	}

	var history []card.Card
	for _, c := range card.Expand(defs) {
		if titles[c.Title] {
			history = append(history, c)
		}
	}
	return history
}

// Take splits a live deck into the last n cards and the rest. n must not
// exceed len(live).
func Take(live []card.Card, n int) (drawn, rest []card.Card) {
	cut := len(live) - n
	return live[cut:], live[:cut]
}

// Probability computes, for every title in live, the chance that it is the
// next card drawn. Results are ordered by probability, highest first, with
// ties kept in the order of defs.
func Probability(defs []card.Definition, live []card.Card) []card.Stats {
	if len(live) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, c := range live {
		counts[c.Title]++
	}

	total := float64(len(live))
	stats := make([]card.Stats, 0, len(counts))
	for _, d := range defs {
		n := counts[d.Title]
		if n == 0 {
			continue
		}
		stats = append(stats, card.Stats{
			Card:        card.Card{Title: d.Title, Description: d.Description},
			Probability: float64(n) / total,
			Remaining:   n,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Probability > stats[j].Probability
	})
	return stats
}
