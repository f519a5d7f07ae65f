package card

// Definition is one entry of a deck source file
type Definition struct {
	Title       string `json:"title" toml:"title"`
	Description string `json:"description" toml:"description"`
	Count       int    `json:"count" toml:"count"`
}

// Card is a single physical card in a deck. Cards with the same title are
// interchangeable.
type Card struct {
	Title       string
	Description string
}

// Stats is a card title still in the live deck together with its odds of
// being drawn next.
type Stats struct {
	Card
	Probability float64
	Remaining   int
}

// Expand replicates every definition Count times, in source order.
func Expand(defs []Definition) []Card {
	cards := make([]Card, 0, Total(defs))
	for _, d := range defs {
		for i := 0; i < d.Count; i++ {
			cards = append(cards, Card{Title: d.Title, Description: d.Description})
		}
	}
	return cards
}

// Total returns the number of cards the definitions describe
func Total(defs []Definition) int {
	total := 0
	for _, d := range defs {
		total += d.Count
	}
	return total
}
