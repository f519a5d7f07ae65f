package display

import (
	"bytes"
	"strings"
	"testing"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
)

func newTestPrinter(t *testing.T, input string) (*Printer, *bytes.Buffer) {
	t.Helper()
	noColor := colorize.NoColor
	colorize.NoColor = true
	t.Cleanup(func() { colorize.NoColor = noColor })

	var out bytes.Buffer
	return New(&out, strings.NewReader(input)), &out
}

func TestWrapText(t *testing.T) {
	lines := wrapText("gain two water and move one space toward the oasis", 20)
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q is longer than 20", line)
		}
	}
	if strings.Join(lines, " ") != "gain two water and move one space toward the oasis" {
		t.Errorf("wrapping lost words: %v", lines)
	}

	if got := wrapText("   ", 20); len(got) != 1 || got[0] != "" {
		t.Errorf("expected a single empty line, got %v", got)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes please\n", false},
	}

	for _, tt := range tests {
		p, out := newTestPrinter(t, tt.input)
		got, err := p.Confirm("Reset?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.want, got)
		}
		if !strings.HasPrefix(out.String(), "Reset? [y/N] ") {
			t.Errorf("unexpected prompt %q", out.String())
		}
	}
}

func TestDrawnShortfall(t *testing.T) {
	p, out := newTestPrinter(t, "")
	p.Drawn("frontier", deck.DrawResult{
		Cards:     []card.Card{{Title: "Ambush", Description: "Lose a turn."}},
		Shortfall: 2,
	})

	text := out.String()
	for _, want := range []string{"The Frontier deck has run out", "Card: Ambush", "Lose a turn.", "2 more cards could not be drawn."} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestProbabilityTable(t *testing.T) {
	p, out := newTestPrinter(t, "")
	p.Probability("relic", deck.Report{
		Remaining: 4,
		Removed:   1,
		Stats: []card.Stats{
			{Card: card.Card{Title: "Sunstone"}, Probability: 0.75, Remaining: 3},
			{Card: card.Card{Title: "Key"}, Probability: 0.25, Remaining: 1},
		},
	})

	text := out.String()
	if !strings.Contains(text, "Relic deck: 4 remaining, 1 removed") {
		t.Errorf("missing heading in:\n%s", text)
	}
	if !strings.Contains(text, " 75.0%") || !strings.Contains(text, " 25.0%") {
		t.Errorf("missing percentages in:\n%s", text)
	}
	if !strings.Contains(text, strings.Repeat("█", 15)+strings.Repeat("░", 5)) {
		t.Errorf("missing bar in:\n%s", text)
	}
}

func TestProbabilityEmpty(t *testing.T) {
	p, out := newTestPrinter(t, "")
	p.Probability("relic", deck.Report{Removed: 3})

	if !strings.Contains(out.String(), "No cards left to draw.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestDeckName(t *testing.T) {
	p, _ := newTestPrinter(t, "")
	if got := p.DeckName("lost_relic"); got != "Lost Relic" {
		t.Errorf("expected Lost Relic, got %s", got)
	}
}
