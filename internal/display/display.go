// Package display renders cards and deck statistics on a terminal and asks
// the user questions.
package display

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
)

const (
	defaultWidth = 80
	barWidth     = 20
)

var (
	lowOdds  = colorful.Color{R: 0.84, G: 0.15, B: 0.24}
	highOdds = colorful.Color{R: 0.18, G: 0.77, B: 0.71}
)

// Printer writes to out and reads answers from in
type Printer struct {
	out    io.Writer
	in     *bufio.Reader
	width  int
	tty    bool
	title  cases.Caser
	number *message.Printer
}

// New creates a Printer. Terminal width and interactivity are detected when
// out and in are terminals.
func New(out io.Writer, in io.Reader) *Printer {
	p := &Printer{
		out:    out,
		in:     bufio.NewReader(in),
		width:  defaultWidth,
		title:  cases.Title(language.English),
		number: message.NewPrinter(language.English),
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			p.width = width
		}
	}
	if f, ok := in.(*os.File); ok {
		p.tty = term.IsTerminal(int(f.Fd()))
	}

	return p
}

// Interactive reports whether answers can be read from a terminal
func (p *Printer) Interactive() bool {
	return p.tty
}

// DeckName formats a deck identifier for headings
func (p *Printer) DeckName(id string) string {
	return p.title.String(strings.ReplaceAll(id, "_", " "))
}

// Card prints one card with its description wrapped to the terminal
func (p *Printer) Card(c card.Card) {
	fmt.Fprintln(p.out, colorize.CyanString("Card: ")+colorize.HiWhiteString("%s", c.Title))

	if c.Description != "" {
		for _, line := range wrapText(c.Description, p.width-8) {
			fmt.Fprintln(p.out, "      "+line)
		}
	}
}

// Cards prints a heading followed by every card
func (p *Printer) Cards(heading string, cards []card.Card) {
	fmt.Fprintf(p.out, "%s (%d)\n", colorize.New(colorize.Bold).Sprint(heading), len(cards))
	if len(cards) == 0 {
		fmt.Fprintln(p.out, "  No cards.")
		return
	}

	fmt.Fprintln(p.out)
	for _, c := range cards {
		p.Card(c)
		fmt.Fprintln(p.out)
	}
}

// Drawn prints the result of a draw
func (p *Printer) Drawn(id string, result deck.DrawResult) {
	name := p.DeckName(id)

	if result.Shortfall > 0 {
		p.Cards(fmt.Sprintf("The %s deck has run out. Last cards", name), result.Cards)
		fmt.Fprintln(p.out, colorize.YellowString("%d more %s could not be drawn.",
			result.Shortfall, plural(result.Shortfall, "card", "cards")))
		return
	}

	p.Cards(fmt.Sprintf("Drew from the %s deck", name), result.Cards)
}

// Probability prints the odds of each remaining title as a table
func (p *Printer) Probability(id string, report deck.Report) {
	heading := fmt.Sprintf("%s deck: %d remaining, %d removed", p.DeckName(id), report.Remaining, report.Removed)
	fmt.Fprintln(p.out, colorize.New(colorize.Bold).Sprint(heading))
	if len(report.Stats) == 0 {
		fmt.Fprintln(p.out, "  No cards left to draw.")
		return
	}

	titleWidth := 0
	for _, s := range report.Stats {
		titleWidth = max(titleWidth, len(s.Title))
	}

	fmt.Fprintln(p.out)
	for _, s := range report.Stats {
		fmt.Fprintf(p.out, "  %-*s %3d  %s  %s\n",
			titleWidth, s.Title, s.Remaining, p.percent(s.Probability), bar(s.Probability))
	}
}

// Status prints one line of the deck listing
func (p *Printer) Status(id string, status deck.Status) {
	fmt.Fprintf(p.out, "  %s (%s): %d of %d remaining\n",
		id, p.DeckName(id), status.Remaining, status.Total)
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (p *Printer) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question + " [y/N]")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Ask prints a question and returns the trimmed answer
func (p *Printer) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question+" ")

	line, err := p.in.ReadString('\n')
	if err == io.EOF {
		fmt.Fprintln(p.out)
	} else if err != nil {
		return "", fmt.Errorf("error reading answer: %v", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Printer) percent(f float64) string {
	return p.number.Sprintf("%5.1f%%", f*100)
}

// bar draws a fixed width bar whose colour runs from red at low odds to teal
// at high odds.
func bar(f float64) string {
	filled := int(math.Round(f * barWidth))
	blocks := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	if colorize.NoColor {
		return blocks
	}

	c := lowOdds.BlendLab(highOdds, f).Clamped()
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, blocks)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
