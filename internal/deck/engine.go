package deck

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/ledger"
)

var (
	ErrInvalidCount = errors.New("invalid card count")
	ErrAborted      = errors.New("aborted")
)

// Confirmer asks the user to approve a destructive action
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Engine runs draws and queries against the decks named in a config
type Engine struct {
	config *config.Config
	rand   *rand.Rand
	logger *slog.Logger
}

// NewEngine creates an engine. A nil r uses a randomly seeded source; a nil
// logger discards log output.
func NewEngine(cfg *config.Config, r *rand.Rand, logger *slog.Logger) *Engine {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{config: cfg, rand: r, logger: logger}
}

// DrawResult is the outcome of a draw. When the deck could not cover the
// request, Cards holds everything that was left, Shortfall is how many were
// missing and nothing was removed.
type DrawResult struct {
	Cards     []card.Card
	Shortfall int
}

// Report is the probability breakdown of a deck
type Report struct {
	Stats     []card.Stats
	Remaining int
	Removed   int
}

// Status summarises a deck
type Status struct {
	Source    string
	Total     int
	Remaining int
	Removed   int
}

// state is everything loaded for one deck
type state struct {
	files   config.DeckConfig
	defs    []card.Definition
	removed []string
}

func (e *Engine) load(id string) (*state, error) {
	files, err := e.config.Deck(id)
	if err != nil {
		return nil, err
	}

	defs, err := card.LoadDefinitions(files.Source)
	if err != nil {
		return nil, err
	}

	if !ledger.Exists(files.Ledger) {
		e.logger.Debug("creating ledger", "deck", id, "path", files.Ledger)
	}
	removed, err := ledger.Load(files.Ledger)
	if err != nil {
		return nil, err
	}

	return &state{files: files, defs: defs, removed: removed}, nil
}

// Remaining returns the live deck in a freshly shuffled order
func (e *Engine) Remaining(id string) ([]card.Card, error) {
	s, err := e.load(id)
	if err != nil {
		return nil, err
	}
	return Assemble(s.defs, s.removed, e.rand), nil
}

// History returns the cards removed from the deck
func (e *Engine) History(id string) ([]card.Card, error) {
	s, err := e.load(id)
	if err != nil {
		return nil, err
	}
	return History(s.defs, s.removed), nil
}

// Draw takes n cards off the shuffled live deck and records them in the
// ledger with a single append. If fewer than n cards remain, all of them are
// revealed and the ledger is left alone.
func (e *Engine) Draw(id string, n int) (DrawResult, error) {
	if n < 1 {
		return DrawResult{}, fmt.Errorf("%w: %d, must be at least 1", ErrInvalidCount, n)
	}

	s, err := e.load(id)
	if err != nil {
		return DrawResult{}, err
	}

	live := Assemble(s.defs, s.removed, e.rand)
	if n > len(live) {
		shortfall := n - len(live)
		e.logger.Info("deck exhausted", "deck", id, "requested", n, "remaining", len(live), "shortfall", shortfall)
		return DrawResult{Cards: live, Shortfall: shortfall}, nil
	}

	drawn, _ := Take(live, n)
	titles := make([]string, len(drawn))
	for i, c := range drawn {
		titles[i] = c.Title
	}
	if err := ledger.Append(s.files.Ledger, titles); err != nil {
		return DrawResult{}, err
	}

	e.logger.Debug("cards drawn", "deck", id, "count", n, "titles", titles)
	return DrawResult{Cards: drawn}, nil
}

// Reset returns every removed card to the deck
func (e *Engine) Reset(id string) error {
	files, err := e.config.Deck(id)
	if err != nil {
		return err
	}
	if err := ledger.Clear(files.Ledger); err != nil {
		return fmt.Errorf("cannot reset deck %s: %w", id, err)
	}

	e.logger.Info("deck reset", "deck", id)
	return nil
}

// ResetAll resets every configured deck once c approves. Decks that have
// never been drawn from are skipped.
func (e *Engine) ResetAll(c Confirmer) ([]string, error) {
	ids := e.config.DeckIDs()

	ok, err := c.Confirm(fmt.Sprintf("Reset all %d decks and start a new game?", len(ids)))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAborted
	}

	var reset []string
	for _, id := range ids {
		err := e.Reset(id)
		if errors.Is(err, ledger.ErrNotFound) {
			e.logger.Debug("nothing to reset", "deck", id)
			continue
		}
		if err != nil {
			return reset, err
		}
		reset = append(reset, id)
	}
	return reset, nil
}

// Probability reports the odds of each remaining title being drawn next
func (e *Engine) Probability(id string) (Report, error) {
	s, err := e.load(id)
	if err != nil {
		return Report{}, err
	}

	live, gone := split(s.defs, s.removed)
	return Report{
		Stats:     Probability(s.defs, live),
		Remaining: len(live),
		Removed:   len(gone),
	}, nil
}

// Status summarises the size of a deck
func (e *Engine) Status(id string) (Status, error) {
	s, err := e.load(id)
	if err != nil {
		return Status{}, err
	}

	live, gone := split(s.defs, s.removed)
	return Status{
		Source:    s.files.Source,
		Total:     card.Total(s.defs),
		Remaining: len(live),
		Removed:   len(gone),
	}, nil
}
