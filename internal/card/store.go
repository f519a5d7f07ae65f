package card

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrSourceNotFound  = errors.New("card source not found")
	ErrMalformedSource = errors.New("malformed card source")
)

// jsonDefinition also accepts the column names of the spreadsheet the decks
// were originally kept in.
type jsonDefinition struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Count        int    `json:"count"`
	Card         string `json:"Card"`
	Effect       string `json:"Effect"`
	NumberInDeck int    `json:"Number in Deck"`
}

func (j jsonDefinition) definition() Definition {
	d := Definition{Title: j.Title, Description: j.Description, Count: j.Count}
	if d.Title == "" {
		d.Title = j.Card
	}
	if d.Description == "" {
		d.Description = j.Effect
	}
	if d.Count == 0 {
		d.Count = j.NumberInDeck
	}
	return d
}

// tomlSource is the layout of a .toml card source
type tomlSource struct {
	Cards []Definition `toml:"cards"`
}

// LoadDefinitions reads the card definitions of a deck from a .json or .toml file
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading card source %s: %w", path, err)
	}

	defs, err := ParseDefinitions(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// ParseDefinitions decodes definitions in the format named by ext (".json",
// ".toml" or ".csv") and checks them for structural problems.
func ParseDefinitions(data []byte, ext string) ([]Definition, error) {
	defs, err := DecodeDefinitions(data, ext)
	if err != nil {
		return nil, err
	}
	if err := Check(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// DecodeDefinitions decodes definitions without checking them
func DecodeDefinitions(data []byte, ext string) ([]Definition, error) {
	var defs []Definition

	switch strings.ToLower(ext) {
	case ".json":
		var raw []jsonDefinition
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}
		defs = make([]Definition, 0, len(raw))
		for _, r := range raw {
			defs = append(defs, r.definition())
		}
	case ".toml":
		var src tomlSource
		if _, err := toml.Decode(string(data), &src); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}
		defs = src.Cards
	case ".csv":
		return decodeTable(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: unsupported format %q (expected .json, .toml or .csv)", ErrMalformedSource, ext)
	}
	return defs, nil
}

// Check returns the first structural problem in defs, if any
func Check(defs []Definition) error {
	if problems := Problems(defs); len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrMalformedSource, problems[0])
	}
	return nil
}

// Problems lists every structural problem in defs: missing titles, titles
// spanning more than one line, non-positive counts and duplicated titles.
// The ledger stores one title per line, so a line break would split a title.
func Problems(defs []Definition) []string {
	var problems []string
	seen := make(map[string]int, len(defs))

	for i, d := range defs {
		entry := i + 1
		if strings.TrimSpace(d.Title) == "" {
			problems = append(problems, fmt.Sprintf("card %d has no title", entry))
			continue
		}
		if strings.ContainsAny(d.Title, "\r\n") {
			problems = append(problems, fmt.Sprintf("card %d (%q) has a line break in its title", entry, d.Title))
			continue
		}
		if d.Count < 1 {
			problems = append(problems, fmt.Sprintf("card %d (%s) has count %d, must be at least 1", entry, d.Title, d.Count))
		}
		if first, ok := seen[d.Title]; ok {
			problems = append(problems, fmt.Sprintf("card %d (%s) duplicates the title of card %d", entry, d.Title, first))
			continue
		}
		seen[d.Title] = entry
	}

	return problems
}
