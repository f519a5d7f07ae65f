package card

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Column headings of the card table
const (
	ColumnTitle       = "Card"
	ColumnDescription = "Effect"
	ColumnCount       = "Number in Deck"
)

// ReadTable converts a CSV card table into definitions. The header row must
// name the Card, Effect and Number in Deck columns, in any order.
func ReadTable(r io.Reader) ([]Definition, error) {
	defs, err := decodeTable(r)
	if err != nil {
		return nil, err
	}
	if err := Check(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func decodeTable(r io.Reader) ([]Definition, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: table is empty", ErrMalformedSource)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	titleCol, descCol, countCol := -1, -1, -1
	for i, h := range header {
		switch {
		case strings.EqualFold(strings.TrimSpace(h), ColumnTitle):
			titleCol = i
		case strings.EqualFold(strings.TrimSpace(h), ColumnDescription):
			descCol = i
		case strings.EqualFold(strings.TrimSpace(h), ColumnCount):
			countCol = i
		}
	}
	if titleCol < 0 || descCol < 0 || countCol < 0 {
		return nil, fmt.Errorf("%w: header must contain %q, %q and %q columns",
			ErrMalformedSource, ColumnTitle, ColumnDescription, ColumnCount)
	}

	var defs []Definition
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}

		count, err := strconv.Atoi(strings.TrimSpace(record[countCol]))
		if err != nil || count < 1 {
			return nil, fmt.Errorf("%w: row %d: invalid %s %q",
				ErrMalformedSource, row, ColumnCount, record[countCol])
		}

		defs = append(defs, Definition{
			Title:       strings.TrimSpace(record[titleCol]),
			Description: strings.TrimSpace(record[descCol]),
			Count:       count,
		})
	}
	return defs, nil
}

// EncodeDefinitions writes defs in the format named by ext (".json" or ".toml")
func EncodeDefinitions(w io.Writer, defs []Definition, ext string) error {
	switch strings.ToLower(ext) {
	case ".json":
		if defs == nil {
			defs = []Definition{}
		}
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(defs); err != nil {
			return fmt.Errorf("error encoding cards: %v", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	case ".toml":
		encoder := toml.NewEncoder(w)
		if err := encoder.Encode(tomlSource{Cards: defs}); err != nil {
			return fmt.Errorf("error encoding cards: %v", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected .json or .toml)", ext)
	}
}
