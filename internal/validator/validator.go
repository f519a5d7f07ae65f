package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/deckhand/internal/card"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	SourcePath string
	Results    ValidationResults

	defs []card.Definition
}

func NewValidator(sourcePath string) *Validator {
	return &Validator{
		SourcePath: sourcePath,
		Results:    ValidationResults{},
	}
}

// Validate reads the card source and collects every problem it finds. An
// error is returned only when the file cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateSource(); err != nil {
		return v.Results, err
	}

	v.validateCards()
	v.validateDescriptions()
	v.validateSize()

	return v.Results, nil
}

func (v *Validator) validateSource() error {
	data, err := os.ReadFile(v.SourcePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", card.ErrSourceNotFound, v.SourcePath)
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %v", v.SourcePath, err)
	}

	defs, err := card.DecodeDefinitions(data, filepath.Ext(v.SourcePath))
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return nil
	}

	v.defs = defs
	return nil
}

// validateCards checks titles, counts and duplicates
func (v *Validator) validateCards() {
	v.Results.Errors = append(v.Results.Errors, card.Problems(v.defs)...)
}

// validateDescriptions warns about cards that have no effect text
func (v *Validator) validateDescriptions() {
	var missing []string
	for _, d := range v.defs {
		if d.Title != "" && strings.TrimSpace(d.Description) == "" {
			missing = append(missing, d.Title)
		}
	}

	if len(missing) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("cards without a description: %s", strings.Join(missing, ", ")))
	}
}

// validateSize warns when the deck would be empty
func (v *Validator) validateSize() {
	if len(v.Results.Errors) > 0 {
		return
	}
	if card.Total(v.defs) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "deck contains no cards")
	}
}
