package validator_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/validator"
)

func validate(t *testing.T, name, content string) validator.ValidationResults {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	results, err := validator.NewValidator(path).Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return results
}

func TestValidateCleanDeck(t *testing.T) {
	results := validate(t, "frontier.json", `[{"title": "A", "description": "x", "count": 2}]`)
	if len(results.Errors) != 0 || len(results.Warnings) != 0 {
		t.Fatalf("expected a clean result, got %+v", results)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	results := validate(t, "frontier.json", `[
		{"title": "A", "description": "x", "count": 0},
		{"title": "A", "description": "", "count": 1},
		{"title": "", "description": "y", "count": 1}
	]`)

	if len(results.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(results.Errors), results.Errors)
	}
	if len(results.Warnings) != 1 || !strings.Contains(results.Warnings[0], "without a description: A") {
		t.Fatalf("unexpected warnings: %v", results.Warnings)
	}
}

func TestValidateWarnings(t *testing.T) {
	results := validate(t, "relic.toml", "")
	if len(results.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", results.Errors)
	}
	if len(results.Warnings) != 1 || results.Warnings[0] != "deck contains no cards" {
		t.Fatalf("unexpected warnings: %v", results.Warnings)
	}
}

func TestValidateUnparsable(t *testing.T) {
	results := validate(t, "relic.json", `not json`)
	if len(results.Errors) != 1 {
		t.Fatalf("expected one parse error, got %v", results.Errors)
	}
}

func TestValidateMissingFile(t *testing.T) {
	_, err := validator.NewValidator(filepath.Join(t.TempDir(), "nope.json")).Validate()
	if !errors.Is(err, card.ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}
