package ledger_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/arcanaland/deckhand/internal/ledger"
)

func TestLoadCreatesMissingLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "frontier_removed.txt")

	titles, err := ledger.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 0 {
		t.Fatalf("expected empty ledger, got %v", titles)
	}
	if !ledger.Exists(path) {
		t.Fatal("expected ledger file to be created")
	}
}

func TestAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relic_removed.txt")

	if err := ledger.Append(path, []string{"A", "B"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ledger.Append(path, []string{"A"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ledger.Append(path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	titles, err := ledger.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "A"}; !reflect.DeepEqual(titles, want) {
		t.Fatalf("expected %v, got %v", want, titles)
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.txt")
	if err := os.WriteFile(path, []byte("A\r\n\nB\n"), 0644); err != nil {
		t.Fatal(err)
	}

	titles, err := ledger.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(titles, want) {
		t.Fatalf("expected %v, got %v", want, titles)
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.txt")

	if err := ledger.Clear(path); !errors.Is(err, ledger.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := ledger.Append(path, []string{"A"}); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Clear(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ledger.Exists(path) {
		t.Fatal("expected ledger to be removed")
	}
}
