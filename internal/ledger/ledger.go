// Package ledger records which cards have been removed from a deck. A ledger
// is a text file with one card title per line, appended to on every draw.
//
// Ledgers are not locked: two processes drawing from the same deck at once
// can interleave or lose entries.
package ledger

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Clear when there is no ledger to clear
var ErrNotFound = errors.New("ledger not found")

// Load returns the removed titles in the order they were recorded. A missing
// ledger is created empty.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := create(path); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading ledger %s: %w", path, err)
	}

	var titles []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		title := strings.TrimRight(scanner.Text(), "\r")
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger %s: %w", path, err)
	}

	return titles, nil
}

// Append records titles at the end of the ledger in a single write, creating
// the ledger if needed.
func Append(path string, titles []string) error {
	if len(titles) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating ledger directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger %s: %w", path, err)
	}

	var buf bytes.Buffer
	for _, title := range titles {
		buf.WriteString(title)
		buf.WriteByte('\n')
	}

	if _, err := file.Write(buf.Bytes()); err != nil {
		file.Close()
		return fmt.Errorf("error writing ledger %s: %w", path, err)
	}
	return file.Close()
}

// Clear deletes the ledger. Unlike Load and Append it fails with ErrNotFound
// when the ledger does not exist.
func Clear(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("error removing ledger %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a ledger has been created at path
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func create(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating ledger directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error creating ledger %s: %w", path, err)
	}
	return file.Close()
}
