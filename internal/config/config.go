package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// ErrInvalidDeck is returned when a deck identifier is not configured
var ErrInvalidDeck = errors.New("invalid deck")

// Config represents the application configuration
type Config struct {
	DataDir string                `toml:"data_dir"`
	Decks   map[string]DeckConfig `toml:"decks"`

	// Path is the file the config was loaded from
	Path string `toml:"-"`
}

// DeckConfig locates the files of one deck. Relative paths are resolved
// against the data directory.
type DeckConfig struct {
	Source string `toml:"source"`
	Ledger string `toml:"ledger"`
}

// Environment holds the settings that can be overridden from the environment
type Environment struct {
	ConfigPath string `env:"DECKHAND_CONFIG"`
	DataDir    string `env:"DECKHAND_DATA_DIR"`
}

// ParseEnv reads DECKHAND_* variables
func ParseEnv() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// DefaultDataDir returns the directory holding card sources and ledgers
func DefaultDataDir() string {
	return filepath.Join(GetXDGDataHome(), "deckhand")
}

// DefaultConfigPath returns the path to the config file
func DefaultConfigPath() string {
	return filepath.Join(GetXDGConfigHome(), "deckhand", "config.toml")
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Decks: map[string]DeckConfig{
			"frontier": {Source: "frontier.json", Ledger: "frontier_removed.txt"},
			"relic":    {Source: "relic.json", Ledger: "relic_removed.txt"},
		},
	}
}

// Load loads the config file at path, creating a default one if it doesn't
// exist. An empty path selects DECKHAND_CONFIG or the XDG location.
// DECKHAND_DATA_DIR overrides the data directory from the file.
func Load(path string) (*Config, error) {
	environment, err := ParseEnv()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = environment.ConfigPath
	}
	if path == "" {
		path = DefaultConfigPath()
	}

	var config *Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		config, err = createDefaultConfig(path)
		if err != nil {
			return nil, err
		}
	} else {
		config = &Config{}
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %v", err)
		}
	}

	config.Path = path
	if environment.DataDir != "" {
		config.DataDir = environment.DataDir
	}
	if config.DataDir == "" {
		config.DataDir = DefaultDataDir()
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) (*Config, error) {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := Default()
	if err := config.Save(path); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config to path as TOML
func (c *Config) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}
	return nil
}

// DeckIDs returns the configured deck identifiers in sorted order
func (c *Config) DeckIDs() []string {
	ids := make([]string, 0, len(c.Decks))
	for id := range c.Decks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Deck resolves a deck identifier to the absolute locations of its files
func (c *Config) Deck(id string) (DeckConfig, error) {
	d, ok := c.Decks[id]
	if !ok {
		return DeckConfig{}, fmt.Errorf("%w %q (known decks: %s)", ErrInvalidDeck, id, strings.Join(c.DeckIDs(), ", "))
	}
	if d.Source == "" || d.Ledger == "" {
		return DeckConfig{}, fmt.Errorf("deck %q needs both a source and a ledger in %s", id, c.Path)
	}

	return DeckConfig{
		Source: c.resolve(d.Source),
		Ledger: c.resolve(d.Ledger),
	}, nil
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}
