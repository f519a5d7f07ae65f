package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/display"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "deckhand",
	Short: "Draw cards from the decks of a board game",
	Long: `Deckhand keeps track of the card decks of a board game between turns.
It shuffles what is left of each deck, draws cards, remembers what has been
drawn and shows the odds of what comes next.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/deckhand/config.toml)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log what deckhand is doing to stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

type appKey struct{}

// app holds what every command needs. The config and engine are loaded on
// first use so commands that don't touch a deck never create a config file.
type app struct {
	configPath string
	logger     *slog.Logger
	printer    *display.Printer

	config *config.Config
	engine *deck.Engine
}

func setup(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env", "error", err)
	}

	a := &app{
		configPath: configPath,
		logger:     logger,
		printer:    display.New(cmd.OutOrStdout(), cmd.InOrStdin()),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appKey{}, a))
	return nil
}

func appFrom(cmd *cobra.Command) *app {
	return cmd.Context().Value(appKey{}).(*app)
}

// Config loads the config file
func (a *app) Config() (*config.Config, error) {
	if a.config != nil {
		return a.config, nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("config loaded", "path", cfg.Path, "data_dir", cfg.DataDir)

	a.config = cfg
	return cfg, nil
}

// Engine returns the draw engine for the loaded config
func (a *app) Engine() (*deck.Engine, error) {
	if a.engine != nil {
		return a.engine, nil
	}

	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}

	a.engine = deck.NewEngine(cfg, nil, a.logger)
	return a.engine, nil
}

// fileExists reports whether path exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
