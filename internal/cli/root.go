package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wordsolver/hangman/internal/dependencies/random"
	"github.com/wordsolver/hangman/internal/model"
	"github.com/wordsolver/hangman/internal/services/dictionary"
	"github.com/wordsolver/hangman/internal/services/freq"
	"github.com/wordsolver/hangman/internal/services/game"
	"github.com/wordsolver/hangman/internal/services/solver"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// Pick up a .env before reading defaults from the environment
	_ = godotenv.Load()
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "hangman [flags] <phrase...>",
		Short: "Solve a game of hangman against a given word or phrase",
		Long: `hangman plays hangman against a secret word or phrase you supply,
choosing each guess with one of three strategies:

  random     uniform random over untried letters (seedable with --seed)
  frequency  English letter-frequency order
  regex      dictionary candidate filtering (default)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.SeedSet = cmd.Flags().Changed("seed")
			return runGame(cmd, cfg, args)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&cfg.Strategy, "strategy", "s", cfg.Strategy,
		"Guessing strategy: random, frequency, regex (env: HANGMAN_STRATEGY)")
	rootCmd.Flags().StringVarP(&cfg.Dictionary, "dictionary", "d", cfg.Dictionary,
		"Word list file for the regex strategy (env: HANGMAN_DICTIONARY; default: embedded list)")
	rootCmd.Flags().IntVarP(&cfg.MaxAttempts, "max-attempts", "a", cfg.MaxAttempts,
		"Wrong guesses allowed before losing (env: HANGMAN_MAX_ATTEMPTS)")
	rootCmd.Flags().Int64Var(&cfg.Seed, "seed", 0,
		"Random seed for reproducible games (random strategy)")
	rootCmd.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output,
		"Output format: text, json")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose,
		"Verbose output (debug logging, candidate sets)")

	return rootCmd
}

func runGame(cmd *cobra.Command, cfg *Config, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

	kind, err := model.ParseStrategyKind(cfg.Strategy)
	if err != nil {
		return fmt.Errorf("%w (valid: %s)", err, strategyNames())
	}

	phrase := model.NewPhrase(strings.Join(args, " "))
	if !phrase.HasLetters() {
		return model.ErrEmptyPhrase
	}
	if cfg.MaxAttempts < 0 {
		return fmt.Errorf("max-attempts must not be negative, got %d", cfg.MaxAttempts)
	}

	dict := dictionary.New()
	if kind == model.StrategyRegex {
		if err := loadDictionary(cmd.Context(), dict, cfg.Dictionary, logger); err != nil {
			// Not fatal: the regex strategy degrades to frequency order
			// when it has no candidates
			logger.Warn("could not load dictionary, regex strategy will fall back to frequency",
				slog.String("error", err.Error()))
		}
	}

	var rnd random.Random = random.New()
	if cfg.SeedSet {
		rnd = random.NewSeeded(cfg.Seed)
	}

	strategy, err := solver.New(kind, dict, freq.NewEnglishTable(), rnd, logger)
	if err != nil {
		return err
	}

	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	out.PrintStart(phrase, kind, cfg.MaxAttempts)

	engine := game.NewEngine(strategy, logger)
	engine.OnTurn = out.PrintTurn

	outcome, err := engine.Play(phrase, cfg.MaxAttempts)
	if err != nil {
		return err
	}

	// Win or lose, a completed game exits zero; the result is in the output
	out.PrintOutcome(outcome)
	return nil
}

func loadDictionary(ctx context.Context, dict *dictionary.Service, path string, logger *slog.Logger) error {
	if path != "" {
		if err := dict.LoadFromFile(ctx, path); err != nil {
			return err
		}
		logger.Debug("dictionary loaded",
			slog.String("path", path), slog.Int("words", dict.WordCount()))
		return nil
	}
	if err := dict.LoadEmbedded(); err != nil {
		return err
	}
	logger.Debug("embedded dictionary loaded", slog.Int("words", dict.WordCount()))
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func strategyNames() string {
	kinds := model.ValidStrategyKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
