package solver

import (
	"log/slog"

	"github.com/wordsolver/hangman/internal/dependencies/random"
	"github.com/wordsolver/hangman/internal/model"
	"github.com/wordsolver/hangman/internal/services/dictionary"
	"github.com/wordsolver/hangman/internal/services/freq"
)

// Strategy defines how a solver chooses the next letter to guess
type Strategy interface {
	// Kind identifies the strategy variant
	Kind() model.StrategyKind

	// NextGuess selects a letter not yet in the guessed set. It returns
	// model.ErrAlphabetExhausted when no letters remain.
	NextGuess(state *model.State) (rune, error)

	// Observe notifies the strategy that the engine has applied a guess
	// and updated the state
	Observe(state *model.State)
}

// New constructs the strategy for a kind. The strategy set is closed: every
// valid kind maps to exactly one implementation.
func New(
	kind model.StrategyKind,
	dict *dictionary.Service,
	table *freq.Table,
	rnd random.Random,
	logger *slog.Logger,
) (Strategy, error) {
	switch kind {
	case model.StrategyRandom:
		return NewRandomStrategy(rnd), nil
	case model.StrategyFrequency:
		return NewFrequencyStrategy(table), nil
	case model.StrategyRegex:
		return NewRegexStrategy(dict, table, logger), nil
	default:
		return nil, model.ErrUnknownStrategy
	}
}
