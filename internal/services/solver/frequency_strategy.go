package solver

import (
	"github.com/wordsolver/hangman/internal/model"
	"github.com/wordsolver/hangman/internal/services/freq"
)

// FrequencyStrategy always guesses the most common untried English letter.
// It is fully deterministic.
type FrequencyStrategy struct {
	table *freq.Table
}

// NewFrequencyStrategy creates a new FrequencyStrategy
func NewFrequencyStrategy(table *freq.Table) *FrequencyStrategy {
	return &FrequencyStrategy{table: table}
}

// Kind identifies the strategy variant
func (s *FrequencyStrategy) Kind() model.StrategyKind {
	return model.StrategyFrequency
}

// NextGuess returns the highest-weight untried letter
func (s *FrequencyStrategy) NextGuess(state *model.State) (rune, error) {
	ordered := s.table.OrderedByFrequency(state.Guessed)
	if len(ordered) == 0 {
		return 0, model.ErrAlphabetExhausted
	}
	return ordered[0], nil
}

// Observe is a no-op: the table is static
func (s *FrequencyStrategy) Observe(state *model.State) {}
