package solver

import (
	"github.com/wordsolver/hangman/internal/dependencies/random"
	"github.com/wordsolver/hangman/internal/model"
)

// RandomStrategy picks uniformly among the letters not yet guessed
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Kind identifies the strategy variant
func (s *RandomStrategy) Kind() model.StrategyKind {
	return model.StrategyRandom
}

// NextGuess returns a random untried letter
func (s *RandomStrategy) NextGuess(state *model.State) (rune, error) {
	untried := state.UntriedLetters()
	if len(untried) == 0 {
		return 0, model.ErrAlphabetExhausted
	}
	return untried[s.random.Intn(len(untried))], nil
}

// Observe is a no-op: random selection keeps no state between guesses
func (s *RandomStrategy) Observe(state *model.State) {}
