package game

import (
	"fmt"
	"log/slog"

	"github.com/wordsolver/hangman/internal/model"
	"github.com/wordsolver/hangman/internal/services/solver"
)

// Engine drives a game of hangman: it owns the state and feeds guess
// outcomes back to the strategy after every turn
type Engine struct {
	strategy solver.Strategy
	logger   *slog.Logger

	// OnTurn, if set, is invoked after each applied guess. The CLI uses it
	// for per-turn rendering.
	OnTurn func(model.Turn)
}

// NewEngine creates a new Engine
func NewEngine(strategy solver.Strategy, logger *slog.Logger) *Engine {
	return &Engine{
		strategy: strategy,
		logger:   logger.With(slog.String("component", "game-engine")),
	}
}

// Play runs the solver against a phrase until it is fully revealed (won) or
// maxAttempts wrong guesses have been made (lost). A maxAttempts of zero is
// an immediate loss with no guesses made.
func (e *Engine) Play(phrase model.Phrase, maxAttempts int) (*model.Outcome, error) {
	if !phrase.HasLetters() {
		return nil, model.ErrEmptyPhrase
	}

	state := model.NewState(phrase, maxAttempts)
	outcome := &model.Outcome{Phrase: phrase.String()}

	for !state.Solved() && state.AttemptsRemaining > 0 {
		letter, err := e.strategy.NextGuess(state)
		if err != nil {
			// A correct loop always terminates before the alphabet runs
			// out; reaching this is a bug, not a game state
			return nil, fmt.Errorf("strategy %s failed: %w", e.strategy.Kind(), err)
		}
		if state.Guessed[letter] {
			return nil, fmt.Errorf("strategy %s repeated guess %c: %w",
				e.strategy.Kind(), letter, model.ErrFeedbackPending)
		}

		hit := state.Apply(letter)
		e.strategy.Observe(state)

		turn := model.Turn{
			Letter:            letter,
			Hit:               hit,
			Revealed:          state.RevealedString(),
			AttemptsRemaining: state.AttemptsRemaining,
		}
		outcome.Turns = append(outcome.Turns, turn)
		if !hit {
			outcome.WrongGuesses++
		}

		e.logger.Debug("guess applied",
			slog.String("letter", string(letter)),
			slog.Bool("hit", hit),
			slog.String("revealed", turn.Revealed),
			slog.Int("attempts_remaining", turn.AttemptsRemaining),
		)

		if e.OnTurn != nil {
			e.OnTurn(turn)
		}
	}

	outcome.Won = state.Solved()
	outcome.FinalRevealed = state.RevealedString()
	return outcome, nil
}
