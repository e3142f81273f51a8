package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordsolver/hangman/internal/model"
)

func TestPrintTurnText(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.PrintTurn(model.Turn{
		Letter:            'C',
		Hit:               true,
		Revealed:          "C__",
		AttemptsRemaining: 9,
	})

	assert.Equal(t, "Guessed C (hit)  C _ _  [9 attempts left]\n", buf.String())
}

func TestPrintTurnSuppressedInJSONMode(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("json", &buf)

	out.PrintTurn(model.Turn{Letter: 'C', Hit: true})
	out.PrintStart(model.NewPhrase("cat"), model.StrategyRegex, 10)

	assert.Empty(t, buf.String())
}

func TestPrintOutcomeLoss(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.PrintOutcome(&model.Outcome{
		Won:           false,
		Phrase:        "CAT",
		FinalRevealed: "CA_",
		Turns:         []model.Turn{{Letter: 'C', Hit: true}, {Letter: 'A', Hit: true}, {Letter: 'Z'}},
		WrongGuesses:  1,
	})

	output := buf.String()
	assert.Contains(t, output, "Got as far as C A _")
	assert.Contains(t, output, "answer: CAT")
	assert.Contains(t, output, "Letters guessed: 3")
	assert.Contains(t, output, "Wrong guesses: 1")
}

func TestDefaultConfigEnvOverrides(t *testing.T) {
	t.Setenv("HANGMAN_STRATEGY", "frequency")
	t.Setenv("HANGMAN_MAX_ATTEMPTS", "3")
	t.Setenv("HANGMAN_DICTIONARY", "/tmp/words.txt")

	cfg := DefaultConfig()
	assert.Equal(t, "frequency", cfg.Strategy)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, "/tmp/words.txt", cfg.Dictionary)
}

func TestDefaultConfigDefaults(t *testing.T) {
	t.Setenv("HANGMAN_STRATEGY", "")
	t.Setenv("HANGMAN_MAX_ATTEMPTS", "not-a-number")

	cfg := DefaultConfig()
	assert.Equal(t, "regex", cfg.Strategy)
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, "text", cfg.Output)
}
