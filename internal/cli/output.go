package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/wordsolver/hangman/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// PrintStart announces the game before the first guess
func (o *Output) PrintStart(phrase model.Phrase, kind model.StrategyKind, maxAttempts int) {
	if o.format == "json" {
		return // JSON mode emits the outcome only
	}
	fmt.Fprintf(o.w, "The answer is: %s\n", phrase)
	fmt.Fprintf(o.w, "Solving with the %s strategy (%d wrong guesses allowed)...\n",
		strings.ToLower(model.StrategyDisplayName(kind)), maxAttempts)
}

// PrintTurn renders a single guess
func (o *Output) PrintTurn(turn model.Turn) {
	if o.format == "json" {
		return
	}
	result := "miss"
	if turn.Hit {
		result = "hit"
	}
	fmt.Fprintf(o.w, "Guessed %c (%s)  %s  [%d attempts left]\n",
		turn.Letter, result, spaced(turn.Revealed), turn.AttemptsRemaining)
}

// PrintOutcome renders the final result
func (o *Output) PrintOutcome(outcome *model.Outcome) {
	if o.format == "json" {
		enc := json.NewEncoder(o.w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(turnsToJSON(outcome))
		return
	}
	if outcome.Won {
		fmt.Fprintf(o.w, "Solved it! The answer was: %s\n", outcome.Phrase)
	} else {
		fmt.Fprintf(o.w, "Out of attempts. Got as far as %s (answer: %s)\n",
			spaced(outcome.FinalRevealed), outcome.Phrase)
	}
	fmt.Fprintf(o.w, "Letters guessed: %d\n", outcome.LettersGuessed())
	fmt.Fprintf(o.w, "Wrong guesses: %d\n", outcome.WrongGuesses)
}

// outcomeJSON flattens rune fields into strings for readable JSON
type outcomeJSON struct {
	Won           bool       `json:"won"`
	Phrase        string     `json:"phrase"`
	FinalRevealed string     `json:"final_revealed"`
	Turns         []turnJSON `json:"turns"`
	WrongGuesses  int        `json:"wrong_guesses"`
}

type turnJSON struct {
	Letter            string `json:"letter"`
	Hit               bool   `json:"hit"`
	Revealed          string `json:"revealed"`
	AttemptsRemaining int    `json:"attempts_remaining"`
}

func turnsToJSON(outcome *model.Outcome) outcomeJSON {
	out := outcomeJSON{
		Won:           outcome.Won,
		Phrase:        outcome.Phrase,
		FinalRevealed: outcome.FinalRevealed,
		Turns:         make([]turnJSON, 0, len(outcome.Turns)),
		WrongGuesses:  outcome.WrongGuesses,
	}
	for _, t := range outcome.Turns {
		out.Turns = append(out.Turns, turnJSON{
			Letter:            string(t.Letter),
			Hit:               t.Hit,
			Revealed:          t.Revealed,
			AttemptsRemaining: t.AttemptsRemaining,
		})
	}
	return out
}

// spaced renders a revealed state with gaps between positions, the classic
// hangman board look
func spaced(revealed string) string {
	runes := []rune(revealed)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
