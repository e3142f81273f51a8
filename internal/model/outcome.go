package model

// Turn records a single guess and the state it produced
type Turn struct {
	Letter            rune
	Hit               bool
	Revealed          string
	AttemptsRemaining int
}

// Outcome is the result of a completed game
type Outcome struct {
	Won           bool
	Phrase        string
	FinalRevealed string
	Turns         []Turn
	WrongGuesses  int
}

// LettersGuessed returns the number of distinct letters tried
func (o *Outcome) LettersGuessed() int {
	return len(o.Turns)
}
