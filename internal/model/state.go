package model

// State is the solver-visible view of a game in progress. The engine owns
// the state and mutates it; strategies read it.
type State struct {
	Phrase Phrase

	// Revealed has one rune per phrase position: the true rune if guessed
	// or non-alphabetic, Placeholder otherwise
	Revealed []rune

	// Guessed holds every letter tried so far, hits and misses alike
	Guessed map[rune]bool

	// Misses holds the guessed letters that matched no position
	Misses map[rune]bool

	// AttemptsRemaining counts down on each miss; zero is a loss
	AttemptsRemaining int
}

// NewState builds the starting state for a phrase. Non-letter positions are
// revealed from the outset.
func NewState(phrase Phrase, maxAttempts int) *State {
	revealed := make([]rune, 0, len(phrase))
	for _, r := range phrase {
		if IsGuessable(r) {
			revealed = append(revealed, Placeholder)
		} else {
			revealed = append(revealed, r)
		}
	}
	return &State{
		Phrase:            phrase,
		Revealed:          revealed,
		Guessed:           make(map[rune]bool),
		Misses:            make(map[rune]bool),
		AttemptsRemaining: maxAttempts,
	}
}

// RevealedString returns the revealed state as a string
func (s *State) RevealedString() string {
	return string(s.Revealed)
}

// Solved reports whether every position has been revealed
func (s *State) Solved() bool {
	for _, r := range s.Revealed {
		if r == Placeholder {
			return false
		}
	}
	return true
}

// SegmentRevealed returns the revealed runes covering the given segment
func (s *State) SegmentRevealed(seg Segment) []rune {
	return s.Revealed[seg.Offset : seg.Offset+seg.Len()]
}

// SegmentSolved reports whether a segment has no placeholders left
func (s *State) SegmentSolved(seg Segment) bool {
	for _, r := range s.SegmentRevealed(seg) {
		if r == Placeholder {
			return false
		}
	}
	return true
}

// UntriedLetters returns the A-Z letters not yet guessed, in alphabetical order
func (s *State) UntriedLetters() []rune {
	var letters []rune
	for r := 'A'; r <= 'Z'; r++ {
		if !s.Guessed[r] {
			letters = append(letters, r)
		}
	}
	return letters
}

// Apply records the outcome of guessing letter, revealing any matching
// positions and decrementing attempts on a miss. It returns true on a hit.
func (s *State) Apply(letter rune) bool {
	s.Guessed[letter] = true
	hit := false
	for _, i := range s.Phrase.Positions(letter) {
		s.Revealed[i] = letter
		hit = true
	}
	if !hit {
		s.Misses[letter] = true
		s.AttemptsRemaining--
	}
	return hit
}
