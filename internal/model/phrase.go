package model

import (
	"strings"
)

// Placeholder marks a hidden letter in the revealed state
const Placeholder = '_'

// Phrase is the secret text to be guessed. It is uppercased on creation and
// immutable afterwards. Only A-Z positions are guessable; everything else
// (spaces, punctuation, digits) starts out revealed.
type Phrase string

// NewPhrase normalizes raw input into a Phrase
func NewPhrase(raw string) Phrase {
	return Phrase(strings.ToUpper(strings.TrimSpace(raw)))
}

// String returns the phrase text
func (p Phrase) String() string {
	return string(p)
}

// Letters returns the distinct A-Z letters appearing in the phrase
func (p Phrase) Letters() []rune {
	seen := make(map[rune]bool)
	var letters []rune
	for _, r := range p {
		if isLetter(r) && !seen[r] {
			seen[r] = true
			letters = append(letters, r)
		}
	}
	return letters
}

// HasLetters reports whether the phrase contains at least one guessable letter
func (p Phrase) HasLetters() bool {
	for _, r := range p {
		if isLetter(r) {
			return true
		}
	}
	return false
}

// Positions returns the rune indices at which the given letter occurs.
// Rune indexing keeps them aligned with the revealed state, which holds one
// entry per rune even when the phrase contains multi-byte characters.
func (p Phrase) Positions(letter rune) []int {
	var indices []int
	for i, r := range []rune(string(p)) {
		if r == letter {
			indices = append(indices, i)
		}
	}
	return indices
}

// Segment is a maximal run of letters within a phrase
type Segment struct {
	// Offset is the index of the segment's first rune within the phrase
	Offset int
	// Text is the segment's letters
	Text string
}

// Len returns the segment length in runes
func (s Segment) Len() int {
	return len([]rune(s.Text))
}

// Segments splits the phrase into its whitespace/punctuation-delimited words
func (p Phrase) Segments() []Segment {
	var segments []Segment
	runes := []rune(string(p))
	start := -1
	for i, r := range runes {
		if isLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			segments = append(segments, Segment{Offset: start, Text: string(runes[start:i])})
			start = -1
		}
	}
	if start >= 0 {
		segments = append(segments, Segment{Offset: start, Text: string(runes[start:])})
	}
	return segments
}

func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
}

// IsGuessable reports whether r is a letter a solver may guess
func IsGuessable(r rune) bool {
	return isLetter(r)
}
