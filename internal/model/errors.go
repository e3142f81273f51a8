package model

import "errors"

// Common errors used across the application
var (
	// CLI errors
	ErrEmptyPhrase     = errors.New("phrase contains no guessable letters")
	ErrUnknownStrategy = errors.New("unknown strategy")

	// Strategy errors
	ErrAlphabetExhausted = errors.New("no letters left to guess")
	ErrFeedbackPending   = errors.New("must apply feedback before guessing another letter")
)
