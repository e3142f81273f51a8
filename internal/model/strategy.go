package model

import "fmt"

// StrategyKind identifies a guessing strategy. The set is closed: every kind
// has exactly one implementation in the solver package.
type StrategyKind string

const (
	StrategyRandom    StrategyKind = "random"
	StrategyFrequency StrategyKind = "frequency"
	StrategyRegex     StrategyKind = "regex"
)

// DefaultStrategy is used when no strategy is specified
const DefaultStrategy = StrategyRegex

// ParseStrategyKind validates a strategy name from user input
func ParseStrategyKind(name string) (StrategyKind, error) {
	switch StrategyKind(name) {
	case StrategyRandom, StrategyFrequency, StrategyRegex:
		return StrategyKind(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// ValidStrategyKinds returns all valid strategy names
func ValidStrategyKinds() []StrategyKind {
	return []StrategyKind{StrategyRandom, StrategyFrequency, StrategyRegex}
}

// StrategyDisplayName returns a human-readable label for a strategy
func StrategyDisplayName(kind StrategyKind) string {
	switch kind {
	case StrategyRandom:
		return "Random"
	case StrategyFrequency:
		return "Frequency"
	case StrategyRegex:
		return "Regex"
	default:
		return string(kind)
	}
}
