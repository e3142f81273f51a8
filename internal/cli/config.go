package cli

import (
	"os"
	"strconv"
)

// DefaultMaxAttempts is the wrong-guess budget when none is configured
const DefaultMaxAttempts = 10

// Config holds CLI configuration
type Config struct {
	Strategy    string
	Dictionary  string
	MaxAttempts int
	Seed        int64
	SeedSet     bool
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values, reading the
// HANGMAN_* environment for overrides
func DefaultConfig() *Config {
	return &Config{
		Strategy:    getEnvOrDefault("HANGMAN_STRATEGY", "regex"),
		Dictionary:  os.Getenv("HANGMAN_DICTIONARY"),
		MaxAttempts: getEnvIntOrDefault("HANGMAN_MAX_ATTEMPTS", DefaultMaxAttempts),
		Output:      "text",
		Verbose:     false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
