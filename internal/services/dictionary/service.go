package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"os"
	"strings"
	"sync"
)

//go:embed default_words.txt
var defaultWords string

// Service provides word lists to the regex strategy
type Service struct {
	mu       sync.RWMutex
	words    map[string]struct{}
	byLength map[int][]string
	loaded   bool
}

// New creates a new dictionary Service
func New() *Service {
	return &Service{
		words:    make(map[string]struct{}),
		byLength: make(map[int][]string),
	}
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadEmbedded loads the embedded default word list
func (s *Service) LoadEmbedded() error {
	var words []string
	for _, line := range strings.Split(defaultWords, "\n") {
		word := strings.TrimSpace(line)
		if word != "" {
			words = append(words, word)
		}
	}
	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	s.byLength = make(map[int][]string)
	for _, word := range words {
		// Store uppercase to match phrase normalization
		w := strings.ToUpper(word)
		if _, ok := s.words[w]; ok {
			continue
		}
		s.words[w] = struct{}{}
		s.byLength[len([]rune(w))] = append(s.byLength[len([]rune(w))], w)
	}
	s.loaded = true
	return nil
}

// Contains checks if a word exists in the dictionary
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}
	_, ok := s.words[strings.ToUpper(word)]
	return ok
}

// WordsOfLength returns all words with exactly n letters. The returned slice
// is a copy: callers may filter it freely.
func (s *Service) WordsOfLength(n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil
	}
	words := make([]string, len(s.byLength[n]))
	copy(words, s.byLength[n])
	return words
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Interface check
type ServiceInterface interface {
	Contains(word string) bool
	IsLoaded() bool
	WordCount() int
	WordsOfLength(n int) []string
	LoadFromFile(ctx context.Context, path string) error
	LoadEmbedded() error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
