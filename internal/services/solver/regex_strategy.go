package solver

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/wordsolver/hangman/internal/model"
	"github.com/wordsolver/hangman/internal/services/dictionary"
	"github.com/wordsolver/hangman/internal/services/freq"
)

// candidateListLimit is the largest candidate set logged in full
const candidateListLimit = 20

// RegexStrategy narrows a per-segment candidate set after every guess and
// picks the letter occurring in the most remaining candidates. When a
// segment's candidates run out (the word is not in the dictionary), letter
// counts fall back to plain English frequency.
type RegexStrategy struct {
	dict     *dictionary.Service
	table    *freq.Table
	fallback *FrequencyStrategy
	logger   *slog.Logger

	segments    []model.Segment
	candidates  [][]string
	initialized bool
}

// NewRegexStrategy creates a new RegexStrategy
func NewRegexStrategy(dict *dictionary.Service, table *freq.Table, logger *slog.Logger) *RegexStrategy {
	return &RegexStrategy{
		dict:     dict,
		table:    table,
		fallback: NewFrequencyStrategy(table),
		logger:   logger.With(slog.String("component", "regex-strategy")),
	}
}

// Kind identifies the strategy variant
func (s *RegexStrategy) Kind() model.StrategyKind {
	return model.StrategyRegex
}

// NextGuess counts untried letters across the live candidate sets and
// returns the most common one. Count ties break by English letter weight,
// then alphabetically, so guesses are deterministic.
func (s *RegexStrategy) NextGuess(state *model.State) (rune, error) {
	s.ensureInit(state)

	counts := make(map[rune]int)
	for i, seg := range s.segments {
		if state.SegmentSolved(seg) {
			continue
		}
		words := s.candidates[i]
		if len(words) == 0 {
			continue
		}
		if len(words) > 1 {
			s.logCandidates(seg, words)
		}
		for _, word := range words {
			for _, r := range word {
				// Custom dictionaries may carry apostrophes and the
				// like; only letters are ever worth guessing
				if model.IsGuessable(r) && !state.Guessed[r] {
					counts[r]++
				}
			}
		}
	}

	if len(counts) == 0 {
		// No dictionary help left for any unsolved segment
		return s.fallback.NextGuess(state)
	}

	letters := make([]rune, 0, len(counts))
	for r := range counts {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool {
		a, b := letters[i], letters[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		wa, wb := s.table.Weight(a), s.table.Weight(b)
		if wa != wb {
			return wa > wb
		}
		return a < b
	})
	return letters[0], nil
}

// Observe refilters every segment's candidates against the updated state
func (s *RegexStrategy) Observe(state *model.State) {
	if !s.initialized {
		return
	}
	s.filter(state)
}

// CandidateCounts returns the current candidate set size per segment.
// Exposed for tests and debug output.
func (s *RegexStrategy) CandidateCounts() []int {
	counts := make([]int, len(s.candidates))
	for i, words := range s.candidates {
		counts[i] = len(words)
	}
	return counts
}

// Candidates returns a copy of the candidate words for a segment
func (s *RegexStrategy) Candidates(segment int) []string {
	if segment < 0 || segment >= len(s.candidates) {
		return nil
	}
	words := make([]string, len(s.candidates[segment]))
	copy(words, s.candidates[segment])
	return words
}

func (s *RegexStrategy) ensureInit(state *model.State) {
	if s.initialized {
		return
	}
	s.segments = state.Phrase.Segments()
	s.candidates = make([][]string, len(s.segments))
	for i, seg := range s.segments {
		s.candidates[i] = s.dict.WordsOfLength(seg.Len())
	}
	s.initialized = true
	// Guesses may already have been recorded if the strategy joins a game
	// in progress; reconcile immediately
	s.filter(state)
}

// filter drops candidates inconsistent with the revealed state. A word stays
// consistent iff it carries the revealed letter at every revealed position
// and no already-guessed letter at any unrevealed position. The second rule
// also rules out every missed letter. Filtering only ever shrinks a set and
// re-running it with the same state is a no-op.
func (s *RegexStrategy) filter(state *model.State) {
	for i, seg := range s.segments {
		revealed := state.SegmentRevealed(seg)
		kept := s.candidates[i][:0]
		for _, word := range s.candidates[i] {
			if consistent(word, revealed, state.Guessed) {
				kept = append(kept, word)
			}
		}
		s.candidates[i] = kept
	}
}

func consistent(word string, revealed []rune, guessed map[rune]bool) bool {
	runes := []rune(word)
	if len(runes) != len(revealed) {
		return false
	}
	for i, r := range revealed {
		if r == model.Placeholder {
			if guessed[runes[i]] {
				return false
			}
			continue
		}
		if runes[i] != r {
			return false
		}
	}
	return true
}

func (s *RegexStrategy) logCandidates(seg model.Segment, words []string) {
	attrs := []any{
		slog.Int("offset", seg.Offset),
		slog.Int("count", len(words)),
	}
	if len(words) <= candidateListLimit {
		sorted := make([]string, len(words))
		copy(sorted, words)
		sort.Strings(sorted)
		attrs = append(attrs, slog.String("candidates", strings.Join(sorted, ", ")))
	}
	s.logger.Debug("evaluating candidates", attrs...)
}
