package freq

import "sort"

// Table maps letters to their relative frequency in English text. It is
// static data: no mutation, no failure modes.
type Table struct {
	weights map[rune]float64
}

// englishWeights holds percentage frequencies of letters in general English
// text (Lewand, "Cryptological Mathematics")
var englishWeights = map[rune]float64{
	'A': 8.167, 'B': 1.492, 'C': 2.782, 'D': 4.253, 'E': 12.702,
	'F': 2.228, 'G': 2.015, 'H': 6.094, 'I': 6.966, 'J': 0.153,
	'K': 0.772, 'L': 4.025, 'M': 2.406, 'N': 6.749, 'O': 7.507,
	'P': 1.929, 'Q': 0.095, 'R': 5.987, 'S': 6.327, 'T': 9.056,
	'U': 2.758, 'V': 0.978, 'W': 2.360, 'X': 0.150, 'Y': 1.974,
	'Z': 0.074,
}

// NewEnglishTable returns the standard English letter-frequency table
func NewEnglishTable() *Table {
	return &Table{weights: englishWeights}
}

// NewTable builds a table from custom weights. Useful for tests and
// alternate corpora.
func NewTable(weights map[rune]float64) *Table {
	w := make(map[rune]float64, len(weights))
	for r, v := range weights {
		w[r] = v
	}
	return &Table{weights: w}
}

// Weight returns the relative frequency of a letter, zero if unknown
func (t *Table) Weight(letter rune) float64 {
	return t.weights[letter]
}

// OrderedByFrequency returns every letter in the table not present in
// excluding, sorted by descending weight with alphabetical tiebreak.
func (t *Table) OrderedByFrequency(excluding map[rune]bool) []rune {
	letters := make([]rune, 0, len(t.weights))
	for r := range t.weights {
		if !excluding[r] {
			letters = append(letters, r)
		}
	}
	sort.Slice(letters, func(i, j int) bool {
		wi, wj := t.weights[letters[i]], t.weights[letters[j]]
		if wi != wj {
			return wi > wj
		}
		return letters[i] < letters[j]
	})
	return letters
}
