package freq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wordsolver/hangman/internal/services/freq"
)

func TestEnglishOrderStartsWithCommonLetters(t *testing.T) {
	ordered := freq.NewEnglishTable().OrderedByFrequency(nil)

	assert.Len(t, ordered, 26)
	assert.Equal(t, []rune{'E', 'T', 'A', 'O', 'I'}, ordered[:5])
	assert.Equal(t, 'Z', ordered[25])
}

func TestOrderedByFrequencyExcludes(t *testing.T) {
	table := freq.NewEnglishTable()
	excluding := map[rune]bool{'E': true, 'T': true}

	ordered := table.OrderedByFrequency(excluding)

	assert.Len(t, ordered, 24)
	assert.Equal(t, 'A', ordered[0])
	assert.NotContains(t, ordered, 'E')
	assert.NotContains(t, ordered, 'T')
}

func TestTiesBreakAlphabetically(t *testing.T) {
	table := freq.NewTable(map[rune]float64{'C': 1, 'A': 1, 'B': 2})

	assert.Equal(t, []rune{'B', 'A', 'C'}, table.OrderedByFrequency(nil))
}

func TestWeight(t *testing.T) {
	table := freq.NewEnglishTable()

	assert.Greater(t, table.Weight('E'), table.Weight('Q'))
	assert.Zero(t, table.Weight('?'))
}
