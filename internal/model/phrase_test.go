package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordsolver/hangman/internal/model"
)

func TestNewPhraseNormalizes(t *testing.T) {
	p := model.NewPhrase("  hello world ")
	assert.Equal(t, "HELLO WORLD", p.String())
}

func TestPhraseLetters(t *testing.T) {
	p := model.NewPhrase("banana boat")
	assert.Equal(t, []rune{'B', 'A', 'N', 'O', 'T'}, p.Letters())
}

func TestPhraseHasLetters(t *testing.T) {
	assert.True(t, model.NewPhrase("a").HasLetters())
	assert.False(t, model.NewPhrase("123 - !?").HasLetters())
	assert.False(t, model.NewPhrase("").HasLetters())
}

func TestPhrasePositions(t *testing.T) {
	p := model.NewPhrase("banana")
	assert.Equal(t, []int{1, 3, 5}, p.Positions('A'))
	assert.Equal(t, []int{0}, p.Positions('B'))
	assert.Nil(t, p.Positions('Z'))
}

func TestPhrasePositionsWithMultiByteRunes(t *testing.T) {
	// É is two bytes in UTF-8; positions must still line up with the
	// revealed state, which is one entry per rune
	p := model.NewPhrase("é cat")
	assert.Equal(t, []int{2}, p.Positions('C'))
	assert.Equal(t, []int{3}, p.Positions('A'))
	assert.Equal(t, []int{4}, p.Positions('T'))
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   []model.Segment
	}{
		{
			name:   "single word",
			phrase: "cat",
			want:   []model.Segment{{Offset: 0, Text: "CAT"}},
		},
		{
			name:   "two words",
			phrase: "hello world",
			want: []model.Segment{
				{Offset: 0, Text: "HELLO"},
				{Offset: 6, Text: "WORLD"},
			},
		},
		{
			name:   "punctuation splits",
			phrase: "it's a trap!",
			want: []model.Segment{
				{Offset: 0, Text: "IT"},
				{Offset: 3, Text: "S"},
				{Offset: 5, Text: "A"},
				{Offset: 7, Text: "TRAP"},
			},
		},
		{
			name:   "no letters",
			phrase: "123",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NewPhrase(tt.phrase).Segments())
		})
	}
}

func TestParseStrategyKind(t *testing.T) {
	for _, kind := range model.ValidStrategyKinds() {
		parsed, err := model.ParseStrategyKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := model.ParseStrategyKind("clever")
	assert.ErrorIs(t, err, model.ErrUnknownStrategy)
}

func TestStrategyDisplayName(t *testing.T) {
	assert.Equal(t, "Regex", model.StrategyDisplayName(model.StrategyRegex))
	assert.Equal(t, "other", model.StrategyDisplayName(model.StrategyKind("other")))
}
