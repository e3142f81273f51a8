package solver_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wordsolver/hangman/internal/dependencies/mocks"
	"github.com/wordsolver/hangman/internal/dependencies/random"
	"github.com/wordsolver/hangman/internal/model"
	"github.com/wordsolver/hangman/internal/services/solver"
)

type RandomStrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *solver.RandomStrategy
}

func TestRandomStrategySuite(t *testing.T) {
	suite.Run(t, new(RandomStrategySuite))
}

func (s *RandomStrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = solver.NewRandomStrategy(s.mockRandom)
}

func (s *RandomStrategySuite) TestPicksAmongUntriedLetters() {
	state := model.NewState(model.NewPhrase("cat"), 5)

	s.mockRandom.QueueIntn(0) // 'A'
	letter, err := s.strategy.NextGuess(state)
	s.Require().NoError(err)
	s.Equal('A', letter)

	s.mockRandom.QueueIntn(25) // 'Z'
	letter, err = s.strategy.NextGuess(state)
	s.Require().NoError(err)
	s.Equal('Z', letter)
}

func (s *RandomStrategySuite) TestSkipsGuessedLetters() {
	state := model.NewState(model.NewPhrase("cat"), 5)
	state.Apply('A')

	// Index 0 of the untried letters is now 'B'
	s.mockRandom.QueueIntn(0)
	letter, err := s.strategy.NextGuess(state)
	s.Require().NoError(err)
	s.Equal('B', letter)
}

func (s *RandomStrategySuite) TestExhaustedAlphabet() {
	state := model.NewState(model.NewPhrase("cat"), 100)
	for r := 'A'; r <= 'Z'; r++ {
		state.Guessed[r] = true
	}

	_, err := s.strategy.NextGuess(state)
	s.ErrorIs(err, model.ErrAlphabetExhausted)
}

func (s *RandomStrategySuite) TestSeededSequencesMatch() {
	first := solver.NewRandomStrategy(random.NewSeeded(42))
	second := solver.NewRandomStrategy(random.NewSeeded(42))

	a := model.NewState(model.NewPhrase("ab"), 26)
	b := model.NewState(model.NewPhrase("ab"), 26)

	for i := 0; i < 10; i++ {
		la, err := first.NextGuess(a)
		s.Require().NoError(err)
		lb, err := second.NextGuess(b)
		s.Require().NoError(err)
		s.Equal(la, lb)
		a.Apply(la)
		b.Apply(lb)
	}
}
