package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/semantly-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func testGame(code model.GameCode) *model.Game {
	return &model.Game{
		Code:        code,
		SecretWord:  "ocean",
		MaxGuesses:  5,
		Players:     []string{"alice", "bob"},
		UserGuesses: []model.Guess{},
	}
}

func testGuess(player, word string) model.Guess {
	score := 42.0
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return model.Guess{Player: player, Guess: word, Score: &score, Timestamp: &ts}
}

func (s *StorageSuite) TestCreateAndGetGame() {
	err := s.storage.CreateGame(s.ctx, testGame("ABC1"))
	s.Require().NoError(err)

	game, err := s.storage.GetGame(s.ctx, "ABC1")
	s.Require().NoError(err)
	s.Equal(model.GameCode("ABC1"), game.Code)
	s.Equal("ocean", game.SecretWord)
	s.False(game.Won)
}

func (s *StorageSuite) TestCreateGameDuplicate() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, testGame("ABC1")))

	err := s.storage.CreateGame(s.ctx, testGame("ABC1"))
	s.ErrorIs(err, model.ErrGameExists)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "UNKNOWN")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGetGameReturnsCopy() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, testGame("ABC1")))

	game, err := s.storage.GetGame(s.ctx, "ABC1")
	s.Require().NoError(err)
	game.UserGuesses = append(game.UserGuesses, testGuess("mallory", "hack"))
	game.Won = true

	// Mutating the returned copy must not touch stored state
	stored, err := s.storage.GetGame(s.ctx, "ABC1")
	s.Require().NoError(err)
	s.Empty(stored.UserGuesses)
	s.False(stored.Won)
}

func (s *StorageSuite) TestReturnedGuessPointersIndependent() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, testGame("ABC1")))
	s.Require().NoError(s.storage.AppendGuess(s.ctx, "ABC1", testGuess("alice", "sea"), false))

	game, err := s.storage.GetGame(s.ctx, "ABC1")
	s.Require().NoError(err)
	*game.UserGuesses[0].Score = 999
	*game.UserGuesses[0].Timestamp = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	// Writing through the returned pointers must not reach stored state
	stored, err := s.storage.GetGame(s.ctx, "ABC1")
	s.Require().NoError(err)
	s.InDelta(42.0, *stored.UserGuesses[0].Score, 0.001)
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), *stored.UserGuesses[0].Timestamp)
}

func (s *StorageSuite) TestAppendGuess() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, testGame("ABC1")))

	err := s.storage.AppendGuess(s.ctx, "ABC1", testGuess("alice", "sea"), false)
	s.Require().NoError(err)

	game, err := s.storage.GetGame(s.ctx, "ABC1")
	s.Require().NoError(err)
	s.Require().Len(game.UserGuesses, 1)
	s.Equal("sea", game.UserGuesses[0].Guess)
	s.False(game.Won)
}

func (s *StorageSuite) TestAppendGuessPreservesExisting() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, testGame("ABC1")))

	s.Require().NoError(s.storage.AppendGuess(s.ctx, "ABC1", testGuess("alice", "sea"), false))
	s.Require().NoError(s.storage.AppendGuess(s.ctx, "ABC1", testGuess("bob", "wave"), false))

	game, err := s.storage.GetGame(s.ctx, "ABC1")
	s.Require().NoError(err)
	s.Require().Len(game.UserGuesses, 2)
	s.Equal("sea", game.UserGuesses[0].Guess)
	s.Equal("wave", game.UserGuesses[1].Guess)
}

func (s *StorageSuite) TestAppendGuessNotFound() {
	err := s.storage.AppendGuess(s.ctx, "UNKNOWN", testGuess("alice", "sea"), false)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestWonNeverUnset() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, testGame("ABC1")))

	s.Require().NoError(s.storage.AppendGuess(s.ctx, "ABC1", testGuess("alice", "ocean"), true))
	s.Require().NoError(s.storage.AppendGuess(s.ctx, "ABC1", testGuess("bob", "rock"), false))

	game, err := s.storage.GetGame(s.ctx, "ABC1")
	s.Require().NoError(err)
	s.True(game.Won)
}

func (s *StorageSuite) TestConcurrentAppendsBothPersist() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, testGame("ABC1")))

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			player := []string{"alice", "bob"}[i]
			_ = s.storage.AppendGuess(s.ctx, "ABC1", testGuess(player, "sea"), false)
		}(i)
	}
	wg.Wait()

	game, err := s.storage.GetGame(s.ctx, "ABC1")
	s.Require().NoError(err)
	s.Len(game.UserGuesses, 2)
}

func (s *StorageSuite) TestListGames() {
	s.Require().NoError(s.storage.CreateGame(s.ctx, testGame("ABC1")))
	s.Require().NoError(s.storage.CreateGame(s.ctx, testGame("XYZ2")))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *StorageSuite) TestListGamesEmpty() {
	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}
