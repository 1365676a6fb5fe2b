package memory

import (
	"context"
	"sync"

	"github.com/mcoot/semantly-go/internal/model"
	"github.com/mcoot/semantly-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	games map[model.GameCode]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameCode]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.Code]; ok {
		return model.ErrGameExists
	}
	s.games[game.Code] = copyGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[code]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return copyGame(game), nil
}

func (s *Storage) AppendGuess(ctx context.Context, code model.GameCode, guess model.Guess, won bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[code]
	if !ok {
		return model.ErrGameNotFound
	}
	game.UserGuesses = append(game.UserGuesses, copyGuess(guess))
	// Won is monotonic: never unset a previous win
	game.Won = game.Won || won
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, game := range s.games {
		games = append(games, copyGame(game))
	}
	return games, nil
}

// copyGame returns a copy fully independent of the stored document,
// including the guesses' score and timestamp pointer targets, so callers
// cannot mutate state behind the lock.
func copyGame(g *model.Game) *model.Game {
	out := *g
	out.Players = append([]string(nil), g.Players...)
	out.PresetGuesses = copyGuesses(g.PresetGuesses)
	out.UserGuesses = copyGuesses(g.UserGuesses)
	return &out
}

func copyGuesses(in []model.Guess) []model.Guess {
	if in == nil {
		return nil
	}
	out := make([]model.Guess, len(in))
	for i, g := range in {
		out[i] = copyGuess(g)
	}
	return out
}

func copyGuess(g model.Guess) model.Guess {
	if g.Score != nil {
		score := *g.Score
		g.Score = &score
	}
	if g.Timestamp != nil {
		ts := *g.Timestamp
		g.Timestamp = &ts
	}
	return g
}
