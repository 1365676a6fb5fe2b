package storage

import (
	"context"

	"github.com/mcoot/semantly-go/internal/model"
)

// Storage defines the interface for game persistence.
//
// AppendGuess is deliberately narrow: it patches only the user guess list
// and the won flag, never the rest of the document, so concurrent updates
// to unrelated fields cannot be clobbered and no storage-internal
// identifier ever round-trips through the caller.
type Storage interface {
	// CreateGame stores a new game. Returns model.ErrGameExists if the
	// code is already taken.
	CreateGame(ctx context.Context, game *model.Game) error

	// GetGame retrieves a game by code. Returns model.ErrGameNotFound
	// when the code does not resolve to a document.
	GetGame(ctx context.Context, code model.GameCode) (*model.Game, error)

	// AppendGuess appends a guess to the game's user guesses and sets the
	// won flag. won is a monotonic OR computed by the caller; backends
	// must not unset a previously-set win.
	AppendGuess(ctx context.Context, code model.GameCode, guess model.Guess, won bool) error

	// ListGames returns every stored game. Diagnostic use only; unbounded.
	ListGames(ctx context.Context) ([]*model.Game, error)
}
