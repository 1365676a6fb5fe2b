package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/semantly-go/internal/dependencies/clock"
	"github.com/mcoot/semantly-go/internal/model"
	"github.com/mcoot/semantly-go/internal/services/scoring"
	"github.com/mcoot/semantly-go/internal/storage"
)

// Publisher fans a guess event out to the live connections for a game
// code. Publishing must be best-effort and non-blocking from the
// pipeline's perspective.
type Publisher interface {
	Publish(code model.GameCode, event model.GuessEvent)
}

// Controller orchestrates the guess pipeline: accept, score, persist,
// broadcast, respond
type Controller struct {
	storage   storage.Storage
	scorer    scoring.Scorer
	clock     clock.Clock
	publisher Publisher
	logger    *slog.Logger
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	scorer scoring.Scorer,
	clock clock.Clock,
	publisher Publisher,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		scorer:    scorer,
		clock:     clock,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateGame scores the game's preset guesses against the secret word
// and persists the new game. Returns model.ErrGameExists when the code
// is already taken.
func (c *Controller) CreateGame(ctx context.Context, game *model.Game) error {
	for i := range game.PresetGuesses {
		score, err := c.scorer.Score(ctx, game.PresetGuesses[i].Guess, game.SecretWord)
		if err != nil {
			c.logger.Error("failed to score preset guess",
				slog.String("code", string(game.Code)),
				slog.String("guess", game.PresetGuesses[i].Guess),
				slog.String("error", err.Error()))
			return err
		}
		scaled := score * 100
		now := c.clock.Now().UTC()
		game.PresetGuesses[i].Score = &scaled
		game.PresetGuesses[i].Timestamp = &now
	}

	game.Won = false
	if game.UserGuesses == nil {
		game.UserGuesses = []model.Guess{}
	}

	if err := c.storage.CreateGame(ctx, game); err != nil {
		if !errors.Is(err, model.ErrGameExists) {
			c.logger.Error("failed to create game",
				slog.String("code", string(game.Code)),
				slog.String("error", err.Error()))
		}
		return err
	}

	c.logger.Info("game created",
		slog.String("code", string(game.Code)),
		slog.Int("players", len(game.Players)),
		slog.Int("preset_guesses", len(game.PresetGuesses)))

	return nil
}

// SubmitGuess turns a raw guess submission into a scored, persisted,
// broadcast result. Returns the scored guess and whether the game is won
// after this guess.
//
// Broadcast strictly follows persistence: a failed write suppresses the
// broadcast so no client ever observes a guess that was not recorded.
func (c *Controller) SubmitGuess(ctx context.Context, code model.GameCode, player, guessText string) (*model.Guess, bool, error) {
	game, err := c.storage.GetGame(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			return nil, false, err
		}
		c.logger.Error("failed to load game for guess",
			slog.String("code", string(code)),
			slog.String("error", err.Error()))
		return nil, false, err
	}

	// The scorer may be slow and network-bound; nothing is locked here
	score, err := c.scorer.Score(ctx, guessText, game.SecretWord)
	if err != nil {
		c.logger.Error("failed to score guess",
			slog.String("code", string(code)),
			slog.String("player", player),
			slog.String("error", err.Error()))
		return nil, false, err
	}
	scaled := score * 100

	// Timestamp is captured before the write so the stored and broadcast
	// guesses agree
	now := c.clock.Now().UTC()
	guess := model.Guess{
		Player:    player,
		Guess:     guessText,
		Score:     &scaled,
		Timestamp: &now,
	}

	// Monotonic OR: a previous win is never unset
	wonAfter := game.Won || model.IsWinning(scaled)

	if err := c.storage.AppendGuess(ctx, code, guess, wonAfter); err != nil {
		c.logger.Error("failed to persist guess",
			slog.String("code", string(code)),
			slog.String("player", player),
			slog.String("error", err.Error()))
		return nil, false, err
	}

	c.publisher.Publish(code, model.GuessEvent{Guess: guess, GameWon: wonAfter})

	c.logger.Info("guess submitted",
		slog.String("code", string(code)),
		slog.String("player", player),
		slog.Float64("score", scaled),
		slog.Bool("won", wonAfter))

	return &guess, wonAfter, nil
}

// GetGame retrieves a game by code
func (c *Controller) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	return c.storage.GetGame(ctx, code)
}

// GetGuesses retrieves a game's user guesses
func (c *Controller) GetGuesses(ctx context.Context, code model.GameCode) ([]model.Guess, error) {
	game, err := c.storage.GetGame(ctx, code)
	if err != nil {
		return nil, err
	}
	return game.UserGuesses, nil
}

// ListGames returns every stored game (debug)
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListGames(ctx)
}
