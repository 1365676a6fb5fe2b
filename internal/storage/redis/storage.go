package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/semantly-go/internal/model"
	"github.com/mcoot/semantly-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// The immutable part of a game (code, secret word, players, preset
// guesses) lives as a JSON blob at one key; user guesses are an RPUSH
// list and the won flag is its own key. AppendGuess therefore touches
// exactly the two mutable keys and never rewrites the document.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// gameDoc is the stored shape of a game's immutable fields
type gameDoc struct {
	Code          model.GameCode `json:"code"`
	SecretWord    string         `json:"secret_word"`
	MaxGuesses    int            `json:"max_guesses"`
	Players       []string       `json:"players"`
	PresetGuesses []model.Guess  `json:"preset_guesses"`
}

func (s *Storage) CreateGame(ctx context.Context, game *model.Game) error {
	doc := gameDoc{
		Code:          game.Code,
		SecretWord:    game.SecretWord,
		MaxGuesses:    game.MaxGuesses,
		Players:       game.Players,
		PresetGuesses: game.PresetGuesses,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	// Marshal guesses up front so nothing is written if any of them fail
	guessData := make([][]byte, 0, len(game.UserGuesses))
	for _, g := range game.UserGuesses {
		gd, err := json.Marshal(g)
		if err != nil {
			return err
		}
		guessData = append(guessData, gd)
	}

	// SetNX on the document key is the duplicate-code guard
	created, err := s.client.SetNX(ctx, gameKey(game.Code), data, s.cfg.GameTTL).Result()
	if err != nil {
		return err
	}
	if !created {
		return model.ErrGameExists
	}

	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, gamesIndexKey(), string(game.Code))
	if game.Won {
		pipe.Set(ctx, wonKey(game.Code), "1", s.cfg.GameTTL)
	}
	for _, gd := range guessData {
		pipe.RPush(ctx, guessesKey(game.Code), gd)
	}
	if s.cfg.GameTTL > 0 {
		pipe.Expire(ctx, guessesKey(game.Code), s.cfg.GameTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		// Roll back so a half-written game does not permanently claim
		// the code while staying invisible to ListGames
		s.client.Del(ctx, gameKey(game.Code), guessesKey(game.Code), wonKey(game.Code))
		s.client.SRem(ctx, gamesIndexKey(), string(game.Code))
		return err
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var doc gameDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	rawGuesses, err := s.client.LRange(ctx, guessesKey(code), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	guesses := make([]model.Guess, 0, len(rawGuesses))
	for _, raw := range rawGuesses {
		var g model.Guess
		if err := json.Unmarshal([]byte(raw), &g); err != nil {
			return nil, err
		}
		guesses = append(guesses, g)
	}

	won, err := s.client.Exists(ctx, wonKey(code)).Result()
	if err != nil {
		return nil, err
	}

	return &model.Game{
		Code:          doc.Code,
		SecretWord:    doc.SecretWord,
		MaxGuesses:    doc.MaxGuesses,
		Players:       doc.Players,
		PresetGuesses: doc.PresetGuesses,
		UserGuesses:   guesses,
		Won:           won > 0,
	}, nil
}

func (s *Storage) AppendGuess(ctx context.Context, code model.GameCode, guess model.Guess, won bool) error {
	exists, err := s.client.Exists(ctx, gameKey(code)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrGameNotFound
	}

	data, err := json.Marshal(guess)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, guessesKey(code), data)
	if won {
		// The won key is only ever created, never deleted, so the flag
		// stays monotonic even under concurrent appends
		pipe.Set(ctx, wonKey(code), "1", s.cfg.GameTTL)
	}
	if s.cfg.GameTTL > 0 {
		pipe.Expire(ctx, guessesKey(code), s.cfg.GameTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	codes, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(codes))
	for _, code := range codes {
		game, err := s.GetGame(ctx, model.GameCode(code))
		if err != nil {
			if errors.Is(err, model.ErrGameNotFound) {
				continue // Game may have expired; index entry is stale
			}
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}
