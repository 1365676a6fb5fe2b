package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/semantly-go/internal/config"
	"github.com/mcoot/semantly-go/internal/dependencies/clock"
	"github.com/mcoot/semantly-go/internal/services/game"
	"github.com/mcoot/semantly-go/internal/services/scoring"
	"github.com/mcoot/semantly-go/internal/storage"
	"github.com/mcoot/semantly-go/internal/storage/memory"
	redisstorage "github.com/mcoot/semantly-go/internal/storage/redis"
	"github.com/mcoot/semantly-go/internal/ws"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage        storage.Storage
	Scorer         scoring.Scorer
	Clock          clock.Clock
	HubManager     *ws.HubManager
	GameController *game.Controller
}

// New creates a new application with all dependencies wired from config
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.GameTTL = cfg.GameTTL
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var scorer scoring.Scorer
	switch cfg.Scorer {
	case config.ScorerOpenAI:
		scorer = scoring.NewOpenAIScorer(scoring.OpenAIConfig{APIKey: cfg.OpenAIKey})
	default:
		scorer = scoring.NewLexicalScorer()
	}

	return newWithDependencies(store, scorer, clock.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, scorer scoring.Scorer, clk clock.Clock, logger *slog.Logger) *App {
	hubManager := ws.NewHubManager(logger)
	controller := game.NewController(store, scorer, clk, hubManager, logger)

	return &App{
		Storage:        store,
		Scorer:         scorer,
		Clock:          clk,
		HubManager:     hubManager,
		GameController: controller,
	}
}
