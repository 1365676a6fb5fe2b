package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Scorer backend names
const (
	ScorerOpenAI  = "openai"
	ScorerLexical = "lexical"
)

// Config holds all process configuration, supplied via environment at
// startup. There is no hot-reload.
type Config struct {
	// Port the HTTP server listens on
	Port int
	// APIKey gates the state-changing endpoints (x-api-key header)
	APIKey string
	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string
	// RedisURL is the Redis connection URL (required for redis storage)
	RedisURL string
	// GameTTL is how long games live in Redis; zero means no expiry
	GameTTL time.Duration
	// Scorer selects the similarity backend ("openai" or "lexical")
	Scorer string
	// OpenAIKey is the embeddings-provider credential (required for openai)
	OpenAIKey string
}

// Load reads configuration from the environment, after best-effort
// loading of a .env file
func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := Config{
		Port:        8000,
		APIKey:      os.Getenv("API_KEY"),
		StorageType: os.Getenv("STORAGE_TYPE"),
		RedisURL:    os.Getenv("REDIS_URL"),
		Scorer:      os.Getenv("SCORER"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, errors.New("PORT must be an integer")
		}
		cfg.Port = p
	}

	if ttl := os.Getenv("GAME_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, errors.New("GAME_TTL must be a duration (e.g. 24h)")
		}
		cfg.GameTTL = d
	}

	if cfg.Scorer == "" {
		cfg.Scorer = ScorerLexical
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.APIKey == "" {
		return errors.New("API_KEY is required")
	}
	if c.Scorer == ScorerOpenAI && c.OpenAIKey == "" {
		return errors.New("OPENAI_API_KEY is required when SCORER=openai")
	}
	if c.Scorer != ScorerOpenAI && c.Scorer != ScorerLexical {
		return errors.New("SCORER must be 'openai' or 'lexical'")
	}
	return nil
}
