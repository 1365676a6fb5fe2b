package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "API_KEY", "STORAGE_TYPE", "REDIS_URL", "GAME_TTL", "SCORER", "OPENAI_API_KEY"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, ScorerLexical, cfg.Scorer)
	assert.Empty(t, cfg.StorageType)
	assert.Zero(t, cfg.GameTTL)
}

func TestLoadFullConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "secret")
	t.Setenv("PORT", "9001")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("GAME_TTL", "24h")
	t.Setenv("SCORER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, 24*time.Hour, cfg.GameTTL)
	assert.Equal(t, ScorerOpenAI, cfg.Scorer)
	assert.Equal(t, "sk-test", cfg.OpenAIKey)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoadInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "secret")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoadInvalidTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "secret")
	t.Setenv("GAME_TTL", "yesterday")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GAME_TTL")
}

func TestLoadOpenAIRequiresKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "secret")
	t.Setenv("SCORER", "openai")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadUnknownScorer(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "secret")
	t.Setenv("SCORER", "magic8ball")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCORER")
}
