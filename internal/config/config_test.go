package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("URL_DEPLOYMENT", "")
	t.Setenv("SERVER_URI_MONGODB", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "bookstore", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.Mongo.SelectionTimeout)
	assert.Equal(t, 45*time.Second, cfg.Mongo.SocketTimeout)
	assert.Equal(t, 5*time.Second, cfg.Mongo.RetryDelay)
	// Missing store URI is not fatal: the manager retries forever.
	assert.Empty(t, cfg.Mongo.URI)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("URL_DEPLOYMENT", "https://api.timsachnhabe.com")
	t.Setenv("SERVER_URI_MONGODB", "mongodb://localhost:27017/bookstore")
	t.Setenv("MONGODB_RETRY_DELAY", "250ms")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "https://api.timsachnhabe.com", cfg.BaseURL)
	assert.Equal(t, "mongodb://localhost:27017/bookstore", cfg.Mongo.URI)
	assert.Equal(t, 250*time.Millisecond, cfg.Mongo.RetryDelay)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadRejectsInvalidDurations(t *testing.T) {
	t.Setenv("MONGODB_RETRY_DELAY", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGODB_RETRY_DELAY")
}
