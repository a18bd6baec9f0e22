package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lepinkainen/moviefav/internal/kvstore"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.omdbapi.com", cfg.BaseURL)
	assert.InDelta(t, 1.0, cfg.RatePerSecond, 1e-9)
	assert.Equal(t, 1, cfg.RetryAttempts)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, kvstore.KindSQLite, cfg.Storage.Kind)
	assert.Equal(t, "./moviefav.db", cfg.Storage.Path)
	assert.Equal(t, "FavoriteMovies", cfg.FavoritesKey)
	assert.Empty(t, cfg.APIKey)
	assert.ErrorIs(t, cfg.RequireAPIKey(), ErrMissingAPIKey)
}

func TestLoad_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		value   any
		wantErr string
	}{
		{name: "unknown backend", key: KeyBackend, value: "postgres", wantErr: "invalid storage.backend"},
		{name: "zero rate", key: KeyRatePerSecond, value: 0, wantErr: "omdb.rate_per_second must be positive"},
		{name: "negative rate", key: KeyRatePerSecond, value: -2.5, wantErr: "omdb.rate_per_second must be positive"},
		{name: "no attempts", key: KeyRetryAttempts, value: 0, wantErr: "omdb.retry_attempts must be at least 1"},
		{name: "bad timeout", key: KeyTimeout, value: "soon", wantErr: "invalid omdb.timeout"},
		{name: "redis without url", key: KeyBackend, value: "redis", wantErr: "storage.redis_url is required"},
		{name: "empty favorites key", key: KeyFavoritesKey, value: " ", wantErr: "storage.favorites_key must not be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resetViper(t)
			SetDefaults()
			viper.Set(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_BackendSpecificDefaultPath(t *testing.T) {
	for kind, want := range map[string]string{
		kvstore.KindBolt:   "./moviefav.bolt",
		kvstore.KindDisk:   "./moviefav-data",
		kvstore.KindMemory: "",
	} {
		t.Run(kind, func(t *testing.T) {
			resetViper(t)
			SetDefaults()
			viper.Set(KeyBackend, kind)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, want, cfg.Storage.Path)
		})
	}
}

func TestInit_ReadsConfigFileAndEnv(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	yaml := "omdb:\n  api_key: from-file\n  rate_per_second: 0.5\nstorage:\n  backend: bolt\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("MOVIEFAV_STORAGE_PATH", filepath.Join(dir, "favs.bolt"))
	t.Setenv("OMDB_API_KEY", "")
	t.Setenv("MOVIEFAV_OMDB_API_KEY", "")

	require.NoError(t, Init())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.InDelta(t, 0.5, cfg.RatePerSecond, 1e-9)
	assert.Equal(t, kvstore.KindBolt, cfg.Storage.Kind)
	assert.Equal(t, filepath.Join(dir, "favs.bolt"), cfg.Storage.Path)
}

func TestInit_APIKeyFromEnvironment(t *testing.T) {
	resetViper(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("OMDB_API_KEY", "from-env")
	t.Setenv("MOVIEFAV_OMDB_API_KEY", "")

	require.NoError(t, Init())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.NoError(t, cfg.RequireAPIKey())
}

func TestInit_MalformedConfigFile(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("omdb: [unterminated"), 0o644))

	err = Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
