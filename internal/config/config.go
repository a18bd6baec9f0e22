// Package config loads moviefav settings from config.yaml, the environment
// and CLI overrides, all funnelled through viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/lepinkainen/moviefav/internal/kvstore"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyAPIKey        = "omdb.api_key"
	KeyBaseURL       = "omdb.base_url"
	KeyRatePerSecond = "omdb.rate_per_second"
	KeyRetryAttempts = "omdb.retry_attempts"
	KeyTimeout       = "omdb.timeout"
	KeyBackend       = "storage.backend"
	KeyStoragePath   = "storage.path"
	KeyRedisURL      = "storage.redis_url"
	KeyFavoritesKey  = "storage.favorites_key"
	KeyLogLevel      = "log.level"
)

// EnvPrefix prefixes every environment override, e.g. MOVIEFAV_STORAGE_BACKEND.
const EnvPrefix = "MOVIEFAV"

// ErrMissingAPIKey is returned by RequireAPIKey when no key is configured.
var ErrMissingAPIKey = errors.New("OMDb API key not configured (set omdb.api_key, OMDB_API_KEY or --api-key)")

// Config is the validated runtime configuration.
type Config struct {
	APIKey        string
	BaseURL       string
	RatePerSecond float64
	RetryAttempts int
	Timeout       time.Duration
	Storage       kvstore.Config
	FavoritesKey  string
	LogLevel      string
}

// SetDefaults registers default values.
func SetDefaults() {
	viper.SetDefault(KeyBaseURL, "https://www.omdbapi.com")
	viper.SetDefault(KeyRatePerSecond, 1.0)
	viper.SetDefault(KeyRetryAttempts, 1)
	viper.SetDefault(KeyTimeout, "10s")
	viper.SetDefault(KeyBackend, kvstore.KindSQLite)
	viper.SetDefault(KeyFavoritesKey, "FavoriteMovies")
	viper.SetDefault(KeyLogLevel, "info")
}

// Init sets defaults, enables environment overrides and reads config.yaml
// from the working directory if present.
func Init() error {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// OMDB_API_KEY is the conventional name; accept it alongside the prefixed one.
	if err := viper.BindEnv(KeyAPIKey, EnvPrefix+"_OMDB_API_KEY", "OMDB_API_KEY"); err != nil {
		return fmt.Errorf("failed to bind environment variable: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("Config file not found, using defaults and environment")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	slog.Debug("Loaded config file", "path", viper.ConfigFileUsed())
	return nil
}

// Load reads the current viper state into a Config and validates it.
func Load() (Config, error) {
	timeout, err := time.ParseDuration(viper.GetString(KeyTimeout))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyTimeout, err)
	}

	backend := strings.ToLower(strings.TrimSpace(viper.GetString(KeyBackend)))
	cfg := Config{
		APIKey:        strings.TrimSpace(viper.GetString(KeyAPIKey)),
		BaseURL:       strings.TrimSpace(viper.GetString(KeyBaseURL)),
		RatePerSecond: viper.GetFloat64(KeyRatePerSecond),
		RetryAttempts: viper.GetInt(KeyRetryAttempts),
		Timeout:       timeout,
		Storage: kvstore.Config{
			Kind:     backend,
			Path:     viper.GetString(KeyStoragePath),
			RedisURL: viper.GetString(KeyRedisURL),
		},
		FavoritesKey: viper.GetString(KeyFavoritesKey),
		LogLevel:     viper.GetString(KeyLogLevel),
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStoragePath(backend)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. The API key is not required here because
// favorites commands work offline; see RequireAPIKey.
func (c Config) Validate() error {
	var errs []error
	if !slices.Contains(kvstore.Kinds, c.Storage.Kind) {
		errs = append(errs, fmt.Errorf("invalid %s %q (valid: %s)", KeyBackend, c.Storage.Kind, strings.Join(kvstore.Kinds, ", ")))
	}
	if c.Storage.Kind == kvstore.KindRedis && c.Storage.RedisURL == "" {
		errs = append(errs, fmt.Errorf("%s is required for the redis backend", KeyRedisURL))
	}
	if c.RatePerSecond <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", KeyRatePerSecond, c.RatePerSecond))
	}
	if c.RetryAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", KeyRetryAttempts, c.RetryAttempts))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %s", KeyTimeout, c.Timeout))
	}
	if c.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyBaseURL))
	}
	if strings.TrimSpace(c.FavoritesKey) == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", KeyFavoritesKey))
	}
	return errors.Join(errs...)
}

// RequireAPIKey fails when no OMDb key is configured.
func (c Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// DefaultStoragePath returns the file or directory each file-backed store
// uses when storage.path is unset.
func DefaultStoragePath(kind string) string {
	switch kind {
	case kvstore.KindSQLite:
		return "./moviefav.db"
	case kvstore.KindBolt:
		return "./moviefav.bolt"
	case kvstore.KindDisk:
		return "./moviefav-data"
	default:
		return ""
	}
}
