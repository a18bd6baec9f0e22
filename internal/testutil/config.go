package testutil

import (
	"testing"

	"github.com/lepinkainen/moviefav/internal/config"
	"github.com/lepinkainen/moviefav/internal/kvstore"
	"github.com/spf13/viper"
)

// ResetConfig resets viper now and again when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// SetTestConfigOption is a functional option for configuring test config.
type SetTestConfigOption func(*testConfigOptions)

type testConfigOptions struct {
	apiKey   string
	baseURL  string
	backend  string
	path     string
	redisURL string
}

// WithAPIKey sets the OMDb API key.
func WithAPIKey(key string) SetTestConfigOption {
	return func(o *testConfigOptions) {
		o.apiKey = key
	}
}

// WithBaseURL points the OMDb client at a test server.
func WithBaseURL(url string) SetTestConfigOption {
	return func(o *testConfigOptions) {
		o.baseURL = url
	}
}

// WithStorage selects the favorites backend.
func WithStorage(kind, path string) SetTestConfigOption {
	return func(o *testConfigOptions) {
		o.backend = kind
		o.path = path
	}
}

// WithRedisURL selects the redis backend at url.
func WithRedisURL(url string) SetTestConfigOption {
	return func(o *testConfigOptions) {
		o.backend = kvstore.KindRedis
		o.redisURL = url
	}
}

// SetTestConfig resets viper and installs defaults suitable for tests:
// a fake API key, in-memory storage and no throttling delay worth noticing.
func SetTestConfig(t *testing.T, opts ...SetTestConfigOption) {
	t.Helper()

	ResetConfig(t)
	config.SetDefaults()

	options := testConfigOptions{
		apiKey:  "test-omdb-key",
		backend: kvstore.KindMemory,
	}
	for _, opt := range opts {
		opt(&options)
	}

	viper.Set(config.KeyAPIKey, options.apiKey)
	viper.Set(config.KeyRatePerSecond, 100.0)
	viper.Set(config.KeyBackend, options.backend)
	if options.baseURL != "" {
		viper.Set(config.KeyBaseURL, options.baseURL)
	}
	if options.path != "" {
		viper.Set(config.KeyStoragePath, options.path)
	}
	if options.redisURL != "" {
		viper.Set(config.KeyRedisURL, options.redisURL)
	}
}
