// Package kvstore provides durable string-keyed blob storage with
// interchangeable backends.
package kvstore

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Backend stores opaque values under string keys. A missing key is reported
// as found=false with a nil error.
type Backend interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Backend kinds accepted by Open.
const (
	KindSQLite = "sqlite"
	KindBolt   = "bolt"
	KindDisk   = "disk"
	KindRedis  = "redis"
	KindMemory = "memory"
)

// Kinds lists every supported backend kind.
var Kinds = []string{KindSQLite, KindBolt, KindDisk, KindRedis, KindMemory}

// ErrInvalidKey is returned for empty keys and keys a backend cannot store.
var ErrInvalidKey = errors.New("invalid key")

// Config selects and locates a backend.
type Config struct {
	Kind     string
	Path     string // file or directory for sqlite, bolt and disk
	RedisURL string
}

// Open creates the backend described by cfg.
func Open(cfg Config) (Backend, error) {
	kind := strings.ToLower(strings.TrimSpace(cfg.Kind))

	var (
		b   Backend
		err error
	)
	switch kind {
	case KindSQLite:
		b, err = NewSQLite(cfg.Path)
	case KindBolt:
		b, err = NewBolt(cfg.Path)
	case KindDisk:
		b, err = NewDisk(cfg.Path)
	case KindRedis:
		b, err = NewRedis(cfg.RedisURL)
	case KindMemory:
		b = NewMemory()
	default:
		return nil, fmt.Errorf("unknown storage backend %q (valid: %s)", cfg.Kind, strings.Join(Kinds, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", kind, err)
	}

	slog.Debug("Opened storage backend", "kind", kind, "path", cfg.Path)
	return b, nil
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	return nil
}
