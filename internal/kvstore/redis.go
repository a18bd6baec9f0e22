package kvstore

import (
	"errors"
	"fmt"

	"github.com/go-redis/redis"
)

const redisPrefix = "moviefav:"

// Redis stores values as plain string keys under the moviefav: prefix.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the server at url (redis://host:port/db).
func NewRedis(url string) (*Redis, error) {
	if url == "" {
		return nil, errors.New("redis URL is required")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping().Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to reach redis: %w", err), client.Close())
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Get(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	value, err := r.client.Get(redisPrefix + key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (r *Redis) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return r.client.Set(redisPrefix+key, value, 0).Err()
}

func (r *Redis) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return r.client.Del(redisPrefix + key).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
