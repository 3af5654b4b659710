package prefs

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zero-day-ai/plistkit/plist"
)

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379")
	URL string

	// Namespace prefixes the hash holding the preferences.
	// Default: "plistkit"
	Namespace string

	// TLS configuration for secure connections
	TLS *tls.Config

	// ConnectTimeout is the maximum time to wait for connection establishment
	ConnectTimeout time.Duration

	// ReadTimeout is the maximum time to wait for read operations
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait for write operations
	WriteTimeout time.Duration
}

// RedisStore keeps preferences in a single Redis hash, one field per key:
//
//	<namespace>:prefs  field=<key>  value=<encoded value>
type RedisStore struct {
	client *redis.Client
	hash   string

	mu     sync.RWMutex
	closed bool
}

// NewRedisStore connects to Redis and verifies the connection with PING.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	if opts.TLS != nil {
		redisOpts.TLSConfig = opts.TLS
	}
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		hash:   formatKeyName(opts.Namespace, "prefs"),
	}, nil
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (plist.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storeErr("get", key, ErrStoreClosed)
	}

	data, err := s.client.HGet(ctx, s.hash, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(key)
		}
		return nil, storeErr("get", key, fmt.Errorf("failed to read from Redis: %w", err))
	}

	v, err := Unmarshal(data)
	if err != nil {
		return nil, storeErr("get", key, err)
	}
	return v, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key string, v plist.Value) error {
	if v == nil {
		return s.Delete(ctx, key)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return storeErr("set", key, ErrStoreClosed)
	}

	data, err := Marshal(v)
	if err != nil {
		return storeErr("set", key, err)
	}
	if err := s.client.HSet(ctx, s.hash, key, data).Err(); err != nil {
		return storeErr("set", key, fmt.Errorf("failed to write to Redis: %w", err))
	}
	return nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return storeErr("delete", key, ErrStoreClosed)
	}
	if err := s.client.HDel(ctx, s.hash, key).Err(); err != nil {
		return storeErr("delete", key, fmt.Errorf("failed to delete from Redis: %w", err))
	}
	return nil
}

// Keys implements Store.
func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storeErr("keys", "", ErrStoreClosed)
	}
	keys, err := s.client.HKeys(ctx, s.hash).Result()
	if err != nil {
		return nil, storeErr("keys", "", fmt.Errorf("failed to list Redis fields: %w", err))
	}
	sort.Strings(keys)
	return keys, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.client.Close()
}

// formatKeyName joins key parts with the Redis ":" convention.
func formatKeyName(parts ...string) string {
	return strings.Join(parts, ":")
}
