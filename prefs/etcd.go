package prefs

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/zero-day-ai/plistkit/plist"
)

// EtcdConfig configures an EtcdStore.
type EtcdConfig struct {
	// Endpoints is the list of etcd endpoints
	// Format: ["host1:2379", "host2:2379"]
	Endpoints []string

	// Namespace is the key prefix; preferences live under /<namespace>/prefs/.
	// Default: "plistkit"
	Namespace string

	// DialTimeout bounds connection establishment.
	// Default: 5s
	DialTimeout time.Duration

	// TLS enables client TLS when set.
	TLS *TLSConfig
}

// EtcdStore keeps one etcd key per preference.
//
// Thread-safety: All methods are safe for concurrent use.
type EtcdStore struct {
	client *clientv3.Client
	prefix string

	mu     sync.RWMutex
	closed bool
}

// NewEtcdStore connects to the etcd cluster and verifies connectivity with
// a short read.
func NewEtcdStore(cfg EtcdConfig) (*EtcdStore, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("%w: etcd endpoints cannot be empty", ErrInvalidConfig)
	}

	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	clientCfg := clientv3.Config{
		Endpoints:   cfg.Endpoints,
		DialTimeout: dialTimeout,
	}

	tlsConfig, err := cfg.TLS.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to configure TLS: %w", err)
	}
	clientCfg.TLS = tlsConfig

	cli, err := clientv3.New(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create etcd client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if _, err := cli.Get(ctx, "health-check"); err != nil {
		cli.Close()
		return nil, fmt.Errorf("etcd health check failed: %w", err)
	}

	return &EtcdStore{
		client: cli,
		prefix: etcdPrefix(cfg.Namespace),
	}, nil
}

func etcdPrefix(namespace string) string {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return fmt.Sprintf("/%s/prefs/", strings.Trim(namespace, "/"))
}

func (s *EtcdStore) buildKey(key string) string {
	return s.prefix + key
}

// Get implements Store.
func (s *EtcdStore) Get(ctx context.Context, key string) (plist.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storeErr("get", key, ErrStoreClosed)
	}

	resp, err := s.client.Get(ctx, s.buildKey(key))
	if err != nil {
		return nil, storeErr("get", key, fmt.Errorf("failed to read from etcd: %w", err))
	}
	if len(resp.Kvs) == 0 {
		return nil, notFound(key)
	}

	v, err := Unmarshal(resp.Kvs[0].Value)
	if err != nil {
		return nil, storeErr("get", key, err)
	}
	return v, nil
}

// Set implements Store.
func (s *EtcdStore) Set(ctx context.Context, key string, v plist.Value) error {
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
	if _, err := s.client.Put(ctx, s.buildKey(key), string(data)); err != nil {
		return storeErr("set", key, fmt.Errorf("failed to write to etcd: %w", err))
	}
	return nil
}

// Delete implements Store.
func (s *EtcdStore) Delete(ctx context.Context, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return storeErr("delete", key, ErrStoreClosed)
	}
	if _, err := s.client.Delete(ctx, s.buildKey(key)); err != nil {
		return storeErr("delete", key, fmt.Errorf("failed to delete from etcd: %w", err))
	}
	return nil
}

// Keys implements Store.
func (s *EtcdStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storeErr("keys", "", ErrStoreClosed)
	}

	resp, err := s.client.Get(ctx, s.prefix, clientv3.WithPrefix(), clientv3.WithKeysOnly())
	if err != nil {
		return nil, storeErr("keys", "", fmt.Errorf("failed to list etcd keys: %w", err))
	}

	keys := make([]string, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		keys = append(keys, strings.TrimPrefix(string(kv.Key), s.prefix))
	}
	sort.Strings(keys)
	return keys, nil
}

// Close closes the etcd client.
func (s *EtcdStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.client.Close()
}
