package prefs

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in Config.Backend and PLISTKIT_PREFS_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendEtcd   = "etcd"
	BackendSQLite = "sqlite"
)

// DefaultNamespace scopes preferences when no namespace is configured.
const DefaultNamespace = "plistkit"

// Environment variables read by OpenFromEnv.
const (
	EnvBackend   = "PLISTKIT_PREFS_BACKEND"
	EnvURL       = "PLISTKIT_PREFS_URL"
	EnvNamespace = "PLISTKIT_PREFS_NAMESPACE"
)

// Config represents a preferences YAML document:
//
//	backend: redis
//	namespace: myapp
//	redis:
//	  url: redis://localhost:6379
//	defaults:
//	  MaxRetries: 3
//	  Verbose: "yes"
type Config struct {
	// Backend selects the store: memory, redis, etcd or sqlite.
	// Default: memory
	Backend string `yaml:"backend,omitempty"`

	// Namespace scopes keys so several applications can share a backend.
	// Default: "plistkit"
	Namespace string `yaml:"namespace,omitempty"`

	Redis  *RedisSection  `yaml:"redis,omitempty"`
	Etcd   *EtcdSection   `yaml:"etcd,omitempty"`
	SQLite *SQLiteSection `yaml:"sqlite,omitempty"`

	// Defaults are registered fallback values, consulted when the backend
	// holds nothing for a key.
	Defaults map[string]any `yaml:"defaults,omitempty"`
}

// RedisSection configures the redis backend.
type RedisSection struct {
	URL string `yaml:"url,omitempty"`

	// ConnectTimeout is a Go duration string (e.g., "5s").
	// Default: 5s
	ConnectTimeout string `yaml:"connect_timeout,omitempty"`

	TLS *TLSConfig `yaml:"tls,omitempty"`
}

// EtcdSection configures the etcd backend.
type EtcdSection struct {
	Endpoints []string `yaml:"endpoints,omitempty"`

	// DialTimeout is a Go duration string.
	// Default: 5s
	DialTimeout string `yaml:"dial_timeout,omitempty"`

	TLS *TLSConfig `yaml:"tls,omitempty"`
}

// SQLiteSection configures the sqlite backend.
type SQLiteSection struct {
	Path string `yaml:"path,omitempty"`
}

// GetBackend returns the configured backend or the default value.
func (c *Config) GetBackend() string {
	if c == nil || c.Backend == "" {
		return BackendMemory
	}
	return strings.ToLower(c.Backend)
}

// GetNamespace returns the configured namespace or the default value.
func (c *Config) GetNamespace() string {
	if c == nil || c.Namespace == "" {
		return DefaultNamespace
	}
	return c.Namespace
}

// GetURL returns the Redis URL or the default value.
func (r *RedisSection) GetURL() string {
	if r == nil || r.URL == "" {
		return "redis://localhost:6379"
	}
	return r.URL
}

// GetConnectTimeout parses the connect timeout string and returns a duration.
// Returns the default value if not set or invalid.
func (r *RedisSection) GetConnectTimeout() time.Duration {
	return parseDurationOr(r.connectTimeout(), 5*time.Second)
}

func (r *RedisSection) connectTimeout() string {
	if r == nil {
		return ""
	}
	return r.ConnectTimeout
}

// GetEndpoints returns the etcd endpoints or the default value.
func (e *EtcdSection) GetEndpoints() []string {
	if e == nil || len(e.Endpoints) == 0 {
		return []string{"localhost:2379"}
	}
	return e.Endpoints
}

// GetDialTimeout parses the dial timeout string and returns a duration.
// Returns the default value if not set or invalid.
func (e *EtcdSection) GetDialTimeout() time.Duration {
	if e == nil {
		return 5 * time.Second
	}
	return parseDurationOr(e.DialTimeout, 5*time.Second)
}

// GetPath returns the SQLite database path or the default value.
func (s *SQLiteSection) GetPath() string {
	if s == nil || s.Path == "" {
		return "prefs.db"
	}
	return s.Path
}

func parseDurationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// LoadConfig reads and parses a preferences YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a preferences YAML document and validates the backend.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the backend is known.
func (c *Config) Validate() error {
	switch c.GetBackend() {
	case BackendMemory, BackendRedis, BackendEtcd, BackendSQLite:
		return nil
	}
	return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
}

// Open builds the store described by cfg. A nil cfg opens an empty memory
// store. Registered defaults from cfg.Defaults wrap the backend, and
// WithTracer or WithMeter wrap the result with Instrument.
func Open(ctx context.Context, cfg *Config, opts ...Option) (Store, error) {
	oc := newOpenConfig(opts)
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		store Store
		err   error
	)
	switch cfg.GetBackend() {
	case BackendMemory:
		store = NewMemoryStore()
	case BackendRedis:
		tlsConfig, tlsErr := cfg.Redis.tls().ClientConfig()
		if tlsErr != nil {
			return nil, fmt.Errorf("failed to configure TLS: %w", tlsErr)
		}
		store, err = NewRedisStore(RedisOptions{
			URL:            cfg.Redis.GetURL(),
			Namespace:      cfg.GetNamespace(),
			TLS:            tlsConfig,
			ConnectTimeout: cfg.Redis.GetConnectTimeout(),
		})
	case BackendEtcd:
		var tlsCfg *TLSConfig
		if cfg.Etcd != nil {
			tlsCfg = cfg.Etcd.TLS
		}
		store, err = NewEtcdStore(EtcdConfig{
			Endpoints:   cfg.Etcd.GetEndpoints(),
			Namespace:   cfg.GetNamespace(),
			DialTimeout: cfg.Etcd.GetDialTimeout(),
			TLS:         tlsCfg,
		})
	case BackendSQLite:
		store, err = NewSQLiteStore(cfg.SQLite.GetPath(), cfg.GetNamespace())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.GetBackend(), err)
	}

	if len(cfg.Defaults) > 0 {
		defaults, err := DefaultsFromNative(cfg.Defaults)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		store = WithDefaults(store, defaults)
	}

	if oc.tracer != nil || oc.meter != nil {
		instrumented, err := Instrument(store, oc.tracer, oc.meter)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		store = instrumented
	}

	oc.logger.InfoContext(ctx, "opened preference store",
		"component", "prefs",
		"backend", cfg.GetBackend(),
		"namespace", cfg.GetNamespace(),
		"defaults", len(cfg.Defaults),
	)
	return store, nil
}

func (r *RedisSection) tls() *TLSConfig {
	if r == nil {
		return nil
	}
	return r.TLS
}

// ConfigFromEnv builds a Config from the PLISTKIT_PREFS_* variables.
// PLISTKIT_PREFS_URL is the Redis URL, a comma-separated etcd endpoint
// list, or a SQLite path depending on the backend.
func ConfigFromEnv() *Config {
	cfg := &Config{
		Backend:   os.Getenv(EnvBackend),
		Namespace: os.Getenv(EnvNamespace),
	}
	url := os.Getenv(EnvURL)
	if url == "" {
		return cfg
	}
	switch cfg.GetBackend() {
	case BackendRedis:
		cfg.Redis = &RedisSection{URL: url}
	case BackendEtcd:
		var endpoints []string
		for _, ep := range strings.Split(url, ",") {
			if ep = strings.TrimSpace(ep); ep != "" {
				endpoints = append(endpoints, ep)
			}
		}
		cfg.Etcd = &EtcdSection{Endpoints: endpoints}
	case BackendSQLite:
		cfg.SQLite = &SQLiteSection{Path: url}
	}
	return cfg
}

// OpenFromEnv opens the store described by the PLISTKIT_PREFS_*
// environment variables. With none set it opens a memory store.
func OpenFromEnv(ctx context.Context, opts ...Option) (Store, error) {
	return Open(ctx, ConfigFromEnv(), opts...)
}
