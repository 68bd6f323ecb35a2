package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aussiebroadwan/sigil/internal/openpgp/store"
)

// Config holds the connection settings for the redis driver.
type Config struct {
	Addr     string
	Password string
	DB       int

	// Prefix namespaces every key this store writes. Defaults to "sigil".
	Prefix string
}

// Store implements store.Store on a redis server. Each named key is a
// single JSON record, so the subkey material swap is one write and the
// per-key atomicity contract holds without a schema.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore connects to redis and verifies the server is reachable.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = "sigil"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Store{client: client, prefix: cfg.Prefix}, nil
}

func (s *Store) Keys() store.Keys {
	return &keysRepo{client: s.client, prefix: s.prefix}
}

// ApplyMigrations is a no-op; redis has no schema to migrate.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
