package repository

import (
	"context"
	"encoding/json"
	"time"

	"remora/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// URLKeyPrefix prefixes cache keys for resolved short URLs
	URLKeyPrefix = "su:"
	// URLCacheTTL is how long a resolved short URL stays cached
	URLCacheTTL = 24 * time.Hour
)

// CachedURL is the cache entry for a resolved short code. Mappings
// are immutable once created, so entries never need invalidation.
type CachedURL struct {
	ID          int64  `json:"id"`
	OriginalURL string `json:"original_url"`
}

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// CacheURL stores a resolved short URL in Redis
func (r *RedisRepository) CacheURL(ctx context.Context, shortCode string, entry *CachedURL, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.urlKey(shortCode), data, ttl).Err()
}

// GetCachedURL retrieves a cached short URL from Redis
func (r *RedisRepository) GetCachedURL(ctx context.Context, shortCode string) (*CachedURL, error) {
	data, err := r.client.Get(ctx, r.urlKey(shortCode)).Bytes()
	if err != nil {
		return nil, err
	}

	var entry CachedURL
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ExistsCachedURL checks if a short code is cached
func (r *RedisRepository) ExistsCachedURL(ctx context.Context, shortCode string) (bool, error) {
	result, err := r.client.Exists(ctx, r.urlKey(shortCode)).Result()
	return result > 0, err
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) urlKey(shortCode string) string {
	return URLKeyPrefix + shortCode
}
