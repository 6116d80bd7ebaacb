package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remora/internal/config"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	return &RedisRepository{
		client: client,
		cfg: &config.RedisConfig{
			Addr:     s.Addr(),
			Password: "",
			DB:       0,
		},
	}, s
}

func TestNewRedisRepository(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	cfg := &config.RedisConfig{
		Addr:     s.Addr(),
		Password: "",
		DB:       0,
	}

	repo := NewRedisRepository(cfg)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.client)
	assert.Equal(t, cfg, repo.cfg)

	repo.Close()
}

func TestRedisRepository_CacheURL(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	entry := &CachedURL{ID: 7, OriginalURL: "https://example.com"}
	err := repo.CacheURL(ctx, "git123", entry, URLCacheTTL)
	require.NoError(t, err)

	got, err := repo.GetCachedURL(ctx, "git123")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "https://example.com", got.OriginalURL)
}

func TestRedisRepository_GetCachedURL(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	t.Run("existing entry", func(t *testing.T) {
		s.Set(URLKeyPrefix+"git123", `{"id":3,"original_url":"https://example.com"}`)

		got, err := repo.GetCachedURL(ctx, "git123")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.Equal(t, "https://example.com", got.OriginalURL)
	})

	t.Run("missing entry", func(t *testing.T) {
		got, err := repo.GetCachedURL(ctx, "missing")
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		s.Set(URLKeyPrefix+"bad", "not json")

		got, err := repo.GetCachedURL(ctx, "bad")
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestRedisRepository_ExistsCachedURL(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	t.Run("cached", func(t *testing.T) {
		s.Set(URLKeyPrefix+"git123", `{"id":1,"original_url":"https://example.com"}`)

		exists, err := repo.ExistsCachedURL(ctx, "git123")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not cached", func(t *testing.T) {
		exists, err := repo.ExistsCachedURL(ctx, "missing")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRedisRepository_TTL(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	entry := &CachedURL{ID: 1, OriginalURL: "https://example.com"}
	require.NoError(t, repo.CacheURL(ctx, "git123", entry, URLCacheTTL))

	// Entries expire so stale cache never outlives the configured TTL
	s.FastForward(URLCacheTTL + 1)

	_, err := repo.GetCachedURL(ctx, "git123")
	assert.Error(t, err)
}
