package repository

import (
	"context"
	"time"

	"remora/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	GetDB() interface{}
	CreateShortURL(ctx context.Context, su *model.ShortURL) error
	GetByCode(ctx context.Context, shortCode string) (*model.ShortURL, error)
	ExistsByCode(ctx context.Context, shortCode string) (bool, error)
	RecordVisit(ctx context.Context, urlID int64, ip string, visitedAt time.Time) error
	GetDailyStats(ctx context.Context, urlID int64, from, to time.Time) ([]model.DailyStat, error)
	GetTotalURLCount(ctx context.Context) (int64, error)
	DeleteShortURL(ctx context.Context, urlID int64) error
	Ping(ctx context.Context) error
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() interface{}
	CacheURL(ctx context.Context, shortCode string, entry *CachedURL, ttl time.Duration) error
	GetCachedURL(ctx context.Context, shortCode string) (*CachedURL, error)
	ExistsCachedURL(ctx context.Context, shortCode string) (bool, error)
	Close() error
}
