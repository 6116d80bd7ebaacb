package service

import (
	"context"
	"time"

	"remora/internal/model"
	"remora/internal/repository"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	CreateShortURL(ctx context.Context, su *model.ShortURL) error
	GetByCode(ctx context.Context, shortCode string) (*model.ShortURL, error)
	ExistsByCode(ctx context.Context, shortCode string) (bool, error)
	RecordVisit(ctx context.Context, urlID int64, ip string, visitedAt time.Time) error
	GetDailyStats(ctx context.Context, urlID int64, from, to time.Time) ([]model.DailyStat, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	CacheURL(ctx context.Context, shortCode string, entry *repository.CachedURL, ttl time.Duration) error
	GetCachedURL(ctx context.Context, shortCode string) (*repository.CachedURL, error)
}

// ShortenerServiceInterface defines the interface for short URL operations
type ShortenerServiceInterface interface {
	Shorten(ctx context.Context, req *model.ShortenRequest) (*model.ShortenResponse, error)
	Resolve(ctx context.Context, shortCode string) (*model.ShortURL, error)
	ResolveAndTrack(ctx context.Context, shortCode, clientIP string) (*model.ShortURL, error)
	Stats(ctx context.Context, shortCode string, days int) (*model.StatsResponse, error)
}
