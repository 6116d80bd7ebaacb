package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"remora/internal/codegen"
	"remora/internal/model"
	"remora/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a short code does not exist
	ErrNotFound = errors.New("short URL not found")
	// ErrCodeConflict is returned when a custom code is already taken
	ErrCodeConflict = errors.New("short code already taken")
	// ErrAllocationExhausted is returned when random generation cannot find a free code
	ErrAllocationExhausted = errors.New("could not allocate a free short code")
)

const dayFormat = "2006-01-02"

// ShortenerService handles short URL allocation, resolution and stats
type ShortenerService struct {
	gen         *codegen.Generator
	mysqlRepo   MySQLRepositoryInterface
	redisRepo   RedisRepositoryInterface
	baseURL     string
	maxAttempts int
}

// NewShortenerService creates a new Shortener Service
func NewShortenerService(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	gen *codegen.Generator,
	baseURL string,
	maxAttempts int,
) *ShortenerService {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &ShortenerService{
		gen:         gen,
		mysqlRepo:   mysqlRepo,
		redisRepo:   redisRepo,
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxAttempts: maxAttempts,
	}
}

// Shorten allocates a short code for the given URL. The custom code,
// if any, has already passed boundary validation.
func (s *ShortenerService) Shorten(ctx context.Context, req *model.ShortenRequest) (*model.ShortenResponse, error) {
	if req.CustomCode != "" {
		return s.shortenCustom(ctx, req.OriginalURL, req.CustomCode)
	}
	return s.shortenRandom(ctx, req.OriginalURL)
}

// shortenCustom inserts a short URL with a caller-supplied code. The
// existence check only avoids a doomed write; the unique index on the
// insert is what actually decides races between concurrent creators.
func (s *ShortenerService) shortenCustom(ctx context.Context, originalURL, customCode string) (*model.ShortenResponse, error) {
	exists, err := s.mysqlRepo.ExistsByCode(ctx, customCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check short code: %w", err)
	}
	if exists {
		return nil, ErrCodeConflict
	}

	su := &model.ShortURL{
		OriginalURL: originalURL,
		ShortCode:   customCode,
	}
	if err := s.mysqlRepo.CreateShortURL(ctx, su); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race between check and insert
			return nil, ErrCodeConflict
		}
		return nil, fmt.Errorf("failed to save short URL: %w", err)
	}

	s.cache(ctx, su)
	return s.buildResponse(su), nil
}

// shortenRandom draws random codes until an insert sticks, up to a
// bounded number of attempts. A collided candidate is never reused.
func (s *ShortenerService) shortenRandom(ctx context.Context, originalURL string) (*model.ShortenResponse, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code, err := s.gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		su := &model.ShortURL{
			OriginalURL: originalURL,
			ShortCode:   code,
		}
		err = s.mysqlRepo.CreateShortURL(ctx, su)
		if err == nil {
			s.cache(ctx, su)
			return s.buildResponse(su), nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to save short URL: %w", err)
		}

		log.Warn().
			Str("short_code", code).
			Int("attempt", attempt+1).
			Msg("Short code collision, retrying with a fresh draw")
	}

	return nil, ErrAllocationExhausted
}

// Resolve looks up a short code without recording a visit. Probe
// requests (HEAD) go through here so they never inflate counters.
func (s *ShortenerService) Resolve(ctx context.Context, shortCode string) (*model.ShortURL, error) {
	if s.redisRepo != nil {
		if cached, err := s.redisRepo.GetCachedURL(ctx, shortCode); err == nil && cached != nil {
			return &model.ShortURL{
				ID:          cached.ID,
				ShortCode:   shortCode,
				OriginalURL: cached.OriginalURL,
			}, nil
		}
	}

	su, err := s.mysqlRepo.GetByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve short code: %w", err)
	}

	s.cache(ctx, su)
	return su, nil
}

// ResolveAndTrack looks up a short code and records the visit: one
// visit row, one day-bucket increment and the aggregate counters, all
// inside a single store transaction.
func (s *ShortenerService) ResolveAndTrack(ctx context.Context, shortCode, clientIP string) (*model.ShortURL, error) {
	su, err := s.Resolve(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	if clientIP == "" {
		clientIP = "unknown"
	}

	visitedAt := time.Now().UTC()
	if err := s.mysqlRepo.RecordVisit(ctx, su.ID, clientIP, visitedAt); err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}

	return su, nil
}

// Stats returns the visit statistics for a short code. A day window
// is only computed for days > 0; otherwise the daily breakdown stays
// absent, signaling "not requested" rather than "no data".
func (s *ShortenerService) Stats(ctx context.Context, shortCode string, days int) (*model.StatsResponse, error) {
	su, err := s.mysqlRepo.GetByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load short URL: %w", err)
	}

	resp := &model.StatsResponse{
		ShortCode:     su.ShortCode,
		OriginalURL:   su.OriginalURL,
		CreatedAt:     su.CreatedAt,
		VisitCount:    su.VisitCount,
		LastVisitedAt: su.LastVisitedAt,
	}

	if days > 0 {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		from := today.AddDate(0, 0, -(days - 1))

		stats, err := s.mysqlRepo.GetDailyStats(ctx, su.ID, from, today)
		if err != nil {
			return nil, fmt.Errorf("failed to load daily stats: %w", err)
		}
		for _, st := range stats {
			resp.Daily = append(resp.Daily, model.DailyBucket{
				Day:   st.Day.Format(dayFormat),
				Count: st.Count,
			})
		}
	}

	return resp, nil
}

// cache stores a resolved URL in Redis; failures only cost a cache
// miss and are logged, never surfaced.
func (s *ShortenerService) cache(ctx context.Context, su *model.ShortURL) {
	if s.redisRepo == nil {
		return
	}
	entry := &repository.CachedURL{
		ID:          su.ID,
		OriginalURL: su.OriginalURL,
	}
	if err := s.redisRepo.CacheURL(ctx, su.ShortCode, entry, repository.URLCacheTTL); err != nil {
		log.Warn().Err(err).Str("short_code", su.ShortCode).Msg("Failed to cache short URL")
	}
}

// buildResponse builds a shorten response from a short URL entity
func (s *ShortenerService) buildResponse(su *model.ShortURL) *model.ShortenResponse {
	return &model.ShortenResponse{
		ShortCode:   su.ShortCode,
		ShortURL:    fmt.Sprintf("%s/%s", s.baseURL, su.ShortCode),
		OriginalURL: su.OriginalURL,
		CreatedAt:   su.CreatedAt,
	}
}
