package repository

import (
	"context"
	"time"

	"remora/internal/config"
	"remora/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const dayFormat = "2006-01-02"

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.ShortURL{}, &model.Visit{}, &model.DailyStat{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// CreateShortURL inserts a new short URL. The unique index on
// short_code is the authority on code collisions; a lost race
// surfaces as gorm.ErrDuplicatedKey.
func (r *MySQLRepository) CreateShortURL(ctx context.Context, su *model.ShortURL) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(su).Error
}

// GetByCode retrieves a short URL by its code
func (r *MySQLRepository) GetByCode(ctx context.Context, shortCode string) (*model.ShortURL, error) {
	var su model.ShortURL
	err := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&su).Error
	if err != nil {
		return nil, err
	}
	return &su, nil
}

// ExistsByCode checks if a short code is already taken
func (r *MySQLRepository) ExistsByCode(ctx context.Context, shortCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ShortURL{}).
		Where("short_code = ?", shortCode).
		Count(&count).Error
	return count > 0, err
}

// RecordVisit applies the three tracking effects of one visit in a
// single transaction: the visit row, the day-bucket upsert and the
// aggregate counters on the URL row. The day bucket is incremented
// with an insert-or-increment at the store so concurrent visits on
// the same day never lose an update.
func (r *MySQLRepository) RecordVisit(ctx context.Context, urlID int64, ip string, visitedAt time.Time) error {
	visitedAt = visitedAt.UTC()
	day := visitedAt.Truncate(24 * time.Hour)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		visit := &model.Visit{
			URLID:     urlID,
			IP:        ip,
			VisitedAt: visitedAt,
		}
		if err := tx.Omit(clause.Associations).Create(visit).Error; err != nil {
			return err
		}

		stat := &model.DailyStat{
			URLID: urlID,
			Day:   day,
			Count: 1,
		}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url_id"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
		}).Create(stat).Error; err != nil {
			return err
		}

		return tx.Model(&model.ShortURL{}).
			Where("id = ?", urlID).
			Updates(map[string]interface{}{
				"visit_count":     gorm.Expr("visit_count + 1"),
				"last_visited_at": visitedAt,
			}).Error
	})
}

// GetDailyStats retrieves the day buckets for a URL whose day falls
// in the closed range [from, to], ordered ascending by day. Days
// without visits have no bucket and are simply absent.
func (r *MySQLRepository) GetDailyStats(ctx context.Context, urlID int64, from, to time.Time) ([]model.DailyStat, error) {
	var stats []model.DailyStat
	err := r.db.WithContext(ctx).
		Where("url_id = ? AND day >= ? AND day <= ?", urlID, from.Format(dayFormat), to.Format(dayFormat)).
		Order("day ASC").
		Find(&stats).Error
	return stats, err
}

// GetTotalURLCount returns the total count of short URLs
func (r *MySQLRepository) GetTotalURLCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ShortURL{}).Count(&count).Error
	return count, err
}

// DeleteShortURL removes a short URL; its visits and day buckets go
// with it via the FK cascade.
func (r *MySQLRepository) DeleteShortURL(ctx context.Context, urlID int64) error {
	return r.db.WithContext(ctx).Delete(&model.ShortURL{}, urlID).Error
}

// Ping verifies database connectivity
func (r *MySQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
