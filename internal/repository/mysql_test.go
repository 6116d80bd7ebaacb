package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"remora/internal/model"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

func TestMySQLRepository_CreateShortURL(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("create successfully", func(t *testing.T) {
		su := &model.ShortURL{
			ShortCode:   "git123",
			OriginalURL: "https://example.com",
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `short_urls`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreateShortURL(ctx, su)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), su.ID)
	})

	t.Run("duplicate short code", func(t *testing.T) {
		su := &model.ShortURL{
			ShortCode:   "git123",
			OriginalURL: "https://example.com",
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `short_urls`")).
			WillReturnError(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"})
		mock.ExpectRollback()

		err := repo.CreateShortURL(ctx, su)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}

func TestMySQLRepository_GetByCode(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("get existing short URL", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "original_url", "short_code", "created_at", "visit_count", "last_visited_at"}).
			AddRow(1, "https://example.com", "git123", time.Now(), 0, nil)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `short_urls` WHERE short_code = ? ORDER BY `short_urls`.`id` LIMIT ?")).
			WithArgs("git123", 1).
			WillReturnRows(rows)

		su, err := repo.GetByCode(ctx, "git123")
		assert.NoError(t, err)
		assert.NotNil(t, su)
		assert.Equal(t, "git123", su.ShortCode)
		assert.Equal(t, "https://example.com", su.OriginalURL)
		assert.Nil(t, su.LastVisitedAt)
	})

	t.Run("get non-existent short URL", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `short_urls` WHERE short_code = ? ORDER BY `short_urls`.`id` LIMIT ?")).
			WithArgs("missing", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		su, err := repo.GetByCode(ctx, "missing")
		assert.Error(t, err)
		assert.Nil(t, su)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestMySQLRepository_ExistsByCode(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("code exists", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"count"}).AddRow(1)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `short_urls` WHERE short_code = ?")).
			WithArgs("git123").
			WillReturnRows(rows)

		exists, err := repo.ExistsByCode(ctx, "git123")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("code does not exist", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"count"}).AddRow(0)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `short_urls` WHERE short_code = ?")).
			WithArgs("missing").
			WillReturnRows(rows)

		exists, err := repo.ExistsByCode(ctx, "missing")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMySQLRepository_RecordVisit(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()
	visitedAt := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	t.Run("all three effects in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `visits`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("ON DUPLICATE KEY UPDATE `count`=count + 1")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `short_urls` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.RecordVisit(ctx, 1, "203.0.113.9", visitedAt)
		assert.NoError(t, err)
	})

	t.Run("rollback when visit insert fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `visits`")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.RecordVisit(ctx, 1, "203.0.113.9", visitedAt)
		assert.Error(t, err)
	})

	t.Run("rollback when day bucket upsert fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `visits`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `daily_stats`")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.RecordVisit(ctx, 1, "203.0.113.9", visitedAt)
		assert.Error(t, err)
	})

	t.Run("rollback when counter update fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `visits`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `daily_stats`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `short_urls` SET")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.RecordVisit(ctx, 1, "203.0.113.9", visitedAt)
		assert.Error(t, err)
	})
}

func TestMySQLRepository_GetDailyStats(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("rows in window ascending", func(t *testing.T) {
		d1 := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
		d2 := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "url_id", "day", "count"}).
			AddRow(1, 1, d1, 3).
			AddRow(2, 1, d2, 2)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `daily_stats` WHERE url_id = ? AND day >= ? AND day <= ? ORDER BY day ASC")).
			WithArgs(1, "2026-08-24", "2026-08-30").
			WillReturnRows(rows)

		from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		stats, err := repo.GetDailyStats(ctx, 1, from, to)
		assert.NoError(t, err)
		assert.Len(t, stats, 2)
		assert.Equal(t, int64(3), stats[0].Count)
		assert.Equal(t, int64(2), stats[1].Count)
		assert.True(t, stats[0].Day.Before(stats[1].Day))
	})

	t.Run("empty window", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "url_id", "day", "count"})

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `daily_stats`")).
			WillReturnRows(rows)

		from := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		stats, err := repo.GetDailyStats(ctx, 1, from, to)
		assert.NoError(t, err)
		assert.Empty(t, stats)
	})
}

func TestMySQLRepository_GetTotalURLCount(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(42)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `short_urls`")).
		WillReturnRows(rows)

	count, err := repo.GetTotalURLCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestMySQLRepository_DeleteShortURL(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `short_urls`")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteShortURL(ctx, 1)
	assert.NoError(t, err)
}

func TestMySQLRepository_Close(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}

	mock.ExpectClose()

	err := repo.Close()
	assert.NoError(t, err)
}
