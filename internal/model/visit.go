package model

import (
	"time"
)

// Visit represents one tracked access to a short URL
type Visit struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	URLID     int64     `json:"url_id" gorm:"not null;index:ix_visits_url_id_visited_at"`
	URL       ShortURL  `json:"-" gorm:"foreignKey:URLID;constraint:OnDelete:CASCADE"`
	IP        string    `json:"ip" gorm:"type:varchar(45);not null"`
	VisitedAt time.Time `json:"visited_at" gorm:"not null;index:ix_visits_url_id_visited_at"`
}

// TableName returns the table name for Visit
func (Visit) TableName() string {
	return "visits"
}

// DailyStat represents the per-day visit counter for a short URL
type DailyStat struct {
	ID    int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	URLID int64     `json:"url_id" gorm:"not null;uniqueIndex:uq_daily_stats_url_id_day"`
	URL   ShortURL  `json:"-" gorm:"foreignKey:URLID;constraint:OnDelete:CASCADE"`
	Day   time.Time `json:"day" gorm:"type:date;not null;uniqueIndex:uq_daily_stats_url_id_day"`
	Count int64     `json:"count" gorm:"not null;default:0"`
}

// TableName returns the table name for DailyStat
func (DailyStat) TableName() string {
	return "daily_stats"
}

// DailyBucket is one day entry in a stats response
type DailyBucket struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// StatsResponse represents the visit statistics for a short URL.
// Daily is only populated when a day window was requested; it is
// omitted from the JSON body otherwise.
type StatsResponse struct {
	ShortCode     string        `json:"short_code"`
	OriginalURL   string        `json:"original_url"`
	CreatedAt     time.Time     `json:"created_at"`
	VisitCount    int64         `json:"visit_count"`
	LastVisitedAt *time.Time    `json:"last_visited_at"`
	Daily         []DailyBucket `json:"daily,omitempty"`
}
