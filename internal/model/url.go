package model

import (
	"time"
)

// ShortURL represents a short URL mapping
type ShortURL struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OriginalURL   string     `json:"original_url" gorm:"type:text;not null"`
	ShortCode     string     `json:"short_code" gorm:"type:varchar(20);uniqueIndex;not null"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	VisitCount    int64      `json:"visit_count" gorm:"not null;default:0"`
	LastVisitedAt *time.Time `json:"last_visited_at"`
}

// TableName returns the table name for ShortURL
func (ShortURL) TableName() string {
	return "short_urls"
}

// ShortenRequest represents the request to create a short URL
type ShortenRequest struct {
	OriginalURL string `json:"original_url" binding:"required,url"`
	CustomCode  string `json:"custom_code"`
}

// ShortenResponse represents the response of short URL creation
type ShortenResponse struct {
	ShortCode   string    `json:"short_code"`
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}
