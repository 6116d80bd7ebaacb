package mq

import (
	"time"
)

// VisitMessage represents a tracked visit event
type VisitMessage struct {
	ShortCode string    `json:"short_code"`
	ClientIP  string    `json:"client_ip"`
	VisitedAt time.Time `json:"visited_at"`
}
