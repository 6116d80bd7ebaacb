package mq

import (
	"context"
)

// ProducerInterface defines the interface for visit event production
type ProducerInterface interface {
	SendVisit(ctx context.Context, msg *VisitMessage) error
	Close() error
}
