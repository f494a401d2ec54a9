package service

import (
	"context"
	"time"
)

// ActivityEvent describes a change to a user's data, published for downstream consumers.
type ActivityEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	UserID     int64     `json:"user_id"`
	ResourceID int64     `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event for async processing
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
