// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fitlog/internal/delivery/context"
	"fitlog/internal/domain/service"

	"github.com/google/uuid"
)

// eventPublishTimeout caps how long a request waits on the event sink.
const eventPublishTimeout = 2 * time.Second

// activityRecorder publishes activity events on a best-effort basis.
// A failed or slow publish is logged and never fails the caller.
type activityRecorder struct {
	publisher service.EventPublisher
	now       func() time.Time
	timeout   time.Duration
}

func newActivityRecorder(publisher service.EventPublisher) activityRecorder {
	return activityRecorder{
		publisher: publisher,
		now:       time.Now,
		timeout:   eventPublishTimeout,
	}
}

func (r activityRecorder) record(ctx context.Context, logger *slog.Logger, eventType string, userID, resourceID int64) {
	if r.publisher == nil {
		return
	}

	event := &service.ActivityEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     userID,
		ResourceID: resourceID,
		OccurredAt: r.now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.publisher.PublishActivityEvent(publishCtx, event); err != nil {
		logger.Warn("Failed to publish activity event",
			slog.String("event_type", eventType),
			slog.Int64("resource_id", resourceID),
			slog.Any("error", err),
		)
	}
}
