package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/store"
)

const activitySource = "dashboard"

type recordCreator interface {
	Create(ctx context.Context, collection string, data interface{}, dest interface{}) error
}

// ActivityService writes user events into the event_logs collection. Event
// logging never fails the triggering action; failures are logged and dropped.
type ActivityService struct {
	client recordCreator
	logger *zap.Logger
}

// NewActivityService constructs the service.
func NewActivityService(client recordCreator, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{client: client, logger: logger}
}

// RecordUserEvent appends a "User" event for the given user.
func (s *ActivityService) RecordUserEvent(ctx context.Context, userID, details string) {
	payload := map[string]interface{}{
		"event_type": models.EventTypeUser,
		"details":    details,
		"user":       userID,
		"source":     activitySource,
	}
	if err := s.client.Create(ctx, store.CollectionEventLogs, payload, nil); err != nil {
		s.logger.Warn("event log write failed", zap.String("details", details), zap.Error(err))
	}
}
