package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tableturnerr/dashboard-api/internal/dto"
	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/store"
)

const activeMemberFilter = `status != "suspended"`

type collectionLister interface {
	List(ctx context.Context, collection string, page, perPage int, opts store.ListOptions) (*store.ListResult, error)
}

// DashboardService composes the overview page: stat counts across four
// collections and the recent activity feed. Both degrade to empty defaults
// on failure; nothing here is fatal.
type DashboardService struct {
	client        collectionLister
	logger        *zap.Logger
	activityLimit int
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Client        collectionLister
	Logger        *zap.Logger
	ActivityLimit int
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	limit := params.ActivityLimit
	if limit <= 0 {
		limit = 10
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{client: params.Client, logger: logger, activityLimit: limit}
}

// Overview composes the full overview payload.
func (s *DashboardService) Overview(ctx context.Context) *dto.OverviewResponse {
	return &dto.OverviewResponse{
		Stats:          s.Stats(ctx),
		RecentActivity: s.RecentActivity(ctx),
	}
}

// Stats counts companies, cold calls, leads, and non-suspended users. Any
// failed count logs a warning and yields zero-valued stats, so the page
// still renders.
func (s *DashboardService) Stats(ctx context.Context) dto.OverviewStats {
	type statCount struct {
		collection string
		filter     string
		dest       *int
	}

	stats := dto.OverviewStats{}
	counts := []statCount{
		{store.CollectionCompanies, "", &stats.TotalCompanies},
		{store.CollectionColdCalls, "", &stats.TotalColdCalls},
		{store.CollectionLeads, "", &stats.TotalLeads},
		{store.CollectionUsers, activeMemberFilter, &stats.ActiveMembers},
	}

	for _, count := range counts {
		result, err := s.client.List(ctx, count.collection, 1, 1, store.ListOptions{Filter: count.filter})
		if err != nil {
			s.logger.Warn("stats count failed", zap.String("collection", count.collection), zap.Error(err))
			return dto.OverviewStats{}
		}
		*count.dest = result.TotalItems
	}
	return stats
}

// RecentActivity fetches the latest event logs with relations expanded.
// Failure yields an empty feed.
func (s *DashboardService) RecentActivity(ctx context.Context) []dto.ActivityEntry {
	result, err := s.client.List(ctx, store.CollectionEventLogs, 1, s.activityLimit, store.ListOptions{
		Sort:   "-created",
		Expand: "user,actor,target,cold_call",
	})
	if err != nil {
		s.logger.Warn("recent activity fetch failed", zap.Error(err))
		return []dto.ActivityEntry{}
	}

	var events []models.EventLog
	if err := result.Decode(&events); err != nil {
		s.logger.Warn("recent activity decode failed", zap.Error(err))
		return []dto.ActivityEntry{}
	}

	entries := make([]dto.ActivityEntry, 0, len(events))
	for _, event := range events {
		entries = append(entries, dto.ActivityEntry{
			ID:          event.ID,
			EventType:   event.EventType,
			Description: describeEvent(event),
			Source:      event.Source,
			Created:     event.Created,
		})
	}
	return entries
}

// describeEvent renders a human description for an event log entry, keyed by
// event type.
func describeEvent(event models.EventLog) string {
	user := "Unknown"
	actor := ""
	target := ""
	if event.Expand != nil {
		if event.Expand.User != nil && event.Expand.User.Name != "" {
			user = event.Expand.User.Name
		}
		if event.Expand.Actor != nil {
			actor = event.Expand.Actor.Username
		}
		if event.Expand.Target != nil {
			target = event.Expand.Target.Username
		}
	}

	switch event.EventType {
	case models.EventTypeOutreach:
		who := actor
		if who == "" {
			who = user
		}
		return fmt.Sprintf("%s sent outreach to %s", who, target)
	case models.EventTypeColdCall:
		return fmt.Sprintf("%s made a cold call", user)
	case models.EventTypeUser:
		if event.Details != "" {
			return event.Details
		}
		return fmt.Sprintf("%s performed an action", user)
	case models.EventTypeSystem:
		if event.Details != "" {
			return event.Details
		}
		return "System event"
	case models.EventTypeTarInfoChange:
		return fmt.Sprintf("%s updated target info for %s", user, target)
	case models.EventTypeTarExceptionTog:
		return fmt.Sprintf("%s toggled exception for %s", user, target)
	default:
		if event.Details != "" {
			return event.Details
		}
		return "Activity logged"
	}
}
