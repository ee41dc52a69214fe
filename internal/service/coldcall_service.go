package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/store"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
)

type recordGetter interface {
	GetOne(ctx context.Context, collection, id string, opts store.ListOptions, dest interface{}) error
}

// ColdCallService serves the cold-call detail page.
type ColdCallService struct {
	client recordGetter
	logger *zap.Logger
}

// NewColdCallService constructs the service.
func NewColdCallService(client recordGetter, logger *zap.Logger) *ColdCallService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ColdCallService{client: client, logger: logger}
}

// Get fetches a single cold call with its company expanded.
func (s *ColdCallService) Get(ctx context.Context, id string) (*models.ColdCall, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "cold call id is required")
	}

	var call models.ColdCall
	if err := s.client.GetOne(ctx, store.CollectionColdCalls, id, store.ListOptions{Expand: "company"}, &call); err != nil {
		return nil, err
	}
	return &call, nil
}
