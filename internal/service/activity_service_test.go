package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/store"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
)

type fakeCreator struct {
	collection string
	payload    map[string]interface{}
	err        error
}

func (f *fakeCreator) Create(_ context.Context, collection string, data interface{}, _ interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.collection = collection
	f.payload = data.(map[string]interface{})
	return nil
}

func TestRecordUserEvent(t *testing.T) {
	creator := &fakeCreator{}
	svc := NewActivityService(creator, nil)

	svc.RecordUserEvent(context.Background(), "user-1", "Dana signed in")

	assert.Equal(t, store.CollectionEventLogs, creator.collection)
	assert.Equal(t, models.EventTypeUser, creator.payload["event_type"])
	assert.Equal(t, "Dana signed in", creator.payload["details"])
	assert.Equal(t, "user-1", creator.payload["user"])
	assert.Equal(t, activitySource, creator.payload["source"])
}

func TestRecordUserEventSwallowsFailures(t *testing.T) {
	svc := NewActivityService(&fakeCreator{err: appErrors.ErrBackend}, nil)

	// must not panic or propagate
	svc.RecordUserEvent(context.Background(), "user-1", "Dana signed in")
}
