package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/internal/store"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
)

type fakeGetter struct {
	call models.ColdCall
	err  error

	collection string
	id         string
	expand     string
}

func (f *fakeGetter) GetOne(_ context.Context, collection, id string, opts store.ListOptions, dest interface{}) error {
	f.collection = collection
	f.id = id
	f.expand = opts.Expand
	if f.err != nil {
		return f.err
	}
	*dest.(*models.ColdCall) = f.call
	return nil
}

func TestColdCallGetExpandsCompany(t *testing.T) {
	getter := &fakeGetter{call: models.ColdCall{ID: "cc1"}}
	svc := NewColdCallService(getter, nil)

	call, err := svc.Get(context.Background(), "cc1")
	require.NoError(t, err)
	assert.Equal(t, "cc1", call.ID)
	assert.Equal(t, store.CollectionColdCalls, getter.collection)
	assert.Equal(t, "company", getter.expand)
}

func TestColdCallGetRequiresID(t *testing.T) {
	svc := NewColdCallService(&fakeGetter{}, nil)

	_, err := svc.Get(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestColdCallGetNotFound(t *testing.T) {
	svc := NewColdCallService(&fakeGetter{err: appErrors.ErrNotFound}, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
