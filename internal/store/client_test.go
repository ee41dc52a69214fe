package store

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableturnerr/dashboard-api/internal/models"
	"github.com/tableturnerr/dashboard-api/pkg/config"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
)

const testBaseURL = "http://records.test"

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client := New(config.BackendConfig{
		BaseURL: testBaseURL,
		Timeout: 5 * time.Second,
	})
	httpmock.ActivateNonDefault(client.http)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func TestClientListBuildsQuery(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/collections/notes/records",
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "1", q.Get("page"))
			assert.Equal(t, "200", q.Get("perPage"))
			assert.Equal(t, "-updated", q.Get("sort"))
			assert.Equal(t, "created_by", q.Get("expand"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]interface{}{
				"page":       1,
				"perPage":    200,
				"totalItems": 2,
				"totalPages": 1,
				"items": []map[string]interface{}{
					{"id": "n1", "title": "First"},
					{"id": "n2", "title": "Second", "is_deleted": true},
				},
			})
		})

	result, err := client.List(context.Background(), CollectionNotes, 1, 200, ListOptions{
		Sort:   "-updated",
		Expand: "created_by",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalItems)

	var fetched []models.Note
	require.NoError(t, result.Decode(&fetched))
	require.Len(t, fetched, 2)
	assert.Equal(t, "n1", fetched[0].ID)
	assert.True(t, fetched[1].IsDeleted)
}

func TestClientListFilter(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/collections/users/records",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, `status != "suspended"`, req.URL.Query().Get("filter"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]interface{}{
				"page": 1, "perPage": 1, "totalItems": 7, "totalPages": 7, "items": []interface{}{},
			})
		})

	result, err := client.List(context.Background(), CollectionUsers, 1, 1, ListOptions{
		Filter: `status != "suspended"`,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, result.TotalItems)
}

func TestClientAttachesToken(t *testing.T) {
	client := newTestClient(t)
	client.SetToken("session-token")

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/collections/notes/records/n1",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "session-token", req.Header.Get("Authorization"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]interface{}{"id": "n1"})
		})

	var note models.Note
	require.NoError(t, client.GetOne(context.Background(), CollectionNotes, "n1", ListOptions{}, &note))
	assert.Equal(t, "n1", note.ID)
}

func TestClientCreateAndUpdate(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/collections/notes/records",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]interface{}{
			"id": "created-1", "title": "Untitled",
		}))
	httpmock.RegisterResponder(http.MethodPatch, testBaseURL+"/api/collections/notes/records/created-1",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]interface{}{
			"id": "created-1", "title": "Renamed",
		}))

	var created models.Note
	err := client.Create(context.Background(), CollectionNotes, map[string]interface{}{"title": "Untitled"}, &created)
	require.NoError(t, err)
	assert.Equal(t, "created-1", created.ID)

	var updated models.Note
	err = client.Update(context.Background(), CollectionNotes, "created-1", map[string]interface{}{"title": "Renamed"}, &updated)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestClientErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, appErrors.ErrValidation.Code},
		{http.StatusUnauthorized, appErrors.ErrUnauthorized.Code},
		{http.StatusForbidden, appErrors.ErrForbidden.Code},
		{http.StatusNotFound, appErrors.ErrNotFound.Code},
		{http.StatusInternalServerError, appErrors.ErrBackend.Code},
	}

	client := newTestClient(t)
	for _, tc := range cases {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/collections/notes/records/n1",
			httpmock.NewJsonResponderOrPanic(tc.status, map[string]interface{}{
				"code": tc.status, "message": "nope",
			}))

		err := client.GetOne(context.Background(), CollectionNotes, "n1", ListOptions{}, &models.Note{})
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, tc.code, appErr.Code)
		assert.Equal(t, "nope", appErr.Message)
	}
}

func TestClientTransportFailure(t *testing.T) {
	client := New(config.BackendConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 100 * time.Millisecond,
	})

	err := client.Delete(context.Background(), CollectionNotes, "n1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrBackend.Code, appErrors.FromError(err).Code)
}

func TestClientAuthWithPasswordInstallsToken(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/collections/users/auth-with-password",
		httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]interface{}{
			"token":  "fresh-token",
			"record": map[string]interface{}{"id": "user-1", "email": "dana@example.com"},
		}))

	result, err := client.AuthWithPassword(context.Background(), "dana@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", result.Token)
	assert.Equal(t, "user-1", result.Record.ID)
	assert.Equal(t, "fresh-token", client.Token())
}

func TestClientAuthRefreshRotatesToken(t *testing.T) {
	client := newTestClient(t)
	client.SetToken("stale-token")

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/collections/users/auth-refresh",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "stale-token", req.Header.Get("Authorization"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]interface{}{
				"token":  "rotated-token",
				"record": map[string]interface{}{"id": "user-1"},
			})
		})

	result, err := client.AuthRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rotated-token", result.Token)
	assert.Equal(t, "rotated-token", client.Token())
}

func TestClientAuthRefreshRejected(t *testing.T) {
	client := newTestClient(t)
	client.SetToken("bad-token")

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/collections/users/auth-refresh",
		httpmock.NewJsonResponderOrPanic(http.StatusUnauthorized, map[string]interface{}{
			"code": 401, "message": "The request requires valid record authorization token to be set.",
		}))

	_, err := client.AuthRefresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
