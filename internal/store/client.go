package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/tableturnerr/dashboard-api/pkg/config"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
)

// Client is a generic collection-oriented client for the remote record
// service. It exposes list/create/update/delete per named collection plus the
// password auth flow; all query semantics (sorting, filtering, relation
// expansion) are evaluated server-side.
type Client struct {
	baseURL        string
	userCollection string
	http           *http.Client

	mu    sync.RWMutex
	token string
}

// New constructs a Client from backend configuration.
func New(cfg config.BackendConfig) *Client {
	userCollection := cfg.UserCollection
	if userCollection == "" {
		userCollection = CollectionUsers
	}
	return &Client{
		baseURL:        cfg.BaseURL,
		userCollection: userCollection,
		http:           &http.Client{Timeout: cfg.Timeout},
	}
}

// SetToken installs the session token attached to subsequent requests.
// An empty token clears authentication.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the currently installed session token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// ListOptions mirror the query surface of the record service list endpoint.
type ListOptions struct {
	Sort   string
	Filter string
	Expand string
}

// ListResult is one page of records from a collection.
type ListResult struct {
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalItems int             `json:"totalItems"`
	TotalPages int             `json:"totalPages"`
	Items      json.RawMessage `json:"items"`
}

// Decode unmarshals the page items into a typed slice.
func (r *ListResult) Decode(dest interface{}) error {
	if r == nil || len(r.Items) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Items, dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrBackend.Code, appErrors.ErrBackend.Status, "decode list items")
	}
	return nil
}

// List fetches one page of a collection.
func (c *Client) List(ctx context.Context, collection string, page, perPage int, opts ListOptions) (*ListResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))
	if opts.Sort != "" {
		query.Set("sort", opts.Sort)
	}
	if opts.Filter != "" {
		query.Set("filter", opts.Filter)
	}
	if opts.Expand != "" {
		query.Set("expand", opts.Expand)
	}

	var result ListResult
	path := fmt.Sprintf("/api/collections/%s/records", url.PathEscape(collection))
	if err := c.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOne fetches a single record by id.
func (c *Client) GetOne(ctx context.Context, collection, id string, opts ListOptions, dest interface{}) error {
	query := url.Values{}
	if opts.Expand != "" {
		query.Set("expand", opts.Expand)
	}
	path := fmt.Sprintf("/api/collections/%s/records/%s", url.PathEscape(collection), url.PathEscape(id))
	return c.do(ctx, http.MethodGet, path, query, nil, dest)
}

// Create inserts a record and decodes the created record into dest when
// dest is non-nil.
func (c *Client) Create(ctx context.Context, collection string, data interface{}, dest interface{}) error {
	path := fmt.Sprintf("/api/collections/%s/records", url.PathEscape(collection))
	return c.do(ctx, http.MethodPost, path, nil, data, dest)
}

// Update applies a partial update to a record.
func (c *Client) Update(ctx context.Context, collection, id string, partial interface{}, dest interface{}) error {
	path := fmt.Sprintf("/api/collections/%s/records/%s", url.PathEscape(collection), url.PathEscape(id))
	return c.do(ctx, http.MethodPatch, path, nil, partial, dest)
}

// Delete permanently removes a record. Irreversible.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	path := fmt.Sprintf("/api/collections/%s/records/%s", url.PathEscape(collection), url.PathEscape(id))
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

type backendError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, dest interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrBackend.Code, appErrors.ErrBackend.Status, "record service unreachable")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrBackend.Code, appErrors.ErrBackend.Status, "decode response")
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload backendError
	_ = json.Unmarshal(raw, &payload)
	message := payload.Message
	if message == "" {
		message = fmt.Sprintf("record service returned status %d", resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return appErrors.New(appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	case http.StatusUnauthorized:
		return appErrors.New(appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, message)
	case http.StatusForbidden:
		return appErrors.New(appErrors.ErrForbidden.Code, appErrors.ErrForbidden.Status, message)
	case http.StatusNotFound:
		return appErrors.New(appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, message)
	default:
		return appErrors.New(appErrors.ErrBackend.Code, appErrors.ErrBackend.Status, message)
	}
}
