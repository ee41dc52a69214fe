package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tableturnerr/dashboard-api/internal/models"
)

// AuthResult is the outcome of a successful authentication call.
type AuthResult struct {
	Token  string      `json:"token"`
	Record models.User `json:"record"`
}

// AuthWithPassword authenticates against the user collection and installs the
// returned token on the client.
func (c *Client) AuthWithPassword(ctx context.Context, identity, password string) (*AuthResult, error) {
	path := fmt.Sprintf("/api/collections/%s/auth-with-password", url.PathEscape(c.userCollection))
	body := map[string]string{"identity": identity, "password": password}

	var result AuthResult
	if err := c.do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, err
	}
	c.SetToken(result.Token)
	return &result, nil
}

// AuthRefresh validates the installed token against the record service and
// rotates it. It fails when no token is installed or the token is rejected.
func (c *Client) AuthRefresh(ctx context.Context) (*AuthResult, error) {
	path := fmt.Sprintf("/api/collections/%s/auth-refresh", url.PathEscape(c.userCollection))

	var result AuthResult
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, err
	}
	c.SetToken(result.Token)
	return &result, nil
}
