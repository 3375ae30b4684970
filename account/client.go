package account

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kbukum/accountkit/httpclient"
	"github.com/kbukum/accountkit/httpclient/rest"
	"github.com/kbukum/accountkit/logger"
	"github.com/kbukum/accountkit/version"
)

// Client talks to the account API. It holds an immutable auth token and
// base URL; it is safe to reuse sequentially, and every call is an
// independent remote lookup.
type Client struct {
	rest  *rest.Client
	token string
	log   *logger.Logger
}

// New creates an account client from the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rc, err := rest.New(httpclient.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: version.UserAgent(),
		TLS:       cfg.TLS,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		rest:  rc,
		token: cfg.Token,
		log:   logger.New(&cfg.Logging, "accountkit").WithComponent("account"),
	}, nil
}

// WithToken returns a copy of the client that authenticates with a
// different token. The receiver is left untouched.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Token returns the auth token the client is configured with.
func (c *Client) Token() string {
	return c.token
}

// GetResources returns the resource names the configured token is granted,
// narrowed by the filter. A client without a token has no permissions:
// the result is empty and no remote call is made.
//
// Unknown tokens surface as a bad-token error, expired tokens as an
// expired-token error (both matched by IsInvalidToken); any other backend
// failure is propagated unchanged.
func (c *Client) GetResources(ctx context.Context, filter ResourceFilter) ([]string, error) {
	if c.token == "" {
		c.log.Debug("no auth token configured, skipping permission lookup")
		return []string{}, nil
	}

	path := "/tokens/" + url.PathEscape(c.token) + "/permissions"
	resp, err := rest.Get[permissionsResponse](ctx, c.rest, path,
		rest.WithAuth(httpclient.TokenAuth(c.token)),
	)
	if err != nil {
		switch httpclient.StatusCodeOf(err) {
		case http.StatusNotFound:
			c.log.Warn("auth token unknown to account API")
			return nil, NewBadTokenError(err)
		case http.StatusGone:
			c.log.Warn("auth token expired")
			return nil, NewExpiredTokenError(err)
		}
		return nil, err
	}

	resources := resp.Data.Permissions.Resources(filter)
	c.log.Debug("resolved token permissions", logger.Fields(
		logger.FieldOperation, "get_resources",
		"resources", len(resources),
	))
	return resources, nil
}

// HasPermission reports whether the token is granted at least one resource
// matching the filter. Error behavior is identical to GetResources.
func (c *Client) HasPermission(ctx context.Context, filter ResourceFilter) (bool, error) {
	resources, err := c.GetResources(ctx, filter)
	if err != nil {
		return false, err
	}
	return len(resources) > 0, nil
}
