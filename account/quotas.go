package account

import (
	"context"
	"net/url"

	"github.com/kbukum/accountkit/httpclient"
	"github.com/kbukum/accountkit/httpclient/rest"
	"github.com/kbukum/accountkit/logger"
	"github.com/kbukum/accountkit/util"
)

// GetQuotas returns the quotas of the given organization as a mapping from
// resource name to limit. Backend failures are propagated unchanged.
func (c *Client) GetQuotas(ctx context.Context, organization string) (map[string]float64, error) {
	if err := util.ValidateNonEmpty("organization", organization); err != nil {
		return nil, err
	}

	path := "/organizations/" + url.PathEscape(organization) + "/quotas"
	opts := []rest.RequestOption{}
	if c.token != "" {
		opts = append(opts, rest.WithAuth(httpclient.TokenAuth(c.token)))
	}

	resp, err := rest.Get[quotasResponse](ctx, c.rest, path, opts...)
	if err != nil {
		return nil, err
	}

	c.log.Debug("fetched organization quotas", logger.Fields(
		logger.FieldOperation, "get_quotas",
		logger.FieldOrganization, organization,
	))
	return resp.Data.Quotas, nil
}

// GetQuota looks up one quota of the organization. The boolean reports
// whether the resource has a quota at all.
func (c *Client) GetQuota(ctx context.Context, organization, resource string) (float64, bool, error) {
	quotas, err := c.GetQuotas(ctx, organization)
	if err != nil {
		return 0, false, err
	}
	limit, ok := quotas[resource]
	return limit, ok, nil
}

// HasQuota reports whether used is strictly below the organization's limit
// for the resource. A resource with no quota never has headroom: the
// result is false regardless of used.
func (c *Client) HasQuota(ctx context.Context, organization, resource string, used float64) (bool, error) {
	quotas, err := c.GetQuotas(ctx, organization)
	if err != nil {
		return false, err
	}
	limit, ok := quotas[resource]
	return ok && used < limit, nil
}
