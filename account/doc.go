// Package account is a client for the account API. It resolves whether an
// auth token grants a permission and reads per-organization resource
// quotas.
//
// Every call is a live lookup against the remote API; nothing is cached
// and nothing is retried.
//
// # Usage
//
//	client, err := account.New(account.Config{
//	    Token: "9de8f869-c58e-4aa3-9057-898dbf2af743",
//	})
//	if err != nil {
//	    return err
//	}
//
//	ok, err := client.HasPermission(ctx, account.ResourceFilter{
//	    Service: util.Ptr("compute"),
//	    Name:    util.Ptr("instances:read"),
//	})
//	if account.IsInvalidToken(err) {
//	    // re-authenticate
//	}
//
// Permission names are colon-delimited hierarchical paths matched by the
// permission package; a grant of "compute:*" covers a request for
// "compute:instances:read".
package account
