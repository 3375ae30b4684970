// Package httpclient provides the configurable HTTP client accountkit uses
// to talk to the account API, with built-in authentication, TLS, request
// correlation, and structured error classification.
//
// The base Client handles HTTP protocol concerns. The rest subpackage adds
// a JSON-focused layer with generic typed methods.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://account.cloud.online.net/",
//	    Timeout: 30 * time.Second,
//	    Auth:    httpclient.TokenAuth("9de8f869-..."),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/tokens/9de8f869-.../permissions",
//	})
//
// Errors carry the HTTP status code and a classification that callers check
// with the Is* predicates or by unwrapping *httpclient.Error.
package httpclient
