// Package rest provides a JSON-focused layer over httpclient with generic
// typed request methods:
//
//	c, _ := rest.New(httpclient.Config{BaseURL: "https://account.cloud.online.net/"})
//	resp, err := rest.Get[tokenPermissions](ctx, c, "/tokens/abc/permissions")
//
// All requests use Content-Type: application/json and Accept: application/json.
package rest
