package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDo_BaseURLJoining(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tokens/abc/permissions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	// Trailing slash on base, leading slash on path: must not double up.
	c, err := New(Config{BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/tokens/abc/permissions"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestDo_DefaultHeadersAndAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("expected Accept header, got %q", got)
		}
		if got := r.Header.Get(HeaderAuthToken); got != "tok-1" {
			t.Errorf("expected auth token header, got %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "accountkit-test/1.0" {
			t.Errorf("expected custom user agent, got %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(Config{
		BaseURL:   srv.URL,
		UserAgent: "accountkit-test/1.0",
		Headers:   map[string]string{"Accept": "application/json"},
		Auth:      TokenAuth("tok-1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_RequestIDStamped(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(HeaderRequestID))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(seen) != 2 || seen[0] == "" || seen[1] == "" {
		t.Fatalf("expected a request ID on every call, got %v", seen)
	}
	if seen[0] == seen[1] {
		t.Error("request IDs should differ between calls")
	}
}

func TestDo_RequestIDNotOverridden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(HeaderRequestID); got != "caller-id" {
			t.Errorf("caller-supplied request ID replaced with %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Do(context.Background(), Request{
		Method:  http.MethodGet,
		Path:    "/",
		Headers: map[string]string{HeaderRequestID: "caller-id"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_ErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(410)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err == nil {
		t.Fatal("expected error for 410")
	}
	if !IsGone(err) {
		t.Errorf("expected gone error, got %v", err)
	}
	// The response is still returned alongside the error.
	if resp == nil || resp.StatusCode != 410 {
		t.Errorf("expected response with status 410, got %+v", resp)
	}
}

func TestDo_ConnectionError(t *testing.T) {
	c, err := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !IsConnection(err) {
		t.Errorf("expected connection error, got %v", err)
	}
}

func TestDo_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Do(ctx, Request{Method: http.MethodGet, Path: "/"})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !IsTimeout(err) {
		t.Errorf("expected timeout error, got %v", err)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Timeout != defaultTimeout {
		t.Errorf("expected default timeout %v, got %v", defaultTimeout, cfg.Timeout)
	}
}

func TestConfig_ValidateTLS(t *testing.T) {
	cfg := Config{TLS: &TLSConfig{CertFile: "cert.pem"}}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for cert without key")
	}
}
