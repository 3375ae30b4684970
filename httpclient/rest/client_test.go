package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kbukum/accountkit/httpclient"
)

type tokenPermissions struct {
	Permissions map[string]map[string][]string `json:"permissions"`
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if ct := r.Header.Get("Accept"); ct != "application/json" {
			t.Errorf("expected Accept: application/json, got %s", ct)
		}
		json.NewEncoder(w).Encode(tokenPermissions{
			Permissions: map[string]map[string][]string{
				"compute": {"instances:read": {"srv-1"}},
			},
		})
	}))
	defer srv.Close()

	c, err := New(httpclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := Get[tokenPermissions](context.Background(), c, "/tokens/abc/permissions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Data.Permissions["compute"]["instances:read"]; len(got) != 1 || got[0] != "srv-1" {
		t.Errorf("unexpected decoded permissions: %v", resp.Data.Permissions)
	}
}

func TestGet_WithQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	defer srv.Close()

	c, err := New(httpclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Get[map[string]string](context.Background(), c, "/things",
		WithQuery(map[string]string{"page": "2"}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet_WithAuthOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(httpclient.HeaderAuthToken); got != "override" {
			t.Errorf("expected token override, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c, err := New(httpclient.Config{
		BaseURL: srv.URL,
		Auth:    httpclient.TokenAuth("default"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Get[map[string]string](context.Background(), c, "/things",
		WithAuth(httpclient.TokenAuth("override")),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(201)
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	c, err := New(httpclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := Post[map[string]string](context.Background(), c, "/things", map[string]string{"name": "t"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
	if resp.Data["name"] != "t" {
		t.Errorf("expected echoed body, got %v", resp.Data)
	}
}

func TestGet_ErrorResponseStillDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		json.NewEncoder(w).Encode(map[string]string{"error": "unknown token"})
	}))
	defer srv.Close()

	c, err := New(httpclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := Get[map[string]string](context.Background(), c, "/tokens/nope/permissions")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !httpclient.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
	if resp == nil || resp.Data["error"] != "unknown token" {
		t.Errorf("expected decoded error body, got %+v", resp)
	}
}

func TestNewFromClient(t *testing.T) {
	base, err := httpclient.New(httpclient.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewFromClient(base)
	if c.HTTP() != base {
		t.Error("HTTP() should return the underlying client")
	}
}
