package accounttest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/kbukum/accountkit/account"
)

// Server is an in-process fake account API.
type Server struct {
	srv *httptest.Server

	mu          sync.Mutex
	permissions map[string]account.PermissionTree
	tokenStatus map[string]int
	quotas      map[string]map[string]float64
	calls       int
	lastToken   string
}

// NewServer starts a fake account API. Callers must Close it when done.
func NewServer() *Server {
	s := &Server{
		permissions: make(map[string]account.PermissionTree),
		tokenStatus: make(map[string]int),
		quotas:      make(map[string]map[string]float64),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// URL returns the base URL of the fake API.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the fake API down.
func (s *Server) Close() {
	s.srv.Close()
}

// SetPermissions registers the permission tree served for a token.
func (s *Server) SetPermissions(token string, tree account.PermissionTree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.permissions[token] = tree
}

// SetTokenStatus forces an HTTP status for a token's permission lookups,
// e.g. 410 to simulate an expired token.
func (s *Server) SetTokenStatus(token string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenStatus[token] = status
}

// SetQuotas registers the quotas served for an organization.
func (s *Server) SetQuotas(organization string, quotas map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotas[organization] = quotas
}

// Calls returns how many requests the fake API has received.
func (s *Server) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastAuthToken returns the X-Auth-Token header of the most recent request.
func (s *Server) LastAuthToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastToken
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls++
	s.lastToken = r.Header.Get("X-Auth-Token")
	s.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 3 && parts[0] == "tokens" && parts[2] == "permissions":
		s.servePermissions(w, parts[1])
	case len(parts) == 3 && parts[0] == "organizations" && parts[2] == "quotas":
		s.serveQuotas(w, parts[1])
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) servePermissions(w http.ResponseWriter, token string) {
	s.mu.Lock()
	status, forced := s.tokenStatus[token]
	tree, known := s.permissions[token]
	s.mu.Unlock()

	if forced {
		writeError(w, status)
		return
	}
	if !known {
		writeError(w, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]account.PermissionTree{"permissions": tree})
}

func (s *Server) serveQuotas(w http.ResponseWriter, organization string) {
	s.mu.Lock()
	quotas, known := s.quotas[organization]
	s.mu.Unlock()

	if !known {
		writeError(w, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]map[string]float64{"quotas": quotas})
}

func writeError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": http.StatusText(status)})
}
