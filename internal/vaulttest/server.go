package vaulttest

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Endpoint paths served by [Server].
const (
	PathIterations = "/iterations.php"
	PathLogin      = "/login.php"
	PathAccounts   = "/getaccts.php"
	PathLogout     = "/logout.php"

	SessionCookie = "PHPSESSID"
)

// Server is a fake of the remote vault service. Fields may be changed by a
// test before the first request is made.
type Server struct {
	*httptest.Server

	Username   string
	Password   string
	Iterations int
	SessionID  string
	Blob       []byte

	// LoginBody, when non-empty, replaces the XML body of every login
	// response.
	LoginBody string

	// IterationsBody, when non-empty, replaces the iterations response.
	IterationsBody string

	// LogoutStatus, when non-zero, is returned by the logout endpoint.
	LogoutStatus int

	// AccountsStatus, when non-zero, is returned by the accounts endpoint.
	AccountsStatus int

	// Logger receives one debug line per request. Defaults to a no-op logger.
	Logger *logger.Logger

	mu         sync.Mutex
	calls      []string
	requestIDs []string
	sessions   map[string]bool
}

// NewServer starts a fake service for a single user. The server is closed
// when the test finishes.
func NewServer(t testing.TB, username, password string, iterations int, blob []byte) *Server {
	t.Helper()

	s := &Server{
		Username:   username,
		Password:   password,
		Iterations: iterations,
		SessionID:  "abc123",
		Blob:       blob,
		sessions:   make(map[string]bool),
		Logger:     logger.Nop(),
	}

	r := chi.NewRouter()
	r.Use(s.withRequestID, s.withLogging)
	r.Post(PathIterations, s.handleIterations)
	r.Post(PathLogin, s.handleLogin)
	r.Get(PathAccounts, s.handleAccounts)
	r.Get(PathLogout, s.handleLogout)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Server.Close)

	return s
}

// Calls returns the endpoint paths hit so far, in order.
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// RequestIDs returns the non-empty X-Request-ID values received so far, in
// order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// ActiveSessions returns the number of sessions not yet logged out.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, active := range s.sessions {
		if active {
			n++
		}
	}
	return n
}

func (s *Server) record(path string) {
	s.mu.Lock()
	s.calls = append(s.calls, path)
	s.mu.Unlock()
}

func (s *Server) handleIterations(w http.ResponseWriter, r *http.Request) {
	s.record(PathIterations)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("email") == "" {
		http.Error(w, "missing email", http.StatusBadRequest)
		return
	}

	body := s.IterationsBody
	if body == "" {
		body = strconv.Itoa(s.Iterations)
	}
	_, _ = w.Write([]byte(body))
}

type loginOK struct {
	XMLName xml.Name `xml:"response"`
	OK      struct {
		SessionID string `xml:"sessionid,attr"`
	} `xml:"ok"`
}

type loginError struct {
	XMLName xml.Name `xml:"response"`
	Error   struct {
		Message string `xml:"message,attr"`
		Cause   string `xml:"cause,attr"`
	} `xml:"error"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.record(PathLogin)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/xml")

	if s.LoginBody != "" {
		_, _ = w.Write([]byte(s.LoginBody))
		return
	}

	form := r.PostForm
	for key, want := range map[string]string{"method": "cr", "web": "1", "xml": "2"} {
		if form.Get(key) != want {
			http.Error(w, fmt.Sprintf("bad %s", key), http.StatusBadRequest)
			return
		}
	}

	wantHash, err := crypto.NewKeyChain().AuthHash(s.Username, s.Password, s.Iterations)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if form.Get("username") != s.Username ||
		form.Get("iterations") != strconv.Itoa(s.Iterations) ||
		form.Get("hash") != wantHash {
		var resp loginError
		resp.Error.Message = "Invalid username or password."
		resp.Error.Cause = "unknownpassword"
		_ = xml.NewEncoder(w).Encode(resp)
		return
	}

	s.mu.Lock()
	s.sessions[s.SessionID] = true
	s.mu.Unlock()

	var resp loginOK
	resp.OK.SessionID = s.SessionID
	_ = xml.NewEncoder(w).Encode(resp)
}

func (s *Server) session(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", false
	}
	id, err := url.PathUnescape(c.Value)
	if err != nil {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return id, s.sessions[id]
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	s.record(PathAccounts)
	if s.AccountsStatus != 0 {
		w.WriteHeader(s.AccountsStatus)
		return
	}

	q := r.URL.Query()
	if q.Get("mobile") != "1" || q.Get("hash") != "0.0" {
		http.Error(w, "bad query", http.StatusBadRequest)
		return
	}
	if _, ok := s.session(r); !ok {
		http.Error(w, "no session", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(s.Blob)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.record(PathLogout)
	if s.LogoutStatus != 0 {
		w.WriteHeader(s.LogoutStatus)
		return
	}

	id, ok := s.session(r)
	if !ok || r.URL.Query().Get("mobile") != "1" {
		http.Error(w, "no session", http.StatusForbidden)
		return
	}

	s.mu.Lock()
	s.sessions[id] = false
	s.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}
