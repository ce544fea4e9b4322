/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package dtfake serves an in-memory stand-in for the Dependency-Track API
// over httptest. It implements the endpoints the console uses with the same
// status codes, issues HS256 JWTs at login, and records every request so
// tests can assert on method, path, headers and body.
package dtfake

import (
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/net/netutil"

	"github.com/UnifyEM/DTConsole/common/interfaces"
	"github.com/UnifyEM/DTConsole/common/null"
	"github.com/UnifyEM/DTConsole/common/schema"
)

// Server is a running stand-in. Close it when done.
type Server struct {
	ts            *httptest.Server
	logger        interfaces.Logger
	contextPath   string
	maxConcurrent int
	tokenLife     time.Duration
	jwtKey        []byte
	about         schema.About

	mu         sync.Mutex
	users      map[string]string // username -> password
	sessions   map[string]string // token -> username
	projects   []schema.Project
	components []schema.Component
	licenses   []schema.License
	teams      []schema.Team
	managed    []schema.ManagedUser
	ldap       []schema.LDAPUser
	requests   []Recorded
	forced     map[string]int // route name -> status to return instead
}

// Recorded is one request as the server saw it
type Recorded struct {
	Route         string
	Method        string
	Path          string
	Query         string
	Authorization string
	ContentType   string
	Body          string
}

// Option configures a Server before it starts
type Option func(*Server) error

// Start returns a running server. The API is rooted at URL().
func Start(options ...Option) (*Server, error) {
	s := &Server{
		logger:        null.Logger(),
		contextPath:   schema.DefaultAPIContextPath,
		maxConcurrent: 50,
		tokenLife:     time.Hour,
		jwtKey:        []byte(uuid.NewString()),
		about: schema.About{
			Version:     "4.12.0",
			Application: "Dependency-Track",
			UUID:        uuid.NewString(),
			Framework:   &schema.Framework{Name: "Alpine", Version: "3.1.0"},
		},
		users:    map[string]string{"admin": "admin"},
		sessions: make(map[string]string),
		forced:   make(map[string]int),
		licenses: []schema.License{
			{UUID: uuid.NewString(), LicenseID: "Apache-2.0", Name: "Apache License 2.0", IsOsiApproved: true, IsFsfLibre: true},
			{UUID: uuid.NewString(), LicenseID: "MIT", Name: "MIT License", IsOsiApproved: true, IsFsfLibre: true},
		},
		teams: []schema.Team{
			{UUID: uuid.NewString(), Name: "Administrators", Permissions: []schema.Permission{{Name: "ACCESS_MANAGEMENT"}}},
			{UUID: uuid.NewString(), Name: "Automation"},
		},
		managed: []schema.ManagedUser{{Username: "admin", Fullname: "Administrator"}},
		ldap:    []schema.LDAPUser{{Username: "jdoe", DN: "cn=jdoe,dc=example,dc=com"}},
	}

	for _, op := range options {
		if err := op(s); err != nil {
			return nil, err
		}
	}

	router := mux.NewRouter()
	api := router
	if s.contextPath != "" {
		api = router.PathPrefix(s.contextPath).Subrouter()
	}
	for _, route := range s.routes() {
		api.Handle(route.Pattern, s.wrap(route)).Methods(route.Methods...)
	}
	router.NotFoundHandler = s.wrap(Route{Name: "not_found", JHandler: s.handleNotFound})
	router.MethodNotAllowedHandler = s.wrap(Route{Name: "method_not_allowed", JHandler: s.handleMethodNotAllowed})

	s.ts = httptest.NewUnstartedServer(router)
	s.ts.Listener = netutil.LimitListener(s.ts.Listener, s.maxConcurrent)
	s.ts.Start()

	s.logger.Infof(4001, "dtfake listening on %s", s.ts.URL)
	return s, nil
}

// URL returns the API context path, e.g. http://127.0.0.1:41234/api
func (s *Server) URL() string {
	return s.ts.URL + s.contextPath
}

func (s *Server) Close() {
	s.ts.Close()
}

// WithContextPath sets the API prefix. Use "" to serve at the root.
func WithContextPath(p string) Option {
	return func(s *Server) error {
		if p != "" && !strings.HasPrefix(p, "/") {
			return errors.New("context path must start with /")
		}
		s.contextPath = strings.TrimRight(p, "/")
		return nil
	}
}

// WithUser adds an account that can log in
func WithUser(username, password string) Option {
	return func(s *Server) error {
		if username == "" {
			return errors.New("username is required")
		}
		s.users[username] = password
		return nil
	}
}

// WithTokenLife sets the lifetime of issued tokens. Negative values issue expired tokens.
func WithTokenLife(d time.Duration) Option {
	return func(s *Server) error {
		s.tokenLife = d
		return nil
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		s.logger = logger
		return nil
	}
}

// WithMaxConcurrent limits simultaneous connections
func WithMaxConcurrent(n int) Option {
	return func(s *Server) error {
		if n < 1 {
			return errors.New("max concurrent must be at least 1")
		}
		s.maxConcurrent = n
		return nil
	}
}

// ForceStatus makes the named route answer with code until cleared with 0
func (s *Server) ForceStatus(route string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code == 0 {
		delete(s.forced, route)
		return
	}
	s.forced[route] = code
}

// Requests returns a copy of everything received so far
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recorded, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request
func (s *Server) LastRequest() (Recorded, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Recorded{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Issue logs username in directly and returns the token
func (s *Server) Issue(username string) (string, error) {
	token, err := s.createToken(username)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[token] = username
	s.mu.Unlock()
	return token, nil
}

// Projects returns a copy of the stored projects
func (s *Server) Projects() []schema.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]schema.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// AddProject stores p, assigning a UUID when it has none
func (s *Server) AddProject(p schema.Project) schema.Project {
	if p.UUID == "" {
		p.UUID = uuid.NewString()
	}
	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.mu.Unlock()
	return p
}

// AddComponent stores c, assigning a UUID when it has none
func (s *Server) AddComponent(c schema.Component) schema.Component {
	if c.UUID == "" {
		c.UUID = uuid.NewString()
	}
	s.mu.Lock()
	s.components = append(s.components, c)
	s.mu.Unlock()
	return c
}
