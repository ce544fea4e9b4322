/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtfake

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/UnifyEM/DTConsole/common/fields"
	"github.com/UnifyEM/DTConsole/common/schema"
)

// JHandler returns a response to be serialized by wrap
type JHandler func(req *http.Request, body []byte) JResponse

// JResponse is written as JSON unless Text is set
type JResponse struct {
	HTTPCode   int
	JSONData   any
	Text       string
	TotalCount int // sets X-Total-Count when > 0
}

type Route struct {
	Name     string
	Methods  []string
	Pattern  string
	Auth     bool
	JHandler JHandler
}

func (s *Server) routes() []Route {
	return []Route{
		{Name: "version", Methods: []string{http.MethodGet}, Pattern: schema.EndpointVersion, JHandler: s.handleVersion},
		{Name: "login", Methods: []string{http.MethodPost}, Pattern: schema.EndpointLogin, JHandler: s.handleLogin},
		{Name: "self", Methods: []string{http.MethodGet}, Pattern: schema.EndpointUserSelf, Auth: true, JHandler: s.handleSelf},
		{Name: "list_managed_users", Methods: []string{http.MethodGet}, Pattern: schema.EndpointUserManaged, Auth: true, JHandler: s.handleManagedUsers},
		{Name: "list_ldap_users", Methods: []string{http.MethodGet}, Pattern: schema.EndpointUserLDAP, Auth: true, JHandler: s.handleLDAPUsers},
		{Name: "list_teams", Methods: []string{http.MethodGet}, Pattern: schema.EndpointTeam, Auth: true, JHandler: s.handleTeams},
		{Name: "create_project", Methods: []string{http.MethodPut}, Pattern: schema.EndpointProject, Auth: true, JHandler: s.handleCreateProject},
		{Name: "list_projects", Methods: []string{http.MethodGet}, Pattern: schema.EndpointProject, Auth: true, JHandler: s.handleListProjects},
		{Name: "update_project", Methods: []string{http.MethodPost}, Pattern: schema.EndpointProject, Auth: true, JHandler: s.handleUpdateProject},
		{Name: "delete_project", Methods: []string{http.MethodDelete}, Pattern: schema.EndpointProject, Auth: true, JHandler: s.handleDeleteProject},
		{Name: "get_project", Methods: []string{http.MethodGet}, Pattern: schema.EndpointProject + "/{uuid}", Auth: true, JHandler: s.handleGetProject},
		{Name: "create_component", Methods: []string{http.MethodPut}, Pattern: schema.EndpointComponent, Auth: true, JHandler: s.handleCreateComponent},
		{Name: "list_components", Methods: []string{http.MethodGet}, Pattern: schema.EndpointComponent, Auth: true, JHandler: s.handleListComponents},
		{Name: "get_component", Methods: []string{http.MethodGet}, Pattern: schema.EndpointComponent + "/{uuid}", Auth: true, JHandler: s.handleGetComponent},
		{Name: "list_licenses", Methods: []string{http.MethodGet}, Pattern: schema.EndpointLicense, Auth: true, JHandler: s.handleListLicenses},
	}
}

// wrap records the request, enforces authentication and writes the JResponse
func (s *Server) wrap(route Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)

		s.mu.Lock()
		s.requests = append(s.requests, Recorded{
			Route:         route.Name,
			Method:        req.Method,
			Path:          req.URL.Path,
			Query:         req.URL.RawQuery,
			Authorization: req.Header.Get(schema.HeaderAuthorization),
			ContentType:   req.Header.Get("Content-Type"),
			Body:          string(body),
		})
		forced := s.forced[route.Name]
		s.mu.Unlock()

		var resp JResponse
		switch {
		case forced != 0:
			resp = JResponse{HTTPCode: forced, Text: http.StatusText(forced)}
		case route.Auth && s.principal(req) == "":
			resp = JResponse{HTTPCode: http.StatusUnauthorized, Text: http.StatusText(http.StatusUnauthorized)}
		default:
			resp = route.JHandler(req, body)
		}

		s.logger.Debug(4002, "dtfake request",
			fields.NewFields(
				fields.NewField("route", route.Name),
				fields.NewField("method", req.Method),
				fields.NewField("uri", req.RequestURI),
				fields.NewField("status", resp.HTTPCode)))

		s.write(w, resp)
	})
}

func (s *Server) write(w http.ResponseWriter, resp JResponse) {
	if resp.TotalCount > 0 {
		w.Header().Set(schema.HeaderTotalCount, strconv.Itoa(resp.TotalCount))
	}

	if resp.JSONData == nil {
		if resp.Text != "" {
			w.Header().Set("Content-Type", schema.ContentTypeText)
		}
		w.WriteHeader(resp.HTTPCode)
		_, _ = io.WriteString(w, resp.Text)
		return
	}

	w.Header().Set("Content-Type", schema.ContentTypeJSON)
	w.WriteHeader(resp.HTTPCode)
	if err := json.NewEncoder(w).Encode(resp.JSONData); err != nil {
		s.logger.Errorf(4003, "error writing response: %s", err.Error())
	}
}

// principal returns the user owning the request's bearer token, or ""
func (s *Server) principal(req *http.Request) string {
	token, ok := strings.CutPrefix(req.Header.Get(schema.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return ""
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[token]
}

func (s *Server) createToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    "Dependency-Track",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLife)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
}
