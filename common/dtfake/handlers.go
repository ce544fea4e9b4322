/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtfake

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/UnifyEM/DTConsole/common/schema"
)

func text(code int) JResponse {
	return JResponse{HTTPCode: code, Text: http.StatusText(code)}
}

func (s *Server) handleNotFound(_ *http.Request, _ []byte) JResponse {
	return text(http.StatusNotFound)
}

func (s *Server) handleMethodNotAllowed(_ *http.Request, _ []byte) JResponse {
	return text(http.StatusMethodNotAllowed)
}

func (s *Server) handleVersion(_ *http.Request, _ []byte) JResponse {
	return JResponse{HTTPCode: http.StatusOK, JSONData: s.about}
}

func (s *Server) handleLogin(req *http.Request, body []byte) JResponse {
	if !strings.HasPrefix(req.Header.Get("Content-Type"), schema.ContentTypeForm) {
		return text(http.StatusBadRequest)
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		return text(http.StatusBadRequest)
	}
	username := form.Get(schema.LoginFieldUsername)
	password := form.Get(schema.LoginFieldPassword)

	s.mu.Lock()
	expected, ok := s.users[username]
	s.mu.Unlock()
	if !ok || expected != password {
		return text(http.StatusUnauthorized)
	}

	token, err := s.Issue(username)
	if err != nil {
		return text(http.StatusInternalServerError)
	}
	return JResponse{HTTPCode: http.StatusOK, Text: token}
}

func (s *Server) handleSelf(req *http.Request, _ []byte) JResponse {
	username := s.principal(req)
	s.mu.Lock()
	defer s.mu.Unlock()
	p := schema.Principal{Username: username}
	for _, u := range s.managed {
		if u.Username == username {
			p.Fullname = u.Fullname
			p.Email = u.Email
			p.Teams = u.Teams
		}
	}
	return JResponse{HTTPCode: http.StatusOK, JSONData: p}
}

func (s *Server) handleManagedUsers(_ *http.Request, _ []byte) JResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return JResponse{HTTPCode: http.StatusOK, JSONData: s.managed, TotalCount: len(s.managed)}
}

func (s *Server) handleLDAPUsers(_ *http.Request, _ []byte) JResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return JResponse{HTTPCode: http.StatusOK, JSONData: s.ldap, TotalCount: len(s.ldap)}
}

func (s *Server) handleTeams(_ *http.Request, _ []byte) JResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return JResponse{HTTPCode: http.StatusOK, JSONData: s.teams, TotalCount: len(s.teams)}
}

func (s *Server) handleCreateProject(_ *http.Request, body []byte) JResponse {
	var in schema.ProjectCreateRequest
	if err := json.Unmarshal(body, &in); err != nil || in.Name == "" {
		return text(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.Name == in.Name && p.Version == in.Version {
			return text(http.StatusConflict)
		}
	}
	p := schema.Project{
		UUID:        uuid.NewString(),
		Name:        in.Name,
		Version:     in.Version,
		Description: in.Description,
		Tags:        in.Tags,
	}
	s.projects = append(s.projects, p)
	return JResponse{HTTPCode: http.StatusCreated, JSONData: p}
}

func (s *Server) handleListProjects(req *http.Request, _ []byte) JResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]schema.Project, 0, len(s.projects))
	search := strings.ToLower(req.URL.Query().Get(schema.QuerySearchText))
	for _, p := range s.projects {
		if search == "" || strings.Contains(strings.ToLower(p.Name), search) {
			matched = append(matched, p)
		}
	}
	return JResponse{HTTPCode: http.StatusOK, JSONData: paginate(req, matched), TotalCount: len(matched)}
}

func (s *Server) handleGetProject(req *http.Request, _ []byte) JResponse {
	id := mux.Vars(req)["uuid"]
	if _, err := uuid.Parse(id); err != nil {
		return text(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.UUID == id {
			return JResponse{HTTPCode: http.StatusOK, JSONData: p}
		}
	}
	return text(http.StatusNotFound)
}

func (s *Server) handleUpdateProject(_ *http.Request, body []byte) JResponse {
	var in schema.ProjectUpdateRequest
	if err := json.Unmarshal(body, &in); err != nil || in.UUID == "" {
		return text(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.UUID == in.UUID {
			s.projects[i] = schema.Project{
				UUID:        in.UUID,
				Name:        in.Name,
				Version:     in.Version,
				Description: in.Description,
				Tags:        in.Tags,
			}
			return JResponse{HTTPCode: http.StatusOK, JSONData: s.projects[i]}
		}
	}
	return text(http.StatusNotFound)
}

func (s *Server) handleDeleteProject(_ *http.Request, body []byte) JResponse {
	var in schema.ProjectDeleteRequest
	if err := json.Unmarshal(body, &in); err != nil || in.UUID == "" {
		return text(http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.UUID == in.UUID {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return JResponse{HTTPCode: http.StatusNoContent}
		}
	}
	return text(http.StatusNotFound)
}

func (s *Server) handleCreateComponent(_ *http.Request, body []byte) JResponse {
	var in schema.ComponentCreateRequest
	if err := json.Unmarshal(body, &in); err != nil || in.Name == "" {
		return text(http.StatusBadRequest)
	}

	c := schema.Component{
		UUID:        uuid.NewString(),
		Name:        in.Name,
		Version:     in.Version,
		Group:       in.Group,
		Description: in.Description,
		License:     in.License,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.licenses {
		if s.licenses[i].LicenseID == in.License {
			l := s.licenses[i]
			c.ResolvedLicense = &l
		}
	}
	s.components = append(s.components, c)
	return JResponse{HTTPCode: http.StatusCreated, JSONData: c}
}

func (s *Server) handleListComponents(req *http.Request, _ []byte) JResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.components) == 0 {
		// An empty catalogue answers 404
		return text(http.StatusNotFound)
	}
	return JResponse{HTTPCode: http.StatusOK, JSONData: paginate(req, s.components), TotalCount: len(s.components)}
}

func (s *Server) handleGetComponent(req *http.Request, _ []byte) JResponse {
	id := mux.Vars(req)["uuid"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.components {
		if c.UUID == id {
			return JResponse{HTTPCode: http.StatusOK, JSONData: c}
		}
	}
	return text(http.StatusNotFound)
}

func (s *Server) handleListLicenses(req *http.Request, _ []byte) JResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return JResponse{HTTPCode: http.StatusOK, JSONData: paginate(req, s.licenses), TotalCount: len(s.licenses)}
}

// paginate applies 1-based pageNumber and pageSize query parameters
func paginate[T any](req *http.Request, items []T) []T {
	q := req.URL.Query()
	size, err := strconv.Atoi(q.Get(schema.QueryPageSize))
	if err != nil || size < 1 {
		return items
	}
	page, err := strconv.Atoi(q.Get(schema.QueryPageNumber))
	if err != nil || page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}
