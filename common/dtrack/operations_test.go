/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/DTConsole/common/dtfake"
	"github.com/UnifyEM/DTConsole/common/schema"
)

func TestVersion(t *testing.T) {
	srv := newFake(t)
	c, err := New(srv.URL())
	require.NoError(t, err)

	about, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dependency-Track", about.Application)
	assert.NotEmpty(t, about.Version)

	rec, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/version", rec.Path)
	assert.Empty(t, rec.Authorization)
}

func TestLogin(t *testing.T) {
	srv := newFake(t, dtfake.WithUser("alice", "s3cret"))
	c, err := New(srv.URL())
	require.NoError(t, err)

	token, err := c.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	rec, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/v1/user/login", rec.Path)
	assert.True(t, strings.HasPrefix(rec.ContentType, schema.ContentTypeForm))
	assert.Contains(t, rec.Body, "username=alice")
	assert.Contains(t, rec.Body, "password=s3cret")
}

func TestLoginRejected(t *testing.T) {
	srv := newFake(t)
	c, err := New(srv.URL())
	require.NoError(t, err)

	token, err := c.Login(context.Background(), "admin", "wrong")
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
}

func TestSelf(t *testing.T) {
	srv := newFake(t)
	c := newAuthedClient(t, srv)

	p, err := c.Self(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Username)
	assert.Equal(t, "Administrator", p.Fullname)
}

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	srv := newFake(t)
	c := newAuthedClient(t, srv)

	created, err := c.CreateProject(ctx, schema.ProjectCreateRequest{
		Name:        "webapp",
		Version:     "1.0.0",
		Description: "storefront",
		Tags:        schema.NewTags("frontend"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.UUID)
	assert.Equal(t, "webapp", created.Name)

	rec, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/api/v1/project", rec.Path)
	assert.Equal(t, schema.ContentTypeJSON, rec.ContentType)
	body := decodeBody(t, rec.Body)
	assert.Equal(t, "webapp", body["name"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, "storefront", body["description"])
	assert.Equal(t, []any{map[string]any{"name": "frontend"}}, body["tags"])
	assert.NotContains(t, body, "uuid")

	id := uuid.MustParse(created.UUID)

	page, err := c.ListProjects(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
	assert.Len(t, page.Items, 1)

	got, err := c.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	rec, _ = srv.LastRequest()
	assert.Equal(t, "/api/v1/project/"+created.UUID, rec.Path)

	updated, err := c.UpdateProject(ctx, schema.ProjectUpdateRequest{
		UUID:    created.UUID,
		Name:    "webapp",
		Version: "1.1.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", updated.Version)
	rec, _ = srv.LastRequest()
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, created.UUID, decodeBody(t, rec.Body)["uuid"])

	require.NoError(t, c.DeleteProject(ctx, id))
	rec, _ = srv.LastRequest()
	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/api/v1/project", rec.Path)
	assert.Equal(t, map[string]any{"uuid": created.UUID}, decodeBody(t, rec.Body))

	_, err = c.GetProject(ctx, id)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = c.DeleteProject(ctx, id)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.UpdateProject(ctx, schema.ProjectUpdateRequest{UUID: created.UUID, Name: "webapp"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreateProjectConflict(t *testing.T) {
	ctx := context.Background()
	srv := newFake(t)
	c := newAuthedClient(t, srv)

	req := schema.ProjectCreateRequest{Name: "api", Version: "2"}
	_, err := c.CreateProject(ctx, req)
	require.NoError(t, err)

	_, err = c.CreateProject(ctx, req)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, StatusCode(err))
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestListProjectsPaging(t *testing.T) {
	srv := newFake(t)
	for i := 0; i < 5; i++ {
		srv.AddProject(schema.Project{Name: fmt.Sprintf("svc-%d", i)})
	}
	c := newAuthedClient(t, srv)

	page, err := c.ListProjects(context.Background(), &ListOptions{PageNumber: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "svc-2", page.Items[0].Name)

	rec, _ := srv.LastRequest()
	assert.Equal(t, "pageNumber=2&pageSize=2", rec.Query)

	page, err = c.ListProjects(context.Background(), &ListOptions{SearchText: "svc-4"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
}

func TestComponents(t *testing.T) {
	ctx := context.Background()
	srv := newFake(t)
	c := newAuthedClient(t, srv)

	_, err := c.ListComponents(ctx, nil)
	assert.True(t, errors.Is(err, ErrNotFound))

	created, err := c.CreateComponent(ctx, schema.ComponentCreateRequest{
		Name:    "jackson-databind",
		Version: "2.17.0",
		Group:   "com.fasterxml.jackson.core",
		License: "MIT",
	})
	require.NoError(t, err)
	require.NotNil(t, created.ResolvedLicense)
	assert.Equal(t, "MIT", created.ResolvedLicense.LicenseID)

	rec, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/api/v1/component", rec.Path)
	body := decodeBody(t, rec.Body)
	for _, key := range []string{"name", "version", "group", "description", "license"} {
		assert.Contains(t, body, key)
	}

	page, err := c.ListComponents(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)

	got, err := c.GetComponent(ctx, uuid.MustParse(created.UUID))
	require.NoError(t, err)
	assert.Equal(t, created.Group, got.Group)

	_, err = c.GetComponent(ctx, uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListLicenses(t *testing.T) {
	srv := newFake(t)
	c := newAuthedClient(t, srv)

	page, err := c.ListLicenses(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, "Apache-2.0", page.Items[0].LicenseID)

	rec, _ := srv.LastRequest()
	assert.Equal(t, "/api/v1/license", rec.Path)
}

func TestTeamsAndUsers(t *testing.T) {
	ctx := context.Background()
	srv := newFake(t)
	c := newAuthedClient(t, srv)

	teams, err := c.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	managed, err := c.ListManagedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", managed[0].Username)

	ldap, err := c.ListLDAPUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", ldap[0].Username)
}

func TestUnauthenticated(t *testing.T) {
	srv := newFake(t)
	c, err := New(srv.URL())
	require.NoError(t, err)

	_, err = c.ListProjects(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestExpiredToken(t *testing.T) {
	srv := newFake(t, dtfake.WithTokenLife(-time.Minute))
	c := newAuthedClient(t, srv)

	_, err := c.Self(context.Background())
	assert.True(t, errors.Is(err, ErrUnauthorized))
}
