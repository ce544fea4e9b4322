/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/UnifyEM/DTConsole/common/schema"
)

// CreateProject sends PUT /v1/project and expects 201 Created
func (c *Client) CreateProject(ctx context.Context, p schema.ProjectCreateRequest) (schema.Project, error) {
	project, _, err := call[schema.Project](ctx, c, request{
		name:    "create_project",
		method:  http.MethodPut,
		path:    schema.EndpointProject,
		payload: p,
		expect:  expect(http.StatusCreated),
	})
	return project, err
}

// ListProjects sends GET /v1/project. A 404 is a failure.
func (c *Client) ListProjects(ctx context.Context, opts *ListOptions) (Page[schema.Project], error) {
	projects, resp, err := call[[]schema.Project](ctx, c, request{
		name:   "list_projects",
		method: http.MethodGet,
		path:   schema.EndpointProject,
		query:  opts.values(),
		expect: expect(http.StatusOK),
	})
	if err != nil {
		return Page[schema.Project]{}, err
	}
	return newPage(projects, resp), nil
}

// GetProject sends GET /v1/project/{uuid}
func (c *Client) GetProject(ctx context.Context, id uuid.UUID) (schema.Project, error) {
	project, _, err := call[schema.Project](ctx, c, request{
		name:   "get_project",
		method: http.MethodGet,
		path:   schema.EndpointProject + "/" + url.PathEscape(id.String()),
		expect: expect(http.StatusOK),
	})
	return project, err
}

// UpdateProject sends POST /v1/project with the project's UUID in the body
func (c *Client) UpdateProject(ctx context.Context, p schema.ProjectUpdateRequest) (schema.Project, error) {
	project, _, err := call[schema.Project](ctx, c, request{
		name:    "update_project",
		method:  http.MethodPost,
		path:    schema.EndpointProject,
		payload: p,
		expect:  expect(http.StatusOK),
	})
	return project, err
}

// DeleteProject sends DELETE /v1/project with {"uuid": ...} as the body and expects 204
func (c *Client) DeleteProject(ctx context.Context, id uuid.UUID) error {
	_, _, err := call[struct{}](ctx, c, request{
		name:    "delete_project",
		method:  http.MethodDelete,
		path:    schema.EndpointProject,
		payload: schema.ProjectDeleteRequest{UUID: id.String()},
		expect:  expect(http.StatusNoContent),
	})
	return err
}
