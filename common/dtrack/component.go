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

// CreateComponent sends PUT /v1/component and expects 201 Created
func (c *Client) CreateComponent(ctx context.Context, comp schema.ComponentCreateRequest) (schema.Component, error) {
	component, _, err := call[schema.Component](ctx, c, request{
		name:    "create_component",
		method:  http.MethodPut,
		path:    schema.EndpointComponent,
		payload: comp,
		expect:  expect(http.StatusCreated),
	})
	return component, err
}

func (c *Client) ListComponents(ctx context.Context, opts *ListOptions) (Page[schema.Component], error) {
	components, resp, err := call[[]schema.Component](ctx, c, request{
		name:   "list_components",
		method: http.MethodGet,
		path:   schema.EndpointComponent,
		query:  opts.values(),
		expect: expect(http.StatusOK),
	})
	if err != nil {
		return Page[schema.Component]{}, err
	}
	return newPage(components, resp), nil
}

func (c *Client) GetComponent(ctx context.Context, id uuid.UUID) (schema.Component, error) {
	component, _, err := call[schema.Component](ctx, c, request{
		name:   "get_component",
		method: http.MethodGet,
		path:   schema.EndpointComponent + "/" + url.PathEscape(id.String()),
		expect: expect(http.StatusOK),
	})
	return component, err
}
