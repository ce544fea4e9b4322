//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package dtrack

import (
	"context"
	"net/http"

	"github.com/UnifyEM/DTConsole/common/schema"
)

// ListLicenses sends GET /v1/license
func (c *Client) ListLicenses(ctx context.Context, opts *ListOptions) (Page[schema.License], error) {
	licenses, resp, err := call[[]schema.License](ctx, c, request{
		name:   "list_licenses",
		method: http.MethodGet,
		path:   schema.EndpointLicense,
		query:  opts.values(),
		expect: expect(http.StatusOK),
	})
	if err != nil {
		return Page[schema.License]{}, err
	}
	return newPage(licenses, resp), nil
}
