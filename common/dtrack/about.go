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

// Version retrieves version information from the server. No token is required.
func (c *Client) Version(ctx context.Context) (schema.About, error) {
	about, _, err := call[schema.About](ctx, c, request{
		name:   "version",
		method: http.MethodGet,
		path:   schema.EndpointVersion,
		expect: anySuccess(),
	})
	return about, err
}
