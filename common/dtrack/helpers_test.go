/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/DTConsole/common/dtfake"
)

// newFake starts a stand-in server that is closed with the test
func newFake(t *testing.T, options ...dtfake.Option) *dtfake.Server {
	t.Helper()
	srv, err := dtfake.Start(options...)
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	return srv
}

// newAuthedClient returns a client holding a valid token for admin
func newAuthedClient(t *testing.T, srv *dtfake.Server, options ...Option) *Client {
	t.Helper()
	token, err := srv.Issue("admin")
	require.NoError(t, err)
	c, err := New(srv.URL(), append([]Option{WithTokenSource(StaticToken(token))}, options...)...)
	require.NoError(t, err)
	return c
}

// statusServer answers every request with code and body and counts hits
func statusServer(t *testing.T, code int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts, &hits
}

func decodeBody(t *testing.T, body string) map[string]any {
	t.Helper()
	m := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}
