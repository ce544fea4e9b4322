/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerHeader(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.Header.Get("Authorization"))
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	cases := []struct {
		name   string
		source TokenSource
		want   string
	}{
		{"token present", StaticToken("abc.def.ghi"), "Bearer abc.def.ghi"},
		{"empty token", StaticToken(""), ""},
		{"no source", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mu.Lock()
			got = nil
			mu.Unlock()
			c, err := New(ts.URL, WithTokenSource(tc.source))
			require.NoError(t, err)
			_, err = c.Version(context.Background())
			require.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0])
		})
	}
}

func TestTokenReadOnEveryRequest(t *testing.T) {
	ts, _ := statusServer(t, http.StatusOK, "")
	token := "first"
	reads := 0
	c, err := New(ts.URL, WithTokenSource(TokenFunc(func() string {
		reads++
		return token
	})))
	require.NoError(t, err)

	_, _ = c.Version(context.Background())
	token = ""
	_, _ = c.Version(context.Background())
	assert.Equal(t, 2, reads)
}

type countingObserver struct {
	authenticated   int
	unauthenticated int
}

func (o *countingObserver) Authenticated()   { o.authenticated++ }
func (o *countingObserver) Unauthenticated() { o.unauthenticated++ }

func TestObserverSeesOnly200And401(t *testing.T) {
	codes := []int{200, 201, 204, 401, 403, 404, 500}
	var i atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(codes[i.Add(1)-1])
	}))
	defer ts.Close()

	obs := &countingObserver{}
	c, err := New(ts.URL, WithSessionObserver(obs))
	require.NoError(t, err)

	for range codes {
		_, _ = c.Version(context.Background())
	}
	assert.Equal(t, 1, obs.authenticated)
	assert.Equal(t, 1, obs.unauthenticated)
}

func TestLayoutRegions(t *testing.T) {
	l := NewLayout()
	assert.Equal(t, Regions{}, l.Regions())

	l.Unauthenticated()
	assert.Equal(t, Regions{LoginPrompt: true, FocusRequests: 1}, l.Regions())

	l.Authenticated()
	assert.Equal(t, Regions{Navbar: true, Sidebar: true, Main: true, FocusRequests: 1}, l.Regions())

	// A repeated 200 changes nothing
	l.Authenticated()
	assert.Equal(t, Regions{Navbar: true, Sidebar: true, Main: true, FocusRequests: 1}, l.Regions())

	l.Unauthenticated()
	assert.Equal(t, Regions{LoginPrompt: true, FocusRequests: 2}, l.Regions())
}

func TestLayoutDrivenByClient(t *testing.T) {
	ts, _ := statusServer(t, http.StatusUnauthorized, "")
	layout := NewLayout()
	c, err := New(ts.URL, WithSessionObserver(layout))
	require.NoError(t, err)

	_, err = c.Self(context.Background())
	require.Error(t, err)
	assert.True(t, layout.Regions().LoginPrompt)
	assert.False(t, layout.Regions().Main)
}

func TestObserversFanOut(t *testing.T) {
	a, b := &countingObserver{}, &countingObserver{}
	obs := Observers{a, nil, b}
	obs.Authenticated()
	obs.Unauthenticated()
	obs.Unauthenticated()
	assert.Equal(t, countingObserver{1, 2}, *a)
	assert.Equal(t, countingObserver{1, 2}, *b)
}
