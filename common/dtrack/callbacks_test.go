/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/DTConsole/common/schema"
)

type outcome[T any] struct {
	successes []T
	failures  []error
}

func (o *outcome[T]) callbacks() Callbacks[T] {
	return Callbacks[T]{
		OnSuccess: func(v T) { o.successes = append(o.successes, v) },
		OnFailure: func(err error) { o.failures = append(o.failures, err) },
	}
}

func TestDoSuccessInvokesOnlySuccess(t *testing.T) {
	ts, _ := statusServer(t, http.StatusOK, `{"uuid":"`+uuid.NewString()+`","name":"api"}`)
	c, err := New(ts.URL)
	require.NoError(t, err)

	var o outcome[schema.Project]
	Do(context.Background(), func(ctx context.Context) (schema.Project, error) {
		return c.GetProject(ctx, uuid.New())
	}, o.callbacks())

	require.Len(t, o.successes, 1)
	assert.Equal(t, "api", o.successes[0].Name)
	assert.Empty(t, o.failures)
}

func TestDoFailureInvokesOnlyFailure(t *testing.T) {
	ts, _ := statusServer(t, http.StatusNotFound, "")
	c, err := New(ts.URL)
	require.NoError(t, err)

	var o outcome[Page[schema.Project]]
	Do(context.Background(), func(ctx context.Context) (Page[schema.Project], error) {
		return c.ListProjects(ctx, nil)
	}, o.callbacks())

	assert.Empty(t, o.successes)
	require.Len(t, o.failures, 1)
	assert.True(t, errors.Is(o.failures[0], ErrNotFound))
}

func TestUndocumentedSuccessIsFailure(t *testing.T) {
	// Create answers 201; a 200 is not the documented outcome
	ts, _ := statusServer(t, http.StatusOK, `{"name":"api"}`)
	c, err := New(ts.URL)
	require.NoError(t, err)

	var o outcome[schema.Project]
	Do(context.Background(), func(ctx context.Context) (schema.Project, error) {
		return c.CreateProject(ctx, schema.ProjectCreateRequest{Name: "api"})
	}, o.callbacks())

	assert.Empty(t, o.successes)
	require.Len(t, o.failures, 1)
	assert.Equal(t, http.StatusOK, StatusCode(o.failures[0]))
}

func TestTransportFailure(t *testing.T) {
	ts, _ := statusServer(t, http.StatusOK, "")
	c, err := New(ts.URL)
	require.NoError(t, err)
	ts.Close()

	var o outcome[schema.About]
	Do(context.Background(), c.Version, o.callbacks())

	require.Len(t, o.failures, 1)
	assert.Equal(t, 0, StatusCode(o.failures[0]))
	assert.Empty(t, o.successes)
}

func TestDecodeFailure(t *testing.T) {
	ts, _ := statusServer(t, http.StatusOK, "{bad")
	obs := &countingObserver{}
	c, err := New(ts.URL, WithSessionObserver(obs))
	require.NoError(t, err)

	var o outcome[schema.About]
	Do(context.Background(), c.Version, o.callbacks())

	assert.Empty(t, o.successes)
	require.Len(t, o.failures, 1)
	assert.Equal(t, 0, StatusCode(o.failures[0]))
	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(o.failures[0], &syntaxErr), o.failures[0].Error())

	// the 200 was seen before the payload was decoded
	assert.Equal(t, 1, obs.authenticated)
	assert.Equal(t, 0, obs.unauthenticated)
}

func TestNilHandlersAreSkipped(t *testing.T) {
	ok, _ := statusServer(t, http.StatusOK, `{"version":"4.12.0"}`)
	bad, _ := statusServer(t, http.StatusInternalServerError, "")

	for _, url := range []string{ok.URL, bad.URL} {
		c, err := New(url)
		require.NoError(t, err)
		assert.NotPanics(t, func() {
			Do(context.Background(), c.Version, Callbacks[schema.About]{})
		})
	}

	assert.NotPanics(t, func() {
		Callbacks[int]{OnSuccess: func(int) {}}.Resolve(0, errors.New("boom"))
		Callbacks[int]{OnFailure: func(error) {}}.Resolve(1, nil)
	})
}

func TestGoRunsAsynchronously(t *testing.T) {
	ts, _ := statusServer(t, http.StatusOK, `{"version":"4.12.0"}`)
	c, err := New(ts.URL)
	require.NoError(t, err)

	got := make(chan string, 1)
	done := Go(context.Background(), c.Version, Callbacks[schema.About]{
		OnSuccess: func(a schema.About) { got <- a.Version },
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Go did not finish")
	}
	assert.Equal(t, "4.12.0", <-got)
}

func TestNoContent(t *testing.T) {
	ts, _ := statusServer(t, http.StatusNoContent, "")
	c, err := New(ts.URL)
	require.NoError(t, err)

	var o outcome[struct{}]
	id := uuid.New()
	Do(context.Background(), NoContent(func(ctx context.Context) error {
		return c.DeleteProject(ctx, id)
	}), o.callbacks())

	assert.Len(t, o.successes, 1)
	assert.Empty(t, o.failures)
}
