/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/UnifyEM/DTConsole/common/fields"
	"github.com/UnifyEM/DTConsole/common/schema"
)

// errServerStatus marks a 5xx response as a failure for the circuit breaker
var errServerStatus = errors.New("server error status")

// request describes one HTTP exchange
type request struct {
	name    string     // operation name for logs, metrics and spans
	method  string
	path    string     // escaped, relative to the base URL
	query   url.Values
	payload any        // JSON body
	form    url.Values // form body, used instead of payload when set
	expect  expectation
}

// response is a fully read HTTP response
type response struct {
	code   int
	header http.Header
	body   []byte
}

// send performs the exchange. A non-nil error means no usable response was
// received; status classification is left to the caller.
func (c *Client) send(ctx context.Context, r request) (*response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := c.tracer.Start(ctx, "dtrack."+r.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", r.method),
			attribute.String("url.path", r.path)))
	defer span.End()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rate limit wait")
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	httpReq, err := c.newHTTPRequest(ctx, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build request")
		return nil, err
	}

	start := time.Now()
	resp, err := c.execute(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(r.name, 0, elapsed)
		c.logger.Warning(3102, "request failed",
			fields.NewFields(
				fields.NewField("operation", r.name),
				fields.NewField("method", r.method),
				fields.NewField("path", r.path),
				fields.NewField("error", err.Error())))
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return nil, err
	}

	c.metrics.observe(r.name, resp.code, elapsed)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.code))
	if !r.expect.ok(resp.code) {
		span.SetStatus(codes.Error, http.StatusText(resp.code))
	}

	c.logger.Debug(3101, "request complete",
		fields.NewFields(
			fields.NewField("operation", r.name),
			fields.NewField("method", r.method),
			fields.NewField("path", r.path),
			fields.NewField("status", resp.code),
			fields.NewField("elapsed", elapsed.String())))

	c.notify(resp.code)
	return resp, nil
}

// newHTTPRequest builds the request and applies the bearer token
func (c *Client) newHTTPRequest(ctx context.Context, r request) (*http.Request, error) {
	var body io.Reader
	contentType := ""

	switch {
	case r.form != nil:
		body = strings.NewReader(r.form.Encode())
		contentType = schema.ContentTypeForm
	case r.payload != nil:
		data, err := json.Marshal(r.payload)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = schema.ContentTypeJSON
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.method, c.endpointURL(r.path, r.query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", schema.ContentTypeJSON+", "+schema.ContentTypeText)

	// The token is read on every request so that a login or logout between
	// calls takes effect immediately
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			httpReq.Header.Set(schema.HeaderAuthorization, "Bearer "+token)
		}
	}
	return httpReq, nil
}

// execute runs the round trip, through the circuit breaker when one is configured
func (c *Client) execute(httpReq *http.Request) (*response, error) {
	if c.breaker == nil {
		return c.roundTrip(httpReq)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, rErr := c.roundTrip(httpReq)
		if rErr != nil {
			return nil, rErr
		}
		if resp.code >= 500 {
			return resp, errServerStatus
		}
		return resp, nil
	})

	if errors.Is(err, errServerStatus) {
		return result.(*response), nil
	}
	if err != nil {
		return nil, fmt.Errorf("circuit breaker: %w", err)
	}
	return result.(*response), nil
}

func (c *Client) roundTrip(httpReq *http.Request) (*response, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &response{code: resp.StatusCode, header: resp.Header, body: body}, nil
}

// notify is the global response interceptor
func (c *Client) notify(code int) {
	if c.observer == nil {
		return
	}
	switch code {
	case http.StatusOK:
		c.observer.Authenticated()
	case http.StatusUnauthorized:
		c.observer.Unauthenticated()
	}
}

// call sends r and decodes a successful JSON payload into T
func call[T any](ctx context.Context, c *Client, r request) (T, *response, error) {
	var result T

	resp, err := c.send(ctx, r)
	if err != nil {
		return result, nil, err
	}

	if !r.expect.ok(resp.code) {
		return result, resp, c.statusError(r, resp)
	}

	if resp.code == http.StatusNoContent || len(bytes.TrimSpace(resp.body)) == 0 {
		return result, resp, nil
	}

	if err = json.Unmarshal(resp.body, &result); err != nil {
		return result, resp, fmt.Errorf("failed to unmarshal %s response: %w", r.name, err)
	}
	return result, resp, nil
}

func (c *Client) statusError(r request, resp *response) error {
	c.logger.Warning(3103, "unexpected response status",
		fields.NewFields(
			fields.NewField("operation", r.name),
			fields.NewField("method", r.method),
			fields.NewField("path", r.path),
			fields.NewField("status", resp.code)))

	return &StatusError{
		Operation: r.name,
		Method:    r.method,
		Path:      r.path,
		Code:      resp.code,
		Body:      resp.body,
	}
}
