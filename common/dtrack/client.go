/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package dtrack is a client for the Dependency-Track REST API as used by an
// administrator console: version, login, current user, projects, components,
// licenses, teams and users.
//
// Every operation issues exactly one HTTP request. The response status decides
// the outcome: the documented success status yields the decoded payload and
// anything else yields a *StatusError. There is no retry. Callbacks and Do/Go
// route an outcome to optional success and failure handlers.
package dtrack

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/UnifyEM/DTConsole/common/interfaces"
	"github.com/UnifyEM/DTConsole/common/null"
)

const (
	DefaultTimeout = 30 * time.Second
	tracerName     = "github.com/UnifyEM/DTConsole/common/dtrack"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	tokens     TokenSource
	observer   SessionObserver
	logger     interfaces.Logger
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	metrics    *metrics
	tracer     trace.Tracer
}

// Option configures a Client
type Option func(*Client) error

// New returns a client for the API rooted at baseURL, the context path
// the console is served with (for example https://dt.example.com/api).
func New(baseURL string, options ...Option) (*Client, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: u,
		timeout: DefaultTimeout,
		logger:  null.Logger(),
	}

	for _, option := range options {
		if err = option(c); err != nil {
			return nil, err
		}
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c, nil
}

// BaseURL returns the API context path the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// parseBaseURL validates the API root. Unlike a bare server URL it may
// carry a path, which is kept as the prefix for every endpoint.
func parseBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("server URL is required")
	}

	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New("server URL must use HTTP or HTTPS")
	}
	if u.Host == "" {
		return nil, errors.New("server URL must include a host")
	}

	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// endpointURL joins path (already escaped) and query onto the base URL
func (c *Client) endpointURL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}
