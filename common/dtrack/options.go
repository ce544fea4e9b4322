/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/UnifyEM/DTConsole/common/fields"
	"github.com/UnifyEM/DTConsole/common/interfaces"
)

// WithHTTPClient replaces the default http.Client, e.g. to supply a custom transport
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTimeout bounds each request. Zero leaves only the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		c.timeout = d
		return nil
	}
}

// WithTokenSource sets where the bearer token is read from before each request
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) error {
		c.tokens = ts
		return nil
	}
}

// WithSessionObserver sets the receiver of 200 and 401 notifications
func WithSessionObserver(o SessionObserver) Option {
	return func(c *Client) error {
		c.observer = o
		return nil
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		c.logger = logger
		return nil
	}
}

// WithRateLimit allows at most perSecond requests per second with the given burst.
// Requests wait for a slot or fail when their context ends first.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) error {
		if perSecond <= 0 || burst < 1 {
			return errors.New("rate limit requires a positive rate and burst")
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		return nil
	}
}

// BreakerSettings configures WithCircuitBreaker
type BreakerSettings struct {
	Name             string
	MaxRequests      uint32        // requests allowed while half-open
	Interval         time.Duration // closed-state window after which counts reset
	Timeout          time.Duration // open-state duration before half-open
	MinRequests      uint32        // requests needed before the failure ratio is considered
	FailureThreshold float64       // ratio of failures that opens the breaker
}

// DefaultBreakerSettings returns conservative breaker settings
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:             "dtrack",
		MaxRequests:      1,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		MinRequests:      5,
		FailureThreshold: 0.6,
	}
}

// WithCircuitBreaker fails requests fast after repeated transport errors or 5xx
// responses. 4xx responses never count as failures.
func WithCircuitBreaker(s BreakerSettings) Option {
	return func(c *Client) error {
		if s.FailureThreshold <= 0 || s.FailureThreshold > 1 {
			return errors.New("failure threshold must be in (0, 1]")
		}
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        s.Name,
			MaxRequests: s.MaxRequests,
			Interval:    s.Interval,
			Timeout:     s.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				if counts.Requests < s.MinRequests {
					return false
				}
				return float64(counts.TotalFailures)/float64(counts.Requests) >= s.FailureThreshold
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				c.logger.Warning(3120, "circuit breaker state changed",
					fields.NewFields(
						fields.NewField("breaker", name),
						fields.NewField("from", from.String()),
						fields.NewField("to", to.String())))
			},
		})
		return nil
	}
}

// WithMetrics registers request counters and latency histograms with reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) error {
		if reg == nil {
			return errors.New("registerer is nil")
		}
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		c.metrics = m
		return nil
	}
}

// WithTracer overrides the tracer taken from the global OpenTelemetry provider
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) error {
		if tracer == nil {
			return errors.New("tracer is nil")
		}
		c.tracer = tracer
		return nil
	}
}
