//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package dtrack

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dtrack",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Requests sent to the Dependency-Track API by operation and status.",
	}, []string{"operation", "code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dtrack",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Round trip time of Dependency-Track API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	return &metrics{requests: requests, duration: duration}, nil
}

// register reuses an identical collector that is already registered, so
// several clients can share one registry
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// observe records one exchange; code 0 means no response was received
func (m *metrics) observe(operation string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.requests.WithLabelValues(operation, label).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
