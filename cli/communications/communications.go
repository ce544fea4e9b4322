/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package communications wires settings, the stored session and the logger
// into a dtrack.Client for one CLI invocation
package communications

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/UnifyEM/DTConsole/cli/credentials"
	"github.com/UnifyEM/DTConsole/cli/display"
	"github.com/UnifyEM/DTConsole/cli/global"
	"github.com/UnifyEM/DTConsole/cli/settings"
	"github.com/UnifyEM/DTConsole/common/dtrack"
	"github.com/UnifyEM/DTConsole/common/interfaces"
	"github.com/UnifyEM/DTConsole/common/ulogger"
)

type Communications struct {
	Settings *settings.Settings
	Session  *credentials.Session
	Layout   *dtrack.Layout
	Client   *dtrack.Client
	Logger   interfaces.Logger
	store    credentials.Store
	registry *prometheus.Registry // nil unless a metrics file is configured
}

// Open resolves the settings for cmd and returns a ready client. The caller
// must Close it.
func Open(cmd *cobra.Command) (*Communications, error) {
	s, err := settings.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return New(s)
}

// New builds the client described by s
func New(s *settings.Settings) (*Communications, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}

	logger, err := ulogger.New(
		ulogger.WithPrefix(global.Name),
		ulogger.WithLogFile(s.LogFile()),
		ulogger.WithStderr(s.Debug),
		ulogger.WithDebug(s.Debug))
	if err != nil {
		return nil, err
	}

	store, err := credentials.OpenFile(s.SessionFile())
	if err != nil {
		logger.Close()
		return nil, err
	}

	c := &Communications{
		Settings: s,
		Layout:   dtrack.NewLayout(),
		Logger:   logger,
		store:    store,
	}

	c.Session, err = credentials.NewSession(store, s.Server, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	options := []dtrack.Option{
		dtrack.WithTimeout(s.Timeout),
		dtrack.WithLogger(logger),
		dtrack.WithTokenSource(c.Session),
		dtrack.WithSessionObserver(dtrack.Observers{c.Session, c.Layout}),
		dtrack.WithCircuitBreaker(dtrack.DefaultBreakerSettings()),
	}
	if s.Rate > 0 {
		options = append(options, dtrack.WithRateLimit(s.Rate, 1))
	}
	if s.Metrics != "" {
		c.registry = prometheus.NewRegistry()
		options = append(options, dtrack.WithMetrics(c.registry))
	}

	c.Client, err = dtrack.New(s.Server, options...)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	logger.Debugf(3001, "using server %s", s.Server)
	return c, nil
}

// Close writes the metrics file, if any, and releases the session store and
// the log file
func (c *Communications) Close() error {
	var err error
	if c.registry != nil {
		// node_exporter textfile collector format
		if err = prometheus.WriteToTextfile(c.Settings.Metrics, c.registry); err != nil {
			c.Logger.Warningf(3003, "failed to write metrics to %s: %s", c.Settings.Metrics, err.Error())
			err = fmt.Errorf("failed to write metrics: %w", err)
		}
		c.registry = nil
	}
	if c.store != nil {
		if serr := c.store.Close(); serr != nil && err == nil {
			err = serr
		}
		c.store = nil
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
	return err
}

// LoginHint tells the user to log in when the last response was a 401
func (c *Communications) LoginHint(w io.Writer) {
	if c.Layout.Regions().LoginPrompt {
		_, _ = fmt.Fprintf(w, "Not logged in or session expired. Run '%s login'.\n", global.ProgName())
	}
}

// Run opens a client for cmd and calls fn with it. A failure is logged and,
// after a 401, followed by a login hint on stderr.
func Run(cmd *cobra.Command, fn func(ctx context.Context, c *Communications) error) error {
	c, err := Open(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	if err = fn(cmd.Context(), c); err != nil {
		c.Logger.Debugf(3002, "%s failed: %s", cmd.CommandPath(), err.Error())
		c.LoginHint(cmd.ErrOrStderr())
	}
	return err
}

// Show runs fn and renders its result in the configured output format
func Show[T any](cmd *cobra.Command, fn func(context.Context, *dtrack.Client) (T, error)) error {
	return Run(cmd, func(ctx context.Context, c *Communications) error {
		return display.Result(ctx, cmd.OutOrStdout(), c.Settings.Output, func(ctx context.Context) (T, error) {
			return fn(ctx, c.Client)
		})
	})
}
