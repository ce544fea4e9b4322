/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package ulogger writes event-numbered log lines to a daily rotated file
// and, optionally, to a console stream. Debug lines are dropped unless
// debug logging is enabled.
package ulogger

import (
	"errors"
	"io"
	"os"

	"github.com/UnifyEM/DTConsole/common/interfaces"
)

var _ interfaces.Logger = (*ULogger)(nil)

// Option is a function that configures a ULogger
type Option func(*ULogger) error

// New creates a logger. Without a log file or console writer, output goes to stderr.
func New(options ...Option) (interfaces.Logger, error) {
	u := &ULogger{retainDays: 30}

	for _, option := range options {
		if err := option(u); err != nil {
			return nil, err
		}
	}

	if err := u.open(); err != nil {
		return nil, err
	}
	return u, nil
}

// WithPrefix sets a process name or similar short identifier
func WithPrefix(prefix string) Option {
	return func(u *ULogger) error {
		u.prefix = prefix
		return nil
	}
}

// WithLogFile sets the log file
func WithLogFile(logfile string) Option {
	return func(u *ULogger) error {
		u.logfile = logfile
		return nil
	}
}

// WithStderr mirrors log lines to stderr
func WithStderr(enabled bool) Option {
	return func(u *ULogger) error {
		if enabled {
			u.console = os.Stderr
		}
		return nil
	}
}

// WithWriter mirrors log lines to w instead of stderr
func WithWriter(w io.Writer) Option {
	return func(u *ULogger) error {
		if w == nil {
			return errors.New("writer is nil")
		}
		u.console = w
		return nil
	}
}

// WithDebug enables or disables debug logging
func WithDebug(debug bool) Option {
	return func(u *ULogger) error {
		u.debug = debug
		return nil
	}
}

// WithRetention sets the number of days to retain rotated logs. Zero keeps them forever.
func WithRetention(retainDays int) Option {
	return func(u *ULogger) error {
		if retainDays < 0 {
			return errors.New("retention must not be negative")
		}
		u.retainDays = retainDays
		return nil
	}
}
