/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/UnifyEM/DTConsole/common/interfaces"
)

const dateFormat = "20060102"

type ULogger struct {
	mu          sync.Mutex
	fileHandle  *os.File
	logfile     string
	console     io.Writer
	debug       bool
	prefix      string
	retainDays  int
	currentDate string
	now         func() time.Time
}

func (u *ULogger) open() error {
	if u.now == nil {
		u.now = time.Now
	}

	if u.logfile == "" {
		if u.console == nil {
			u.console = os.Stderr
		}
		return nil
	}

	u.logfile = filepath.Clean(u.logfile)
	if err := os.MkdirAll(filepath.Dir(u.logfile), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// An existing file keeps the date it was last written so that the first
	// write on a new day rotates it under the right name
	u.currentDate = u.now().Format(dateFormat)
	if info, err := os.Stat(u.logfile); err == nil {
		u.currentDate = info.ModTime().Format(dateFormat)
	}

	fh, err := os.OpenFile(u.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	u.fileHandle = fh
	return nil
}

// Close flushes and closes the log file
func (u *ULogger) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.fileHandle != nil {
		_ = u.fileHandle.Sync()
		_ = u.fileHandle.Close()
		u.fileHandle = nil
	}
}

func (u *ULogger) format(eid uint32, level, message string, fields interfaces.Fields) string {
	line := fmt.Sprintf("%s %s [%s] %04d %s",
		u.now().Format("2006-01-02 15:04:05"), u.prefix, level, eid, message)
	if fields != nil {
		if text := fields.ToText(); text != "" {
			line += ": " + text
		}
	}
	return line + "\n"
}

func (u *ULogger) write(eid uint32, level, message string, fields interfaces.Fields) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.rotate(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "log rotation error: %s\n", err.Error())
	}

	line := u.format(eid, level, message, fields)
	if u.fileHandle != nil {
		_, _ = u.fileHandle.WriteString(line)
	}
	if u.console != nil {
		_, _ = io.WriteString(u.console, line)
	}
}

// Debug logs a debug message if debug logging is enabled
func (u *ULogger) Debug(eid uint32, message string, fields interfaces.Fields) {
	if u.debug {
		u.write(eid, "DEBUG", message, fields)
	}
}

func (u *ULogger) Info(eid uint32, message string, fields interfaces.Fields) {
	u.write(eid, "INFO", message, fields)
}

func (u *ULogger) Warning(eid uint32, message string, fields interfaces.Fields) {
	u.write(eid, "WARNING", message, fields)
}

func (u *ULogger) Error(eid uint32, message string, fields interfaces.Fields) {
	u.write(eid, "ERROR", message, fields)
}

func (u *ULogger) Debugf(eid uint32, format string, v ...any) {
	if u.debug {
		u.write(eid, "DEBUG", fmt.Sprintf(format, v...), nil)
	}
}

func (u *ULogger) Infof(eid uint32, format string, v ...any) {
	u.write(eid, "INFO", fmt.Sprintf(format, v...), nil)
}

func (u *ULogger) Warningf(eid uint32, format string, v ...any) {
	u.write(eid, "WARNING", fmt.Sprintf(format, v...), nil)
}

func (u *ULogger) Errorf(eid uint32, format string, v ...any) {
	u.write(eid, "ERROR", fmt.Sprintf(format, v...), nil)
}
