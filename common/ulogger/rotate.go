/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// rotate renames the log file to <name>-<date> on the first write of a new
// day and reopens it. Caller holds u.mu.
func (u *ULogger) rotate() error {
	if u.logfile == "" || u.fileHandle == nil {
		return nil
	}

	today := u.now().Format(dateFormat)
	if u.currentDate == today {
		return nil
	}

	_ = u.fileHandle.Sync()
	_ = u.fileHandle.Close()
	u.fileHandle = nil

	if err := os.Rename(u.logfile, u.logfile+"-"+u.currentDate); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	fh, err := os.OpenFile(u.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open new log file after rotating: %w", err)
	}
	u.fileHandle = fh
	u.currentDate = today

	return u.prune()
}

// prune deletes rotated files older than retainDays
func (u *ULogger) prune() error {
	if u.retainDays <= 0 {
		return nil
	}

	cutoff := u.now().AddDate(0, 0, -u.retainDays).Format(dateFormat)
	dir := filepath.Dir(u.logfile)
	base := filepath.Base(u.logfile) + "-"

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, base) {
			continue
		}
		date := strings.TrimPrefix(name, base)
		if len(date) != len(dateFormat) || date >= cutoff {
			continue
		}
		if err = os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to delete old log file: %w", err)
		}
	}
	return nil
}
