/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnifyEM/DTConsole/common/fields"
)

func TestWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(WithPrefix("dtcli"), WithWriter(&buf))
	require.NoError(t, err)

	l.Info(1201, "request sent", fields.NewFields(fields.NewField("status", 200)))
	assert.Contains(t, buf.String(), "dtcli [INFO] 1201 request sent: status=200")
}

func TestDebugGating(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(WithWriter(&buf))
	require.NoError(t, err)
	l.Debugf(1, "hidden %d", 1)
	assert.Empty(t, buf.String())

	l, err = New(WithWriter(&buf), WithDebug(true))
	require.NoError(t, err)
	l.Debugf(1, "shown %d", 2)
	assert.Contains(t, buf.String(), "[DEBUG] 0001 shown 2")
}

func TestRejectsBadOptions(t *testing.T) {
	_, err := New(WithWriter(nil))
	assert.Error(t, err)
	_, err = New(WithRetention(-1))
	assert.Error(t, err)
}

func TestRotateAndPrune(t *testing.T) {
	dir := t.TempDir()
	logfile := filepath.Join(dir, "dtcli.log")

	stale := logfile + "-20000101"
	require.NoError(t, os.WriteFile(stale, []byte("old\n"), 0600))

	l, err := New(WithLogFile(logfile), WithRetention(30))
	require.NoError(t, err)
	u := l.(*ULogger)
	defer u.Close()

	day1 := time.Now()
	u.Info(1, "first", nil)

	u.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	u.Info(2, "second", nil)

	rotated, err := os.ReadFile(logfile + "-" + day1.Format(dateFormat))
	require.NoError(t, err)
	assert.Contains(t, string(rotated), "first")

	current, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(current), "second")
	assert.NotContains(t, string(current), "first")

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}
