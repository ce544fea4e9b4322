/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{"DT_SERVER", "DT_USER", "DT_PASS", "DT_OUTPUT", "DT_TIMEOUT", "DT_DEBUG", "DT_RATE", "DT_METRICS"}

// isolate points DT_HOME at a temporary directory and clears the DT_
// variables. Values loaded from an env file are removed when the test ends.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DT_HOME", dir)
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return dir
}

func writeEnv(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFileName), []byte(content), 0600))
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyServer, "", "")
	fs.String(KeyUser, "", "")
	fs.StringP(KeyOutput, "o", "", "")
	fs.Duration(KeyTimeout, 0, "")
	fs.Bool(KeyDebug, false, "")
	return fs
}

func TestDefaults(t *testing.T) {
	dir := isolate(t)

	s, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir)
	assert.Equal(t, DefaultServer, s.Server)
	assert.Equal(t, OutputTable, s.Output)
	assert.Equal(t, DefaultTimeout, s.Timeout)
	assert.False(t, s.Debug)
	assert.Zero(t, s.Rate)
	assert.Empty(t, s.Metrics)
	assert.Equal(t, filepath.Join(dir, "dtcli.log"), s.LogFile())
	assert.Equal(t, filepath.Join(dir, "session.db"), s.SessionFile())
}

func TestEnvFile(t *testing.T) {
	dir := isolate(t)
	writeEnv(t, dir, "DT_SERVER=https://dt.example.com/api\nDT_USER=auditor\nDT_PASS=secret\nDT_OUTPUT=JSON\nDT_TIMEOUT=5s\nDT_RATE=2.5\nDT_METRICS=/tmp/dtcli.prom\n")

	s, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://dt.example.com/api", s.Server)
	assert.Equal(t, "auditor", s.User)
	assert.Equal(t, "secret", s.Pass)
	assert.Equal(t, OutputJSON, s.Output)
	assert.Equal(t, 5*time.Second, s.Timeout)
	assert.Equal(t, 2.5, s.Rate)
	assert.Equal(t, "/tmp/dtcli.prom", s.Metrics)
}

func TestPrecedence(t *testing.T) {
	dir := isolate(t)
	writeEnv(t, dir, "DT_SERVER=https://file.example.com/api\nDT_OUTPUT=yaml\n")
	t.Setenv("DT_SERVER", "https://env.example.com/api")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--output", "json", "--timeout", "45s"}))

	s, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", s.Server)
	assert.Equal(t, OutputJSON, s.Output)
	assert.Equal(t, 45*time.Second, s.Timeout)

	// An unset flag does not hide the environment
	fs = testFlags()
	require.NoError(t, fs.Parse(nil))
	s, err = Load(fs)
	require.NoError(t, err)
	assert.Equal(t, OutputYAML, s.Output)
}

func TestInvalid(t *testing.T) {
	isolate(t)

	t.Setenv("DT_OUTPUT", "xml")
	_, err := Load(nil)
	assert.Error(t, err)

	t.Setenv("DT_OUTPUT", "json")
	t.Setenv("DT_TIMEOUT", "-1s")
	_, err = Load(nil)
	assert.Error(t, err)
}

func TestEnsure(t *testing.T) {
	dir := isolate(t)
	s := &Settings{Dir: filepath.Join(dir, "nested")}
	require.NoError(t, s.Ensure())
	info, err := os.Stat(s.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
