/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package settings resolves the CLI configuration. Values come from, in
// increasing priority: built-in defaults, the env file in the settings
// directory, the process environment (DT_ prefix) and command line flags.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix   = "DT"
	DirName     = ".dtconsole"
	EnvFileName = "env"
	LogFileName = "dtcli.log"
	SessionName = "session.db"

	KeyServer  = "server"
	KeyUser    = "user"
	KeyPass    = "pass"
	KeyOutput  = "output"
	KeyTimeout = "timeout"
	KeyDebug   = "debug"
	KeyRate    = "rate"
	KeyMetrics = "metrics"

	DefaultServer  = "http://localhost:8081/api"
	DefaultOutput  = OutputTable
	DefaultTimeout = 30 * time.Second

	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

var Outputs = []string{OutputJSON, OutputYAML, OutputTable}

type Settings struct {
	Dir     string // settings directory holding the env file, log and session store
	Server  string
	User    string
	Pass    string
	Output  string
	Timeout time.Duration
	Debug   bool
	Rate    float64 // requests per second, 0 for unlimited
	Metrics string  // Prometheus textfile written on exit, empty to disable
}

// LogFile returns the path of the CLI log
func (s *Settings) LogFile() string {
	return filepath.Join(s.Dir, LogFileName)
}

// SessionFile returns the path of the token store
func (s *Settings) SessionFile() string {
	return filepath.Join(s.Dir, SessionName)
}

// Load resolves the settings. Flags in fs whose names match a key take
// precedence when they were set on the command line. fs may be nil.
func Load(flags *pflag.FlagSet) (*Settings, error) {
	dir, err := directory()
	if err != nil {
		return nil, err
	}

	// godotenv never overrides variables that are already set
	err = godotenv.Load(filepath.Join(dir, EnvFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(dir, EnvFileName), err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault(KeyServer, DefaultServer)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyRate, 0)
	v.SetDefault(KeyMetrics, "")
	v.SetDefault(KeyUser, "")
	v.SetDefault(KeyPass, "")

	if flags != nil {
		for _, key := range []string{KeyServer, KeyUser, KeyOutput, KeyTimeout, KeyDebug} {
			if f := flags.Lookup(key); f != nil {
				if err = v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
				}
			}
		}
	}

	s := &Settings{
		Dir:     dir,
		Server:  strings.TrimSpace(v.GetString(KeyServer)),
		User:    strings.TrimSpace(v.GetString(KeyUser)),
		Pass:    v.GetString(KeyPass),
		Output:  strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput))),
		Timeout: v.GetDuration(KeyTimeout),
		Debug:   v.GetBool(KeyDebug),
		Rate:    v.GetFloat64(KeyRate),
		Metrics: strings.TrimSpace(v.GetString(KeyMetrics)),
	}
	if err = s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.Server == "" {
		return errors.New("server URL is not set")
	}
	if !slices.Contains(Outputs, s.Output) {
		return fmt.Errorf("output must be one of %s", strings.Join(Outputs, ", "))
	}
	if s.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if s.Rate < 0 {
		return errors.New("rate must not be negative")
	}
	return nil
}

// directory returns DT_HOME when set, otherwise ~/.dtconsole
func directory() (string, error) {
	if dir := os.Getenv(EnvPrefix + "_HOME"); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Ensure creates the settings directory
func (s *Settings) Ensure() error {
	if err := os.MkdirAll(s.Dir, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Dir, err)
	}
	return nil
}
