//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

// About is returned by GET /version
type About struct {
	Version     string     `json:"version" yaml:"version"`
	Timestamp   string     `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	UUID        string     `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Application string     `json:"application,omitempty" yaml:"application,omitempty"`
	Framework   *Framework `json:"framework,omitempty" yaml:"framework,omitempty"`
}

type Framework struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	UUID      string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
}
