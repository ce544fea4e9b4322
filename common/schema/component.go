/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// Component as returned by the /v1/component endpoints
type Component struct {
	UUID            string   `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Name            string   `json:"name" yaml:"name"`
	Version         string   `json:"version,omitempty" yaml:"version,omitempty"`
	Group           string   `json:"group,omitempty" yaml:"group,omitempty"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
	License         string   `json:"license,omitempty" yaml:"license,omitempty"`
	ResolvedLicense *License `json:"resolvedLicense,omitempty" yaml:"resolvedLicense,omitempty"`
}

// ComponentCreateRequest is the PUT /v1/component body
type ComponentCreateRequest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Group       string `json:"group"`
	Description string `json:"description"`
	License     string `json:"license"`
}
