//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

type License struct {
	UUID                  string   `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	LicenseID             string   `json:"licenseId,omitempty" yaml:"licenseId,omitempty"`
	Name                  string   `json:"name" yaml:"name"`
	IsOsiApproved         bool     `json:"isOsiApproved" yaml:"isOsiApproved"`
	IsFsfLibre            bool     `json:"isFsfLibre" yaml:"isFsfLibre"`
	IsDeprecatedLicenseID bool     `json:"isDeprecatedLicenseId" yaml:"isDeprecatedLicenseId"`
	LicenseText           string   `json:"licenseText,omitempty" yaml:"licenseText,omitempty" table:"-"`
	SeeAlso               []string `json:"seeAlso,omitempty" yaml:"seeAlso,omitempty" table:"-"`
}
