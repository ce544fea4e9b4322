/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// Principal is returned by GET /v1/user/self and carries whichever user
// kind (managed, LDAP, OIDC) is logged in.
type Principal struct {
	Username    string       `json:"username" yaml:"username"`
	Fullname    string       `json:"fullname,omitempty" yaml:"fullname,omitempty"`
	Email       string       `json:"email,omitempty" yaml:"email,omitempty"`
	DN          string       `json:"dn,omitempty" yaml:"dn,omitempty"`
	Teams       []Team       `json:"teams,omitempty" yaml:"teams,omitempty"`
	Permissions []Permission `json:"permissions,omitempty" yaml:"permissions,omitempty" table:"-"`
}

// ManagedUser is an account stored by the server itself
type ManagedUser struct {
	Username            string       `json:"username" yaml:"username"`
	Fullname            string       `json:"fullname,omitempty" yaml:"fullname,omitempty"`
	Email               string       `json:"email,omitempty" yaml:"email,omitempty"`
	Suspended           bool         `json:"suspended" yaml:"suspended"`
	ForcePasswordChange bool         `json:"forcePasswordChange" yaml:"forcePasswordChange"`
	Teams               []Team       `json:"teams,omitempty" yaml:"teams,omitempty"`
	Permissions         []Permission `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// LDAPUser is an account authenticated against a directory
type LDAPUser struct {
	Username string `json:"username" yaml:"username"`
	DN       string `json:"dn,omitempty" yaml:"dn,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
	Teams    []Team `json:"teams,omitempty" yaml:"teams,omitempty"`
}

type Team struct {
	UUID        string       `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	Name        string       `json:"name" yaml:"name"`
	Permissions []Permission `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

type Permission struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
