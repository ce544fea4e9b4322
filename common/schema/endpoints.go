//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package schema

// Paths are relative to the API context path, e.g. https://dt.example.com/api
//
//goland:noinspection ALL
const (
	EndpointVersion       = "/version"
	EndpointLogin         = "/v1/user/login"
	EndpointTeam          = "/v1/team"
	EndpointUser          = "/v1/user"
	EndpointUserLDAP      = "/v1/user/ldap"
	EndpointUserManaged   = "/v1/user/managed"
	EndpointUserSelf      = "/v1/user/self"
	EndpointProject       = "/v1/project"
	EndpointLicense       = "/v1/license"
	EndpointComponent     = "/v1/component"
	HeaderTotalCount      = "X-Total-Count"
	HeaderAuthorization   = "Authorization"
	ContentTypeJSON       = "application/json"
	ContentTypeText       = "text/plain"
	ContentTypeForm       = "application/x-www-form-urlencoded"
	QueryPageNumber       = "pageNumber"
	QueryPageSize         = "pageSize"
	QuerySearchText       = "searchText"
	LoginFieldUsername    = "username"
	LoginFieldPassword    = "password"
	DefaultAPIContextPath = "/api"
)
