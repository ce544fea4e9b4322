/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package dtrack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/UnifyEM/DTConsole/common/schema"
)

// Login exchanges a username and password for a bearer token. The form is
// posted as application/x-www-form-urlencoded and the token comes back as
// plain text. A rejected login is a *StatusError matching ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	r := request{
		name:   "login",
		method: http.MethodPost,
		path:   schema.EndpointLogin,
		form: url.Values{
			schema.LoginFieldUsername: {username},
			schema.LoginFieldPassword: {password},
		},
		expect: expect(http.StatusOK),
	}

	resp, err := c.send(ctx, r)
	if err != nil {
		return "", err
	}
	if !r.expect.ok(resp.code) {
		return "", c.statusError(r, resp)
	}

	token := strings.TrimSpace(string(resp.body))
	if token == "" {
		return "", errors.New("server returned an empty token")
	}
	return token, nil
}

// Self retrieves the principal the current token belongs to
func (c *Client) Self(ctx context.Context) (schema.Principal, error) {
	p, _, err := call[schema.Principal](ctx, c, request{
		name:   "self",
		method: http.MethodGet,
		path:   schema.EndpointUserSelf,
		expect: anySuccess(),
	})
	return p, err
}

// ListManagedUsers retrieves accounts stored by the server
func (c *Client) ListManagedUsers(ctx context.Context) ([]schema.ManagedUser, error) {
	users, _, err := call[[]schema.ManagedUser](ctx, c, request{
		name:   "list_managed_users",
		method: http.MethodGet,
		path:   schema.EndpointUserManaged,
		expect: expect(http.StatusOK),
	})
	if err != nil {
		return nil, fmt.Errorf("list managed users: %w", err)
	}
	return users, nil
}

// ListLDAPUsers retrieves directory accounts known to the server
func (c *Client) ListLDAPUsers(ctx context.Context) ([]schema.LDAPUser, error) {
	users, _, err := call[[]schema.LDAPUser](ctx, c, request{
		name:   "list_ldap_users",
		method: http.MethodGet,
		path:   schema.EndpointUserLDAP,
		expect: expect(http.StatusOK),
	})
	if err != nil {
		return nil, fmt.Errorf("list LDAP users: %w", err)
	}
	return users, nil
}

// ListTeams retrieves all teams
func (c *Client) ListTeams(ctx context.Context) ([]schema.Team, error) {
	teams, _, err := call[[]schema.Team](ctx, c, request{
		name:   "list_teams",
		method: http.MethodGet,
		path:   schema.EndpointTeam,
		expect: expect(http.StatusOK),
	})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}
