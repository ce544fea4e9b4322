/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnifyEM/DTConsole/cli/communications"
	"github.com/UnifyEM/DTConsole/cli/credentials"
	"github.com/UnifyEM/DTConsole/common/dtrack"
	"github.com/UnifyEM/DTConsole/common/fields"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Login exchanges user and pass for a token and stores it for the server
func Login(ctx context.Context, c *communications.Communications, user, pass string) (credentials.Claims, error) {
	if user == "" || pass == "" {
		return credentials.Claims{}, errors.New("username and password are required")
	}

	// Any old token is dropped first so a failed login leaves no session behind
	if err := c.Session.Forget(); err != nil {
		return credentials.Claims{}, err
	}

	token, err := c.Client.Login(ctx, user, pass)
	if err != nil {
		c.Logger.Warning(3301, "login failed",
			fields.NewFields(
				fields.NewField("user", user),
				fields.NewField("server", c.Settings.Server),
				fields.NewField("error", err.Error())))
		if errors.Is(err, dtrack.ErrUnauthorized) {
			return credentials.Claims{}, ErrInvalidCredentials
		}
		return credentials.Claims{}, fmt.Errorf("login failed: %w", err)
	}

	if err = c.Session.Set(token); err != nil {
		return credentials.Claims{}, err
	}

	claims, err := credentials.ParseClaims(token)
	if err != nil {
		claims = credentials.Claims{Subject: user}
	}

	c.Logger.Info(3302, "logged in",
		fields.NewFields(
			fields.NewField("user", user),
			fields.NewField("server", c.Settings.Server)))
	return claims, nil
}

// Logout forgets the stored token. The server keeps no session state to end.
func Logout(c *communications.Communications) error {
	if err := c.Session.Forget(); err != nil {
		return err
	}
	c.Logger.Info(3303, "logged out", fields.NewFields(fields.NewField("server", c.Settings.Server)))
	return nil
}
