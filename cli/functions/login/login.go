/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package login

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/DTConsole/cli/communications"
	"github.com/UnifyEM/DTConsole/cli/login"
)

// Register returns the login command
func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "log in and store a session token",
		Long:  "log in to the server and store the session token for later commands. DT_USER and DT_PASS are used when set, otherwise the missing values are prompted for.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return communications.Run(cmd, func(ctx context.Context, c *communications.Communications) error {
				return execute(ctx, cmd, c)
			})
		},
	}

	cmd.Flags().StringP("user", "u", "", "username (default $DT_USER)")
	return cmd
}

func execute(ctx context.Context, cmd *cobra.Command, c *communications.Communications) error {
	user := c.Settings.User
	pass := c.Settings.Pass
	prompt := login.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

	var err error
	if user == "" {
		if user, err = prompt.Username(); err != nil {
			return err
		}
	}
	if pass == "" {
		if pass, err = prompt.Password(); err != nil {
			return err
		}
	}

	claims, err := login.Login(ctx, c, user, pass)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Logged in to %s as %s\n", c.Settings.Server, claims.Subject)
	if !claims.ExpiresAt.IsZero() {
		_, _ = fmt.Fprintf(out, "Session expires %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

// RegisterLogout returns the logout command
func RegisterLogout() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return communications.Run(cmd, func(_ context.Context, c *communications.Communications) error {
				if err := login.Logout(c); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged out of %s\n", c.Settings.Server)
				return nil
			})
		},
	}
}
