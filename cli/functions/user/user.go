/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package user

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/DTConsole/cli/communications"
	"github.com/UnifyEM/DTConsole/common/dtrack"
	"github.com/UnifyEM/DTConsole/common/schema"
)

// Register returns the root user command with subcommands.
func Register() *cobra.Command {
	userCmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Browse users",
		Long:    "User commands: list managed or LDAP users",
	}

	userCmd.AddCommand(listCmd())

	return userCmd
}

func listCmd() *cobra.Command {
	var ldap bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List managed users, or LDAP users with --ldap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ldap {
				return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) ([]schema.LDAPUser, error) {
					return c.ListLDAPUsers(ctx)
				})
			}
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) ([]schema.ManagedUser, error) {
				return c.ListManagedUsers(ctx)
			})
		},
	}

	cmd.Flags().BoolVar(&ldap, "ldap", false, "list LDAP users instead of managed users")
	return cmd
}
