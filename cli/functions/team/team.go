/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package team

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/DTConsole/cli/communications"
	"github.com/UnifyEM/DTConsole/common/dtrack"
	"github.com/UnifyEM/DTConsole/common/schema"
)

func Register() *cobra.Command {
	teamCmd := &cobra.Command{
		Use:     "team",
		Aliases: []string{"teams"},
		Short:   "Browse teams",
	}

	teamCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) ([]schema.Team, error) {
				return c.ListTeams(ctx)
			})
		},
	})

	return teamCmd
}
