/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package whoami

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/DTConsole/cli/communications"
	"github.com/UnifyEM/DTConsole/common/dtrack"
	"github.com/UnifyEM/DTConsole/common/schema"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "show the logged in user",
		Long:  "show the user the stored session token belongs to, as reported by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (schema.Principal, error) {
				return c.Self(ctx)
			})
		},
	}
}
