/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package version

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/DTConsole/cli/communications"
	"github.com/UnifyEM/DTConsole/cli/global"
	"github.com/UnifyEM/DTConsole/common/dtrack"
	"github.com/UnifyEM/DTConsole/common/schema"
)

func Register() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "version, copyright, and legal",
		Long:  "display version, copyright, and legal information followed by the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			global.Banner(cmd.OutOrStdout())
			if local {
				return nil
			}
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (schema.About, error) {
				return c.Version(ctx)
			})
		},
	}

	cmd.Flags().BoolVarP(&local, "local", "l", false, "do not contact the server")
	return cmd
}
