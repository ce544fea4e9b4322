/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package license

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/DTConsole/cli/communications"
	"github.com/UnifyEM/DTConsole/cli/util"
	"github.com/UnifyEM/DTConsole/common/dtrack"
	"github.com/UnifyEM/DTConsole/common/schema"
)

func Register() *cobra.Command {
	licenseCmd := &cobra.Command{
		Use:     "license",
		Aliases: []string{"licenses"},
		Short:   "Browse licenses",
	}

	licenseCmd.AddCommand(&cobra.Command{
		Use:   "list [page=N] [size=N] [search=text]",
		Short: "List licenses known to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := util.NewNVPairs(args).ListOptions()
			if err != nil {
				return err
			}
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (dtrack.Page[schema.License], error) {
				return c.ListLicenses(ctx, opts)
			})
		},
	})

	return licenseCmd
}
