/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package component

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/UnifyEM/DTConsole/cli/communications"
	"github.com/UnifyEM/DTConsole/cli/util"
	"github.com/UnifyEM/DTConsole/common/dtrack"
	"github.com/UnifyEM/DTConsole/common/schema"
)

func Register() *cobra.Command {
	componentCmd := &cobra.Command{
		Use:     "component",
		Aliases: []string{"components"},
		Short:   "Manage components",
		Long:    "Component commands: list, get, create",
	}

	componentCmd.AddCommand(listCmd())
	componentCmd.AddCommand(getCmd())
	componentCmd.AddCommand(createCmd())

	return componentCmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [page=N] [size=N] [search=text]",
		Short: "List components",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := util.NewNVPairs(args).ListOptions()
			if err != nil {
				return err
			}
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (dtrack.Page[schema.Component], error) {
				return c.ListComponents(ctx, opts)
			})
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <uuid>",
		Short: "Show one component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid component UUID %q", args[0])
			}
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (schema.Component, error) {
				return c.GetComponent(ctx, id)
			})
		},
	}
}

type input struct {
	Name        string `validate:"required,max=255"`
	Version     string `validate:"max=255"`
	Group       string `validate:"max=255"`
	Description string `validate:"max=1024"`
	License     string `validate:"omitempty,spdx"`
}

func createCmd() *cobra.Command {
	var in input

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.Validate(in); err != nil {
				return err
			}
			req := schema.ComponentCreateRequest(in)
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (schema.Component, error) {
				return c.CreateComponent(ctx, req)
			})
		},
	}

	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "component name")
	cmd.Flags().StringVarP(&in.Version, "version", "v", "", "component version")
	cmd.Flags().StringVarP(&in.Group, "group", "g", "", "group or namespace, e.g. org.apache")
	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "description")
	cmd.Flags().StringVarP(&in.License, "license", "l", "", "SPDX license identifier, e.g. Apache-2.0")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
