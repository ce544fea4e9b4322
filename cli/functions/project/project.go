/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package project

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

// Register returns the root project command with subcommands.
func Register() *cobra.Command {
	projectCmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "Manage projects",
		Long:    "Project management commands: list, get, create, update, delete",
	}

	projectCmd.AddCommand(listCmd())
	projectCmd.AddCommand(getCmd())
	projectCmd.AddCommand(createCmd())
	projectCmd.AddCommand(updateCmd())
	projectCmd.AddCommand(deleteCmd())

	return projectCmd
}

// input is the validated form of the create and update flags
type input struct {
	Name        string   `validate:"required,max=255"`
	Version     string   `validate:"max=255"`
	Description string   `validate:"max=1024"`
	Tags        []string `validate:"dive,required,max=255"`
}

func addFlags(cmd *cobra.Command, in *input) {
	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "project name")
	cmd.Flags().StringVarP(&in.Version, "version", "v", "", "project version")
	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "description")
	cmd.Flags().StringSliceVarP(&in.Tags, "tag", "t", nil, "tag (repeat or separate with commas)")
}

func parseUUID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid project UUID %q", arg)
	}
	return id, nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [page=N] [size=N] [search=text]",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := util.NewNVPairs(args).ListOptions()
			if err != nil {
				return err
			}
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (dtrack.Page[schema.Project], error) {
				return c.ListProjects(ctx, opts)
			})
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <uuid>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUID(args[0])
			if err != nil {
				return err
			}
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (schema.Project, error) {
				return c.GetProject(ctx, id)
			})
		},
	}
}

func createCmd() *cobra.Command {
	var in input

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.Validate(in); err != nil {
				return err
			}
			req := schema.ProjectCreateRequest{
				Name:        in.Name,
				Version:     in.Version,
				Description: in.Description,
				Tags:        schema.NewTags(in.Tags...),
			}
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (schema.Project, error) {
				return c.CreateProject(ctx, req)
			})
		},
	}

	addFlags(cmd, &in)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// updateCmd changes only the fields whose flags were given. The current
// project is read first because the API replaces the whole object.
func updateCmd() *cobra.Command {
	var in input

	cmd := &cobra.Command{
		Use:   "update <uuid>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUID(args[0])
			if err != nil {
				return err
			}
			return communications.Show(cmd, func(ctx context.Context, c *dtrack.Client) (schema.Project, error) {
				current, err := c.GetProject(ctx, id)
				if err != nil {
					return schema.Project{}, err
				}

				merged := input{
					Name:        current.Name,
					Version:     current.Version,
					Description: current.Description,
					Tags:        schema.TagNames(current.Tags),
				}
				flags := cmd.Flags()
				if flags.Changed("name") {
					merged.Name = in.Name
				}
				if flags.Changed("version") {
					merged.Version = in.Version
				}
				if flags.Changed("description") {
					merged.Description = in.Description
				}
				if flags.Changed("tag") {
					merged.Tags = in.Tags
				}
				if err = util.Validate(merged); err != nil {
					return schema.Project{}, err
				}

				return c.UpdateProject(ctx, schema.ProjectUpdateRequest{
					UUID:        id.String(),
					Name:        merged.Name,
					Version:     merged.Version,
					Description: merged.Description,
					Tags:        schema.NewTags(merged.Tags...),
				})
			})
		},
	}

	addFlags(cmd, &in)
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <uuid>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUUID(args[0])
			if err != nil {
				return err
			}
			return communications.Run(cmd, func(ctx context.Context, c *communications.Communications) error {
				var failure error
				dtrack.Do(ctx, dtrack.NoContent(func(ctx context.Context) error {
					return c.Client.DeleteProject(ctx, id)
				}), dtrack.Callbacks[struct{}]{
					OnSuccess: func(struct{}) {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Project %s deleted\n", id)
					},
					OnFailure: func(err error) { failure = err },
				})
				return failure
			})
		},
	}
}
