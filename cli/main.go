//
// Copyright (c) 2025-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/UnifyEM/DTConsole/cli/display"
	"github.com/UnifyEM/DTConsole/cli/functions/component"
	"github.com/UnifyEM/DTConsole/cli/functions/license"
	loginCmd "github.com/UnifyEM/DTConsole/cli/functions/login"
	"github.com/UnifyEM/DTConsole/cli/functions/project"
	"github.com/UnifyEM/DTConsole/cli/functions/team"
	"github.com/UnifyEM/DTConsole/cli/functions/user"
	"github.com/UnifyEM/DTConsole/cli/functions/version"
	"github.com/UnifyEM/DTConsole/cli/functions/whoami"
	"github.com/UnifyEM/DTConsole/cli/global"
	"github.com/UnifyEM/DTConsole/cli/settings"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		display.ErrorWrapper(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   global.ProgName(),
		Short: global.Description,
		Long:  global.LongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("a subcommand is required")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags override the environment and the env file
	pf := rootCmd.PersistentFlags()
	pf.String(settings.KeyServer, "", "API base URL, e.g. https://dt.example.com/api (default $DT_SERVER)")
	pf.StringP(settings.KeyOutput, "o", "", "output format: json, yaml or table (default $DT_OUTPUT or table)")
	pf.Bool(settings.KeyDebug, false, "log debug messages to stderr")
	pf.Duration(settings.KeyTimeout, 0, "per request timeout (default $DT_TIMEOUT or 30s)")

	// Add the functions
	rootCmd.AddCommand(version.Register())
	rootCmd.AddCommand(loginCmd.Register())
	rootCmd.AddCommand(loginCmd.RegisterLogout())
	rootCmd.AddCommand(whoami.Register())
	rootCmd.AddCommand(project.Register())
	rootCmd.AddCommand(component.Register())
	rootCmd.AddCommand(license.Register())
	rootCmd.AddCommand(team.Register())
	rootCmd.AddCommand(user.Register())

	return rootCmd
}
