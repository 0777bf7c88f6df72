// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"cubes/cli/internal/command"
	"cubes/cli/internal/repl"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands available in the shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Shell commands"))
		repl.WriteHelp(os.Stdout, command.Builtin())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
