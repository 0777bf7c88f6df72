// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"cubes/cli/internal/dsn"
	clierrors "cubes/cli/internal/errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dbinfoCmd shows the connection target the shell would use, with any
// password masked. It does not connect.
var dbinfoCmd = &cobra.Command{
	Use:   "dbinfo",
	Short: "Show the database connection target",
	Long: `The dbinfo command displays the connection string the shell would use,
built from the config file, the CUBES_* environment variables and flags.
Any password in the connection string is replaced with ***.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		info, src, err := dsn.Resolve(cfg.DB)
		if err != nil {
			if pe, ok := err.(*dsn.ParseError); ok {
				pterm.Println("❌ " + pe.Error())
			}
			return clierrors.Wrap(clierrors.ConfigInvalid, "invalid connection settings", err)
		}
		if conn.user != "" {
			info = info.WithCredentials(conn.user, info.Password)
		}

		switch src {
		case dsn.SourceEnv:
			pterm.Println("Using connection string from the environment (CUBES_DSN or DATABASE_URL)")
		default:
			pterm.Println("Using connection settings from config and flags")
		}
		pterm.Println()

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Database Connection")).
			WithTopPadding(1).WithBottomPadding(1).WithLeftPadding(1).WithRightPadding(1).
			Println(info.Masked())
		pterm.Println()
		if info.User == "" {
			pterm.Println("The username will be asked for when the shell starts.")
			pterm.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbinfoCmd)
}
