// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the cubes CLI.
// The root command connects to the cubes database and runs the interactive
// shell; subcommands inspect the configuration without connecting.
package cmd

import (
	"fmt"
	"os"

	"cubes/cli/internal/config"
	clierrors "cubes/cli/internal/errors"
	"cubes/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// connFlags holds the connection overrides shared by every command.
type connFlags struct {
	host     string
	port     string
	database string
	sslmode  string
	user     string
}

var (
	showVersion bool
	verbose     bool
	noColor     bool
	conn        connFlags
)

// rootCmd represents the base command when called without any subcommands.
// It runs the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "cubes",
	Short: "Interactive shell for the cubes speedcubing timer database",
	Long: `cubes connects to the cubes database and opens an interactive shell for
managing users, timing sessions, rounds, solves, friends and notes.

Type "help" in the shell for the list of commands and "q" to quit.
Connection settings come from the config file, the CUBES_* environment
variables (CUBES_DSN or DATABASE_URL for a full connection string) and the
flags below, in increasing order of priority.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetVerbose(true)
		}
		if noColor {
			pterm.DisableStyling()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("cubes %s\n", Version)
			return nil
		}
		return runShell(cmd)
	},
}

// Execute runs the CLI application and exits with a code reflecting the
// failure: 2 when the database could not be reached, 1 for anything else.
func Execute() {
	err := rootCmd.Execute()
	if err != nil && clierrors.KindOf(err) != clierrors.ConnectFailed {
		// connect failures are reported where they happen
		fmt.Fprintln(os.Stderr, "Error: "+logging.PresentError("", err))
	}
	os.Exit(clierrors.ExitCode(err))
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&conn.host, "host", "", "Database host (overrides config)")
	pf.StringVar(&conn.port, "port", "", "Database port (overrides config)")
	pf.StringVar(&conn.database, "database", "", "Database name (overrides config)")
	pf.StringVar(&conn.sslmode, "sslmode", "", "SSL mode: disable, require, verify-full, ...")
	pf.StringVar(&conn.user, "user", "", "Database user; skips the username prompt")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, clierrors.Wrap(clierrors.ConfigInvalid, "load config", err)
	}
	conn.apply(&cfg)
	if cfg.Debug() {
		logging.SetVerbose(true)
	}
	return cfg, nil
}

// apply overrides cfg with the flags that were set. Field flags also drop
// an environment DSN so that --host and friends always take effect.
func (f connFlags) apply(cfg *config.Config) {
	set := func(dst *string, v string) bool {
		if v == "" {
			return false
		}
		*dst = v
		return true
	}
	fields := false
	fields = set(&cfg.DB.Host, f.host) || fields
	fields = set(&cfg.DB.Port, f.port) || fields
	fields = set(&cfg.DB.Database, f.database) || fields
	fields = set(&cfg.DB.SSLMode, f.sslmode) || fields
	set(&cfg.DB.User, f.user)
	if fields {
		cfg.DB.DSN = ""
	}
}
