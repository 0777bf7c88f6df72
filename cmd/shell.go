// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"cubes/cli/internal/command"
	"cubes/cli/internal/dsn"
	clierrors "cubes/cli/internal/errors"
	"cubes/cli/internal/gateway"
	"cubes/cli/internal/logging"
	"cubes/cli/internal/repl"
	"cubes/cli/internal/terminal"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const connectTimeout = 15 * time.Second

// credentialPrompter is the subset of terminal.Prompter used at startup.
type credentialPrompter interface {
	ReadLine(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

// runShell resolves the connection target, asks for credentials, connects
// and runs the shell until the user quits. The session is committed on the
// way out.
func runShell(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	info, src, err := dsn.Resolve(cfg.DB)
	if err != nil {
		return clierrors.Wrap(clierrors.ConfigInvalid, "invalid connection settings", err)
	}
	if conn.user != "" {
		info = info.WithCredentials(conn.user, info.Password)
	}
	logging.Debugf("cmd", "connection target from %s: %s", src, info.Masked())

	prompter := terminal.NewPrompter(os.Stdin, os.Stdout)
	info, err = collectCredentials(prompter, info)
	if err != nil {
		return clierrors.Wrap(clierrors.InputFailed, "read credentials", err)
	}

	gw, err := connect(ctx, info, prompter.Interactive())
	if err != nil {
		f := gateway.AsFailure(err)
		logging.PresentConnectError(f.Code, f.Description)
		return clierrors.Wrap(clierrors.ConnectFailed, "connect", err)
	}

	registry := command.Builtin()
	exec := command.NewExecutor(registry, gw, nil, os.Stdout)
	runErr := repl.NewShell(prompter, os.Stdout, exec, registry).Run(ctx)

	// Commit even when the loop ended on a read error.
	closeCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := gw.Close(closeCtx); err != nil {
		pterm.Println(pterm.NewStyle(pterm.FgRed).Sprint("Failed to commit the session"))
		if runErr == nil {
			runErr = fmt.Errorf("close session: %w", err)
		}
	}
	return runErr
}

// collectCredentials asks for whatever the connection target is missing.
// A target that already carries a password is used as is.
func collectCredentials(p credentialPrompter, info *dsn.Info) (*dsn.Info, error) {
	if info.HasPassword() {
		return info, nil
	}
	fmt.Println("Connect to database")

	user := info.User
	if user == "" {
		u, err := p.ReadLine("Enter username: ")
		if err != nil {
			return nil, err
		}
		user = strings.TrimSpace(u)
	}
	password, err := p.ReadPassword("Enter your password: ")
	if err != nil {
		return nil, err
	}
	return info.WithCredentials(user, password), nil
}

// connect opens the gateway, showing a spinner on interactive terminals.
func connect(ctx context.Context, info *dsn.Info, interactive bool) (*gateway.Postgres, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	var spinner *pterm.SpinnerPrinter
	if interactive {
		cursor.Hide()
		defer cursor.Show()
		spinner, _ = pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Connecting to " + info.Database)
	}

	start := time.Now()
	gw, err := gateway.Open(ctx, info.String())
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		logging.Debugf("cmd", "connect failed after %s: %v", time.Since(start).Round(time.Millisecond), err)
		return nil, err
	}
	logging.Debugf("cmd", "connected in %s", time.Since(start).Round(time.Millisecond))
	return gw, nil
}
