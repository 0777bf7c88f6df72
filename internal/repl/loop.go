// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package repl implements the interactive shell: it reads lines, splits them
// into commands and hands them to the command executor.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cubes/cli/internal/command"
	clierrors "cubes/cli/internal/errors"
	"cubes/cli/internal/logging"
)

// Prompt is printed before every line read.
const Prompt = "> "

const banner = `Enter commands. To see a list of possible commands, type "help".`

// LineReader reads one line after printing a prompt. It returns io.EOF
// when input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Executor runs a parsed command.
type Executor interface {
	Execute(ctx context.Context, name string, args []string)
}

// Shell is the read-eval-print loop.
type Shell struct {
	in       LineReader
	out      io.Writer
	exec     Executor
	registry *command.Registry
}

// NewShell creates a shell; registry drives the help listing.
func NewShell(in LineReader, out io.Writer, exec Executor, registry *command.Registry) *Shell {
	return &Shell{in: in, out: out, exec: exec, registry: registry}
}

// Run loops until the user types q, input ends, or ctx is done. Only a
// failure to read input is returned.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, banner)
	fmt.Fprintln(s.out)

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := s.in.ReadLine(Prompt)
		if errors.Is(err, io.EOF) {
			// Ctrl-D behaves like q
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return clierrors.Wrap(clierrors.InputFailed, "read command", err)
		}

		input, err := Parse(line)
		if err != nil {
			logging.Debugf("repl", "parse %q: %v", line, err)
			fmt.Fprintf(s.out, "Error: %s\n\n", err)
			continue
		}

		switch input.Command {
		case "":
		case "q":
			return nil
		case "help":
			s.PrintHelp()
		default:
			s.exec.Execute(ctx, input.Command, input.Args)
		}
	}
}

// PrintHelp lists the builtins followed by every registered command.
func (s *Shell) PrintHelp() {
	WriteHelp(s.out, s.registry)
}

// WriteHelp writes the command listing to w.
func WriteHelp(w io.Writer, registry *command.Registry) {
	fmt.Fprintln(w, "  q: quit")
	fmt.Fprintln(w, "  help: see list of commands")
	if registry == nil {
		return
	}
	for _, d := range registry.List() {
		fmt.Fprintf(w, "  %s: %s\n", d.Usage(), d.Description)
	}
}
