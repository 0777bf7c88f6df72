// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cubes/cli/internal/gateway"
	"cubes/cli/internal/logging"
	"cubes/cli/internal/session"
)

// Env is what handlers operate on.
type Env struct {
	Gateway gateway.Gateway
	Session *session.State
}

// User returns the logged-in user. Gated handlers can rely on it being set.
func (e *Env) User() session.User {
	u, _ := e.Session.Current()
	return u
}

// Executor dispatches commands and prints their outcome.
type Executor struct {
	registry *Registry
	env      *Env
	out      io.Writer
}

// NewExecutor creates an executor writing to out. A nil session starts
// logged out.
func NewExecutor(registry *Registry, gw gateway.Gateway, sess *session.State, out io.Writer) *Executor {
	if sess == nil {
		sess = &session.State{}
	}
	return &Executor{
		registry: registry,
		env:      &Env{Gateway: gw, Session: sess},
		out:      out,
	}
}

// Session returns the executor's session state.
func (x *Executor) Session() *session.State {
	return x.env.Session
}

// Execute runs one command and prints its result or error followed by a
// blank line. Failures never escape; the caller just prompts again.
func (x *Executor) Execute(ctx context.Context, name string, args []string) {
	defer fmt.Fprintln(x.out)

	d, ok := x.registry.Lookup(name)
	if !ok {
		fmt.Fprintln(x.out, "Invalid command")
		return
	}
	if !d.Accepts(len(args)) {
		fmt.Fprintln(x.out, ArityError(d, len(args)))
		return
	}
	if d.Gated && !x.env.Session.Require(x.out) {
		return
	}

	logging.Debugf("command", "%s with %d argument(s)", d.Name, len(args))
	res, err := d.Run(ctx, x.env, args)
	if err != nil {
		fmt.Fprintln(x.out, errorLine(err))
		return
	}
	res.Write(x.out)
}

// ArityError formats the message for a wrong argument count.
func ArityError(d Descriptor, given int) string {
	takes := fmt.Sprintf("%d", d.Max())
	if d.Min() != d.Max() {
		takes = fmt.Sprintf("%d to %d", d.Min(), d.Max())
	}
	return fmt.Sprintf("Error: %s takes %s arguments, but %d given", d.Name, takes, given)
}

func errorLine(err error) string {
	var f *gateway.Failure
	if errors.As(err, &f) {
		return "Error: " + f.Error()
	}
	return "Error: " + logging.Mask(err.Error())
}
