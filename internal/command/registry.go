// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package command defines the shell's commands and dispatches them.
//
// Every command is described once by a Descriptor: its parameters (which fix
// the accepted argument count), its help text, whether it needs a logged-in
// user, and the handler that runs it. The Executor consults nothing else.
package command

import (
	"context"
	"fmt"
	"strings"
)

// Param is one positional parameter of a command.
type Param struct {
	Name     string
	Optional bool
}

// Params builds a parameter list from names; a name wrapped in brackets,
// like "[penalty]", is optional.
func Params(names ...string) []Param {
	out := make([]Param, 0, len(names))
	for _, n := range names {
		if strings.HasPrefix(n, "[") && strings.HasSuffix(n, "]") {
			out = append(out, Param{Name: strings.Trim(n, "[]"), Optional: true})
			continue
		}
		out = append(out, Param{Name: n})
	}
	return out
}

// Handler runs a command with already arity-checked arguments.
type Handler func(ctx context.Context, env *Env, args []string) (Result, error)

// Descriptor describes a single command.
type Descriptor struct {
	Name        string
	Params      []Param
	Description string
	// Gated commands refuse to run without a logged-in user.
	Gated bool
	Run   Handler
}

// Min is the number of required arguments.
func (d Descriptor) Min() int {
	n := 0
	for _, p := range d.Params {
		if !p.Optional {
			n++
		}
	}
	return n
}

// Max is the total number of accepted arguments.
func (d Descriptor) Max() int {
	return len(d.Params)
}

// Accepts reports whether n arguments satisfy the command's arity.
func (d Descriptor) Accepts(n int) bool {
	return n >= d.Min() && n <= d.Max()
}

// Usage renders "name param [optional]".
func (d Descriptor) Usage() string {
	parts := []string{d.Name}
	for _, p := range d.Params {
		if p.Optional {
			parts = append(parts, "["+p.Name+"]")
		} else {
			parts = append(parts, p.Name)
		}
	}
	return strings.Join(parts, " ")
}

// Registry is an ordered set of uniquely named commands.
type Registry struct {
	order  []*Descriptor
	byName map[string]*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Descriptor)}
}

// Register adds d. It panics on a duplicate or malformed descriptor, since
// commands are defined at startup and such errors are programming mistakes.
func (r *Registry) Register(d Descriptor) {
	if d.Name == "" {
		panic("command: empty command name")
	}
	if d.Run == nil {
		panic(fmt.Sprintf("command: %s has no handler", d.Name))
	}
	if _, dup := r.byName[d.Name]; dup {
		panic(fmt.Sprintf("command: duplicate command %q", d.Name))
	}
	seenOptional := false
	for _, p := range d.Params {
		if p.Optional {
			seenOptional = true
		} else if seenOptional {
			panic(fmt.Sprintf("command: %s has required parameter %q after an optional one", d.Name, p.Name))
		}
	}
	r.order = append(r.order, &d)
	r.byName[d.Name] = &d
}

// Lookup finds a command by name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return *d, true
}

// List returns all commands in registration order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.order))
	for i, d := range r.order {
		out[i] = *d
	}
	return out
}
