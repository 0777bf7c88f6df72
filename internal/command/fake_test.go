// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package command

import (
	"context"
	"fmt"
	"strings"

	"cubes/cli/internal/gateway"
)

type call struct {
	procedure string
	args      []any
}

func (c call) String() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		if a == nil {
			parts[i] = "NULL"
		} else {
			parts[i] = fmt.Sprint(a)
		}
	}
	return c.procedure + "(" + strings.Join(parts, ", ") + ")"
}

// fakeGateway records calls and answers from canned responses.
type fakeGateway struct {
	calls   []call
	rows    map[string][]gateway.Row
	failure map[string]error
	users   map[string]int64
}

func newFake() *fakeGateway {
	return &fakeGateway{
		rows:    map[string][]gateway.Row{},
		failure: map[string]error{},
		users:   map[string]int64{"alice": 1, "bob": 2},
	}
}

func (f *fakeGateway) Invoke(_ context.Context, procedure string, args ...any) ([]gateway.Row, error) {
	f.calls = append(f.calls, call{procedure: procedure, args: args})
	if err, ok := f.failure[procedure]; ok {
		return nil, err
	}
	if procedure == "get_user_id" {
		id, ok := f.users[fmt.Sprint(args[0])]
		if !ok {
			return []gateway.Row{gateway.NewRow("get_user_id", nil)}, nil
		}
		return []gateway.Row{gateway.NewRow("get_user_id", id)}, nil
	}
	return f.rows[procedure], nil
}

func (f *fakeGateway) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}
