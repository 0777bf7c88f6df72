// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package command

import (
	"fmt"
	"io"

	"cubes/cli/internal/gateway"
)

// ResultKind tags the shape of a handler's result.
type ResultKind int

const (
	// KindEmpty prints nothing.
	KindEmpty ResultKind = iota
	// KindSuccess prints "Success".
	KindSuccess
	// KindRows prints each item on its own line.
	KindRows
	// KindScalar prints a single value.
	KindScalar
)

func (k ResultKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSuccess:
		return "success"
	case KindRows:
		return "rows"
	case KindScalar:
		return "scalar"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is what a handler returns for the executor to print.
type Result struct {
	Kind   ResultKind
	Items  []string
	Scalar any
}

// Empty is the result of a command with nothing to show.
func Empty() Result { return Result{Kind: KindEmpty} }

// Success marks a completed side effect.
func Success() Result { return Result{Kind: KindSuccess} }

// Scalar wraps a single value.
func Scalar(v any) Result { return Result{Kind: KindScalar, Scalar: v} }

// Lines wraps preformatted lines.
func Lines(items ...string) Result { return Result{Kind: KindRows, Items: items} }

// Rows renders backend rows one per line.
func Rows(rows []gateway.Row) Result {
	items := make([]string, len(rows))
	for i, r := range rows {
		items[i] = r.String()
	}
	return Result{Kind: KindRows, Items: items}
}

// Write prints r to w.
func (r Result) Write(w io.Writer) {
	switch r.Kind {
	case KindSuccess:
		fmt.Fprintln(w, "Success")
	case KindRows:
		for _, item := range r.Items {
			fmt.Fprintln(w, item)
		}
	case KindScalar:
		fmt.Fprintln(w, gateway.FormatValue(r.Scalar))
	case KindEmpty:
	}
}
