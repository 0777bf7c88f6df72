// Package errors defines typed errors with categories for user-friendly reporting.
// Each error carries a machine-readable Kind that the command layer uses to pick
// a process exit code, plus a human-friendly message and the wrapped cause.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// ConnectFailed indicates the database connection could not be established.
	ConnectFailed Kind = "connect_failed"
	// ConfigInvalid indicates configuration or connection settings are unusable.
	ConfigInvalid Kind = "config_invalid"
	// InputFailed indicates reading from the terminal failed.
	InputFailed Kind = "input_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the Kind of the first *E in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Exit codes returned by the CLI.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitConnectFailed = 2
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if KindOf(err) == ConnectFailed {
		return ExitConnectFailed
	}
	return ExitFailure
}
