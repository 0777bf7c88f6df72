// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package gateway invokes named backend procedures with positional arguments.
//
// All durable state lives behind stored procedures; callers only ever name a
// procedure and pass its arguments in the procedure's declared order. The
// gateway does no retries and no interpretation of failures: every backend
// error surfaces as a *Failure carrying the backend's code and description.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// CodeClient is reported for failures that never reached the server or that
// the driver raised itself (connection lost, context cancelled). It is the
// SQLSTATE for connection_exception.
const CodeClient = "08000"

// Gateway is the procedure-call service the command layer depends on.
// Implementations may talk to a real database or provide fakes for tests.
type Gateway interface {
	// Invoke calls procedure with args and returns its rows in order.
	Invoke(ctx context.Context, procedure string, args ...any) ([]Row, error)
}

// Failure is a backend error with its code and description.
type Failure struct {
	Code        string
	Description string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Code, f.Description)
}

// AsFailure converts any error into a *Failure. Server errors keep their
// SQLSTATE and message; everything else is reported under CodeClient.
func AsFailure(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &Failure{Code: pgErr.Code, Description: pgErr.Message}
	}
	return &Failure{Code: CodeClient, Description: err.Error()}
}
