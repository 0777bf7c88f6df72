// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package gateway

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestCallSQL(t *testing.T) {
	tests := []struct {
		name      string
		procedure string
		nargs     int
		want      string
		wantErr   bool
	}{
		{name: "no args", procedure: "list_sessions", want: `SELECT * FROM "list_sessions"()`},
		{name: "three args", procedure: "add_solve", nargs: 4, want: `SELECT * FROM "add_solve"($1, $2, $3, $4)`},
		{name: "schema qualified", procedure: "cubes.get_user_id", nargs: 1, want: `SELECT * FROM "cubes"."get_user_id"($1)`},
		{name: "quote in name", procedure: `evil"name`, want: `SELECT * FROM "evil""name"()`},
		{name: "empty", procedure: " ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := callSQL(tt.procedure, tt.nargs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("callSQL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("callSQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCloseWithoutOpenIsNoop(t *testing.T) {
	var p Postgres
	if err := p.Close(context.Background()); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if _, err := p.Invoke(context.Background(), "list_sessions"); err == nil {
		t.Errorf("Invoke() on closed gateway should fail")
	} else if f := AsFailure(err); f.Code != CodeClient {
		t.Errorf("code = %q, want %q", f.Code, CodeClient)
	}
}

// TestPostgresInvoke needs a reachable server; set CUBES_TEST_DSN to run it.
func TestPostgresInvoke(t *testing.T) {
	dsn := os.Getenv("CUBES_TEST_DSN")
	if dsn == "" {
		t.Skip("CUBES_TEST_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer p.Close(ctx)

	rows, err := p.Invoke(ctx, "lower", "ABC")
	if err != nil {
		t.Fatalf("Invoke(lower) error: %v", err)
	}
	if len(rows) != 1 || rows[0].First() != "abc" {
		t.Fatalf("Invoke(lower) = %+v", rows)
	}

	_, err = p.Invoke(ctx, "cubes_no_such_procedure")
	f := AsFailure(err)
	if f == nil || f.Code != "42883" {
		t.Fatalf("missing procedure failure = %+v, want code 42883", f)
	}

	// The session transaction survives a failed call.
	rows, err = p.Invoke(ctx, "upper", "x")
	if err != nil {
		t.Fatalf("Invoke after failure error: %v", err)
	}
	if len(rows) != 1 || rows[0].First() != "X" {
		t.Errorf("Invoke(upper) = %+v", rows)
	}

	if err := p.Close(ctx); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := p.Close(ctx); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
