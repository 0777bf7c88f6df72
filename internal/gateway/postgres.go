// Copyright (c) 2025 Cubes
// Licensed under the MIT License. See LICENSE file in the project root for details.

package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cubes/cli/internal/logging"

	"github.com/jackc/pgx/v5"
)

// Postgres invokes procedures as set-returning functions over a single
// long-lived connection. All calls share one session transaction that is
// committed by Close; each call runs inside its own savepoint so a failed
// call does not abort the calls that follow it.
type Postgres struct {
	conn *pgx.Conn
	tx   pgx.Tx
}

// Open connects, verifies the connection and begins the session transaction.
// Connection errors are returned as *Failure.
func Open(ctx context.Context, connString string) (*Postgres, error) {
	cfg, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, AsFailure(err)
	}
	logging.Debugf("gateway", "connecting to %s:%d/%s as %s", cfg.Host, cfg.Port, cfg.Database, cfg.User)

	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, AsFailure(err)
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, AsFailure(err)
	}
	tx, err := conn.Begin(ctx)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, AsFailure(err)
	}
	return &Postgres{conn: conn, tx: tx}, nil
}

// Invoke runs SELECT * FROM procedure(args...). Arguments are sent with the
// simple protocol so strings arrive as untyped literals and the backend
// applies its own parameter types; nil becomes NULL.
func (p *Postgres) Invoke(ctx context.Context, procedure string, args ...any) ([]Row, error) {
	if p.tx == nil {
		return nil, &Failure{Code: CodeClient, Description: "connection is closed"}
	}
	query, err := callSQL(procedure, len(args))
	if err != nil {
		return nil, err
	}
	logging.Debugf("gateway", "invoke %s with %d argument(s)", procedure, len(args))

	sp, err := p.tx.Begin(ctx)
	if err != nil {
		return nil, AsFailure(err)
	}
	rows, err := collect(ctx, sp, query, args)
	if err != nil {
		logging.Debugf("gateway", "%s failed: %v", procedure, err)
		_ = sp.Rollback(ctx)
		return nil, AsFailure(err)
	}
	if err := sp.Commit(ctx); err != nil {
		return nil, AsFailure(err)
	}
	logging.Debugf("gateway", "%s returned %d row(s)", procedure, len(rows))
	return rows, nil
}

// Close commits the session transaction and closes the connection.
// Calling Close more than once is a no-op.
func (p *Postgres) Close(ctx context.Context) error {
	if p.conn == nil {
		return nil
	}
	var errs []error
	if p.tx != nil {
		if err := p.tx.Commit(ctx); err != nil {
			errs = append(errs, AsFailure(err))
		}
		p.tx = nil
	}
	if err := p.conn.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	p.conn = nil
	return errors.Join(errs...)
}

// callSQL builds the statement for a procedure call. Dotted names are treated
// as schema-qualified.
func callSQL(procedure string, nargs int) (string, error) {
	procedure = strings.TrimSpace(procedure)
	if procedure == "" {
		return "", &Failure{Code: CodeClient, Description: "empty procedure name"}
	}
	ident := pgx.Identifier(strings.Split(procedure, ".")).Sanitize()

	placeholders := make([]string, nargs)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("SELECT * FROM %s(%s)", ident, strings.Join(placeholders, ", ")), nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func collect(ctx context.Context, q querier, query string, args []any) ([]Row, error) {
	qargs := make([]any, 0, len(args)+1)
	qargs = append(qargs, pgx.QueryExecModeSimpleProtocol)
	qargs = append(qargs, args...)

	rows, err := q.Query(ctx, query, qargs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = fd.Name
	}

	var out []Row
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		for i := range vals {
			vals[i] = normalize(vals[i])
		}
		out = append(out, Row{Columns: cols, Values: vals})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
