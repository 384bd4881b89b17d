package postgres

import (
	"context"
	"database/sql"
)

// Queryer is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories run against it so the same code serves both direct calls and
// units of work.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
