//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBLike is what the fixtures need to seed rows: a pool, or a transaction
// when a test wants its fixtures rolled back.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DBLike = (*pgxpool.Pool)(nil)
	_ DBLike = (pgx.Tx)(nil)
)
