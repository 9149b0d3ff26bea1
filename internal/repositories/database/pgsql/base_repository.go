package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// query is a helper method to execute a query that returns multiple rows
func (r *BaseRepository) query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return r.Pool.Query(ctx, sql, args...)
}

// exec is a helper method to execute a query that doesn't return rows
func (r *BaseRepository) exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return r.Pool.Exec(ctx, sql, args...)
}
