package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the common interface implemented by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// unexported context key type for storing the active querier
type txCtxKey struct{}

// WithQuerier returns a context that routes repository queries through q.
// TxManager uses it to scope queries to a transaction; tests use it to
// inject a mock connection.
func WithQuerier(ctx context.Context, q Querier) context.Context {
	return context.WithValue(ctx, txCtxKey{}, q)
}

// QuerierFromCtx returns the querier from context if present,
// otherwise returns the pool.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if q, ok := ctx.Value(txCtxKey{}).(Querier); ok {
		return q
	}
	return pool
}
