// Package token implements refresh token persistence using PostgreSQL.
// Tokens are stored hashed; the raw token never reaches the database.
package token

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/openboards/openboards-backend/internal/adapter/postgres"
	"github.com/openboards/openboards-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const tokenColumns = "id, user_id, token_hash, expires_at, created_at, revoked_at"

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a hashed refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("refresh_tokens").
		Columns("user_id", "token_hash", "expires_at").
		Values(t.UserID, t.TokenHash, t.ExpiresAt).
		Suffix("RETURNING " + tokenColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanToken(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "refresh token", uuid.Nil)
	}

	return created, nil
}

// GetByHash returns a refresh token by its hash.
// Returns domain.ErrNotFound if no such token exists.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(tokenColumns).
		From("refresh_tokens").
		Where(sq.Eq{"token_hash": hash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanToken(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "refresh token", uuid.Nil)
	}

	return t, nil
}

// Revoke marks a token revoked. Idempotent: revoking twice is not an error.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh token", id)
	}

	return nil
}

// RevokeAllForUser revokes every live token of a user (logout everywhere).
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("refresh_tokens").
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Where("revoked_at IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh token", userID)
	}

	return nil
}

// DeleteExpired removes tokens that expired before the cutoff.
// Returns the number of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("refresh_tokens").
		Where(sq.Lt{"expires_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var (
		t         domain.RefreshToken
		revokedAt *time.Time
	)

	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &revokedAt); err != nil {
		return nil, err
	}

	t.RevokedAt = revokedAt

	return &t, nil
}
