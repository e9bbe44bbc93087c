// Package workspace implements the Workspace repository using PostgreSQL.
package workspace

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/openboards/openboards-backend/internal/adapter/postgres"
	"github.com/openboards/openboards-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const workspaceColumns = "id, dashboard_id, name, description, created_at, updated_at"

// Repo provides workspace persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new workspace repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a workspace by primary key.
// Returns domain.ErrNotFound if the workspace does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(workspaceColumns).
		From("workspaces").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	w, err := scanWorkspace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "workspace", id)
	}

	return w, nil
}

// ListByDashboard returns a dashboard's workspaces ordered by name.
// Returns an empty slice (not nil) when the dashboard has none.
func (r *Repo) ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]*domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(workspaceColumns).
		From("workspaces").
		Where(sq.Eq{"dashboard_id": dashboardID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	return scanWorkspaces(rows)
}

// Create inserts a new workspace owned by a dashboard.
// Returns domain.ErrNotFound if the dashboard does not exist (FK violation).
func (r *Repo) Create(ctx context.Context, w *domain.Workspace) (*domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("workspaces").
		Columns("dashboard_id", "name", "description").
		Values(w.DashboardID, w.Name, w.Description).
		Suffix("RETURNING " + workspaceColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanWorkspace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "workspace", uuid.Nil)
	}

	return created, nil
}

// Update modifies a workspace's name and/or description.
// Returns domain.ErrNotFound if the workspace does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.WorkspaceUpdateParams) (*domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("workspaces").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + workspaceColumns)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			update = update.Set("description", nil)
		} else {
			update = update.Set("description", *params.Description)
		}
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	w, err := scanWorkspace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "workspace", id)
	}

	return w, nil
}

// Delete removes a workspace. CASCADE deletes its menu usages.
// Returns domain.ErrNotFound if the workspace does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("workspaces").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "workspace", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var (
		w           domain.Workspace
		description pgtype.Text
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&w.ID, &w.DashboardID, &w.Name, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if description.Valid {
		w.Description = &description.String
	}
	w.CreatedAt = createdAt
	w.UpdatedAt = updatedAt

	return &w, nil
}

func scanWorkspaces(rows pgx.Rows) ([]*domain.Workspace, error) {
	var result []*domain.Workspace
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Workspace{}
	}

	return result, nil
}
