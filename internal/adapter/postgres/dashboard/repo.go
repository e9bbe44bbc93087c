// Package dashboard implements the Dashboard repository using PostgreSQL.
package dashboard

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

const dashboardColumns = "id, name, description, organization_id, created_by, created_at, updated_at"

// Repo provides dashboard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dashboard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a dashboard by primary key.
// Returns domain.ErrNotFound if the dashboard does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(dashboardColumns).
		From("dashboards").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	d, err := scanDashboard(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dashboard", id)
	}

	return d, nil
}

// List returns all dashboards ordered by creation time, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Dashboard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(dashboardColumns).
		From("dashboards").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list dashboards: %w", err)
	}
	defer rows.Close()

	return scanDashboards(rows)
}

// Create inserts a new dashboard and returns the persisted record.
func (r *Repo) Create(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("dashboards").
		Columns("name", "description", "organization_id", "created_by").
		Values(d.Name, d.Description, d.OrganizationID, d.CreatedByID).
		Suffix("RETURNING " + dashboardColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanDashboard(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dashboard", uuid.Nil)
	}

	return created, nil
}

// Update modifies a dashboard's name and/or description using partial params.
// Returns domain.ErrNotFound if the dashboard does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.DashboardUpdateParams) (*domain.Dashboard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("dashboards").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + dashboardColumns)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Description != nil {
		if *params.Description == "" {
			// ptr("") means clear (set NULL in DB).
			update = update.Set("description", nil)
		} else {
			update = update.Set("description", *params.Description)
		}
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	d, err := scanDashboard(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "dashboard", id)
	}

	return d, nil
}

// Delete removes a dashboard. CASCADE deletes its workspaces and menu usages.
// Returns domain.ErrNotFound if the dashboard does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("dashboards").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "dashboard", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dashboard %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanDashboard(row pgx.Row) (*domain.Dashboard, error) {
	var (
		d           domain.Dashboard
		description pgtype.Text
		orgID       *uuid.UUID
		createdBy   *uuid.UUID
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&d.ID, &d.Name, &description, &orgID, &createdBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if description.Valid {
		d.Description = &description.String
	}
	d.OrganizationID = orgID
	d.CreatedByID = createdBy
	d.CreatedAt = createdAt
	d.UpdatedAt = updatedAt

	return &d, nil
}

func scanDashboards(rows pgx.Rows) ([]*domain.Dashboard, error) {
	var result []*domain.Dashboard
	for rows.Next() {
		d, err := scanDashboard(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Dashboard{}
	}

	return result, nil
}
