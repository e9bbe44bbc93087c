// Package menu implements the MenuItem/MenuUsage repository using PostgreSQL.
// Menu items are reusable templates; usages place them at a dashboard or
// workspace scope with a sibling order.
package menu

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

const itemColumns = "id, title, type, icon, target, global_context, parent_id, created_at, updated_at"

// Repo provides menu item and menu usage persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new menu repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for JOIN read queries
// ---------------------------------------------------------------------------

const placementsForDashboardSQL = `
SELECT
    u.id, u.menu_id, u.dashboard_id, u.workspace_id, u.order_index, u.created_at,
    i.id, i.title, i.type, i.icon, i.target, i.global_context, i.parent_id, i.created_at, i.updated_at
FROM menu_usages u
JOIN menu_items i ON u.menu_id = i.id
WHERE u.dashboard_id = $1 AND u.workspace_id IS NULL
ORDER BY u.order_index, u.created_at`

const placementsForWorkspaceSQL = `
SELECT
    u.id, u.menu_id, u.dashboard_id, u.workspace_id, u.order_index, u.created_at,
    i.id, i.title, i.type, i.icon, i.target, i.global_context, i.parent_id, i.created_at, i.updated_at
FROM menu_usages u
JOIN menu_items i ON u.menu_id = i.id
WHERE u.workspace_id = $1
ORDER BY u.order_index, u.created_at`

const reorderUsagesSQL = `
UPDATE menu_usages AS u
SET order_index = x.ord - 1
FROM unnest($1::uuid[]) WITH ORDINALITY AS x(id, ord)
WHERE u.id = x.id`

// ---------------------------------------------------------------------------
// Menu item operations
// ---------------------------------------------------------------------------

// GetItemByID returns a menu item template by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetItemByID(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(itemColumns).
		From("menu_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	item, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "menu item", id)
	}

	return item, nil
}

// ListItems returns all menu item templates ordered by title.
func (r *Repo) ListItems(ctx context.Context) ([]*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(itemColumns).
		From("menu_items").
		OrderBy("title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var result []*domain.MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.MenuItem{}
	}

	return result, nil
}

// CreateItem inserts a new menu item template.
func (r *Repo) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("menu_items").
		Columns("title", "type", "icon", "target", "global_context", "parent_id").
		Values(item.Title, item.Type.String(), item.Icon, item.Target, item.GlobalContext, item.ParentID).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "menu item", uuid.Nil)
	}

	return created, nil
}

// UpdateItem modifies a menu item template using partial params.
// ClearParent detaches the item from its parent; otherwise a non-nil
// ParentID re-parents it.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) UpdateItem(ctx context.Context, id uuid.UUID, params domain.MenuItemUpdateParams) (*domain.MenuItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update("menu_items").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumns)

	if params.Title != nil {
		update = update.Set("title", *params.Title)
	}
	if params.Icon != nil {
		if *params.Icon == "" {
			update = update.Set("icon", nil)
		} else {
			update = update.Set("icon", *params.Icon)
		}
	}
	if params.Target != nil {
		update = update.Set("target", *params.Target)
	}
	if params.GlobalContext != nil {
		update = update.Set("global_context", *params.GlobalContext)
	}
	if params.ClearParent {
		update = update.Set("parent_id", nil)
	} else if params.ParentID != nil {
		update = update.Set("parent_id", *params.ParentID)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	item, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "menu item", id)
	}

	return item, nil
}

// DeleteItem removes a menu item template. CASCADE deletes its usages;
// children are detached (parent_id SET NULL).
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("menu_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "menu item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu item %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Menu usage operations
// ---------------------------------------------------------------------------

// PlacementsForDashboard returns the dashboard-level placements of a
// dashboard (usages with no workspace), joined with their items, ordered
// by order_index with creation time as the stable tiebreak.
// Returns an empty slice (not nil) when the scope has no placements.
func (r *Repo) PlacementsForDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.MenuPlacement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, placementsForDashboardSQL, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("placements for dashboard: %w", err)
	}
	defer rows.Close()

	return scanPlacements(rows)
}

// PlacementsForWorkspace returns the workspace-level placements of a
// workspace, joined with their items, ordered like PlacementsForDashboard.
func (r *Repo) PlacementsForWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.MenuPlacement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, placementsForWorkspaceSQL, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("placements for workspace: %w", err)
	}
	defer rows.Close()

	return scanPlacements(rows)
}

// CreateUsage places a menu item at a scope.
// Returns domain.ErrAlreadyExists if the item is already placed at that
// exact scope, domain.ErrValidation if the scope shape is illegal (CHECK
// violation), domain.ErrNotFound on dangling references.
func (r *Repo) CreateUsage(ctx context.Context, u *domain.MenuUsage) (*domain.MenuUsage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("menu_usages").
		Columns("menu_id", "dashboard_id", "workspace_id", "order_index").
		Values(u.MenuID, u.DashboardID, u.WorkspaceID, u.OrderIndex).
		Suffix("RETURNING id, menu_id, dashboard_id, workspace_id, order_index, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanUsage(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "menu usage", uuid.Nil)
	}

	return created, nil
}

// DeleteUsage removes a placement. The menu item template is not affected.
// Returns domain.ErrNotFound if the usage does not exist.
func (r *Repo) DeleteUsage(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("menu_usages").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "menu usage", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu usage %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ReorderUsages rewrites order_index for the given usages to match their
// position in ids (0-based). Usages not listed keep their index; callers
// pass the complete sibling set of one scope. Returns the number of rows
// updated.
func (r *Repo) ReorderUsages(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, reorderUsagesSQL, ids)
	if err != nil {
		return 0, fmt.Errorf("reorder usages: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.MenuItem, error) {
	var (
		item     domain.MenuItem
		itemType string
		icon     pgtype.Text
		parentID *uuid.UUID
	)

	if err := row.Scan(&item.ID, &item.Title, &itemType, &icon, &item.Target,
		&item.GlobalContext, &parentID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}

	item.Type = domain.MenuItemType(itemType)
	if icon.Valid {
		item.Icon = &icon.String
	}
	item.ParentID = parentID

	return &item, nil
}

func scanUsage(row pgx.Row) (*domain.MenuUsage, error) {
	var (
		u           domain.MenuUsage
		dashboardID *uuid.UUID
		workspaceID *uuid.UUID
		createdAt   time.Time
	)

	if err := row.Scan(&u.ID, &u.MenuID, &dashboardID, &workspaceID, &u.OrderIndex, &createdAt); err != nil {
		return nil, err
	}

	u.DashboardID = dashboardID
	u.WorkspaceID = workspaceID
	u.CreatedAt = createdAt

	return &u, nil
}

func scanPlacements(rows pgx.Rows) ([]domain.MenuPlacement, error) {
	var result []domain.MenuPlacement
	for rows.Next() {
		var (
			u           domain.MenuUsage
			dashboardID *uuid.UUID
			workspaceID *uuid.UUID
			item        domain.MenuItem
			itemType    string
			icon        pgtype.Text
			parentID    *uuid.UUID
		)

		if err := rows.Scan(
			&u.ID, &u.MenuID, &dashboardID, &workspaceID, &u.OrderIndex, &u.CreatedAt,
			&item.ID, &item.Title, &itemType, &icon, &item.Target,
			&item.GlobalContext, &parentID, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}

		u.DashboardID = dashboardID
		u.WorkspaceID = workspaceID
		item.Type = domain.MenuItemType(itemType)
		if icon.Valid {
			item.Icon = &icon.String
		}
		item.ParentID = parentID

		result = append(result, domain.MenuPlacement{Usage: u, Item: item})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.MenuPlacement{}
	}

	return result, nil
}
