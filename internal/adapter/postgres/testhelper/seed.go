package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openboards/openboards-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a member user with a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$" + suffix + "notarealhash",
		Role:         domain.UserRoleMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedDashboard creates a dashboard with a generated name.
// Returns a filled domain.Dashboard.
func SeedDashboard(t *testing.T, pool *pgxpool.Pool) domain.Dashboard {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	dash := domain.Dashboard{
		ID:        uuid.New(),
		Name:      "Dashboard " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO dashboards (id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		dash.ID, dash.Name, dash.CreatedAt, dash.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDashboard insert: %v", err)
	}

	return dash
}

// SeedWorkspace creates a workspace under the given dashboard.
// Returns a filled domain.Workspace.
func SeedWorkspace(t *testing.T, pool *pgxpool.Pool, dashboardID uuid.UUID) domain.Workspace {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	ws := domain.Workspace{
		ID:          uuid.New(),
		DashboardID: dashboardID,
		Name:        "Workspace " + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO workspaces (id, dashboard_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		ws.ID, ws.DashboardID, ws.Name, ws.CreatedAt, ws.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWorkspace insert: %v", err)
	}

	return ws
}

// SeedMenuItem creates a menu item of the given type.
// Returns a filled domain.MenuItem.
func SeedMenuItem(t *testing.T, pool *pgxpool.Pool, itemType domain.MenuItemType) domain.MenuItem {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.MenuItem{
		ID:        uuid.New(),
		Title:     "Item " + suffix,
		Type:      itemType,
		Target:    "target-" + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO menu_items (id, title, type, target, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Title, string(item.Type), item.Target, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMenuItem insert: %v", err)
	}

	return item
}
