package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dashboard is the top-level tenant container. It owns workspaces and
// dashboard-scoped menu placements; deleting it cascades both.
type Dashboard struct {
	ID             uuid.UUID
	Name           string
	Description    *string
	OrganizationID *uuid.UUID
	CreatedByID    *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Workspace is a sub-scope owned exclusively by one dashboard.
// Its lifecycle is bound to the dashboard (FK with ON DELETE CASCADE).
type Workspace struct {
	ID          uuid.UUID
	DashboardID uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DashboardUpdateParams holds partial-update fields for a dashboard.
// nil means "leave unchanged"; a pointer to "" clears a nullable field.
type DashboardUpdateParams struct {
	Name        *string
	Description *string
}

// WorkspaceUpdateParams holds partial-update fields for a workspace.
type WorkspaceUpdateParams struct {
	Name        *string
	Description *string
}
