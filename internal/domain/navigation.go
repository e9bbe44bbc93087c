package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// ResolvedContext is the validated {dashboard, workspace?, menu?, user}
// tuple derived from a request path. It is never persisted.
//
// Invariants: if WorkspaceID is set it belongs to DashboardID; if MenuID
// is set a MenuUsage links it to the active scope. The resolver enforces
// both; a context that violates them is never produced.
type ResolvedContext struct {
	DashboardID uuid.UUID
	WorkspaceID *uuid.UUID
	MenuID      *uuid.UUID
	UserID      uuid.UUID
}

// Equal reports whether two contexts point at the same node.
func (c ResolvedContext) Equal(other ResolvedContext) bool {
	return c.DashboardID == other.DashboardID &&
		equalUUIDPtr(c.WorkspaceID, other.WorkspaceID) &&
		equalUUIDPtr(c.MenuID, other.MenuID) &&
		c.UserID == other.UserID
}

func equalUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// NavNode is one entry of the sidebar navigation tree.
// Children are populated one level deep; deeper nesting is an extension
// point, not a current guarantee.
type NavNode struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	Icon     string    `json:"icon"`
	IsActive bool      `json:"isActive"`
	Children []NavNode `json:"children,omitempty"`
}

// SelectionKey returns the durable storage key for a dashboard's last
// active workspace. The format is part of the external contract.
func SelectionKey(dashboardID uuid.UUID) string {
	return fmt.Sprintf("dashboard:%s:activeWorkspace", dashboardID)
}

// DashboardURL returns the canonical URL of a dashboard home.
func DashboardURL(dashboardID uuid.UUID) string {
	return fmt.Sprintf("/dashboard/%s", dashboardID)
}

// WorkspaceURL returns the canonical URL of a workspace home.
func WorkspaceURL(dashboardID, workspaceID uuid.UUID) string {
	return fmt.Sprintf("/dashboard/%s/%s", dashboardID, workspaceID)
}
