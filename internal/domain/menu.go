package domain

import (
	"time"

	"github.com/google/uuid"
)

// MenuItemType distinguishes how a menu item's target is interpreted.
type MenuItemType string

const (
	// MenuItemTypeSlice targets a dynamically loadable content module.
	MenuItemTypeSlice MenuItemType = "SLICE"
	// MenuItemTypeLink targets an external or static URL.
	MenuItemTypeLink MenuItemType = "LINK"
)

func (t MenuItemType) String() string { return string(t) }

func (t MenuItemType) IsValid() bool {
	switch t {
	case MenuItemTypeSlice, MenuItemTypeLink:
		return true
	}
	return false
}

// MenuItem is a reusable navigation template. The same item can be placed
// at multiple scopes via MenuUsage. GlobalContext marks items that are
// meaningful without a workspace (dashboard-level only).
type MenuItem struct {
	ID            uuid.UUID
	Title         string
	Type          MenuItemType
	Icon          *string
	Target        string
	GlobalContext bool
	ParentID      *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MenuUsage places a MenuItem at a dashboard or workspace scope.
// Exactly one owning shape is valid: DashboardID set + WorkspaceID nil
// (dashboard-level) or both set (workspace-level). OrderIndex orders
// siblings; nesting comes from MenuItem.ParentID, not from the usage.
type MenuUsage struct {
	ID          uuid.UUID
	MenuID      uuid.UUID
	DashboardID *uuid.UUID
	WorkspaceID *uuid.UUID
	OrderIndex  int
	CreatedAt   time.Time
}

// IsWorkspaceLevel reports whether the usage places its item in a workspace.
func (u *MenuUsage) IsWorkspaceLevel() bool {
	return u.DashboardID != nil && u.WorkspaceID != nil
}

// IsDashboardLevel reports whether the usage places its item directly on a dashboard.
func (u *MenuUsage) IsDashboardLevel() bool {
	return u.DashboardID != nil && u.WorkspaceID == nil
}

// IsValidScope reports whether the usage has one of the two legal shapes.
func (u *MenuUsage) IsValidScope() bool {
	return u.IsDashboardLevel() || u.IsWorkspaceLevel()
}

// MenuPlacement is a MenuUsage joined with its MenuItem, the unit the
// tree builder and resolver consume for one scope.
type MenuPlacement struct {
	Usage MenuUsage
	Item  MenuItem
}

// MenuItemUpdateParams holds partial-update fields for a menu item.
type MenuItemUpdateParams struct {
	Title         *string
	Icon          *string
	Target        *string
	GlobalContext *bool
	ParentID      *uuid.UUID
	ClearParent   bool
}
