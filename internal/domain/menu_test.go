package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestMenuItemType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		itemType MenuItemType
		want     bool
	}{
		{MenuItemTypeSlice, true},
		{MenuItemTypeLink, true},
		{MenuItemType(""), false},
		{MenuItemType("slice"), false},
		{MenuItemType("BUTTON"), false},
	}

	for _, tt := range tests {
		if got := tt.itemType.IsValid(); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.itemType, got, tt.want)
		}
	}
}

func TestMenuUsage_Scope(t *testing.T) {
	t.Parallel()

	dashID := uuid.New()
	wsID := uuid.New()

	tests := []struct {
		name          string
		usage         MenuUsage
		wantDashLevel bool
		wantWsLevel   bool
		wantValid     bool
	}{
		{
			name:          "dashboard-level",
			usage:         MenuUsage{DashboardID: &dashID},
			wantDashLevel: true,
			wantValid:     true,
		},
		{
			name:        "workspace-level",
			usage:       MenuUsage{DashboardID: &dashID, WorkspaceID: &wsID},
			wantWsLevel: true,
			wantValid:   true,
		},
		{
			name:  "workspace without dashboard is illegal",
			usage: MenuUsage{WorkspaceID: &wsID},
		},
		{
			name:  "no scope at all is illegal",
			usage: MenuUsage{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.usage.IsDashboardLevel(); got != tt.wantDashLevel {
				t.Errorf("IsDashboardLevel() = %v, want %v", got, tt.wantDashLevel)
			}
			if got := tt.usage.IsWorkspaceLevel(); got != tt.wantWsLevel {
				t.Errorf("IsWorkspaceLevel() = %v, want %v", got, tt.wantWsLevel)
			}
			if got := tt.usage.IsValidScope(); got != tt.wantValid {
				t.Errorf("IsValidScope() = %v, want %v", got, tt.wantValid)
			}
		})
	}
}
