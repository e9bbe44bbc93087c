package navigation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

// TreeOptions control sidebar tree construction.
type TreeOptions struct {
	// IncludeChildren expands direct children of root items. Nesting is
	// exactly one level deep; deeper hierarchies are not expanded.
	IncludeChildren bool
	// SortByOrder sorts siblings by order index ascending, ties keeping
	// input order.
	SortByOrder bool
}

// DefaultTreeOptions returns the options used by the API surface.
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{IncludeChildren: true, SortByOrder: true}
}

// TreeInput holds parameters for the build-tree operation.
type TreeInput struct {
	DashboardID uuid.UUID
	// WorkspaceID selects workspace scope; nil means dashboard scope.
	WorkspaceID *uuid.UUID
	// CurrentPath drives active-state computation.
	CurrentPath string
	Options     TreeOptions
}

// BuildTree loads the menu placements for one scope and turns them into
// the ordered sidebar tree with active flags computed from CurrentPath.
func (s *Service) BuildTree(ctx context.Context, input TreeInput) ([]domain.NavNode, error) {
	var (
		placements []domain.MenuPlacement
		err        error
	)
	if input.WorkspaceID != nil {
		placements, err = s.menus.PlacementsForWorkspace(ctx, *input.WorkspaceID)
	} else {
		placements, err = s.menus.PlacementsForDashboard(ctx, input.DashboardID)
	}
	if err != nil {
		return nil, fmt.Errorf("navigation.BuildTree placements: %w", err)
	}

	return s.buildNodes(placements, input), nil
}

// buildNodes is the pure tree construction over an already-loaded
// placement set.
func (s *Service) buildNodes(placements []domain.MenuPlacement, input TreeInput) []domain.NavNode {
	if input.Options.SortByOrder {
		sorted := make([]domain.MenuPlacement, len(placements))
		copy(sorted, placements)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Usage.OrderIndex < sorted[j].Usage.OrderIndex
		})
		placements = sorted
	}

	nodes := make([]domain.NavNode, 0, len(placements))
	for i := range placements {
		item := &placements[i].Item
		if item.ParentID != nil {
			continue
		}

		node := s.node(item, input)
		if input.Options.IncludeChildren {
			node.Children = s.childNodes(placements, item.ID, input)
			// A node with an active child stays marked active.
			for _, child := range node.Children {
				if child.IsActive {
					node.IsActive = true
					break
				}
			}
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// childNodes collects the direct children of a root item. Expansion is
// one level: grandchildren are not visited.
func (s *Service) childNodes(placements []domain.MenuPlacement, parentID uuid.UUID, input TreeInput) []domain.NavNode {
	var children []domain.NavNode
	for i := range placements {
		item := &placements[i].Item
		if item.ParentID == nil || *item.ParentID != parentID {
			continue
		}
		children = append(children, s.node(item, input))
	}
	return children
}

func (s *Service) node(item *domain.MenuItem, input TreeInput) domain.NavNode {
	url := menuItemURL(input.DashboardID, input.WorkspaceID, item.ID)
	return domain.NavNode{
		ID:       item.ID,
		Title:    item.Title,
		URL:      url,
		Icon:     s.resolveIcon(item.Icon),
		IsActive: pathIsActive(input.CurrentPath, url),
	}
}

// menuItemURL generates the scope-shaped URL of a menu node. Dashboard
// scope omits the workspace segment; the resolver relies on this shape
// to disambiguate scope later.
func menuItemURL(dashboardID uuid.UUID, workspaceID *uuid.UUID, menuID uuid.UUID) string {
	if workspaceID != nil {
		return fmt.Sprintf("/dashboard/%s/%s/%s", dashboardID, *workspaceID, menuID)
	}
	return fmt.Sprintf("/dashboard/%s/%s", dashboardID, menuID)
}

// pathIsActive reports whether url is the current path or a
// segment-boundary prefix of it. Matching on whole segments keeps a
// parent active under child routes without falsely activating siblings
// that share a string prefix.
func pathIsActive(currentPath, url string) bool {
	if currentPath == url {
		return true
	}
	return strings.HasPrefix(currentPath, url+"/")
}
