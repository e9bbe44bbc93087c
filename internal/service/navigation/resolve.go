package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/adapter/rediskv"
	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/pkg/ctxutil"
)

// pathPrefix is the fixed dashboard root all resolvable paths share.
const pathPrefix = "/dashboard"

// Resolve derives the canonical context from a request path and the
// persisted workspace selection, reconciling the two deterministically.
//
// An explicit workspace segment in the URL always wins over persisted
// selection. A bare dashboard URL with a saved selection yields a
// redirect signal instead of dashboard-root content. Each failure mode
// is a distinct sentinel: ErrDashboardNotFound, ErrWorkspaceNotFound,
// ErrMenuItemNotFound.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*ResolveResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	segments, err := s.splitPath(input.Path)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, domain.NewValidationError("path", "missing dashboard segment")
	}

	dashboardID, err := uuid.Parse(segments[0])
	if err != nil {
		return nil, fmt.Errorf("navigation.Resolve parse dashboard id: %w", domain.ErrDashboardNotFound)
	}

	// A change of dashboard clears the previous dashboard's selection so
	// stale workspace choices never leak across dashboards.
	if prev := input.PreviousDashboardID; prev != nil && *prev != dashboardID {
		if err := s.OnDashboardChange(ctx, *prev); err != nil {
			return nil, fmt.Errorf("navigation.Resolve clear previous selection: %w", err)
		}
	}

	dashboard, err := s.dashboards.GetByID(ctx, dashboardID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("navigation.Resolve dashboard %s: %w", dashboardID, domain.ErrDashboardNotFound)
		}
		return nil, fmt.Errorf("navigation.Resolve get dashboard: %w", err)
	}

	rest := segments[1:]

	// Bare dashboard URL: the saved selection, if still valid, signals a
	// redirect to the workspace URL rather than rendering here.
	if len(rest) == 0 {
		if input.FollowSelection {
			if target := s.savedWorkspaceURL(ctx, userID, dashboardID); target != "" {
				return &ResolveResult{RedirectTo: target}, nil
			}
		}
		return &ResolveResult{
			Context:   &domain.ResolvedContext{DashboardID: dashboardID, UserID: userID},
			Dashboard: dashboard,
		}, nil
	}

	// The second segment is ambiguous between a workspace and a
	// dashboard-scoped menu node; a successful workspace lookup decides.
	workspace, err := s.lookupWorkspace(ctx, dashboardID, rest[0])
	if err != nil {
		return nil, err
	}

	if workspace != nil {
		menuPath := rest[1:]
		result := &ResolveResult{
			Context: &domain.ResolvedContext{
				DashboardID: dashboardID,
				WorkspaceID: &workspace.ID,
				UserID:      userID,
			},
			Dashboard: dashboard,
			Workspace: workspace,
		}
		if len(menuPath) == 0 {
			return result, nil
		}

		placements, err := s.menus.PlacementsForWorkspace(ctx, workspace.ID)
		if err != nil {
			return nil, fmt.Errorf("navigation.Resolve workspace placements: %w", err)
		}
		item, err := matchMenuPath(placements, menuPath)
		if err != nil {
			return nil, err
		}
		result.Context.MenuID = &item.ID
		result.MenuItem = item
		return result, nil
	}

	// Dashboard scope: the remaining segments form the menu target path.
	placements, err := s.menus.PlacementsForDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("navigation.Resolve dashboard placements: %w", err)
	}
	item, err := matchMenuPath(placements, rest)
	if err != nil {
		return nil, err
	}

	return &ResolveResult{
		Context: &domain.ResolvedContext{
			DashboardID: dashboardID,
			MenuID:      &item.ID,
			UserID:      userID,
		},
		Dashboard: dashboard,
		MenuItem:  item,
	}, nil
}

// splitPath strips the dashboard prefix and returns the remaining
// non-empty segments, capped by config.
func (s *Service) splitPath(path string) ([]string, error) {
	trimmed := strings.Trim(strings.TrimPrefix(path, pathPrefix), "/")
	if trimmed == "" {
		return nil, nil
	}

	segments := strings.Split(trimmed, "/")
	if len(segments) > s.cfg.MaxPathSegments {
		return nil, domain.NewValidationError("path", "too many segments")
	}
	return segments, nil
}

// lookupWorkspace interprets segment as a workspace id within the
// dashboard. Returns (nil, nil) when the segment does not name a known
// workspace at all, so the caller can fall back to menu-path
// interpretation. A workspace that exists under a different dashboard
// is a hard ErrWorkspaceNotFound: content for the wrong scope is never
// an acceptable fallback.
func (s *Service) lookupWorkspace(ctx context.Context, dashboardID uuid.UUID, segment string) (*domain.Workspace, error) {
	workspaceID, err := uuid.Parse(segment)
	if err != nil {
		return nil, nil
	}

	workspace, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("navigation.Resolve get workspace: %w", err)
	}

	if workspace.DashboardID != dashboardID {
		return nil, fmt.Errorf("navigation.Resolve workspace %s: %w", workspaceID, domain.ErrWorkspaceNotFound)
	}
	return workspace, nil
}

// matchMenuPath resolves the menu path remainder against the placement
// set of the active scope. The last segment identifies the node, by
// item id when it parses as a UUID and by target name otherwise.
func matchMenuPath(placements []domain.MenuPlacement, menuPath []string) (*domain.MenuItem, error) {
	last := menuPath[len(menuPath)-1]

	if id, err := uuid.Parse(last); err == nil {
		for i := range placements {
			if placements[i].Item.ID == id {
				return &placements[i].Item, nil
			}
		}
		return nil, fmt.Errorf("navigation.Resolve menu %s: %w", last, domain.ErrMenuItemNotFound)
	}

	for i := range placements {
		if placements[i].Item.Target == last {
			return &placements[i].Item, nil
		}
	}
	return nil, fmt.Errorf("navigation.Resolve menu %q: %w", last, domain.ErrMenuItemNotFound)
}

// savedWorkspaceURL reads the persisted selection for the dashboard and
// returns the workspace URL to redirect to, or "" when there is none.
// A saved workspace that no longer belongs to the dashboard is treated
// as a cache miss and deleted, never surfaced.
func (s *Service) savedWorkspaceURL(ctx context.Context, userID, dashboardID uuid.UUID) string {
	key := selectionKey(userID, dashboardID)

	raw, err := s.selections.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, rediskv.ErrMiss) {
			s.log.WarnContext(ctx, "selection read failed",
				slog.String("dashboard_id", dashboardID.String()),
				slog.String("error", err.Error()))
		}
		return ""
	}

	workspaceID, err := uuid.Parse(raw)
	if err != nil {
		s.dropStaleSelection(ctx, key)
		return ""
	}

	workspace, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil || workspace.DashboardID != dashboardID {
		s.dropStaleSelection(ctx, key)
		return ""
	}

	return domain.WorkspaceURL(dashboardID, workspaceID)
}

func (s *Service) dropStaleSelection(ctx context.Context, key string) {
	if err := s.selections.Del(ctx, key); err != nil {
		s.log.WarnContext(ctx, "stale selection cleanup failed",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}
}
