package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/adapter/rediskv"
	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/pkg/ctxutil"
)

// selectionKey namespaces the contract key per user: the server holds
// every user's selections in one store, the original held one browser's.
func selectionKey(userID, dashboardID uuid.UUID) string {
	return "sel:" + userID.String() + ":" + domain.SelectionKey(dashboardID)
}

// SetActiveResult is returned by SetActive.
type SetActiveResult struct {
	// NavigateTo is the URL the client should move to after the change:
	// the workspace home when a workspace was selected, the dashboard
	// home when the selection was cleared.
	NavigateTo string
}

// SetActive writes or clears the last-active-workspace selection for a
// dashboard. Selections are advisory; they never override an explicit
// workspace segment in a URL.
func (s *Service) SetActive(ctx context.Context, input SetActiveInput) (*SetActiveResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := selectionKey(userID, input.DashboardID)

	if input.WorkspaceID == nil {
		if err := s.selections.Del(ctx, key); err != nil {
			return nil, fmt.Errorf("navigation.SetActive clear: %w", err)
		}
		return &SetActiveResult{NavigateTo: domain.DashboardURL(input.DashboardID)}, nil
	}

	workspace, err := s.workspaces.GetByID(ctx, *input.WorkspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("navigation.SetActive workspace %s: %w", *input.WorkspaceID, domain.ErrWorkspaceNotFound)
		}
		return nil, fmt.Errorf("navigation.SetActive get workspace: %w", err)
	}
	if workspace.DashboardID != input.DashboardID {
		return nil, fmt.Errorf("navigation.SetActive workspace %s: %w", *input.WorkspaceID, domain.ErrWorkspaceNotFound)
	}

	if err := s.selections.Set(ctx, key, input.WorkspaceID.String(), 0); err != nil {
		return nil, fmt.Errorf("navigation.SetActive store: %w", err)
	}

	s.log.DebugContext(ctx, "workspace selection saved",
		slog.String("dashboard_id", input.DashboardID.String()),
		slog.String("workspace_id", input.WorkspaceID.String()))

	return &SetActiveResult{NavigateTo: domain.WorkspaceURL(input.DashboardID, *input.WorkspaceID)}, nil
}

// ActiveWorkspace returns the saved workspace id for a dashboard, or
// (uuid.Nil, false) when no valid selection exists for the requesting
// user.
func (s *Service) ActiveWorkspace(ctx context.Context, dashboardID uuid.UUID) (uuid.UUID, bool) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, false
	}
	key := selectionKey(userID, dashboardID)

	raw, err := s.selections.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, rediskv.ErrMiss) {
			s.log.WarnContext(ctx, "selection read failed",
				slog.String("dashboard_id", dashboardID.String()),
				slog.String("error", err.Error()))
		}
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		s.dropStaleSelection(ctx, key)
		return uuid.Nil, false
	}
	return id, true
}

// OnDashboardChange removes the persisted selection of the dashboard
// being navigated away from. Clearing is scoped to the previous
// dashboard only; other dashboards' selections are untouched.
func (s *Service) OnDashboardChange(ctx context.Context, previousID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if previousID == uuid.Nil {
		return nil
	}
	if err := s.selections.Del(ctx, selectionKey(userID, previousID)); err != nil {
		return fmt.Errorf("navigation.OnDashboardChange: %w", err)
	}
	return nil
}
