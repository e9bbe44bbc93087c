package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/pkg/ctxutil"
)

// CreateWorkspace creates a workspace under a dashboard.
// Returns ErrDashboardNotFound if the dashboard does not exist.
func (s *Service) CreateWorkspace(ctx context.Context, input CreateWorkspaceInput) (*domain.Workspace, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.dashboards.GetByID(ctx, input.DashboardID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("dashboard.CreateWorkspace dashboard %s: %w", input.DashboardID, domain.ErrDashboardNotFound)
		}
		return nil, fmt.Errorf("dashboard.CreateWorkspace get dashboard: %w", err)
	}

	now := time.Now()
	created, err := s.workspaces.Create(ctx, &domain.Workspace{
		ID:          uuid.New(),
		DashboardID: input.DashboardID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard.CreateWorkspace: %w", err)
	}

	s.log.InfoContext(ctx, "workspace created",
		slog.String("dashboard_id", input.DashboardID.String()),
		slog.String("workspace_id", created.ID.String()))

	return created, nil
}

// ListWorkspaces returns the workspaces of one dashboard.
func (s *Service) ListWorkspaces(ctx context.Context, dashboardID uuid.UUID) ([]*domain.Workspace, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.workspaces.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListWorkspaces: %w", err)
	}
	return list, nil
}

// UpdateWorkspace applies a partial update.
func (s *Service) UpdateWorkspace(ctx context.Context, id uuid.UUID, input UpdateWorkspaceInput) (*domain.Workspace, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.workspaces.Update(ctx, id, domain.WorkspaceUpdateParams{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard.UpdateWorkspace: %w", err)
	}
	return updated, nil
}

// DeleteWorkspace removes a workspace and, by DB cascade, its menu
// usages.
func (s *Service) DeleteWorkspace(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.workspaces.Delete(ctx, id); err != nil {
		return fmt.Errorf("dashboard.DeleteWorkspace: %w", err)
	}

	s.log.InfoContext(ctx, "workspace deleted",
		slog.String("workspace_id", id.String()))

	return nil
}
