// Package dashboard implements dashboard and workspace management.
package dashboard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

// dashboardRepo defines the dashboard repository interface needed by dashboard service.
type dashboardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
	List(ctx context.Context) ([]*domain.Dashboard, error)
	Create(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error)
	Update(ctx context.Context, id uuid.UUID, params domain.DashboardUpdateParams) (*domain.Dashboard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// workspaceRepo defines the workspace repository interface needed by dashboard service.
type workspaceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]*domain.Workspace, error)
	Create(ctx context.Context, w *domain.Workspace) (*domain.Workspace, error)
	Update(ctx context.Context, id uuid.UUID, params domain.WorkspaceUpdateParams) (*domain.Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements dashboard and workspace operations.
type Service struct {
	log        *slog.Logger
	dashboards dashboardRepo
	workspaces workspaceRepo
}

// NewService creates a new dashboard service instance.
func NewService(logger *slog.Logger, dashboards dashboardRepo, workspaces workspaceRepo) *Service {
	return &Service{
		log:        logger.With("service", "dashboard"),
		dashboards: dashboards,
		workspaces: workspaces,
	}
}
