// Package navigation implements the context resolution and sidebar
// composition engine: path → {dashboard, workspace, menu item, user},
// the navigation tree for that scope, and the per-user workspace
// selection that drives auto-navigation on bare dashboard URLs.
package navigation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/config"
	"github.com/openboards/openboards-backend/internal/domain"
)

// dashboardRepo defines the dashboard repository interface needed by navigation service.
type dashboardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
}

// workspaceRepo defines the workspace repository interface needed by navigation service.
type workspaceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
}

// menuRepo defines the menu repository interface needed by navigation service.
type menuRepo interface {
	PlacementsForDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.MenuPlacement, error)
	PlacementsForWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.MenuPlacement, error)
}

// selectionKV defines the durable key-value interface backing the
// workspace selection store. Get returns rediskv.ErrMiss on absence.
type selectionKV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Service implements navigation operations.
type Service struct {
	log        *slog.Logger
	dashboards dashboardRepo
	workspaces workspaceRepo
	menus      menuRepo
	selections selectionKV
	cfg        config.NavigationConfig
}

// NewService creates a new navigation service instance.
func NewService(
	logger *slog.Logger,
	dashboards dashboardRepo,
	workspaces workspaceRepo,
	menus menuRepo,
	selections selectionKV,
	cfg config.NavigationConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "navigation"),
		dashboards: dashboards,
		workspaces: workspaces,
		menus:      menus,
		selections: selections,
		cfg:        cfg,
	}
}
