// Package menu implements menu item management and the placement of
// items at dashboard and workspace scopes.
package menu

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

// menuRepo defines the menu repository interface needed by menu service.
type menuRepo interface {
	GetItemByID(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	ListItems(ctx context.Context) ([]*domain.MenuItem, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, params domain.MenuItemUpdateParams) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	CreateUsage(ctx context.Context, u *domain.MenuUsage) (*domain.MenuUsage, error)
	DeleteUsage(ctx context.Context, id uuid.UUID) error
	ReorderUsages(ctx context.Context, ids []uuid.UUID) (int, error)
}

// dashboardRepo defines the dashboard repository interface needed by menu service.
type dashboardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
}

// workspaceRepo defines the workspace repository interface needed by menu service.
type workspaceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
}

// txManager defines the transaction manager interface needed by menu service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements menu operations.
type Service struct {
	log        *slog.Logger
	menus      menuRepo
	dashboards dashboardRepo
	workspaces workspaceRepo
	tx         txManager
}

// NewService creates a new menu service instance.
func NewService(
	logger *slog.Logger,
	menus menuRepo,
	dashboards dashboardRepo,
	workspaces workspaceRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "menu"),
		menus:      menus,
		dashboards: dashboards,
		workspaces: workspaces,
		tx:         tx,
	}
}
