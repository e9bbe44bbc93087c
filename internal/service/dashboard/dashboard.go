package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/pkg/ctxutil"
)

// CreateDashboard creates a dashboard owned by the authenticated user.
func (s *Service) CreateDashboard(ctx context.Context, input CreateDashboardInput) (*domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	created, err := s.dashboards.Create(ctx, &domain.Dashboard{
		ID:             uuid.New(),
		Name:           input.Name,
		Description:    input.Description,
		OrganizationID: input.OrganizationID,
		CreatedByID:    &userID,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard.CreateDashboard: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard created",
		slog.String("dashboard_id", created.ID.String()))

	return created, nil
}

// GetDashboard returns one dashboard by id.
func (s *Service) GetDashboard(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.dashboards.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetDashboard: %w", err)
	}
	return d, nil
}

// ListDashboards returns all dashboards visible to the user.
func (s *Service) ListDashboards(ctx context.Context) ([]*domain.Dashboard, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.dashboards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListDashboards: %w", err)
	}
	return list, nil
}

// UpdateDashboard applies a partial update.
func (s *Service) UpdateDashboard(ctx context.Context, id uuid.UUID, input UpdateDashboardInput) (*domain.Dashboard, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.dashboards.Update(ctx, id, domain.DashboardUpdateParams{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard.UpdateDashboard: %w", err)
	}
	return updated, nil
}

// DeleteDashboard removes a dashboard. Workspaces, menu usages and the
// user's persisted selections under it go with it; the first two by DB
// cascade.
func (s *Service) DeleteDashboard(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.dashboards.Delete(ctx, id); err != nil {
		return fmt.Errorf("dashboard.DeleteDashboard: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard deleted",
		slog.String("dashboard_id", id.String()))

	return nil
}
