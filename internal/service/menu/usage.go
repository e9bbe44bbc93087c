package menu

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

// Attach places a menu item at a dashboard or workspace scope. The
// scope entities are verified and the usage written in one transaction.
func (s *Service) Attach(ctx context.Context, input AttachInput) (*domain.MenuUsage, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.MenuUsage

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.menus.GetItemByID(txCtx, input.MenuID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("menu item %s: %w", input.MenuID, domain.ErrMenuItemNotFound)
			}
			return fmt.Errorf("get menu item: %w", err)
		}

		if _, err := s.dashboards.GetByID(txCtx, *input.DashboardID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("dashboard %s: %w", *input.DashboardID, domain.ErrDashboardNotFound)
			}
			return fmt.Errorf("get dashboard: %w", err)
		}

		if input.WorkspaceID != nil {
			workspace, err := s.workspaces.GetByID(txCtx, *input.WorkspaceID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("workspace %s: %w", *input.WorkspaceID, domain.ErrWorkspaceNotFound)
				}
				return fmt.Errorf("get workspace: %w", err)
			}
			if workspace.DashboardID != *input.DashboardID {
				return fmt.Errorf("workspace %s outside dashboard: %w", *input.WorkspaceID, domain.ErrWorkspaceNotFound)
			}
		}

		usage, err := s.menus.CreateUsage(txCtx, &domain.MenuUsage{
			ID:          uuid.New(),
			MenuID:      input.MenuID,
			DashboardID: input.DashboardID,
			WorkspaceID: input.WorkspaceID,
			OrderIndex:  input.OrderIndex,
			CreatedAt:   time.Now(),
		})
		if err != nil {
			return fmt.Errorf("create usage: %w", err)
		}

		created = usage
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("menu.Attach: %w", err)
	}

	s.log.InfoContext(ctx, "menu item attached",
		slog.String("usage_id", created.ID.String()),
		slog.String("menu_id", input.MenuID.String()))

	return created, nil
}

// Detach removes one placement. The menu item template stays.
func (s *Service) Detach(ctx context.Context, usageID uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.menus.DeleteUsage(ctx, usageID); err != nil {
		return fmt.Errorf("menu.Detach: %w", err)
	}

	s.log.InfoContext(ctx, "menu item detached", slog.String("usage_id", usageID.String()))
	return nil
}

// Reorder rewrites sibling order indexes to match the given usage id
// sequence. Returns ErrNotFound when some id does not exist.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	updated, err := s.menus.ReorderUsages(ctx, input.UsageIDs)
	if err != nil {
		return fmt.Errorf("menu.Reorder: %w", err)
	}
	if updated != len(input.UsageIDs) {
		return fmt.Errorf("menu.Reorder: %d of %d usages missing: %w",
			len(input.UsageIDs)-updated, len(input.UsageIDs), domain.ErrNotFound)
	}
	return nil
}
