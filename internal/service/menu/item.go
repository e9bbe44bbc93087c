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

// CreateItem creates a reusable menu item template.
// Returns ErrMenuItemNotFound if the declared parent does not exist.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.MenuItem, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := s.menus.GetItemByID(ctx, *input.ParentID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("menu.CreateItem parent %s: %w", *input.ParentID, domain.ErrMenuItemNotFound)
			}
			return nil, fmt.Errorf("menu.CreateItem get parent: %w", err)
		}
	}

	now := time.Now()
	created, err := s.menus.CreateItem(ctx, &domain.MenuItem{
		ID:            uuid.New(),
		Title:         input.Title,
		Type:          input.Type,
		Icon:          input.Icon,
		Target:        input.Target,
		GlobalContext: input.GlobalContext,
		ParentID:      input.ParentID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("menu.CreateItem: %w", err)
	}

	s.log.InfoContext(ctx, "menu item created",
		slog.String("menu_id", created.ID.String()),
		slog.String("target", created.Target))

	return created, nil
}

// GetItem returns one menu item by id.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.menus.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("menu.GetItem: %w", err)
	}
	return item, nil
}

// ListItems returns all menu item templates.
func (s *Service) ListItems(ctx context.Context) ([]*domain.MenuItem, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.menus.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("menu.ListItems: %w", err)
	}
	return items, nil
}

// UpdateItem applies a partial update. An item cannot become its own
// parent.
func (s *Service) UpdateItem(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*domain.MenuItem, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.ParentID != nil && *input.ParentID == id {
		return nil, domain.NewValidationError("parent_id", "item cannot be its own parent")
	}

	updated, err := s.menus.UpdateItem(ctx, id, domain.MenuItemUpdateParams{
		Title:         input.Title,
		Icon:          input.Icon,
		Target:        input.Target,
		GlobalContext: input.GlobalContext,
		ParentID:      input.ParentID,
		ClearParent:   input.ClearParent,
	})
	if err != nil {
		return nil, fmt.Errorf("menu.UpdateItem: %w", err)
	}
	return updated, nil
}

// DeleteItem removes a menu item template and, by DB cascade, all of
// its placements.
func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.menus.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("menu.DeleteItem: %w", err)
	}

	s.log.InfoContext(ctx, "menu item deleted", slog.String("menu_id", id.String()))
	return nil
}
