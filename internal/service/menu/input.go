package menu

import (
	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

// CreateItemInput holds parameters for menu item creation.
type CreateItemInput struct {
	Title         string
	Type          domain.MenuItemType
	Icon          *string
	Target        string
	GlobalContext bool
	ParentID      *uuid.UUID
}

// Validate validates the create-item input.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
	}
	if i.Target == "" {
		errs = append(errs, domain.FieldError{Field: "target", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds partial-update parameters for a menu item.
type UpdateItemInput struct {
	Title         *string
	Icon          *string
	Target        *string
	GlobalContext *bool
	ParentID      *uuid.UUID
	ClearParent   bool
}

// Validate validates the update-item input.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == nil && i.Icon == nil && i.Target == nil &&
		i.GlobalContext == nil && i.ParentID == nil && !i.ClearParent {
		errs = append(errs, domain.FieldError{Field: "update", Message: "no fields to update"})
	}
	if i.Title != nil && *i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
	}
	if i.Target != nil && *i.Target == "" {
		errs = append(errs, domain.FieldError{Field: "target", Message: "cannot be empty"})
	}
	if i.ParentID != nil && i.ClearParent {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "set and clear are mutually exclusive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AttachInput holds parameters for placing a menu item at a scope.
// Exactly one scope shape is legal: dashboard only, or dashboard plus
// workspace.
type AttachInput struct {
	MenuID      uuid.UUID
	DashboardID *uuid.UUID
	WorkspaceID *uuid.UUID
	OrderIndex  int
}

// Validate validates the attach input.
func (i AttachInput) Validate() error {
	var errs []domain.FieldError

	if i.MenuID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "menu_id", Message: "required"})
	}
	usage := domain.MenuUsage{DashboardID: i.DashboardID, WorkspaceID: i.WorkspaceID}
	if !usage.IsValidScope() {
		errs = append(errs, domain.FieldError{Field: "scope", Message: "dashboard_id required; workspace_id optional"})
	}
	if i.OrderIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "order_index", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderInput holds the new sibling order: usage ids in their desired
// positions.
type ReorderInput struct {
	UsageIDs []uuid.UUID
}

// Validate validates the reorder input.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError

	if len(i.UsageIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "usage_ids", Message: "required"})
	}
	seen := make(map[uuid.UUID]struct{}, len(i.UsageIDs))
	for _, id := range i.UsageIDs {
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "usage_ids", Message: "duplicate id " + id.String()})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
