package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/internal/service/menu"
	"github.com/openboards/openboards-backend/internal/transport/middleware"
)

// menuService defines the minimal interface needed by MenuHandler.
type menuService interface {
	CreateItem(ctx context.Context, input menu.CreateItemInput) (*domain.MenuItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	ListItems(ctx context.Context) ([]*domain.MenuItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input menu.UpdateItemInput) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	Attach(ctx context.Context, input menu.AttachInput) (*domain.MenuUsage, error)
	Detach(ctx context.Context, usageID uuid.UUID) error
	Reorder(ctx context.Context, input menu.ReorderInput) error
}

// MenuHandler serves menu item and placement REST endpoints.
// Item templates are shared across dashboards, so all mutations here
// are admin-only.
type MenuHandler struct {
	svc menuService
	log *slog.Logger
}

// NewMenuHandler creates a MenuHandler.
func NewMenuHandler(svc menuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{svc: svc, log: logger.With("handler", "menu")}
}

type menuItemBody struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Type          string    `json:"type"`
	Icon          *string   `json:"icon,omitempty"`
	Target        string    `json:"target"`
	GlobalContext bool      `json:"globalContext"`
	ParentID      *string   `json:"parentId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type menuUsageBody struct {
	ID          string  `json:"id"`
	MenuID      string  `json:"menuId"`
	DashboardID *string `json:"dashboardId,omitempty"`
	WorkspaceID *string `json:"workspaceId,omitempty"`
	OrderIndex  int     `json:"orderIndex"`
}

type createItemRequest struct {
	Title         string  `json:"title"`
	Type          string  `json:"type"`
	Icon          *string `json:"icon"`
	Target        string  `json:"target"`
	GlobalContext bool    `json:"globalContext"`
	ParentID      *string `json:"parentId"`
}

type updateItemRequest struct {
	Title         *string `json:"title"`
	Icon          *string `json:"icon"`
	Target        *string `json:"target"`
	GlobalContext *bool   `json:"globalContext"`
	ParentID      *string `json:"parentId"`
	ClearParent   bool    `json:"clearParent"`
}

type attachRequest struct {
	MenuID      string  `json:"menuId"`
	DashboardID *string `json:"dashboardId"`
	WorkspaceID *string `json:"workspaceId"`
	OrderIndex  int     `json:"orderIndex"`
}

type reorderRequest struct {
	UsageIDs []string `json:"usageIds"`
}

// CreateItem handles POST /api/menu-items.
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := menu.CreateItemInput{
		Title:         req.Title,
		Type:          domain.MenuItemType(req.Type),
		Icon:          req.Icon,
		Target:        req.Target,
		GlobalContext: req.GlobalContext,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "parentId must be a UUID")
			return
		}
		input.ParentID = &parentID
	}

	created, err := h.svc.CreateItem(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMenuItemBody(created))
}

// GetItem handles GET /api/menu-items/{id}.
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMenuItemBody(item))
}

// ListItems handles GET /api/menu-items.
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	bodies := make([]*menuItemBody, 0, len(items))
	for _, item := range items {
		bodies = append(bodies, toMenuItemBody(item))
	}
	writeJSON(w, http.StatusOK, bodies)
}

// UpdateItem handles PATCH /api/menu-items/{id}.
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := menu.UpdateItemInput{
		Title:         req.Title,
		Icon:          req.Icon,
		Target:        req.Target,
		GlobalContext: req.GlobalContext,
		ClearParent:   req.ClearParent,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "parentId must be a UUID")
			return
		}
		input.ParentID = &parentID
	}

	updated, err := h.svc.UpdateItem(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMenuItemBody(updated))
}

// DeleteItem handles DELETE /api/menu-items/{id}.
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Attach handles POST /api/menu-usages.
func (h *MenuHandler) Attach(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req attachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	menuID, err := uuid.Parse(req.MenuID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "menuId must be a UUID")
		return
	}

	input := menu.AttachInput{MenuID: menuID, OrderIndex: req.OrderIndex}
	if req.DashboardID != nil {
		dashboardID, err := uuid.Parse(*req.DashboardID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "dashboardId must be a UUID")
			return
		}
		input.DashboardID = &dashboardID
	}
	if req.WorkspaceID != nil {
		workspaceID, err := uuid.Parse(*req.WorkspaceID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "workspaceId must be a UUID")
			return
		}
		input.WorkspaceID = &workspaceID
	}

	usage, err := h.svc.Attach(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMenuUsageBody(usage))
}

// Detach handles DELETE /api/menu-usages/{id}.
func (h *MenuHandler) Detach(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	if err := h.svc.Detach(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT /api/menu-usages/reorder.
func (h *MenuHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.UsageIDs))
	for _, raw := range req.UsageIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "usageIds must be UUIDs")
			return
		}
		ids = append(ids, id)
	}

	if err := h.svc.Reorder(r.Context(), menu.ReorderInput{UsageIDs: ids}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toMenuItemBody(item *domain.MenuItem) *menuItemBody {
	body := &menuItemBody{
		ID:            item.ID.String(),
		Title:         item.Title,
		Type:          item.Type.String(),
		Icon:          item.Icon,
		Target:        item.Target,
		GlobalContext: item.GlobalContext,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	if item.ParentID != nil {
		s := item.ParentID.String()
		body.ParentID = &s
	}
	return body
}

func toMenuUsageBody(u *domain.MenuUsage) *menuUsageBody {
	body := &menuUsageBody{
		ID:         u.ID.String(),
		MenuID:     u.MenuID.String(),
		OrderIndex: u.OrderIndex,
	}
	if u.DashboardID != nil {
		s := u.DashboardID.String()
		body.DashboardID = &s
	}
	if u.WorkspaceID != nil {
		s := u.WorkspaceID.String()
		body.WorkspaceID = &s
	}
	return body
}
