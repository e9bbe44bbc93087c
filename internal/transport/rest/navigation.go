package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/internal/module"
	"github.com/openboards/openboards-backend/internal/service/navigation"
	"github.com/openboards/openboards-backend/pkg/ctxutil"
)

// navigationService defines the minimal interface needed by NavigationHandler.
type navigationService interface {
	Resolve(ctx context.Context, input navigation.ResolveInput) (*navigation.ResolveResult, error)
	BuildTree(ctx context.Context, input navigation.TreeInput) ([]domain.NavNode, error)
	SetActive(ctx context.Context, input navigation.SetActiveInput) (*navigation.SetActiveResult, error)
	ActiveWorkspace(ctx context.Context, dashboardID uuid.UUID) (uuid.UUID, bool)
}

// contentRenderer drives the content slot for a resolved context.
type contentRenderer interface {
	Render(ctx context.Context, target string, resolved domain.ResolvedContext, extra map[string]any) (*module.MountView, error)
}

// NavigationHandler serves context resolution and selection endpoints.
type NavigationHandler struct {
	svc     navigationService
	content contentRenderer
	log     *slog.Logger
}

// NewNavigationHandler creates a NavigationHandler.
func NewNavigationHandler(svc navigationService, content contentRenderer, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{svc: svc, content: content, log: logger.With("handler", "navigation")}
}

type contextResponse struct {
	DashboardID string  `json:"dashboardId"`
	WorkspaceID *string `json:"workspaceId,omitempty"`
	MenuID      *string `json:"menuId,omitempty"`
}

type resolveResponse struct {
	// RedirectTo, when set, is the only populated field: the client
	// must re-request at the new path.
	RedirectTo string            `json:"redirectTo,omitempty"`
	Context    *contextResponse  `json:"context,omitempty"`
	Dashboard  *dashboardBody    `json:"dashboard,omitempty"`
	Workspace  *workspaceBody    `json:"workspace,omitempty"`
	MenuItem   *menuItemBody     `json:"menuItem,omitempty"`
	Navigation []domain.NavNode  `json:"navigation,omitempty"`
	Content    *module.MountView `json:"content,omitempty"`
}

// Resolve handles GET /api/navigation/resolve. It resolves the given
// path into a context, builds the sidebar tree for the active scope and
// renders the content slot in one round trip.
func (h *NavigationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := navigation.ResolveInput{Path: q.Get("path")}
	if v := q.Get("follow_selection"); v != "" {
		follow, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "follow_selection must be a boolean")
			return
		}
		input.FollowSelection = follow
	}
	if v := q.Get("previous_dashboard"); v != "" {
		prev, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "previous_dashboard must be a UUID")
			return
		}
		input.PreviousDashboardID = &prev
	}

	result, err := h.svc.Resolve(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if result.RedirectTo != "" {
		writeJSON(w, http.StatusOK, resolveResponse{RedirectTo: result.RedirectTo})
		return
	}

	resp := resolveResponse{
		Context:   toContextResponse(*result.Context),
		Dashboard: toDashboardBody(result.Dashboard),
	}
	if result.Workspace != nil {
		resp.Workspace = toWorkspaceBody(result.Workspace)
	}
	if result.MenuItem != nil {
		resp.MenuItem = toMenuItemBody(result.MenuItem)
	}

	tree, err := h.svc.BuildTree(r.Context(), navigation.TreeInput{
		DashboardID: result.Context.DashboardID,
		WorkspaceID: result.Context.WorkspaceID,
		CurrentPath: input.Path,
		Options:     navigation.DefaultTreeOptions(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp.Navigation = tree

	if result.MenuItem != nil && result.MenuItem.Type == domain.MenuItemTypeSlice {
		view, err := h.content.Render(r.Context(), result.MenuItem.Target, *result.Context, nil)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		resp.Content = view
	}

	writeJSON(w, http.StatusOK, resp)
}

type setActiveRequest struct {
	// WorkspaceID null clears the selection.
	WorkspaceID *string `json:"workspaceId"`
}

type setActiveResponse struct {
	NavigateTo string `json:"navigateTo"`
}

// SetActive handles PUT /api/navigation/selection/{dashboardId}.
func (h *NavigationHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	dashboardID, err := uuid.Parse(r.PathValue("dashboardId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "dashboardId must be a UUID")
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := navigation.SetActiveInput{DashboardID: dashboardID}
	if req.WorkspaceID != nil {
		workspaceID, err := uuid.Parse(*req.WorkspaceID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "workspaceId must be a UUID")
			return
		}
		input.WorkspaceID = &workspaceID
	}

	result, err := h.svc.SetActive(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, setActiveResponse{NavigateTo: result.NavigateTo})
}

type selectionResponse struct {
	// WorkspaceID is null when no selection is saved.
	WorkspaceID *string `json:"workspaceId"`
}

// GetSelection handles GET /api/navigation/selection/{dashboardId}.
func (h *NavigationHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		handleError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	dashboardID, err := uuid.Parse(r.PathValue("dashboardId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "dashboardId must be a UUID")
		return
	}

	var resp selectionResponse
	if id, ok := h.svc.ActiveWorkspace(r.Context(), dashboardID); ok {
		s := id.String()
		resp.WorkspaceID = &s
	}
	writeJSON(w, http.StatusOK, resp)
}

func toContextResponse(c domain.ResolvedContext) *contextResponse {
	resp := &contextResponse{DashboardID: c.DashboardID.String()}
	if c.WorkspaceID != nil {
		s := c.WorkspaceID.String()
		resp.WorkspaceID = &s
	}
	if c.MenuID != nil {
		s := c.MenuID.String()
		resp.MenuID = &s
	}
	return resp
}
