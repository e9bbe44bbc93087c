package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/internal/service/dashboard"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	CreateDashboard(ctx context.Context, input dashboard.CreateDashboardInput) (*domain.Dashboard, error)
	GetDashboard(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
	ListDashboards(ctx context.Context) ([]*domain.Dashboard, error)
	UpdateDashboard(ctx context.Context, id uuid.UUID, input dashboard.UpdateDashboardInput) (*domain.Dashboard, error)
	DeleteDashboard(ctx context.Context, id uuid.UUID) error
	CreateWorkspace(ctx context.Context, input dashboard.CreateWorkspaceInput) (*domain.Workspace, error)
	ListWorkspaces(ctx context.Context, dashboardID uuid.UUID) ([]*domain.Workspace, error)
	UpdateWorkspace(ctx context.Context, id uuid.UUID, input dashboard.UpdateWorkspaceInput) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, id uuid.UUID) error
}

// DashboardHandler serves dashboard and workspace REST endpoints.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type dashboardBody struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	OrganizationID *string   `json:"organizationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type workspaceBody struct {
	ID          string    `json:"id"`
	DashboardID string    `json:"dashboardId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type createDashboardRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	OrganizationID *string `json:"organizationId"`
}

type updateDashboardRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type createWorkspaceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Create handles POST /api/dashboards.
func (h *DashboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := dashboard.CreateDashboardInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.OrganizationID != nil {
		orgID, err := uuid.Parse(*req.OrganizationID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "organizationId must be a UUID")
			return
		}
		input.OrganizationID = &orgID
	}

	created, err := h.svc.CreateDashboard(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDashboardBody(created))
}

// Get handles GET /api/dashboards/{id}.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	d, err := h.svc.GetDashboard(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardBody(d))
}

// List handles GET /api/dashboards.
func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	dashboards, err := h.svc.ListDashboards(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	bodies := make([]*dashboardBody, 0, len(dashboards))
	for _, d := range dashboards {
		bodies = append(bodies, toDashboardBody(d))
	}
	writeJSON(w, http.StatusOK, bodies)
}

// Update handles PATCH /api/dashboards/{id}.
func (h *DashboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	var req updateDashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateDashboard(r.Context(), id, dashboard.UpdateDashboardInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDashboardBody(updated))
}

// Delete handles DELETE /api/dashboards/{id}.
func (h *DashboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	if err := h.svc.DeleteDashboard(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateWorkspace handles POST /api/dashboards/{id}/workspaces.
func (h *DashboardHandler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	dashboardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	var req createWorkspaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateWorkspace(r.Context(), dashboard.CreateWorkspaceInput{
		DashboardID: dashboardID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWorkspaceBody(created))
}

// ListWorkspaces handles GET /api/dashboards/{id}/workspaces.
func (h *DashboardHandler) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	dashboardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	workspaces, err := h.svc.ListWorkspaces(r.Context(), dashboardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	bodies := make([]*workspaceBody, 0, len(workspaces))
	for _, ws := range workspaces {
		bodies = append(bodies, toWorkspaceBody(ws))
	}
	writeJSON(w, http.StatusOK, bodies)
}

// UpdateWorkspace handles PATCH /api/workspaces/{id}.
func (h *DashboardHandler) UpdateWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	var req updateDashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateWorkspace(r.Context(), id, dashboard.UpdateWorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkspaceBody(updated))
}

// DeleteWorkspace handles DELETE /api/workspaces/{id}.
func (h *DashboardHandler) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be a UUID")
		return
	}

	if err := h.svc.DeleteWorkspace(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDashboardBody(d *domain.Dashboard) *dashboardBody {
	body := &dashboardBody{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.OrganizationID != nil {
		s := d.OrganizationID.String()
		body.OrganizationID = &s
	}
	return body
}

func toWorkspaceBody(ws *domain.Workspace) *workspaceBody {
	return &workspaceBody{
		ID:          ws.ID.String(),
		DashboardID: ws.DashboardID.String(),
		Name:        ws.Name,
		Description: ws.Description,
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
	}
}
