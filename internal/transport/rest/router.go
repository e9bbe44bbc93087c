package rest

import (
	"log/slog"
	"net/http"

	"github.com/openboards/openboards-backend/internal/config"
	"github.com/openboards/openboards-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Navigation *NavigationHandler
	Dashboard  *DashboardHandler
	Menu       *MenuHandler
	Health     *HealthHandler
}

// NewRouter builds the HTTP handler tree: health probes outside the
// chain, everything under /api behind request-id, recovery, logging,
// CORS and auth, and the credential endpoints additionally rate
// limited per IP.
func NewRouter(
	logger *slog.Logger,
	cfg *config.Config,
	h Handlers,
	authMW middleware.Middleware,
	limiter *middleware.RateLimiter,
) http.Handler {
	api := http.NewServeMux()

	limit := limiter.Limit(cfg.Server.AuthRateLimitPerMin)
	api.Handle("POST /api/auth/register", limit(http.HandlerFunc(h.Auth.Register)))
	api.Handle("POST /api/auth/login", limit(http.HandlerFunc(h.Auth.Login)))
	api.Handle("POST /api/auth/refresh", limit(http.HandlerFunc(h.Auth.Refresh)))
	api.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	api.HandleFunc("GET /api/navigation/resolve", h.Navigation.Resolve)
	api.HandleFunc("GET /api/navigation/selection/{dashboardId}", h.Navigation.GetSelection)
	api.HandleFunc("PUT /api/navigation/selection/{dashboardId}", h.Navigation.SetActive)

	api.HandleFunc("POST /api/dashboards", h.Dashboard.Create)
	api.HandleFunc("GET /api/dashboards", h.Dashboard.List)
	api.HandleFunc("GET /api/dashboards/{id}", h.Dashboard.Get)
	api.HandleFunc("PATCH /api/dashboards/{id}", h.Dashboard.Update)
	api.HandleFunc("DELETE /api/dashboards/{id}", h.Dashboard.Delete)
	api.HandleFunc("POST /api/dashboards/{id}/workspaces", h.Dashboard.CreateWorkspace)
	api.HandleFunc("GET /api/dashboards/{id}/workspaces", h.Dashboard.ListWorkspaces)
	api.HandleFunc("PATCH /api/workspaces/{id}", h.Dashboard.UpdateWorkspace)
	api.HandleFunc("DELETE /api/workspaces/{id}", h.Dashboard.DeleteWorkspace)

	api.HandleFunc("POST /api/menu-items", h.Menu.CreateItem)
	api.HandleFunc("GET /api/menu-items", h.Menu.ListItems)
	api.HandleFunc("GET /api/menu-items/{id}", h.Menu.GetItem)
	api.HandleFunc("PATCH /api/menu-items/{id}", h.Menu.UpdateItem)
	api.HandleFunc("DELETE /api/menu-items/{id}", h.Menu.DeleteItem)
	api.HandleFunc("POST /api/menu-usages", h.Menu.Attach)
	api.HandleFunc("PUT /api/menu-usages/reorder", h.Menu.Reorder)
	api.HandleFunc("DELETE /api/menu-usages/{id}", h.Menu.Detach)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		authMW,
	)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", h.Health.Health)
	root.HandleFunc("GET /health/live", h.Health.Live)
	root.HandleFunc("GET /health/ready", h.Health.Ready)
	root.Handle("/api/", chain(api))

	return root
}
