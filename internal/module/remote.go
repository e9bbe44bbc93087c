package module

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/openboards/openboards-backend/internal/config"
	"github.com/openboards/openboards-backend/internal/domain"
)

// Manifest describes a module served by a remote registry.
type Manifest struct {
	Target string `json:"target"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// RemoteResolver is the best-effort dynamic lookup behind the generic
// loader path: targets unknown to the static registry are checked
// against a remote module registry before being declared not found.
type RemoteResolver struct {
	client *resty.Client
}

// NewRemoteResolver creates a resolver against the configured registry
// base URL. Returns nil when no registry is configured; the loader
// treats a nil resolver as an always-miss.
func NewRemoteResolver(cfg config.ModulesConfig) *RemoteResolver {
	if cfg.RegistryBaseURL == "" {
		return nil
	}
	client := resty.New().
		SetBaseURL(cfg.RegistryBaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &RemoteResolver{client: client}
}

// Resolve fetches the manifest for a target. A registry 404 maps to
// ErrModuleNotFound; transport and server failures map to ErrModuleLoad.
func (r *RemoteResolver) Resolve(ctx context.Context, target string) (*Manifest, error) {
	var manifest Manifest
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&manifest).
		Get(fmt.Sprintf("/modules/%s/manifest", target))
	if err != nil {
		// Keep the transport cause; the loader only logs the status.
		return nil, fmt.Errorf("module registry request %q: %v: %w", target, err, domain.ErrModuleLoad)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("module %q: %w", target, domain.ErrModuleNotFound)
	case resp.IsError():
		return nil, fmt.Errorf("module registry status %d for %q: %w", resp.StatusCode(), target, domain.ErrModuleLoad)
	}

	if manifest.Target == "" {
		return nil, fmt.Errorf("malformed manifest for %q: %w", target, domain.ErrModuleLoad)
	}
	return &manifest, nil
}

// remoteModule adapts a fetched manifest to the Module contract.
type remoteModule struct {
	manifest Manifest
}

func (m *remoteModule) Target() string { return m.manifest.Target }

func (m *remoteModule) Render(_ context.Context, params Params) (*View, error) {
	data := map[string]any{
		"remoteUrl":   m.manifest.URL,
		"dashboardId": params.Context.DashboardID,
	}
	if params.Context.WorkspaceID != nil {
		data["workspaceId"] = *params.Context.WorkspaceID
	}
	for k, v := range params.Extra {
		data[k] = v
	}
	return &View{
		Target: m.manifest.Target,
		Title:  m.manifest.Title,
		Data:   data,
	}, nil
}
