package module

import (
	"context"

	"github.com/openboards/openboards-backend/internal/domain"
)

// DefaultRegistry returns the registry of built-in modules with their
// placeholder shapes.
func DefaultRegistry() *Registry {
	r := NewRegistry(
		&overviewModule{},
		&calendarModule{},
		&tableModule{},
		&settingsModule{},
	)
	r.RegisterPlaceholder("calendar", "calendar-skeleton")
	r.RegisterPlaceholder("table", "table-skeleton")
	return r
}

// scopeData spreads the resolved context into a module data payload.
func scopeData(c domain.ResolvedContext, extra map[string]any) map[string]any {
	data := map[string]any{
		"dashboardId": c.DashboardID,
	}
	if c.WorkspaceID != nil {
		data["workspaceId"] = *c.WorkspaceID
	}
	if c.MenuID != nil {
		data["menuId"] = *c.MenuID
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

type overviewModule struct{}

func (m *overviewModule) Target() string { return "overview" }

func (m *overviewModule) Render(_ context.Context, params Params) (*View, error) {
	return &View{
		Target: m.Target(),
		Title:  "Overview",
		Data:   scopeData(params.Context, params.Extra),
	}, nil
}

type calendarModule struct{}

func (m *calendarModule) Target() string { return "calendar" }

func (m *calendarModule) Render(_ context.Context, params Params) (*View, error) {
	return &View{
		Target: m.Target(),
		Title:  "Calendar",
		Data:   scopeData(params.Context, params.Extra),
	}, nil
}

type tableModule struct{}

func (m *tableModule) Target() string { return "table" }

func (m *tableModule) Render(_ context.Context, params Params) (*View, error) {
	return &View{
		Target: m.Target(),
		Title:  "Table",
		Data:   scopeData(params.Context, params.Extra),
	}, nil
}

type settingsModule struct{}

func (m *settingsModule) Target() string { return "settings" }

func (m *settingsModule) Render(_ context.Context, params Params) (*View, error) {
	return &View{
		Target: m.Target(),
		Title:  "Settings",
		Data:   scopeData(params.Context, params.Extra),
	}, nil
}
