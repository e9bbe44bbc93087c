package navigation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/adapter/rediskv"
	"github.com/openboards/openboards-backend/internal/config"
	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/pkg/ctxutil"
)

//go:generate moq -out repo_mocks_test.go -pkg navigation . dashboardRepo workspaceRepo menuRepo

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNavCfg() config.NavigationConfig {
	return config.NavigationConfig{DefaultIcon: "circle", MaxPathSegments: 8}
}

// world is a small in-memory fixture behind the repo interfaces.
type world struct {
	dashboards          map[uuid.UUID]*domain.Dashboard
	workspaces          map[uuid.UUID]*domain.Workspace
	dashboardPlacements map[uuid.UUID][]domain.MenuPlacement
	workspacePlacements map[uuid.UUID][]domain.MenuPlacement
	kv                  *rediskv.MemoryKV
}

func newWorld() *world {
	return &world{
		dashboards:          make(map[uuid.UUID]*domain.Dashboard),
		workspaces:          make(map[uuid.UUID]*domain.Workspace),
		dashboardPlacements: make(map[uuid.UUID][]domain.MenuPlacement),
		workspacePlacements: make(map[uuid.UUID][]domain.MenuPlacement),
		kv:                  rediskv.NewMemoryKV(),
	}
}

func (w *world) addDashboard(name string) *domain.Dashboard {
	d := &domain.Dashboard{ID: uuid.New(), Name: name}
	w.dashboards[d.ID] = d
	return d
}

func (w *world) addWorkspace(dashboardID uuid.UUID, name string) *domain.Workspace {
	ws := &domain.Workspace{ID: uuid.New(), DashboardID: dashboardID, Name: name}
	w.workspaces[ws.ID] = ws
	return ws
}

func (w *world) placeInWorkspace(workspaceID uuid.UUID, target string, orderIndex int) domain.MenuItem {
	item := domain.MenuItem{
		ID:     uuid.New(),
		Title:  target,
		Type:   domain.MenuItemTypeSlice,
		Target: target,
	}
	ws := w.workspaces[workspaceID]
	w.workspacePlacements[workspaceID] = append(w.workspacePlacements[workspaceID], domain.MenuPlacement{
		Usage: domain.MenuUsage{
			ID:          uuid.New(),
			MenuID:      item.ID,
			DashboardID: &ws.DashboardID,
			WorkspaceID: &workspaceID,
			OrderIndex:  orderIndex,
		},
		Item: item,
	})
	return item
}

func (w *world) placeInDashboard(dashboardID uuid.UUID, target string, orderIndex int) domain.MenuItem {
	item := domain.MenuItem{
		ID:            uuid.New(),
		Title:         target,
		Type:          domain.MenuItemTypeSlice,
		Target:        target,
		GlobalContext: true,
	}
	w.dashboardPlacements[dashboardID] = append(w.dashboardPlacements[dashboardID], domain.MenuPlacement{
		Usage: domain.MenuUsage{
			ID:          uuid.New(),
			MenuID:      item.ID,
			DashboardID: &dashboardID,
			OrderIndex:  orderIndex,
		},
		Item: item,
	})
	return item
}

func (w *world) service() *Service {
	dashboards := &dashboardRepoMock{
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Dashboard, error) {
			if d, ok := w.dashboards[id]; ok {
				return d, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	workspaces := &workspaceRepoMock{
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Workspace, error) {
			if ws, ok := w.workspaces[id]; ok {
				return ws, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	menus := &menuRepoMock{
		PlacementsForDashboardFunc: func(_ context.Context, id uuid.UUID) ([]domain.MenuPlacement, error) {
			return w.dashboardPlacements[id], nil
		},
		PlacementsForWorkspaceFunc: func(_ context.Context, id uuid.UUID) ([]domain.MenuPlacement, error) {
			return w.workspacePlacements[id], nil
		},
	}
	return NewService(testLogger(), dashboards, workspaces, menus, w.kv, testNavCfg())
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func TestService_Resolve_WorkspaceMenuPath(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	w1 := w.addWorkspace(d1.ID, "W1")
	overview := w.placeInWorkspace(w1.ID, "overview", 0)

	userID := uuid.New()
	svc := w.service()

	result, err := svc.Resolve(userCtx(userID), ResolveInput{
		Path: fmt.Sprintf("/dashboard/%s/%s/overview", d1.ID, w1.ID),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if result.RedirectTo != "" {
		t.Errorf("RedirectTo = %q, want none", result.RedirectTo)
	}
	c := result.Context
	if c.DashboardID != d1.ID {
		t.Errorf("DashboardID = %s, want %s", c.DashboardID, d1.ID)
	}
	if c.WorkspaceID == nil || *c.WorkspaceID != w1.ID {
		t.Errorf("WorkspaceID = %v, want %s", c.WorkspaceID, w1.ID)
	}
	if c.MenuID == nil || *c.MenuID != overview.ID {
		t.Errorf("MenuID = %v, want %s", c.MenuID, overview.ID)
	}
	if c.UserID != userID {
		t.Errorf("UserID = %s, want %s", c.UserID, userID)
	}
	if result.MenuItem == nil || result.MenuItem.Target != "overview" {
		t.Errorf("MenuItem = %+v, want overview", result.MenuItem)
	}
}

func TestService_Resolve_WorkspaceFromOtherDashboard(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	d2 := w.addDashboard("D2")
	w2 := w.addWorkspace(d2.ID, "W2")

	svc := w.service()

	_, err := svc.Resolve(userCtx(uuid.New()), ResolveInput{
		Path: fmt.Sprintf("/dashboard/%s/%s/overview", d1.ID, w2.ID),
	})
	if !errors.Is(err, domain.ErrWorkspaceNotFound) {
		t.Errorf("err = %v, want ErrWorkspaceNotFound", err)
	}
}

func TestService_Resolve_RedirectFromSavedSelection(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	w1 := w.addWorkspace(d1.ID, "W1")

	svc := w.service()
	ctx := userCtx(uuid.New())

	if _, err := svc.SetActive(ctx, SetActiveInput{DashboardID: d1.ID, WorkspaceID: &w1.ID}); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	result, err := svc.Resolve(ctx, ResolveInput{
		Path:            domain.DashboardURL(d1.ID),
		FollowSelection: true,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := domain.WorkspaceURL(d1.ID, w1.ID)
	if result.RedirectTo != want {
		t.Errorf("RedirectTo = %q, want %q", result.RedirectTo, want)
	}
	if result.Context != nil {
		t.Errorf("Context = %+v, want nil on redirect", result.Context)
	}
}

func TestService_Resolve_BareDashboardWithoutSelection(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")

	svc := w.service()
	userID := uuid.New()

	result, err := svc.Resolve(userCtx(userID), ResolveInput{
		Path:            domain.DashboardURL(d1.ID),
		FollowSelection: true,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.RedirectTo != "" {
		t.Errorf("RedirectTo = %q, want none", result.RedirectTo)
	}
	want := domain.ResolvedContext{DashboardID: d1.ID, UserID: userID}
	if !result.Context.Equal(want) {
		t.Errorf("Context = %+v, want %+v", *result.Context, want)
	}
}

func TestService_Resolve_ExplicitWorkspaceBeatsSelection(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	w1 := w.addWorkspace(d1.ID, "W1")
	w2 := w.addWorkspace(d1.ID, "W2")

	svc := w.service()
	ctx := userCtx(uuid.New())

	if _, err := svc.SetActive(ctx, SetActiveInput{DashboardID: d1.ID, WorkspaceID: &w1.ID}); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	result, err := svc.Resolve(ctx, ResolveInput{
		Path:            domain.WorkspaceURL(d1.ID, w2.ID),
		FollowSelection: true,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.RedirectTo != "" {
		t.Errorf("RedirectTo = %q, explicit workspace must win", result.RedirectTo)
	}
	if result.Context.WorkspaceID == nil || *result.Context.WorkspaceID != w2.ID {
		t.Errorf("WorkspaceID = %v, want %s", result.Context.WorkspaceID, w2.ID)
	}
}

func TestService_Resolve_NoFollowSelectionNoRedirect(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	w1 := w.addWorkspace(d1.ID, "W1")

	svc := w.service()
	ctx := userCtx(uuid.New())

	if _, err := svc.SetActive(ctx, SetActiveInput{DashboardID: d1.ID, WorkspaceID: &w1.ID}); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	result, err := svc.Resolve(ctx, ResolveInput{Path: domain.DashboardURL(d1.ID)})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.RedirectTo != "" {
		t.Errorf("RedirectTo = %q, want none when FollowSelection is off", result.RedirectTo)
	}
}

func TestService_Resolve_UnknownDashboard(t *testing.T) {
	t.Parallel()

	w := newWorld()
	svc := w.service()

	cases := []struct {
		name string
		path string
	}{
		{"unknown id", domain.DashboardURL(uuid.New())},
		{"not a uuid", "/dashboard/not-a-uuid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Resolve(userCtx(uuid.New()), ResolveInput{Path: tc.path})
			if !errors.Is(err, domain.ErrDashboardNotFound) {
				t.Errorf("err = %v, want ErrDashboardNotFound", err)
			}
		})
	}
}

func TestService_Resolve_MenuNotFound(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	w1 := w.addWorkspace(d1.ID, "W1")
	w.placeInWorkspace(w1.ID, "overview", 0)

	svc := w.service()

	_, err := svc.Resolve(userCtx(uuid.New()), ResolveInput{
		Path: fmt.Sprintf("/dashboard/%s/%s/missing", d1.ID, w1.ID),
	})
	if !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Errorf("err = %v, want ErrMenuItemNotFound", err)
	}
}

func TestService_Resolve_DashboardScopedMenuByID(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	settings := w.placeInDashboard(d1.ID, "settings", 0)

	svc := w.service()

	result, err := svc.Resolve(userCtx(uuid.New()), ResolveInput{
		Path: fmt.Sprintf("/dashboard/%s/%s", d1.ID, settings.ID),
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Context.WorkspaceID != nil {
		t.Errorf("WorkspaceID = %v, want nil for dashboard scope", result.Context.WorkspaceID)
	}
	if result.Context.MenuID == nil || *result.Context.MenuID != settings.ID {
		t.Errorf("MenuID = %v, want %s", result.Context.MenuID, settings.ID)
	}
}

func TestService_Resolve_Idempotent(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	w1 := w.addWorkspace(d1.ID, "W1")
	w.placeInWorkspace(w1.ID, "overview", 0)

	svc := w.service()
	ctx := userCtx(uuid.New())
	input := ResolveInput{Path: fmt.Sprintf("/dashboard/%s/%s/overview", d1.ID, w1.ID)}

	first, err := svc.Resolve(ctx, input)
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := svc.Resolve(ctx, input)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if !first.Context.Equal(*second.Context) {
		t.Errorf("contexts differ: %+v vs %+v", *first.Context, *second.Context)
	}
}

func TestService_Resolve_StaleSelectionSelfHeals(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	userID := uuid.New()

	// Selection points at a workspace that no longer exists.
	key := selectionKey(userID, d1.ID)
	if err := w.kv.Set(context.Background(), key, uuid.NewString(), 0); err != nil {
		t.Fatalf("seed selection: %v", err)
	}

	svc := w.service()

	result, err := svc.Resolve(userCtx(userID), ResolveInput{
		Path:            domain.DashboardURL(d1.ID),
		FollowSelection: true,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.RedirectTo != "" {
		t.Errorf("RedirectTo = %q, stale selection must not redirect", result.RedirectTo)
	}

	// The stale key must have been dropped.
	if _, err := w.kv.Get(context.Background(), key); !errors.Is(err, rediskv.ErrMiss) {
		t.Errorf("stale key still present, err = %v", err)
	}
}

func TestService_Resolve_DashboardSwitchIsolation(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	d2 := w.addDashboard("D2")
	w1 := w.addWorkspace(d1.ID, "W1")

	svc := w.service()
	ctx := userCtx(uuid.New())

	if _, err := svc.SetActive(ctx, SetActiveInput{DashboardID: d1.ID, WorkspaceID: &w1.ID}); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	// Moving to d2 must not auto-navigate into w1 and must clear d1's
	// saved selection.
	result, err := svc.Resolve(ctx, ResolveInput{
		Path:                domain.DashboardURL(d2.ID),
		FollowSelection:     true,
		PreviousDashboardID: &d1.ID,
	})
	if err != nil {
		t.Fatalf("Resolve d2: %v", err)
	}
	if result.RedirectTo != "" {
		t.Errorf("RedirectTo = %q, d1 selection leaked into d2", result.RedirectTo)
	}

	// A later bare visit to d1 no longer auto-navigates.
	result, err = svc.Resolve(ctx, ResolveInput{
		Path:                domain.DashboardURL(d1.ID),
		FollowSelection:     true,
		PreviousDashboardID: &d2.ID,
	})
	if err != nil {
		t.Fatalf("Resolve d1: %v", err)
	}
	if result.RedirectTo != "" {
		t.Errorf("RedirectTo = %q, selection should have been cleared on switch", result.RedirectTo)
	}
}

func TestService_Resolve_Unauthorized(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	svc := w.service()

	_, err := svc.Resolve(context.Background(), ResolveInput{Path: domain.DashboardURL(d1.ID)})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestService_Resolve_ValidationErrors(t *testing.T) {
	t.Parallel()

	w := newWorld()
	d1 := w.addDashboard("D1")
	svc := w.service()

	longPath := domain.DashboardURL(d1.ID)
	for i := 0; i < 10; i++ {
		longPath += "/seg"
	}

	cases := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"wrong prefix", "/api/other"},
		{"lookalike prefix", "/dashboardfoo/" + uuid.NewString()},
		{"too many segments", longPath},
		{"prefix only", "/dashboard"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Resolve(userCtx(uuid.New()), ResolveInput{Path: tc.path})
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}
