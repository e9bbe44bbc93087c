package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/pkg/ctxutil"
)

//go:generate moq -out repo_mocks_test.go -pkg dashboard . dashboardRepo workspaceRepo

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func TestService_CreateDashboard(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	dashboards := &dashboardRepoMock{
		CreateFunc: func(_ context.Context, d *domain.Dashboard) (*domain.Dashboard, error) {
			created := *d
			return &created, nil
		},
	}
	svc := NewService(testLogger(), dashboards, &workspaceRepoMock{})

	created, err := svc.CreateDashboard(userCtx(userID), CreateDashboardInput{Name: "Ops"})
	if err != nil {
		t.Fatalf("CreateDashboard: %v", err)
	}

	if created.Name != "Ops" {
		t.Errorf("Name = %q", created.Name)
	}
	if created.CreatedByID == nil || *created.CreatedByID != userID {
		t.Errorf("CreatedByID = %v, want %s", created.CreatedByID, userID)
	}
	if created.ID == uuid.Nil {
		t.Errorf("ID not assigned")
	}
}

func TestService_CreateDashboard_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &dashboardRepoMock{}, &workspaceRepoMock{})

	_, err := svc.CreateDashboard(context.Background(), CreateDashboardInput{Name: "Ops"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestService_CreateDashboard_EmptyName(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &dashboardRepoMock{}, &workspaceRepoMock{})

	_, err := svc.CreateDashboard(userCtx(uuid.New()), CreateDashboardInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestService_UpdateDashboard_NoFields(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &dashboardRepoMock{}, &workspaceRepoMock{})

	_, err := svc.UpdateDashboard(userCtx(uuid.New()), uuid.New(), UpdateDashboardInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestService_UpdateDashboard_NotFound(t *testing.T) {
	t.Parallel()

	dashboards := &dashboardRepoMock{
		UpdateFunc: func(context.Context, uuid.UUID, domain.DashboardUpdateParams) (*domain.Dashboard, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), dashboards, &workspaceRepoMock{})

	name := "new"
	_, err := svc.UpdateDashboard(userCtx(uuid.New()), uuid.New(), UpdateDashboardInput{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestService_DeleteDashboard(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	dashboards := &dashboardRepoMock{
		DeleteFunc: func(context.Context, uuid.UUID) error { return nil },
	}
	svc := NewService(testLogger(), dashboards, &workspaceRepoMock{})

	if err := svc.DeleteDashboard(userCtx(uuid.New()), id); err != nil {
		t.Fatalf("DeleteDashboard: %v", err)
	}

	calls := dashboards.DeleteCalls()
	if len(calls) != 1 || calls[0].ID != id {
		t.Errorf("Delete calls = %+v, want one call for %s", calls, id)
	}
}

func TestService_CreateWorkspace(t *testing.T) {
	t.Parallel()

	dashboardID := uuid.New()
	dashboards := &dashboardRepoMock{
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Dashboard, error) {
			if id != dashboardID {
				return nil, domain.ErrNotFound
			}
			return &domain.Dashboard{ID: id}, nil
		},
	}
	workspaces := &workspaceRepoMock{
		CreateFunc: func(_ context.Context, w *domain.Workspace) (*domain.Workspace, error) {
			created := *w
			return &created, nil
		},
	}
	svc := NewService(testLogger(), dashboards, workspaces)

	created, err := svc.CreateWorkspace(userCtx(uuid.New()), CreateWorkspaceInput{
		DashboardID: dashboardID,
		Name:        "Staging",
	})
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	if created.DashboardID != dashboardID {
		t.Errorf("DashboardID = %s, want %s", created.DashboardID, dashboardID)
	}
}

func TestService_CreateWorkspace_UnknownDashboard(t *testing.T) {
	t.Parallel()

	dashboards := &dashboardRepoMock{
		GetByIDFunc: func(context.Context, uuid.UUID) (*domain.Dashboard, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), dashboards, &workspaceRepoMock{})

	_, err := svc.CreateWorkspace(userCtx(uuid.New()), CreateWorkspaceInput{
		DashboardID: uuid.New(),
		Name:        "Staging",
	})
	if !errors.Is(err, domain.ErrDashboardNotFound) {
		t.Errorf("err = %v, want ErrDashboardNotFound", err)
	}
}

func TestService_ListWorkspaces_EmptyNotNil(t *testing.T) {
	t.Parallel()

	workspaces := &workspaceRepoMock{
		ListByDashboardFunc: func(context.Context, uuid.UUID) ([]*domain.Workspace, error) {
			return []*domain.Workspace{}, nil
		},
	}
	svc := NewService(testLogger(), &dashboardRepoMock{}, workspaces)

	list, err := svc.ListWorkspaces(userCtx(uuid.New()), uuid.New())
	if err != nil {
		t.Fatalf("ListWorkspaces: %v", err)
	}
	if list == nil {
		t.Errorf("list = nil, want empty slice")
	}
}
