package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

var _ dashboardRepo = &dashboardRepoMock{}

type dashboardRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
	ListFunc    func(ctx context.Context) ([]*domain.Dashboard, error)
	CreateFunc  func(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.DashboardUpdateParams) (*domain.Dashboard, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx       context.Context
			Dashboard *domain.Dashboard
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *dashboardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	if mock.GetByIDFunc == nil {
		panic("dashboardRepoMock.GetByIDFunc: method is nil but dashboardRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *dashboardRepoMock) List(ctx context.Context) ([]*domain.Dashboard, error) {
	if mock.ListFunc == nil {
		panic("dashboardRepoMock.ListFunc: method is nil but dashboardRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *dashboardRepoMock) Create(ctx context.Context, d *domain.Dashboard) (*domain.Dashboard, error) {
	if mock.CreateFunc == nil {
		panic("dashboardRepoMock.CreateFunc: method is nil but dashboardRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Dashboard *domain.Dashboard
	}{Ctx: ctx, Dashboard: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *dashboardRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	Dashboard *domain.Dashboard
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *dashboardRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.DashboardUpdateParams) (*domain.Dashboard, error) {
	if mock.UpdateFunc == nil {
		panic("dashboardRepoMock.UpdateFunc: method is nil but dashboardRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *dashboardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("dashboardRepoMock.DeleteFunc: method is nil but dashboardRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *dashboardRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ workspaceRepo = &workspaceRepoMock{}

type workspaceRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	ListByDashboardFunc func(ctx context.Context, dashboardID uuid.UUID) ([]*domain.Workspace, error)
	CreateFunc          func(ctx context.Context, w *domain.Workspace) (*domain.Workspace, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, params domain.WorkspaceUpdateParams) (*domain.Workspace, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx       context.Context
			Workspace *domain.Workspace
		}
	}
	lockCreate sync.RWMutex
}

func (mock *workspaceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if mock.GetByIDFunc == nil {
		panic("workspaceRepoMock.GetByIDFunc: method is nil but workspaceRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *workspaceRepoMock) ListByDashboard(ctx context.Context, dashboardID uuid.UUID) ([]*domain.Workspace, error) {
	if mock.ListByDashboardFunc == nil {
		panic("workspaceRepoMock.ListByDashboardFunc: method is nil but workspaceRepo.ListByDashboard was just called")
	}
	return mock.ListByDashboardFunc(ctx, dashboardID)
}

func (mock *workspaceRepoMock) Create(ctx context.Context, w *domain.Workspace) (*domain.Workspace, error) {
	if mock.CreateFunc == nil {
		panic("workspaceRepoMock.CreateFunc: method is nil but workspaceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Workspace *domain.Workspace
	}{Ctx: ctx, Workspace: w}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *workspaceRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	Workspace *domain.Workspace
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *workspaceRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.WorkspaceUpdateParams) (*domain.Workspace, error) {
	if mock.UpdateFunc == nil {
		panic("workspaceRepoMock.UpdateFunc: method is nil but workspaceRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *workspaceRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("workspaceRepoMock.DeleteFunc: method is nil but workspaceRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}
