package navigation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

var _ dashboardRepo = &dashboardRepoMock{}

type dashboardRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *dashboardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	if mock.GetByIDFunc == nil {
		panic("dashboardRepoMock.GetByIDFunc: method is nil but dashboardRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *dashboardRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ workspaceRepo = &workspaceRepoMock{}

type workspaceRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *workspaceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if mock.GetByIDFunc == nil {
		panic("workspaceRepoMock.GetByIDFunc: method is nil but workspaceRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *workspaceRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ menuRepo = &menuRepoMock{}

type menuRepoMock struct {
	PlacementsForDashboardFunc func(ctx context.Context, dashboardID uuid.UUID) ([]domain.MenuPlacement, error)
	PlacementsForWorkspaceFunc func(ctx context.Context, workspaceID uuid.UUID) ([]domain.MenuPlacement, error)

	calls struct {
		PlacementsForDashboard []struct {
			Ctx         context.Context
			DashboardID uuid.UUID
		}
		PlacementsForWorkspace []struct {
			Ctx         context.Context
			WorkspaceID uuid.UUID
		}
	}
	lockPlacementsForDashboard sync.RWMutex
	lockPlacementsForWorkspace sync.RWMutex
}

func (mock *menuRepoMock) PlacementsForDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.MenuPlacement, error) {
	if mock.PlacementsForDashboardFunc == nil {
		panic("menuRepoMock.PlacementsForDashboardFunc: method is nil but menuRepo.PlacementsForDashboard was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		DashboardID uuid.UUID
	}{Ctx: ctx, DashboardID: dashboardID}
	mock.lockPlacementsForDashboard.Lock()
	mock.calls.PlacementsForDashboard = append(mock.calls.PlacementsForDashboard, callInfo)
	mock.lockPlacementsForDashboard.Unlock()
	return mock.PlacementsForDashboardFunc(ctx, dashboardID)
}

func (mock *menuRepoMock) PlacementsForDashboardCalls() []struct {
	Ctx         context.Context
	DashboardID uuid.UUID
} {
	mock.lockPlacementsForDashboard.RLock()
	calls := mock.calls.PlacementsForDashboard
	mock.lockPlacementsForDashboard.RUnlock()
	return calls
}

func (mock *menuRepoMock) PlacementsForWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.MenuPlacement, error) {
	if mock.PlacementsForWorkspaceFunc == nil {
		panic("menuRepoMock.PlacementsForWorkspaceFunc: method is nil but menuRepo.PlacementsForWorkspace was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		WorkspaceID uuid.UUID
	}{Ctx: ctx, WorkspaceID: workspaceID}
	mock.lockPlacementsForWorkspace.Lock()
	mock.calls.PlacementsForWorkspace = append(mock.calls.PlacementsForWorkspace, callInfo)
	mock.lockPlacementsForWorkspace.Unlock()
	return mock.PlacementsForWorkspaceFunc(ctx, workspaceID)
}

func (mock *menuRepoMock) PlacementsForWorkspaceCalls() []struct {
	Ctx         context.Context
	WorkspaceID uuid.UUID
} {
	mock.lockPlacementsForWorkspace.RLock()
	calls := mock.calls.PlacementsForWorkspace
	mock.lockPlacementsForWorkspace.RUnlock()
	return calls
}
