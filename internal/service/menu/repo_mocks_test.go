package menu

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

var _ menuRepo = &menuRepoMock{}

type menuRepoMock struct {
	GetItemByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	ListItemsFunc     func(ctx context.Context) ([]*domain.MenuItem, error)
	CreateItemFunc    func(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateItemFunc    func(ctx context.Context, id uuid.UUID, params domain.MenuItemUpdateParams) (*domain.MenuItem, error)
	DeleteItemFunc    func(ctx context.Context, id uuid.UUID) error
	CreateUsageFunc   func(ctx context.Context, u *domain.MenuUsage) (*domain.MenuUsage, error)
	DeleteUsageFunc   func(ctx context.Context, id uuid.UUID) error
	ReorderUsagesFunc func(ctx context.Context, ids []uuid.UUID) (int, error)

	calls struct {
		CreateUsage []struct {
			Ctx   context.Context
			Usage *domain.MenuUsage
		}
		ReorderUsages []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
	}
	lockCreateUsage   sync.RWMutex
	lockReorderUsages sync.RWMutex
}

func (mock *menuRepoMock) GetItemByID(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	if mock.GetItemByIDFunc == nil {
		panic("menuRepoMock.GetItemByIDFunc: method is nil but menuRepo.GetItemByID was just called")
	}
	return mock.GetItemByIDFunc(ctx, id)
}

func (mock *menuRepoMock) ListItems(ctx context.Context) ([]*domain.MenuItem, error) {
	if mock.ListItemsFunc == nil {
		panic("menuRepoMock.ListItemsFunc: method is nil but menuRepo.ListItems was just called")
	}
	return mock.ListItemsFunc(ctx)
}

func (mock *menuRepoMock) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if mock.CreateItemFunc == nil {
		panic("menuRepoMock.CreateItemFunc: method is nil but menuRepo.CreateItem was just called")
	}
	return mock.CreateItemFunc(ctx, item)
}

func (mock *menuRepoMock) UpdateItem(ctx context.Context, id uuid.UUID, params domain.MenuItemUpdateParams) (*domain.MenuItem, error) {
	if mock.UpdateItemFunc == nil {
		panic("menuRepoMock.UpdateItemFunc: method is nil but menuRepo.UpdateItem was just called")
	}
	return mock.UpdateItemFunc(ctx, id, params)
}

func (mock *menuRepoMock) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteItemFunc == nil {
		panic("menuRepoMock.DeleteItemFunc: method is nil but menuRepo.DeleteItem was just called")
	}
	return mock.DeleteItemFunc(ctx, id)
}

func (mock *menuRepoMock) CreateUsage(ctx context.Context, u *domain.MenuUsage) (*domain.MenuUsage, error) {
	if mock.CreateUsageFunc == nil {
		panic("menuRepoMock.CreateUsageFunc: method is nil but menuRepo.CreateUsage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Usage *domain.MenuUsage
	}{Ctx: ctx, Usage: u}
	mock.lockCreateUsage.Lock()
	mock.calls.CreateUsage = append(mock.calls.CreateUsage, callInfo)
	mock.lockCreateUsage.Unlock()
	return mock.CreateUsageFunc(ctx, u)
}

func (mock *menuRepoMock) CreateUsageCalls() []struct {
	Ctx   context.Context
	Usage *domain.MenuUsage
} {
	mock.lockCreateUsage.RLock()
	calls := mock.calls.CreateUsage
	mock.lockCreateUsage.RUnlock()
	return calls
}

func (mock *menuRepoMock) DeleteUsage(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteUsageFunc == nil {
		panic("menuRepoMock.DeleteUsageFunc: method is nil but menuRepo.DeleteUsage was just called")
	}
	return mock.DeleteUsageFunc(ctx, id)
}

func (mock *menuRepoMock) ReorderUsages(ctx context.Context, ids []uuid.UUID) (int, error) {
	if mock.ReorderUsagesFunc == nil {
		panic("menuRepoMock.ReorderUsagesFunc: method is nil but menuRepo.ReorderUsages was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockReorderUsages.Lock()
	mock.calls.ReorderUsages = append(mock.calls.ReorderUsages, callInfo)
	mock.lockReorderUsages.Unlock()
	return mock.ReorderUsagesFunc(ctx, ids)
}

func (mock *menuRepoMock) ReorderUsagesCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockReorderUsages.RLock()
	calls := mock.calls.ReorderUsages
	mock.lockReorderUsages.RUnlock()
	return calls
}

var _ dashboardRepo = &dashboardRepoMock{}

type dashboardRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error)
}

func (mock *dashboardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	if mock.GetByIDFunc == nil {
		panic("dashboardRepoMock.GetByIDFunc: method is nil but dashboardRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ workspaceRepo = &workspaceRepoMock{}

type workspaceRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
}

func (mock *workspaceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if mock.GetByIDFunc == nil {
		panic("workspaceRepoMock.GetByIDFunc: method is nil but workspaceRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
