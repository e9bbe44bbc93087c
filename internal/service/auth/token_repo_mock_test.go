package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc           func(ctx context.Context, token *domain.RefreshToken) (*domain.RefreshToken, error)
	GetByHashFunc        func(ctx context.Context, hash string) (*domain.RefreshToken, error)
	RevokeFunc           func(ctx context.Context, id uuid.UUID) error
	RevokeAllForUserFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc    func(ctx context.Context, cutoff time.Time) (int, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Token *domain.RefreshToken
		}
		GetByHash []struct {
			Ctx  context.Context
			Hash string
		}
		Revoke []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		RevokeAllForUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteExpired []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
	}
	lockCreate           sync.RWMutex
	lockGetByHash        sync.RWMutex
	lockRevoke           sync.RWMutex
	lockRevokeAllForUser sync.RWMutex
	lockDeleteExpired    sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) (*domain.RefreshToken, error) {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token *domain.RefreshToken
	}{Ctx: ctx, Token: token}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, token)
}

func (mock *tokenRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Token *domain.RefreshToken
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Hash string
	}{Ctx: ctx, Hash: hash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, hash)
}

func (mock *tokenRepoMock) GetByHashCalls() []struct {
	Ctx  context.Context
	Hash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *tokenRepoMock) Revoke(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeFunc == nil {
		panic("tokenRepoMock.RevokeFunc: method is nil but tokenRepo.Revoke was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, id)
}

func (mock *tokenRepoMock) RevokeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllForUserFunc == nil {
		panic("tokenRepoMock.RevokeAllForUserFunc: method is nil but tokenRepo.RevokeAllForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockRevokeAllForUser.Lock()
	mock.calls.RevokeAllForUser = append(mock.calls.RevokeAllForUser, callInfo)
	mock.lockRevokeAllForUser.Unlock()
	return mock.RevokeAllForUserFunc(ctx, userID)
}

func (mock *tokenRepoMock) RevokeAllForUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockRevokeAllForUser.RLock()
	calls := mock.calls.RevokeAllForUser
	mock.lockRevokeAllForUser.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, cutoff)
}

func (mock *tokenRepoMock) DeleteExpiredCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
