package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

// Status is the loader's per-target lifecycle state.
type Status string

const (
	StatusLoading  Status = "loading"
	StatusReady    Status = "ready"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
)

// ErrSuperseded reports that a newer load started while this one was in
// flight; the stale result was discarded.
var ErrSuperseded = errors.New("load superseded by newer request")

// LoadState is a snapshot of one load attempt.
type LoadState struct {
	Target string
	Status Status
	Module Module
	// Err is set for StatusError and StatusNotFound; it names the target.
	Err error
}

// loaderSlot holds one user's supersession token and latest snapshot.
type loaderSlot struct {
	token atomic.Uint64

	mu    sync.RWMutex
	state LoadState
}

// Loader resolves target names to modules. Resolution is two-tier:
// exact match in the static registry, then a best-effort remote lookup
// for unknown names. Failure is terminal per attempt; there is no
// automatic retry and no load timeout beyond the remote client's own.
//
// Across one user's rapid navigation only the latest request's result
// is applied. Supersession is detected with a per-user monotonically
// increasing token; loads by different users never supersede each other.
type Loader struct {
	log      *slog.Logger
	registry *Registry
	remote   *RemoteResolver

	mu    sync.Mutex
	slots map[uuid.UUID]*loaderSlot
}

// NewLoader creates a loader over the registry. remote may be nil.
func NewLoader(logger *slog.Logger, registry *Registry, remote *RemoteResolver) *Loader {
	return &Loader{
		log:      logger.With("component", "module-loader"),
		registry: registry,
		remote:   remote,
		slots:    make(map[uuid.UUID]*loaderSlot),
	}
}

func (l *Loader) slot(userID uuid.UUID) *loaderSlot {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.slots[userID]
	if !ok {
		s = &loaderSlot{}
		l.slots[userID] = s
	}
	return s
}

// Load resolves target for one user and commits the outcome unless a
// newer Load by the same user started meanwhile, in which case
// ErrSuperseded is returned and the stale outcome is dropped.
func (l *Loader) Load(ctx context.Context, userID uuid.UUID, target string) (LoadState, error) {
	slot := l.slot(userID)
	token := slot.token.Add(1)

	slot.set(token, LoadState{Target: target, Status: StatusLoading})

	state := l.resolve(ctx, target)

	if !slot.set(token, state) {
		l.log.DebugContext(ctx, "stale load result discarded",
			slog.String("target", target),
			slog.String("user_id", userID.String()))
		return LoadState{}, ErrSuperseded
	}

	if state.Status == StatusError || state.Status == StatusNotFound {
		l.log.WarnContext(ctx, "module load failed",
			slog.String("target", target),
			slog.String("status", string(state.Status)))
	}
	return state, nil
}

// State returns the user's latest committed load snapshot.
func (l *Loader) State(userID uuid.UUID) LoadState {
	slot := l.slot(userID)
	slot.mu.RLock()
	defer slot.mu.RUnlock()
	return slot.state
}

func (l *Loader) resolve(ctx context.Context, target string) LoadState {
	if m, ok := l.registry.Lookup(target); ok {
		return LoadState{Target: target, Status: StatusReady, Module: m}
	}

	// Generic path: unknown names get one best-effort dynamic lookup
	// before not-found is declared.
	if l.remote == nil {
		return LoadState{
			Target: target,
			Status: StatusNotFound,
			Err:    fmt.Errorf("module %q: %w", target, domain.ErrModuleNotFound),
		}
	}

	manifest, err := l.remote.Resolve(ctx, target)
	if err != nil {
		status := StatusError
		if errors.Is(err, domain.ErrModuleNotFound) {
			status = StatusNotFound
		}
		return LoadState{Target: target, Status: status, Err: err}
	}

	return LoadState{
		Target: target,
		Status: StatusReady,
		Module: &remoteModule{manifest: *manifest},
	}
}

// set commits a snapshot only while token is still the slot's newest
// request. Reports whether the commit happened.
func (s *loaderSlot) set(token uint64, state LoadState) bool {
	if s.token.Load() != token {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token.Load() != token {
		return false
	}
	s.state = state
	return true
}
