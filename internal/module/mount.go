package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

// ErrorPanel is the named, recoverable error surface for a failed load.
// It always names the missing target and offers a way back.
type ErrorPanel struct {
	Target  string `json:"target"`
	Message string `json:"message"`
	BackURL string `json:"backUrl"`
}

// MountView is what the mount point renders: exactly one of placeholder
// (Status loading), module view (Status ready), or error panel.
type MountView struct {
	Status      Status      `json:"status"`
	Placeholder string      `json:"placeholder,omitempty"`
	View        *View       `json:"view,omitempty"`
	Error       *ErrorPanel `json:"error,omitempty"`
}

// mountSlot is one user's content slot.
type mountSlot struct {
	mu      sync.Mutex
	target  string
	mounted *domain.ResolvedContext
	view    *MountView
}

// Mount drives per-user content slots. Within one mounted context the
// transition loading → ready is one-way; a context or target change
// unmounts and restarts from loading, never reusing the previous
// module instance. Slots are keyed by the resolved context's user, so
// one user's navigation never displaces another's mounted view.
type Mount struct {
	log      *slog.Logger
	loader   *Loader
	registry *Registry

	mu    sync.Mutex
	slots map[uuid.UUID]*mountSlot
}

// NewMount creates a mount point over the loader.
func NewMount(logger *slog.Logger, loader *Loader, registry *Registry) *Mount {
	return &Mount{
		log:      logger.With("component", "mount"),
		loader:   loader,
		registry: registry,
		slots:    make(map[uuid.UUID]*mountSlot),
	}
}

func (m *Mount) slot(userID uuid.UUID) *mountSlot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[userID]
	if !ok {
		s = &mountSlot{}
		m.slots[userID] = s
	}
	return s
}

// Render returns the view for target under resolved. The resolved
// context must already be valid; resolution failures never reach the
// mount point. extra is merged into the module's parameter object.
func (m *Mount) Render(ctx context.Context, target string, resolved domain.ResolvedContext, extra map[string]any) (*MountView, error) {
	slot := m.slot(resolved.UserID)

	slot.mu.Lock()
	if slot.view != nil && slot.target == target && slot.mounted != nil && slot.mounted.Equal(resolved) {
		view := slot.view
		slot.mu.Unlock()
		return view, nil
	}
	// New target or context: restart from loading.
	slot.target = target
	mountedCopy := resolved
	slot.mounted = &mountedCopy
	slot.view = &MountView{
		Status:      StatusLoading,
		Placeholder: m.registry.Placeholder(target),
	}
	slot.mu.Unlock()

	state, err := m.loader.Load(ctx, resolved.UserID, target)
	if err != nil {
		if errors.Is(err, ErrSuperseded) {
			// A newer render by the same user owns the slot; report
			// loading for this one.
			return &MountView{Status: StatusLoading, Placeholder: m.registry.Placeholder(target)}, nil
		}
		return nil, fmt.Errorf("mount %q: %w", target, err)
	}

	view := m.buildView(ctx, state, resolved, extra)
	slot.commit(target, resolved, view)
	return view, nil
}

// View returns the user's current snapshot, or a generic loading view
// when nothing was rendered yet.
func (m *Mount) View(userID uuid.UUID) *MountView {
	slot := m.slot(userID)
	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.view == nil {
		return &MountView{Status: StatusLoading, Placeholder: PlaceholderGeneric}
	}
	return slot.view
}

func (m *Mount) buildView(ctx context.Context, state LoadState, resolved domain.ResolvedContext, extra map[string]any) *MountView {
	switch state.Status {
	case StatusReady:
		view, err := state.Module.Render(ctx, Params{Context: resolved, Extra: extra})
		if err != nil {
			m.log.ErrorContext(ctx, "module render failed",
				slog.String("target", state.Target),
				slog.String("error", err.Error()))
			return m.errorView(state.Target, resolved, fmt.Sprintf("module %q failed to render", state.Target))
		}
		return &MountView{Status: StatusReady, View: view}

	case StatusNotFound:
		return &MountView{
			Status: StatusNotFound,
			Error: &ErrorPanel{
				Target:  state.Target,
				Message: fmt.Sprintf("no module is registered for target %q", state.Target),
				BackURL: domain.DashboardURL(resolved.DashboardID),
			},
		}

	default:
		return m.errorView(state.Target, resolved, fmt.Sprintf("module %q failed to load", state.Target))
	}
}

func (m *Mount) errorView(target string, resolved domain.ResolvedContext, message string) *MountView {
	return &MountView{
		Status: StatusError,
		Error: &ErrorPanel{
			Target:  target,
			Message: message,
			BackURL: domain.DashboardURL(resolved.DashboardID),
		},
	}
}

// commit stores the view unless the slot moved on to another
// target/context while loading.
func (s *mountSlot) commit(target string, resolved domain.ResolvedContext, view *MountView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.target != target || s.mounted == nil || !s.mounted.Equal(resolved) {
		return
	}
	s.view = view
}
