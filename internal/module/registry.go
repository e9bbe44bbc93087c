// Package module implements the content module registry, the dynamic
// loader with last-request-wins supersession, and the mount point that
// turns a resolved context into exactly one of placeholder, rendered
// module, or named error panel.
package module

import (
	"context"

	"github.com/openboards/openboards-backend/internal/domain"
)

// Params is the single parameter object a module receives: the whole
// resolved context plus any caller-supplied extras merged in. Modules
// must not depend on anything outside it.
type Params struct {
	Context domain.ResolvedContext
	Extra   map[string]any
}

// View is the model a module produces for the mount point.
type View struct {
	Target string         `json:"target"`
	Title  string         `json:"title"`
	Data   map[string]any `json:"data,omitempty"`
}

// Module is a loadable content unit addressed by its target name.
type Module interface {
	Target() string
	Render(ctx context.Context, params Params) (*View, error)
}

// PlaceholderGeneric is rendered while loading targets without a
// registered placeholder shape.
const PlaceholderGeneric = "generic"

// Registry is the closed, enumerable mapping from target names to
// modules. It is the seam where new content modules are added without
// touching resolution or composition logic.
type Registry struct {
	modules      map[string]Module
	placeholders map[string]string
}

// NewRegistry builds a registry over the given modules.
func NewRegistry(modules ...Module) *Registry {
	r := &Registry{
		modules:      make(map[string]Module, len(modules)),
		placeholders: make(map[string]string),
	}
	for _, m := range modules {
		r.modules[m.Target()] = m
	}
	return r
}

// RegisterPlaceholder associates a target with a placeholder shape
// rendered while that target loads.
func (r *Registry) RegisterPlaceholder(target, kind string) {
	r.placeholders[target] = kind
}

// Lookup resolves a target by exact name match.
func (r *Registry) Lookup(target string) (Module, bool) {
	m, ok := r.modules[target]
	return m, ok
}

// Placeholder returns the placeholder shape for a target, generic when
// none is registered.
func (r *Registry) Placeholder(target string) string {
	if kind, ok := r.placeholders[target]; ok {
		return kind
	}
	return PlaceholderGeneric
}

// Targets enumerates the registered target names.
func (r *Registry) Targets() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	return names
}
