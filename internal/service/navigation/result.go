package navigation

import "github.com/openboards/openboards-backend/internal/domain"

// ResolveResult is returned by the resolve operation.
//
// Exactly one of two shapes: RedirectTo set and everything else zero
// (the caller must re-resolve at the new URL), or Context set together
// with the entities it names.
type ResolveResult struct {
	Context   *domain.ResolvedContext
	Dashboard *domain.Dashboard
	// Workspace is nil for dashboard-scoped contexts.
	Workspace *domain.Workspace
	// MenuItem is nil when the path names no menu node.
	MenuItem *domain.MenuItem
	// RedirectTo carries the persisted-selection auto-navigation target.
	RedirectTo string
}
