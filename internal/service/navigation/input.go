package navigation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

// ResolveInput holds parameters for the resolve operation.
type ResolveInput struct {
	// Path is the request path, starting with the dashboard root prefix.
	Path string
	// FollowSelection enables the persisted-selection redirect for bare
	// dashboard URLs. Callers set it once per dashboard-URL visit so the
	// redirect cannot loop.
	FollowSelection bool
	// PreviousDashboardID, when set, is the dashboard of the previously
	// resolved context. A change of dashboard clears the previous
	// dashboard's persisted selection.
	PreviousDashboardID *uuid.UUID
}

// Validate validates the resolve input.
func (i ResolveInput) Validate() error {
	var errs []domain.FieldError

	if i.Path == "" {
		errs = append(errs, domain.FieldError{Field: "path", Message: "required"})
	} else if i.Path != pathPrefix && !strings.HasPrefix(i.Path, pathPrefix+"/") {
		// A bare prefix match would accept /dashboardfoo/... as a
		// dashboard path.
		errs = append(errs, domain.FieldError{Field: "path", Message: "must start with " + pathPrefix})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetActiveInput holds parameters for the set-active-workspace operation.
type SetActiveInput struct {
	DashboardID uuid.UUID
	// WorkspaceID nil clears the selection.
	WorkspaceID *uuid.UUID
}

// Validate validates the set-active input.
func (i SetActiveInput) Validate() error {
	var errs []domain.FieldError

	if i.DashboardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dashboard_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
