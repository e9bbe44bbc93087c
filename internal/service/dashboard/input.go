package dashboard

import (
	"github.com/google/uuid"

	"github.com/openboards/openboards-backend/internal/domain"
)

const maxNameLen = 200

// CreateDashboardInput holds parameters for dashboard creation.
type CreateDashboardInput struct {
	Name           string
	Description    *string
	OrganizationID *uuid.UUID
}

// Validate validates the create-dashboard input.
func (i CreateDashboardInput) Validate() error {
	return validateName(i.Name)
}

// UpdateDashboardInput holds partial-update parameters for a dashboard.
type UpdateDashboardInput struct {
	Name        *string
	Description *string
}

// Validate validates the update-dashboard input.
func (i UpdateDashboardInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "update", Message: "no fields to update"})
	}
	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(*i.Name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateWorkspaceInput holds parameters for workspace creation.
type CreateWorkspaceInput struct {
	DashboardID uuid.UUID
	Name        string
	Description *string
}

// Validate validates the create-workspace input.
func (i CreateWorkspaceInput) Validate() error {
	var errs []domain.FieldError

	if i.DashboardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dashboard_id", Message: "required"})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWorkspaceInput holds partial-update parameters for a workspace.
type UpdateWorkspaceInput struct {
	Name        *string
	Description *string
}

// Validate validates the update-workspace input.
func (i UpdateWorkspaceInput) Validate() error {
	return UpdateDashboardInput{Name: i.Name, Description: i.Description}.Validate()
}

func validateName(name string) error {
	var errs []domain.FieldError

	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
