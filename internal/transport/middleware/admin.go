package middleware

import (
	"context"

	"github.com/openboards/openboards-backend/internal/domain"
	"github.com/openboards/openboards-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Use inside REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if ctxutil.UserRoleFromCtx(ctx) != string(domain.UserRoleAdmin) {
		return domain.ErrForbidden
	}
	return nil
}
