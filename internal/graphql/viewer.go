package graphql

import (
	"context"

	"github.com/merqado/storefront/internal/user/domain"
	"github.com/merqado/storefront/pkg/apperrors"
)

type contextKey string

const viewerKey contextKey = "viewer"

// Viewer is the authenticated identity attached to a request, when any.
type Viewer struct {
	ID       uint
	Username string
	Role     string
}

// IsAdmin checks if the viewer has admin role
func (v *Viewer) IsAdmin() bool {
	return v.Role == domain.RoleAdmin
}

// WithViewer attaches an identity to the request context.
func WithViewer(ctx context.Context, viewer *Viewer) context.Context {
	return context.WithValue(ctx, viewerKey, viewer)
}

// ViewerFromContext returns the identity attached to the context, or nil.
func ViewerFromContext(ctx context.Context) *Viewer {
	viewer, _ := ctx.Value(viewerKey).(*Viewer)
	return viewer
}

// RequireViewer gates sensitive resolvers: it runs before any query is
// issued and fails when no identity is present.
func RequireViewer(ctx context.Context) (*Viewer, error) {
	viewer := ViewerFromContext(ctx)
	if viewer == nil {
		return nil, apperrors.ErrAuthenticationRequired
	}
	return viewer, nil
}

// RequireAdmin gates admin resolvers. A missing identity is an
// authentication failure; a present non-admin identity is an authorization
// failure. The two are distinct error kinds.
func RequireAdmin(ctx context.Context) (*Viewer, error) {
	viewer, err := RequireViewer(ctx)
	if err != nil {
		return nil, err
	}
	if !viewer.IsAdmin() {
		return nil, apperrors.ErrAuthorizationDenied
	}
	return viewer, nil
}
