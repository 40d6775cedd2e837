package graphql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merqado/storefront/internal/user/domain"
	"github.com/merqado/storefront/pkg/apperrors"
)

func TestRequireViewer(t *testing.T) {
	_, err := RequireViewer(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)

	ctx := WithViewer(context.Background(), &Viewer{ID: 1, Username: "ana"})
	viewer, err := RequireViewer(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), viewer.ID)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		viewer  *Viewer
		wantErr error
	}{
		{"anonymous", nil, apperrors.ErrAuthenticationRequired},
		{"ordinary user", &Viewer{ID: 1, Role: domain.RoleUser}, apperrors.ErrAuthorizationDenied},
		{"admin", &Viewer{ID: 1, Role: domain.RoleAdmin}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.viewer != nil {
				ctx = WithViewer(ctx, tt.viewer)
			}
			_, err := RequireAdmin(ctx)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFieldErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unauthenticated", apperrors.ErrAuthenticationRequired, "UNAUTHENTICATED"},
		{"forbidden", apperrors.ErrAuthorizationDenied, "FORBIDDEN"},
		{"not found", apperrors.ErrNotFound, "NOT_FOUND"},
		{"server", apperrors.Server(assert.AnError), "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := resolverError(context.Background(), tt.err)
			ext, ok := fe.(fieldError)
			require.True(t, ok)
			assert.Equal(t, tt.code, ext.Extensions()["code"])
		})
	}
}
