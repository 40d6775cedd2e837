package query

import (
	"errors"

	"github.com/merqado/storefront/internal/user/domain"
	"github.com/merqado/storefront/pkg/apperrors"
	"gorm.io/gorm"
)

// GetProfileQuery represents the query for the viewer's own profile
type GetProfileQuery struct {
	UserID uint
}

// GetProfileHandler handles the profile query
type GetProfileHandler struct {
	repo domain.UserRepository
}

// NewGetProfileHandler creates a new profile handler
func NewGetProfileHandler(repo domain.UserRepository) *GetProfileHandler {
	return &GetProfileHandler{repo: repo}
}

// Handle executes the profile query. A missing row is NotFound, not a
// server error: the identity may outlive its user row.
func (h *GetProfileHandler) Handle(q GetProfileQuery) (*domain.User, error) {
	user, err := h.repo.FindByID(q.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Server(err)
	}
	return user, nil
}
