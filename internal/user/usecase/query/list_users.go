package query

import (
	"github.com/merqado/storefront/internal/user/domain"
	"github.com/merqado/storefront/pkg/apperrors"
	"github.com/merqado/storefront/pkg/pagination"
)

// ListUsersQuery represents the admin user listing query
type ListUsersQuery struct {
	Page  int
	Limit int
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users      []domain.User `json:"users"`
	TotalPages int           `json:"totalPages"`
}

// ListUsersHandler handles the admin user listing query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the listing: count, then page.
func (h *ListUsersHandler) Handle(q ListUsersQuery) (*UserPage, error) {
	req := pagination.NewRequest(q.Page, q.Limit, domain.DefaultPageSize)

	count, err := h.repo.Count()
	if err != nil {
		return nil, apperrors.Server(err)
	}

	users, err := h.repo.FindAll(req.Limit, req.Offset())
	if err != nil {
		return nil, apperrors.Server(err)
	}

	return &UserPage{
		Users:      users,
		TotalPages: req.TotalPages(count),
	}, nil
}
