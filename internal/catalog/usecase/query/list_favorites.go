package query

import (
	"context"

	"github.com/merqado/storefront/internal/catalog/domain"
	"github.com/merqado/storefront/pkg/apperrors"
)

// ListFavoritesQuery represents the query for a user's favorite products
type ListFavoritesQuery struct {
	UserID uint
}

// ListFavoritesHandler handles the favorites query
type ListFavoritesHandler struct {
	repo domain.ProductRepository
}

// NewListFavoritesHandler creates a new favorites handler
func NewListFavoritesHandler(repo domain.ProductRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

// Handle executes the favorites query
func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]domain.Product, error) {
	products, err := h.repo.FindFavorites(ctx, q.UserID)
	if err != nil {
		return nil, apperrors.Server(err)
	}
	return products, nil
}
