package query

import (
	"context"

	"github.com/merqado/storefront/internal/catalog/domain"
	"github.com/merqado/storefront/pkg/apperrors"
)

// ListCategoriesQuery represents the category overview query
type ListCategoriesQuery struct{}

// CategoryPage is the category overview with in-stock products grouped
// under their categories. The overview is never paginated.
type CategoryPage struct {
	Categories []domain.Category `json:"categories"`
	TotalPages int               `json:"totalPages"`
}

// ListCategoriesHandler handles the category overview query
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new category overview handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle fetches categories and in-stock products separately and groups
// them in memory.
func (h *ListCategoriesHandler) Handle(ctx context.Context, q ListCategoriesQuery) (*CategoryPage, error) {
	categories, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Server(err)
	}

	products, err := h.repo.FindInStockProducts(ctx)
	if err != nil {
		return nil, apperrors.Server(err)
	}

	return &CategoryPage{
		Categories: domain.GroupProductsByCategory(categories, products),
		TotalPages: 1,
	}, nil
}
