package query

import (
	"context"

	"github.com/merqado/storefront/internal/catalog/domain"
	"github.com/merqado/storefront/pkg/apperrors"
	"github.com/merqado/storefront/pkg/pagination"
)

// ListProductsQuery represents the public catalog listing query. All filter
// fields are optional; absent filters are omitted from the predicate.
type ListProductsQuery struct {
	Search     string
	CategoryID uint
	OnSale     bool
	SortBy     string
	Page       int
	Limit      int
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Products   []domain.Product `json:"products"`
	TotalPages int              `json:"totalPages"`
}

// ListProductsHandler handles the catalog listing query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new catalog listing handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the listing: one count query, then one page query against
// the same predicate. No caching between calls.
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) (*ProductPage, error) {
	req := pagination.NewRequest(q.Page, q.Limit, domain.DefaultPageSize)
	filter := domain.ProductFilter{
		Search:     q.Search,
		CategoryID: q.CategoryID,
		OnSale:     q.OnSale,
	}

	count, err := h.repo.CountProducts(ctx, filter)
	if err != nil {
		return nil, apperrors.Server(err)
	}

	products, err := h.repo.FindProducts(ctx, filter, q.SortBy, req.Limit, req.Offset())
	if err != nil {
		return nil, apperrors.Server(err)
	}

	return &ProductPage{
		Products:   products,
		TotalPages: req.TotalPages(count),
	}, nil
}
