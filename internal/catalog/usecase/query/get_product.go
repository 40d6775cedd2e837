package query

import (
	"context"
	"errors"

	"github.com/merqado/storefront/internal/catalog/domain"
	"github.com/merqado/storefront/pkg/apperrors"
	"gorm.io/gorm"
)

// GetProductQuery represents the query for a single product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles the single-product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the single-product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	product, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Server(err)
	}
	return product, nil
}
