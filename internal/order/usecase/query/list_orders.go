package query

import (
	"github.com/merqado/storefront/internal/order/domain"
	"github.com/merqado/storefront/pkg/apperrors"
	"github.com/merqado/storefront/pkg/pagination"
)

// ListOrdersQuery represents the query for a user's order history
type ListOrdersQuery struct {
	UserID uint
	Page   int
	Limit  int
}

// OrderPage is one page of order history with nested items.
type OrderPage struct {
	Orders     []domain.Order `json:"orders"`
	TotalCount int64          `json:"totalCount"`
	TotalPages int            `json:"totalPages"`
}

// ListOrdersHandler handles the order history query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new order history handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle counts the user's orders, fetches the requested page, then fetches
// the item rows for exactly those orders in one batch and groups them.
func (h *ListOrdersHandler) Handle(q ListOrdersQuery) (*OrderPage, error) {
	req := pagination.NewRequest(q.Page, q.Limit, domain.DefaultPageSize)

	count, err := h.repo.CountByUser(q.UserID)
	if err != nil {
		return nil, apperrors.Server(err)
	}

	orders, err := h.repo.FindPageByUser(q.UserID, req.Limit, req.Offset())
	if err != nil {
		return nil, apperrors.Server(err)
	}

	if len(orders) == 0 {
		return &OrderPage{Orders: []domain.Order{}, TotalCount: 0, TotalPages: 0}, nil
	}

	orderIDs := make([]uint, len(orders))
	for i, ord := range orders {
		orderIDs[i] = ord.ID
	}

	rows, err := h.repo.FindItemRows(orderIDs)
	if err != nil {
		return nil, apperrors.Server(err)
	}

	grouped, err := domain.AttachItems(orders, rows)
	if err != nil {
		return nil, apperrors.Server(err)
	}

	return &OrderPage{
		Orders:     grouped,
		TotalCount: count,
		TotalPages: req.TotalPages(count),
	}, nil
}
