package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/merqado/storefront/internal/order/domain"
	"github.com/merqado/storefront/internal/order/repository"
	"github.com/merqado/storefront/kafka"
	"github.com/merqado/storefront/pkg/apperrors"
	"github.com/merqado/storefront/pkg/logger"
)

// CreateOrderItem is one requested checkout line.
type CreateOrderItem struct {
	ProductID uint
	Quantity  int
}

// CreateOrderCommand represents the checkout command
type CreateOrderCommand struct {
	UserID          uint
	Items           []CreateOrderItem
	PaymentMethod   string
	ShippingAddress domain.ShippingAddress
}

// OrderEventPublisher publishes order lifecycle events.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// CreateOrderHandler handles the checkout command
type CreateOrderHandler struct {
	repo      domain.OrderRepository
	publisher OrderEventPublisher
}

// NewCreateOrderHandler creates a new checkout handler. The publisher may be
// nil when no brokers are configured.
func NewCreateOrderHandler(repo domain.OrderRepository, publisher OrderEventPublisher) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, publisher: publisher}
}

// Handle validates the request, persists the order atomically and publishes
// the order placed event. A publish failure does not undo the checkout.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("at least one item is required")
	}
	if cmd.PaymentMethod == "" {
		return nil, fmt.Errorf("payment_method is required")
	}
	for _, item := range cmd.Items {
		if item.ProductID == 0 || item.Quantity < 1 {
			return nil, fmt.Errorf("invalid order item")
		}
	}

	addressJSON, err := json.Marshal(cmd.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize shipping address: %w", err)
	}

	order := &domain.Order{
		OrderNumber:     uuid.NewString(),
		UserID:          cmd.UserID,
		PaymentMethod:   cmd.PaymentMethod,
		ShippingAddress: string(addressJSON),
	}
	for _, item := range cmd.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := h.repo.Create(order); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Server(err)
	}
	order.Address = &cmd.ShippingAddress

	if h.publisher != nil {
		event := kafka.OrderPlacedEvent{
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			UserID:        order.UserID,
			TotalPrice:    order.TotalPrice,
			PaymentMethod: order.PaymentMethod,
			ItemCount:     len(order.Items),
		}
		if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
			logger.Error(ctx).Err(err).Uint("order_id", order.ID).Msg("order placed event not published")
		}
	}

	return order, nil
}
