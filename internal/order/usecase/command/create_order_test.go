package command

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merqado/storefront/internal/order/domain"
	"github.com/merqado/storefront/internal/order/repository"
	"github.com/merqado/storefront/kafka"
	"github.com/merqado/storefront/pkg/apperrors"
)

type fakeCreateRepo struct {
	created *domain.Order
	err     error
}

func (f *fakeCreateRepo) CountByUser(userID uint) (int64, error) { return 0, nil }
func (f *fakeCreateRepo) FindPageByUser(userID uint, limit, offset int) ([]domain.Order, error) {
	return nil, nil
}
func (f *fakeCreateRepo) FindItemRows(orderIDs []uint) ([]domain.ItemRow, error) { return nil, nil }

func (f *fakeCreateRepo) Create(order *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = 1
	order.TotalPrice = 30
	f.created = order
	return nil
}

type fakePublisher struct {
	events []kafka.OrderPlacedEvent
	err    error
}

func (f *fakePublisher) PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func validCommand() CreateOrderCommand {
	return CreateOrderCommand{
		UserID:        7,
		PaymentMethod: "pix",
		Items: []CreateOrderItem{
			{ProductID: 100, Quantity: 2},
			{ProductID: 101, Quantity: 1},
		},
		ShippingAddress: domain.ShippingAddress{
			Street: "Rua Azul", Number: "10", City: "Recife", State: "PE", ZipCode: "50000-000",
		},
	}
}

func TestCreateOrder(t *testing.T) {
	repo := &fakeCreateRepo{}
	publisher := &fakePublisher{}
	handler := NewCreateOrderHandler(repo, publisher)

	order, err := handler.Handle(context.Background(), validCommand())
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderNumber)
	require.NotNil(t, order.Address)
	assert.Equal(t, "Recife", order.Address.City)

	// Address is persisted serialized
	var stored domain.ShippingAddress
	require.NoError(t, json.Unmarshal([]byte(repo.created.ShippingAddress), &stored))
	assert.Equal(t, "Rua Azul", stored.Street)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, uint(1), publisher.events[0].OrderID)
	assert.Equal(t, 2, publisher.events[0].ItemCount)
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateOrderCommand)
	}{
		{"no items", func(c *CreateOrderCommand) { c.Items = nil }},
		{"missing payment method", func(c *CreateOrderCommand) { c.PaymentMethod = "" }},
		{"zero quantity", func(c *CreateOrderCommand) { c.Items[0].Quantity = 0 }},
		{"missing product", func(c *CreateOrderCommand) { c.Items[0].ProductID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mutate(&cmd)
			handler := NewCreateOrderHandler(&fakeCreateRepo{}, nil)
			_, err := handler.Handle(context.Background(), cmd)
			assert.Error(t, err)
		})
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	repo := &fakeCreateRepo{err: repository.ErrInsufficientStock}
	handler := NewCreateOrderHandler(repo, nil)

	_, err := handler.Handle(context.Background(), validCommand())
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)
}

func TestCreateOrderRepoError(t *testing.T) {
	repo := &fakeCreateRepo{err: errors.New("deadlock detected")}
	handler := NewCreateOrderHandler(repo, nil)

	_, err := handler.Handle(context.Background(), validCommand())
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", apperrors.Code(err))
}

func TestCreateOrderPublishFailureDoesNotUndoCheckout(t *testing.T) {
	repo := &fakeCreateRepo{}
	publisher := &fakePublisher{err: errors.New("broker unavailable")}
	handler := NewCreateOrderHandler(repo, publisher)

	order, err := handler.Handle(context.Background(), validCommand())
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestCreateOrderWithoutPublisher(t *testing.T) {
	handler := NewCreateOrderHandler(&fakeCreateRepo{}, nil)
	_, err := handler.Handle(context.Background(), validCommand())
	assert.NoError(t, err)
}
