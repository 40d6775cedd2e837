package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultPageSize is the order history page size.
const DefaultPageSize = 5

// ShippingAddress is stored serialized as JSON text on the order row and
// parsed back on read.
type ShippingAddress struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

// Order is one placed order. Items and Address are reshaped in memory from
// the flat rows; the read path never mutates storage.
type Order struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	OrderNumber     string           `json:"order_number" gorm:"uniqueIndex;not null"`
	UserID          uint             `json:"user_id" gorm:"index;not null"`
	TotalPrice      float64          `json:"total_price" gorm:"not null"`
	PaymentMethod   string           `json:"payment_method" gorm:"not null"`
	ShippingAddress string           `json:"-" gorm:"type:text;not null"`
	Address         *ShippingAddress `json:"shipping_address" gorm:"-"`
	Items           []OrderItem      `json:"items" gorm:"-"`
	CreatedAt       time.Time        `json:"created_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// ParseAddress decodes the serialized shipping address into Address.
func (o *Order) ParseAddress() error {
	if o.ShippingAddress == "" {
		return nil
	}
	var addr ShippingAddress
	if err := json.Unmarshal([]byte(o.ShippingAddress), &addr); err != nil {
		return fmt.Errorf("failed to parse shipping address of order %d: %w", o.ID, err)
	}
	o.Address = &addr
	return nil
}

// ProductRef is the slice of product carried on an order item: enough to
// render the line even if the product is later deleted or repriced.
type ProductRef struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// OrderItem is one line of an order. Price is the snapshot taken at
// purchase time, deliberately decoupled from the live product price.
type OrderItem struct {
	ID        uint        `json:"-" gorm:"primaryKey"`
	OrderID   uint        `json:"-" gorm:"index;not null"`
	ProductID uint        `json:"-" gorm:"not null"`
	Quantity  int         `json:"quantity" gorm:"not null"`
	Price     float64     `json:"price_at_purchase" gorm:"not null"`
	Product   *ProductRef `json:"product" gorm:"-"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// ItemRow is one flat row of the order/items/products join: the parent key
// plus the child columns, one row per child.
type ItemRow struct {
	OrderID         uint
	Quantity        int
	Price           float64
	ProductID       uint
	ProductName     string
	ProductImageURL string
}

// OrderRepository defines the contract for order data access.
type OrderRepository interface {
	CountByUser(userID uint) (int64, error)
	FindPageByUser(userID uint, limit, offset int) ([]Order, error)
	FindItemRows(orderIDs []uint) ([]ItemRow, error)
	// Create persists the order and its items in one transaction,
	// snapshotting prices and decrementing stock.
	Create(order *Order) error
}

// AttachItems groups flat join rows under their orders. The mapping is
// insertion-ordered on the parent key: output order follows the orders
// slice, items follow row arrival order. Rows for unknown orders are
// ignored. Every order comes back with a non-nil item list and a parsed
// address, so re-running over identical input yields identical output.
func AttachItems(orders []Order, rows []ItemRow) ([]Order, error) {
	index := make(map[uint]int, len(orders))
	grouped := make([]Order, len(orders))
	for i, ord := range orders {
		if err := ord.ParseAddress(); err != nil {
			return nil, err
		}
		ord.Items = []OrderItem{}
		grouped[i] = ord
		index[ord.ID] = i
	}

	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			continue
		}
		grouped[i].Items = append(grouped[i].Items, OrderItem{
			OrderID:   row.OrderID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			Price:     row.Price,
			Product: &ProductRef{
				ID:       row.ProductID,
				Name:     row.ProductName,
				ImageURL: row.ProductImageURL,
			},
		})
	}

	return grouped, nil
}
