package kafka

import "time"

// OrderPlacedEvent is emitted after a checkout commits.
type OrderPlacedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OrderID       uint      `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	UserID        uint      `json:"user_id"`
	TotalPrice    float64   `json:"total_price"`
	PaymentMethod string    `json:"payment_method"`
	ItemCount     int       `json:"item_count"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
