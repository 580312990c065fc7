package kafka

import (
	"time"

	"github.com/google/uuid"
)

// EventType определяет тип доменного события
type EventType string

const (
	// Order события
	EventTypeOrderCreated      EventType = "order.created"
	EventTypeOrderUpdated      EventType = "order.updated"
	EventTypeOrderDeleted      EventType = "order.deleted"
	EventTypeOrderProductAdded EventType = "order.product_added"
)

// Topics для Kafka
const (
	TopicOrderEvents = "storefront.order.events"
)

// OrderEvent представляет событие жизненного цикла заказа
type OrderEvent struct {
	EventID   string                 `json:"event_id"`
	EventType EventType              `json:"event_type"`
	OrderID   int64                  `json:"order_id"`
	UserID    int64                  `json:"user_id,omitempty"`
	Status    string                 `json:"status,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, orderID, userID int64, status string, metadata map[string]interface{}) *OrderEvent {
	return &OrderEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		OrderID:   orderID,
		UserID:    userID,
		Status:    status,
		Timestamp: time.Now(),
		Metadata:  metadata,
	}
}
