package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderEventType string

const (
	OrderEventPlaced        OrderEventType = "order.placed"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is an outbox record describing a committed order change.
type OrderEvent struct {
	ID      uuid.UUID
	OrderID int64
	Type    OrderEventType
	Payload []byte

	CreatedAt time.Time
}

type orderPayload struct {
	OrderID     int64  `json:"order_id"`
	CartID      int64  `json:"cart_id"`
	CartVersion int    `json:"cart_version"`
	TotalAmount string `json:"total_amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
}

func NewOrderEvent(eventType OrderEventType, order Order) (OrderEvent, error) {
	payload, err := json.Marshal(orderPayload{
		OrderID:     order.ID,
		CartID:      order.CartID,
		CartVersion: order.CartVersion,
		TotalAmount: order.Total.Amount.StringFixed(2),
		Currency:    order.Total.Currency.String(),
		Status:      string(order.Status),
	})
	if err != nil {
		return OrderEvent{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return OrderEvent{
		ID:      uuid.New(),
		OrderID: order.ID,
		Type:    eventType,
		Payload: payload,
	}, nil
}
