package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

var orderStatuses = []OrderStatus{OrderStatusPending, OrderStatusShipped, OrderStatusDelivered}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range orderStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Order is immutable once placed except for Status. Total is the cart total at placement time.
type Order struct {
	ID          int64
	CartID      int64
	CartVersion int
	Total       Money
	Status      OrderStatus

	CreatedAt time.Time
}

// OrderView is an order together with its cart as it is now.
type OrderView struct {
	Order
	Cart Cart
}
