package repository

import (
	"context"
	"fmt"

	"github.com/nikolayk812/swiftcart/internal/db"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q *db.Queries
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	cartVersion, err := toInt32(order.CartVersion)
	if err != nil {
		return domain.Order{}, err
	}

	dbOrder, err := r.q.CreateOrder(ctx, db.CreateOrderParams{
		CartID:        order.CartID,
		CartVersion:   cartVersion,
		TotalAmount:   order.Total.Amount,
		TotalCurrency: order.Total.Currency.String(),
		Status:        string(order.Status),
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.CreateOrder: %w", mapError(err, nil))
	}

	return mapOrderToDomain(dbOrder)
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	dbOrder, err := r.q.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", mapError(err, domain.ErrOrderNotFound))
	}

	return mapOrderToDomain(dbOrder)
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	dbOrders, err := r.q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(dbOrders))
	for _, dbOrder := range dbOrders {
		order, err := mapOrderToDomain(dbOrder)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (domain.Order, error) {
	dbOrder, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		OrderID: orderID,
		Status:  string(status),
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.UpdateOrderStatus: %w", mapError(err, domain.ErrOrderNotFound))
	}

	return mapOrderToDomain(dbOrder)
}

func (r *orderRepository) DeleteCustomerOrders(ctx context.Context, customerID int64) (int64, error) {
	rowsAffected, err := r.q.DeleteCustomerOrders(ctx, &customerID)
	if err != nil {
		return 0, fmt.Errorf("q.DeleteCustomerOrders: %w", err)
	}

	return rowsAffected, nil
}

func mapOrderToDomain(dbOrder db.Order) (domain.Order, error) {
	parsedCurrency, err := currency.ParseISO(dbOrder.TotalCurrency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", dbOrder.TotalCurrency, err)
	}

	status, err := domain.ParseOrderStatus(dbOrder.Status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("domain.ParseOrderStatus: %w", err)
	}

	return domain.Order{
		ID:          dbOrder.OrderID,
		CartID:      dbOrder.CartID,
		CartVersion: int(dbOrder.CartVersion),
		Total:       domain.Money{Amount: dbOrder.TotalAmount, Currency: parsedCurrency},
		Status:      status,
		CreatedAt:   dbOrder.CreatedAt,
	}, nil
}
