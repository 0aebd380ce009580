package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/port"
	"github.com/sirupsen/logrus"
)

type OrderService struct {
	store port.Store
	log   logrus.FieldLogger
}

func NewOrderService(store port.Store, log logrus.FieldLogger) *OrderService {
	return &OrderService{
		store: store,
		log:   log,
	}
}

// PlaceOrder turns the cart into a PENDING order in one transaction: the cart row is locked, the
// total is computed from current prices, stock of every product is checked and decremented under a
// row lock, the cart is emptied and its version bumped. Nothing is persisted if any step fails.
func (s *OrderService) PlaceOrder(ctx context.Context, cartID int64) (domain.Order, error) {
	var order domain.Order

	err := s.store.InTx(ctx, func(tx port.Tx) error {
		cart, err := tx.Carts().LockCart(ctx, cartID)
		if err != nil {
			return fmt.Errorf("tx.Carts.LockCart: %w", err)
		}

		cart.Items, err = tx.Carts().ListItems(ctx, cartID)
		if err != nil {
			return fmt.Errorf("tx.Carts.ListItems: %w", err)
		}
		if len(cart.Items) == 0 {
			return domain.ErrCartEmpty
		}

		// products are locked in ascending ID order so carts sharing products cannot deadlock
		slices.SortFunc(cart.Items, func(a, b domain.CartItem) int {
			return cmp.Compare(a.ProductID, b.ProductID)
		})

		total, err := cart.Total()
		if err != nil {
			return err
		}

		order, err = tx.Orders().CreateOrder(ctx, domain.Order{
			CartID:      cart.ID,
			CartVersion: cart.Version,
			Total:       total,
			Status:      domain.OrderStatusPending,
		})
		if err != nil {
			return fmt.Errorf("tx.Orders.CreateOrder: %w", err)
		}

		for _, item := range cart.Items {
			if err := reserveStock(ctx, tx.Products(), item); err != nil {
				return err
			}
		}

		if _, err := tx.Carts().ClearItems(ctx, cart.ID); err != nil {
			return fmt.Errorf("tx.Carts.ClearItems: %w", err)
		}

		if _, err := tx.Carts().BumpVersion(ctx, cart.ID); err != nil {
			return fmt.Errorf("tx.Carts.BumpVersion: %w", err)
		}

		return addOrderEvent(ctx, tx.Events(), domain.OrderEventPlaced, order)
	})
	if err != nil {
		s.logRejected(cartID, err)
		return domain.Order{}, domain.Classify(err)
	}

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"cart_id":  order.CartID,
		"total":    order.Total.Amount.StringFixed(2),
	}).Info("order placed")

	return order, nil
}

// reserveStock locks the product row and decrements its stock by the item quantity.
func reserveStock(ctx context.Context, products port.ProductRepository, item domain.CartItem) error {
	product, err := products.LockProduct(ctx, item.ProductID)
	if err != nil {
		return fmt.Errorf("products.LockProduct: %w", err)
	}

	stock := product.StockQuantity - item.Quantity
	if stock < 0 {
		return &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   item.Quantity,
			Available:   product.StockQuantity,
		}
	}

	if err := products.UpdateStock(ctx, product.ID, stock); err != nil {
		return fmt.Errorf("products.UpdateStock: %w", err)
	}

	return nil
}

func (s *OrderService) logRejected(cartID int64, err error) {
	entry := s.log.WithField("cart_id", cartID).WithError(err)

	if errors.Is(domain.Classify(err), domain.ErrPersistence) {
		entry.Error("place order failed")
		return
	}
	entry.Warn("order rejected")
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (domain.OrderView, error) {
	order, err := s.store.Orders().GetOrder(ctx, orderID)
	if err != nil {
		return domain.OrderView{}, domain.Classify(fmt.Errorf("store.Orders.GetOrder: %w", err))
	}

	view, err := s.orderView(ctx, order)
	if err != nil {
		return domain.OrderView{}, domain.Classify(err)
	}

	return view, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.OrderView, error) {
	orders, err := s.store.Orders().ListOrders(ctx)
	if err != nil {
		return nil, domain.Classify(fmt.Errorf("store.Orders.ListOrders: %w", err))
	}

	views := make([]domain.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := s.orderView(ctx, order)
		if err != nil {
			return nil, domain.Classify(err)
		}
		views = append(views, view)
	}

	return views, nil
}

// orderView attaches the current state of the order's cart. Placed orders usually see an empty cart.
func (s *OrderService) orderView(ctx context.Context, order domain.Order) (domain.OrderView, error) {
	cart, err := s.store.Carts().GetCart(ctx, order.CartID)
	if err != nil {
		return domain.OrderView{}, fmt.Errorf("store.Carts.GetCart: %w", err)
	}

	return domain.OrderView{
		Order: order,
		Cart:  cart,
	}, nil
}

// UpdateOrderStatus sets any of the known statuses, regardless of the current one.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (domain.Order, error) {
	orderStatus, err := domain.ParseOrderStatus(status)
	if err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	err = s.store.InTx(ctx, func(tx port.Tx) error {
		order, err = tx.Orders().UpdateStatus(ctx, orderID, orderStatus)
		if err != nil {
			return fmt.Errorf("tx.Orders.UpdateStatus: %w", err)
		}

		return addOrderEvent(ctx, tx.Events(), domain.OrderEventStatusChanged, order)
	})
	if err != nil {
		return domain.Order{}, domain.Classify(err)
	}

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"status":   order.Status,
	}).Info("order status updated")

	return order, nil
}

func addOrderEvent(ctx context.Context, events port.OrderEventRepository, eventType domain.OrderEventType, order domain.Order) error {
	event, err := domain.NewOrderEvent(eventType, order)
	if err != nil {
		return fmt.Errorf("domain.NewOrderEvent: %w", err)
	}

	if err := events.AddEvent(ctx, event); err != nil {
		return fmt.Errorf("events.AddEvent: %w", err)
	}

	return nil
}
