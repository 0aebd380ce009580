package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/port"
	"github.com/sirupsen/logrus"
)

type CustomerService struct {
	store port.Store
	log   logrus.FieldLogger
}

func NewCustomerService(store port.Store, log logrus.FieldLogger) *CustomerService {
	return &CustomerService{
		store: store,
		log:   log,
	}
}

// CreateCustomer registers the customer together with an empty cart.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer domain.Customer) (domain.CustomerWithCart, error) {
	var result domain.CustomerWithCart

	err := s.store.InTx(ctx, func(tx port.Tx) error {
		created, err := tx.Customers().CreateCustomer(ctx, customer)
		if err != nil {
			return fmt.Errorf("tx.Customers.CreateCustomer: %w", err)
		}

		cart, err := tx.Carts().CreateCart(ctx, &created.ID)
		if err != nil {
			return fmt.Errorf("tx.Carts.CreateCart: %w", err)
		}

		result = domain.CustomerWithCart{Customer: created, CartID: &cart.ID}
		return nil
	})
	if err != nil {
		return domain.CustomerWithCart{}, domain.Classify(err)
	}

	s.log.WithFields(logrus.Fields{
		"customer_id": result.ID,
		"cart_id":     *result.CartID,
	}).Info("customer created")

	return result, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID int64) (domain.CustomerWithCart, error) {
	customer, err := s.store.Customers().GetCustomer(ctx, customerID)
	if err != nil {
		return domain.CustomerWithCart{}, domain.Classify(fmt.Errorf("store.Customers.GetCustomer: %w", err))
	}

	cartID, err := s.store.Carts().GetCustomerCartID(ctx, customerID)
	if err != nil {
		return domain.CustomerWithCart{}, domain.Classify(fmt.Errorf("store.Carts.GetCustomerCartID: %w", err))
	}

	return domain.CustomerWithCart{Customer: customer, CartID: cartID}, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.store.Customers().ListCustomers(ctx)
	if err != nil {
		return nil, domain.Classify(fmt.Errorf("store.Customers.ListCustomers: %w", err))
	}

	return customers, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	updated, err := s.store.Customers().UpdateCustomer(ctx, customer)
	if err != nil {
		return domain.Customer{}, domain.Classify(fmt.Errorf("store.Customers.UpdateCustomer: %w", err))
	}

	return updated, nil
}

// DeleteCustomer removes the customer and everything hanging off their carts, children first:
// orders, cart items, carts, then the customer row.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	var orders, items, carts int64

	err := s.store.InTx(ctx, func(tx port.Tx) error {
		if _, err := tx.Customers().LockCustomer(ctx, customerID); err != nil {
			return fmt.Errorf("tx.Customers.LockCustomer: %w", err)
		}

		var err error
		orders, err = tx.Orders().DeleteCustomerOrders(ctx, customerID)
		if err != nil {
			return fmt.Errorf("tx.Orders.DeleteCustomerOrders: %w", err)
		}

		items, err = tx.Carts().DeleteCustomerItems(ctx, customerID)
		if err != nil {
			return fmt.Errorf("tx.Carts.DeleteCustomerItems: %w", err)
		}

		carts, err = tx.Carts().DeleteCustomerCarts(ctx, customerID)
		if err != nil {
			return fmt.Errorf("tx.Carts.DeleteCustomerCarts: %w", err)
		}

		deleted, err := tx.Customers().DeleteCustomer(ctx, customerID)
		if err != nil {
			return fmt.Errorf("tx.Customers.DeleteCustomer: %w", err)
		}
		if !deleted {
			return domain.ErrCustomerNotFound
		}

		return nil
	})
	if err != nil {
		return domain.Classify(err)
	}

	s.log.WithFields(logrus.Fields{
		"customer_id": customerID,
		"orders":      orders,
		"items":       items,
		"carts":       carts,
	}).Info("customer deleted")

	return nil
}
