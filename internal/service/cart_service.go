package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/swiftcart/internal/domain"
	"github.com/nikolayk812/swiftcart/internal/port"
	"github.com/sirupsen/logrus"
)

// CartService applies item changes under the cart row lock. Every successful mutation bumps the
// cart version by one.
type CartService struct {
	store port.Store
	log   logrus.FieldLogger
}

func NewCartService(store port.Store, log logrus.FieldLogger) *CartService {
	return &CartService{
		store: store,
		log:   log,
	}
}

func (s *CartService) GetCart(ctx context.Context, cartID int64) (domain.Cart, error) {
	cart, err := s.store.Carts().GetCart(ctx, cartID)
	if err != nil {
		return domain.Cart{}, domain.Classify(fmt.Errorf("store.Carts.GetCart: %w", err))
	}

	return cart, nil
}

// AddItem puts quantity units of the product into the cart, adding to an existing line for the
// same product.
func (s *CartService) AddItem(ctx context.Context, cartID, productID int64, quantity int) (domain.CartUpdate, error) {
	if quantity < 1 {
		return domain.CartUpdate{}, domain.ErrInvalidQuantity
	}

	var update domain.CartUpdate
	err := s.store.InTx(ctx, func(tx port.Tx) error {
		if _, err := tx.Products().GetProduct(ctx, productID); err != nil {
			return fmt.Errorf("tx.Products.GetProduct: %w", err)
		}

		if _, err := tx.Carts().LockCart(ctx, cartID); err != nil {
			return fmt.Errorf("tx.Carts.LockCart: %w", err)
		}

		item, err := tx.Carts().AddItem(ctx, cartID, productID, quantity)
		if err != nil {
			return fmt.Errorf("tx.Carts.AddItem: %w", err)
		}

		version, err := tx.Carts().BumpVersion(ctx, cartID)
		if err != nil {
			return fmt.Errorf("tx.Carts.BumpVersion: %w", err)
		}

		update = domain.CartUpdate{CartID: cartID, Version: version, Item: &item}
		return nil
	})
	if err != nil {
		return domain.CartUpdate{}, domain.Classify(err)
	}

	s.log.WithFields(logrus.Fields{
		"cart_id":    cartID,
		"product_id": productID,
		"version":    update.Version,
	}).Debug("cart item added")

	return update, nil
}

func (s *CartService) UpdateItem(ctx context.Context, cartItemID int64, quantity int) (domain.CartUpdate, error) {
	if quantity < 1 {
		return domain.CartUpdate{}, domain.ErrInvalidQuantity
	}

	var update domain.CartUpdate
	err := s.store.InTx(ctx, func(tx port.Tx) error {
		cartID, err := lockItemCart(ctx, tx.Carts(), cartItemID)
		if err != nil {
			return err
		}

		updated, err := tx.Carts().UpdateItemQuantity(ctx, cartID, cartItemID, quantity)
		if err != nil {
			return fmt.Errorf("tx.Carts.UpdateItemQuantity: %w", err)
		}
		if !updated {
			return domain.ErrCartItemNotFound
		}

		version, err := tx.Carts().BumpVersion(ctx, cartID)
		if err != nil {
			return fmt.Errorf("tx.Carts.BumpVersion: %w", err)
		}

		item, err := tx.Carts().GetItem(ctx, cartItemID)
		if err != nil {
			return fmt.Errorf("tx.Carts.GetItem: %w", err)
		}

		update = domain.CartUpdate{CartID: cartID, Version: version, Item: &item}
		return nil
	})
	if err != nil {
		return domain.CartUpdate{}, domain.Classify(err)
	}

	return update, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartItemID int64) (domain.CartUpdate, error) {
	var update domain.CartUpdate
	err := s.store.InTx(ctx, func(tx port.Tx) error {
		cartID, err := lockItemCart(ctx, tx.Carts(), cartItemID)
		if err != nil {
			return err
		}

		deleted, err := tx.Carts().DeleteItem(ctx, cartID, cartItemID)
		if err != nil {
			return fmt.Errorf("tx.Carts.DeleteItem: %w", err)
		}
		if !deleted {
			return domain.ErrCartItemNotFound
		}

		version, err := tx.Carts().BumpVersion(ctx, cartID)
		if err != nil {
			return fmt.Errorf("tx.Carts.BumpVersion: %w", err)
		}

		update = domain.CartUpdate{CartID: cartID, Version: version}
		return nil
	})
	if err != nil {
		return domain.CartUpdate{}, domain.Classify(err)
	}

	return update, nil
}

// lockItemCart finds the cart owning the item and locks it. The item may be gone by the time the
// lock is granted, so callers must check the rows affected by their mutation.
func lockItemCart(ctx context.Context, carts port.CartRepository, cartItemID int64) (int64, error) {
	item, err := carts.GetItem(ctx, cartItemID)
	if err != nil {
		return 0, fmt.Errorf("carts.GetItem: %w", err)
	}

	if _, err := carts.LockCart(ctx, item.CartID); err != nil {
		return 0, fmt.Errorf("carts.LockCart: %w", err)
	}

	return item.CartID, nil
}
