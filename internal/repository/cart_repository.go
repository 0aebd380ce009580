package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/swiftcart/internal/db"
	"github.com/nikolayk812/swiftcart/internal/domain"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q *db.Queries
}

func (r *cartRepository) CreateCart(ctx context.Context, customerID *int64) (domain.Cart, error) {
	dbCart, err := r.q.CreateCart(ctx, customerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.CreateCart: %w", err)
	}

	return mapCartToDomain(dbCart), nil
}

func (r *cartRepository) GetCart(ctx context.Context, cartID int64) (domain.Cart, error) {
	dbCart, err := r.q.GetCart(ctx, cartID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", mapError(err, domain.ErrCartNotFound))
	}

	items, err := r.ListItems(ctx, cartID)
	if err != nil {
		return domain.Cart{}, err
	}

	cart := mapCartToDomain(dbCart)
	cart.Items = items

	return cart, nil
}

func (r *cartRepository) LockCart(ctx context.Context, cartID int64) (domain.Cart, error) {
	dbCart, err := r.q.LockCart(ctx, cartID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.LockCart: %w", mapError(err, domain.ErrCartNotFound))
	}

	return mapCartToDomain(dbCart), nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	rows, err := r.q.ListCartItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("q.ListCartItems: %w", err)
	}

	items, err := mapListCartItemsRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapListCartItemsRowsToDomain: %w", err)
	}

	return items, nil
}

func (r *cartRepository) GetItem(ctx context.Context, cartItemID int64) (domain.CartItem, error) {
	row, err := r.q.GetCartItem(ctx, cartItemID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("q.GetCartItem: %w", mapError(err, domain.ErrCartItemNotFound))
	}

	item, err := mapCartItemRowToDomain(db.ListCartItemsRow(row))
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("mapCartItemRowToDomain: %w", err)
	}

	return item, nil
}

func (r *cartRepository) AddItem(ctx context.Context, cartID, productID int64, quantity int) (domain.CartItem, error) {
	qty, err := toInt32(quantity)
	if err != nil {
		return domain.CartItem{}, err
	}

	cartItemID, err := r.q.UpsertCartItem(ctx, db.UpsertCartItemParams{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  qty,
	})
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("q.UpsertCartItem: %w", mapError(err, nil))
	}

	return r.GetItem(ctx, cartItemID)
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, cartID, cartItemID int64, quantity int) (bool, error) {
	qty, err := toInt32(quantity)
	if err != nil {
		return false, err
	}

	rowsAffected, err := r.q.UpdateCartItemQuantity(ctx, db.UpdateCartItemQuantityParams{
		CartItemID: cartItemID,
		CartID:     cartID,
		Quantity:   qty,
	})
	if err != nil {
		return false, fmt.Errorf("q.UpdateCartItemQuantity: %w", mapError(err, nil))
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, cartID, cartItemID int64) (bool, error) {
	rowsAffected, err := r.q.DeleteCartItem(ctx, db.DeleteCartItemParams{
		CartItemID: cartItemID,
		CartID:     cartID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteCartItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) ClearItems(ctx context.Context, cartID int64) (int64, error) {
	rowsAffected, err := r.q.ClearCartItems(ctx, cartID)
	if err != nil {
		return 0, fmt.Errorf("q.ClearCartItems: %w", err)
	}

	return rowsAffected, nil
}

func (r *cartRepository) BumpVersion(ctx context.Context, cartID int64) (int, error) {
	version, err := r.q.BumpCartVersion(ctx, cartID)
	if err != nil {
		return 0, fmt.Errorf("q.BumpCartVersion: %w", mapError(err, domain.ErrCartNotFound))
	}

	return int(version), nil
}

func (r *cartRepository) GetCustomerCartID(ctx context.Context, customerID int64) (*int64, error) {
	cartID, err := r.q.GetCustomerCartID(ctx, &customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("q.GetCustomerCartID: %w", err)
	}

	return &cartID, nil
}

func (r *cartRepository) DeleteCustomerItems(ctx context.Context, customerID int64) (int64, error) {
	rowsAffected, err := r.q.DeleteCustomerCartItems(ctx, &customerID)
	if err != nil {
		return 0, fmt.Errorf("q.DeleteCustomerCartItems: %w", err)
	}

	return rowsAffected, nil
}

func (r *cartRepository) DeleteCustomerCarts(ctx context.Context, customerID int64) (int64, error) {
	rowsAffected, err := r.q.DeleteCustomerCarts(ctx, &customerID)
	if err != nil {
		return 0, fmt.Errorf("q.DeleteCustomerCarts: %w", err)
	}

	return rowsAffected, nil
}

func mapCartToDomain(dbCart db.Cart) domain.Cart {
	return domain.Cart{
		ID:         dbCart.CartID,
		CustomerID: dbCart.CustomerID,
		Version:    int(dbCart.Version),
	}
}

func mapCartItemRowToDomain(row db.ListCartItemsRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartItem{
		ID:        row.CartItemID,
		CartID:    row.CartID,
		ProductID: row.ProductID,
		Quantity:  int(row.Quantity),
		Product: domain.Product{
			ID:            row.ProductID,
			Name:          row.Name,
			Price:         domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
			StockQuantity: int(row.StockQuantity),
		},
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapListCartItemsRowsToDomain(rows []db.ListCartItemsRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapCartItemRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapCartItemRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
