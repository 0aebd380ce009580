package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/swiftcart/internal/domain"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// LockProduct reads the product row and holds an exclusive lock on it until the transaction ends.
	LockProduct(ctx context.Context, productID int64) (domain.Product, error)
	UpdateStock(ctx context.Context, productID int64, stock int) error
}

type CartRepository interface {
	CreateCart(ctx context.Context, customerID *int64) (domain.Cart, error)
	// GetCart returns the cart with its items and their products.
	GetCart(ctx context.Context, cartID int64) (domain.Cart, error)
	// LockCart reads the cart row, without items, and holds an exclusive lock on it until the transaction ends.
	LockCart(ctx context.Context, cartID int64) (domain.Cart, error)
	// ListItems returns the cart items ordered by product ID.
	ListItems(ctx context.Context, cartID int64) ([]domain.CartItem, error)
	GetItem(ctx context.Context, cartItemID int64) (domain.CartItem, error)
	// AddItem inserts a line or increases the quantity of the existing line for the same product.
	AddItem(ctx context.Context, cartID, productID int64, quantity int) (domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID, cartItemID int64, quantity int) (bool, error)
	DeleteItem(ctx context.Context, cartID, cartItemID int64) (bool, error)
	ClearItems(ctx context.Context, cartID int64) (int64, error)
	BumpVersion(ctx context.Context, cartID int64) (int, error)
	GetCustomerCartID(ctx context.Context, customerID int64) (*int64, error)
	DeleteCustomerItems(ctx context.Context, customerID int64) (int64, error)
	DeleteCustomerCarts(ctx context.Context, customerID int64) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (domain.Order, error)
	DeleteCustomerOrders(ctx context.Context, customerID int64) (int64, error)
}

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (domain.Customer, error)
	LockCustomer(ctx context.Context, customerID int64) (domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) (bool, error)
}

type OrderEventRepository interface {
	AddEvent(ctx context.Context, event domain.OrderEvent) error
	// LockPending returns up to limit unpublished events, skipping rows locked by another relay.
	LockPending(ctx context.Context, limit int) ([]domain.OrderEvent, error)
	MarkPublished(ctx context.Context, eventIDs []uuid.UUID) (int64, error)
}

// Tx exposes the repositories bound to one connection or transaction.
type Tx interface {
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Customers() CustomerRepository
	Events() OrderEventRepository
}

// Store is the handle to the relational store. Outside InTx every repository call runs on its own.
type Store interface {
	Tx
	// InTx runs fn in one transaction, committing when fn returns nil and rolling back otherwise.
	// Calling InTx on the Tx passed to fn joins the outer transaction.
	InTx(ctx context.Context, fn func(tx Tx) error) error
}
