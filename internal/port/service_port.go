package port

import (
	"context"

	"github.com/nikolayk812/swiftcart/internal/domain"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, cartID int64) (domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (domain.OrderView, error)
	ListOrders(ctx context.Context) ([]domain.OrderView, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) (domain.Order, error)
}

type CartService interface {
	GetCart(ctx context.Context, cartID int64) (domain.Cart, error)
	AddItem(ctx context.Context, cartID, productID int64, quantity int) (domain.CartUpdate, error)
	UpdateItem(ctx context.Context, cartItemID int64, quantity int) (domain.CartUpdate, error)
	RemoveItem(ctx context.Context, cartItemID int64) (domain.CartUpdate, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer domain.Customer) (domain.CustomerWithCart, error)
	GetCustomer(ctx context.Context, customerID int64) (domain.CustomerWithCart, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}
