package handler

import (
	"time"

	"github.com/nikolayk812/swiftcart/internal/domain"
)

type ProductResponse struct {
	ProductID     int64  `json:"product_id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	Currency      string `json:"currency"`
	StockQuantity int    `json:"stock_quantity"`
}

type CartItemResponse struct {
	CartItemID int64           `json:"cart_item_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	Product    ProductResponse `json:"product"`
}

type CartResponse struct {
	CartID     int64              `json:"cart_id"`
	CustomerID *int64             `json:"customer_id"`
	Version    int                `json:"version"`
	Items      []CartItemResponse `json:"items"`
}

type CartUpdateResponse struct {
	CartID  int64             `json:"cart_id"`
	Version int               `json:"version"`
	Item    *CartItemResponse `json:"item,omitempty"`
}

type OrderResponse struct {
	OrderID     int64     `json:"order_id"`
	CartID      int64     `json:"cart_id"`
	CartVersion int       `json:"cart_version"`
	TotalAmount string    `json:"total_amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderViewResponse struct {
	OrderResponse
	Cart CartResponse `json:"cart"`
}

type CustomerResponse struct {
	CustomerID int64     `json:"customer_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Address    *string   `json:"address"`
	City       *string   `json:"city"`
	State      *string   `json:"state"`
	ZipCode    *string   `json:"zip_code"`
	Country    *string   `json:"country"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	CartID     *int64    `json:"cart_id,omitempty"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price.Amount.StringFixed(2),
		Currency:      p.Price.Currency.String(),
		StockQuantity: p.StockQuantity,
	}
}

func toCartItemResponse(item domain.CartItem) CartItemResponse {
	return CartItemResponse{
		CartItemID: item.ID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		Product:    toProductResponse(item.Product),
	}
}

func toCartResponse(cart domain.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, toCartItemResponse(item))
	}

	return CartResponse{
		CartID:     cart.ID,
		CustomerID: cart.CustomerID,
		Version:    cart.Version,
		Items:      items,
	}
}

func toCartUpdateResponse(update domain.CartUpdate) CartUpdateResponse {
	resp := CartUpdateResponse{
		CartID:  update.CartID,
		Version: update.Version,
	}
	if update.Item != nil {
		item := toCartItemResponse(*update.Item)
		resp.Item = &item
	}
	return resp
}

func toOrderResponse(o domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.ID,
		CartID:      o.CartID,
		CartVersion: o.CartVersion,
		TotalAmount: o.Total.Amount.StringFixed(2),
		Currency:    o.Total.Currency.String(),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}

func toOrderViewResponse(v domain.OrderView) OrderViewResponse {
	return OrderViewResponse{
		OrderResponse: toOrderResponse(v.Order),
		Cart:          toCartResponse(v.Cart),
	}
}

func toCustomerResponse(c domain.Customer, cartID *int64) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		ZipCode:    c.ZipCode,
		Country:    c.Country,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		CartID:     cartID,
	}
}
